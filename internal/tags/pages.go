package tags

import (
	"errors"
	"fmt"

	"github.com/quintype/quintype-seo-go/models"
	"github.com/quintype/quintype-seo-go/pkg/seo"
	"github.com/quintype/quintype-seo-go/pkg/storage"
)

// ErrUnknownPageType is returned for a --page value no page model handles.
var ErrUnknownPageType = errors.New("unknown page type")

// Page kinds accepted by --page.
const (
	KindHome              = "home"
	KindSection           = "section"
	KindSectionCollection = "section-collection"
	KindSearch            = "search"
	KindStaticPage        = "static-page"
	KindStory             = "story"
	KindCardShare         = "card-share"
	KindStoryElement      = "story-element"
	KindTag               = "tag"
)

// Kinds lists every page kind in help order.
var Kinds = []string{
	KindHome, KindSection, KindSectionCollection, KindSearch, KindStaticPage,
	KindStory, KindCardShare, KindStoryElement, KindTag,
}

// Inputs are the content objects and names a page is built from. Files are
// JSON content API payloads.
type Inputs struct {
	InputFile string
	CardFile  string
	Term      string
	Name      string
	Title     string
	Tag       string
}

// NewPage builds the page model for kind.
func NewPage(kind string, cfg *models.Config, in Inputs, st *storage.Storage) (seo.Page, error) {
	switch kind {
	case KindHome:
		return seo.NewHome(cfg), nil
	case KindSearch:
		return seo.NewSearch(cfg, in.Term), nil
	case KindStaticPage:
		return seo.NewStaticPage(cfg, in.Name, in.Title), nil
	case KindTag:
		return seo.NewTag(cfg, in.Tag), nil
	case KindSection:
		var section models.Section
		if err := decodeRequired(st, in.InputFile, &section); err != nil {
			return nil, err
		}
		return seo.NewSection(cfg, section), nil
	case KindSectionCollection:
		var collection models.Collection
		if err := decodeRequired(st, in.InputFile, &collection); err != nil {
			return nil, err
		}
		return seo.NewSectionCollection(cfg, collection), nil
	case KindStory:
		var story models.Story
		if err := decodeRequired(st, in.InputFile, &story); err != nil {
			return nil, err
		}
		return seo.NewStory(cfg, &story), nil
	case KindCardShare:
		var story models.Story
		if err := decodeRequired(st, in.InputFile, &story); err != nil {
			return nil, err
		}
		var card *models.Card
		if in.CardFile != "" {
			card = &models.Card{}
			if err := st.DecodeJSON(in.CardFile, card); err != nil {
				return nil, err
			}
		}
		return seo.NewCardShare(cfg, &story, card), nil
	case KindStoryElement:
		var story models.Story
		if err := decodeRequired(st, in.InputFile, &story); err != nil {
			return nil, err
		}
		return seo.NewStoryElement(cfg, &story), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPageType, kind)
	}
}

// errMissingInput is a usage error: the page kind needs --input.
var errMissingInput = errors.New("--input is required for this page type")

func decodeRequired(st *storage.Storage, path string, v any) error {
	if path == "" {
		return errMissingInput
	}
	return st.DecodeJSON(path, v)
}
