package models

// Section is a content section (politics, sports).
type Section struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display-name,omitempty"`
}

// Collection is a curated collection backing a section page.
type Collection struct {
	ID       int64              `json:"id,omitempty"`
	Name     string             `json:"name"`
	Metadata CollectionMetadata `json:"metadata"`
}

type CollectionMetadata struct {
	Section    []Section   `json:"section,omitempty"`
	CoverImage *CoverImage `json:"cover-image,omitempty"`
}

type CoverImage struct {
	S3Key    string         `json:"cover-image-s3-key"`
	Metadata *ImageMetadata `json:"cover-image-metadata,omitempty"`
}

// SectionOwner returns the owner id of the section the collection belongs
// to. Collections without a section have no owner.
func (c Collection) SectionOwner() OwnerID {
	if len(c.Metadata.Section) == 0 {
		return NoOwner
	}
	return NumericOwnerID(c.Metadata.Section[0].ID)
}
