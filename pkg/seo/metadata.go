package seo

import (
	"github.com/quintype/quintype-seo-go/models"
	"github.com/quintype/quintype-seo-go/pkg/attrs"
)

// ResolveMetadata returns the data of the first record whose owner type and
// owner id match, or an empty tree. Records are never modified.
func ResolveMetadata(records []models.SEOMetadataRecord, pageType models.PageType, owner models.OwnerID) *attrs.Tree {
	for _, r := range records {
		if r.OwnerType != pageType || !r.OwnerID.Equal(owner) {
			continue
		}
		if r.Data == nil {
			return attrs.New()
		}
		return r.Data
	}
	return attrs.New()
}

// RecordKey is what a metadata record is matched on.
type RecordKey struct {
	OwnerType models.PageType
	OwnerID   models.OwnerID
}

// Duplicate lists the positions of records sharing one key. Only the first
// one is ever used.
type Duplicate struct {
	Key       RecordKey
	Positions []int
}

// DuplicateRecords reports keys matched by more than one record, in order of
// first appearance.
func DuplicateRecords(records []models.SEOMetadataRecord) []Duplicate {
	positions := make(map[RecordKey][]int)
	var order []RecordKey
	for i, r := range records {
		k := RecordKey{OwnerType: r.OwnerType, OwnerID: r.OwnerID}
		if _, seen := positions[k]; !seen {
			order = append(order, k)
		}
		positions[k] = append(positions[k], i)
	}

	var out []Duplicate
	for _, k := range order {
		if len(positions[k]) > 1 {
			out = append(out, Duplicate{Key: k, Positions: positions[k]})
		}
	}
	return out
}
