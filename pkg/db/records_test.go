package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/quintype/quintype-seo-go/models"
	"github.com/quintype/quintype-seo-go/pkg/attrs"
	"github.com/quintype/quintype-seo-go/pkg/seo"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := Open(context.Background(), ":memory:", nil)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	return database
}

func sampleRecords() []models.SEOMetadataRecord {
	return []models.SEOMetadataRecord{
		{OwnerType: models.PageHome, Data: attrs.Of("page-title", "Front", "description", "Home")},
		{OwnerType: models.PageSection, OwnerID: models.NumericOwnerID(42), Data: attrs.Of("z", "last", "a", "first")},
		{OwnerType: models.PageSection, OwnerID: models.NumericOwnerID(42), Data: attrs.Of("description", "shadowed")},
		{OwnerType: models.PageTag, OwnerID: models.OwnerIDFrom("cricket"), Data: attrs.Of("og", attrs.Of("title", "T", "image", "i.jpg"))},
	}
}

func TestInsertRecord(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	tests := []struct {
		name    string
		rec     models.SEOMetadataRecord
		wantErr bool
	}{
		{
			name: "singleton page",
			rec:  models.SEOMetadataRecord{OwnerType: models.PageHome, Data: attrs.Of("title", "T")},
		},
		{
			name: "owned page",
			rec:  models.SEOMetadataRecord{OwnerType: models.PageSection, OwnerID: models.NumericOwnerID(7), Data: attrs.Of("title", "T")},
		},
		{
			name: "nil data",
			rec:  models.SEOMetadataRecord{OwnerType: models.PageSearch},
		},
		{
			name:    "missing owner type",
			rec:     models.SEOMetadataRecord{Data: attrs.Of("title", "T")},
			wantErr: true,
		},
	}

	var lastID int64
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := db.InsertRecord(ctx, tt.rec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InsertRecord() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if id <= lastID {
				t.Errorf("InsertRecord() id = %d, want greater than %d", id, lastID)
			}
			lastID = id
		})
	}
}

func TestListRecords_PreservesOrder(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	if err := db.ImportRecords(ctx, sampleRecords(), false); err != nil {
		t.Fatalf("ImportRecords() error = %v", err)
	}

	stored, err := db.ListRecords(ctx)
	if err != nil {
		t.Fatalf("ListRecords() error = %v", err)
	}
	if len(stored) != 4 {
		t.Fatalf("ListRecords() returned %d records, want 4", len(stored))
	}

	if stored[0].OwnerID.Valid {
		t.Errorf("home record owner = %v, want unset", stored[0].OwnerID)
	}
	if got := stored[1].OwnerID; !got.Equal(models.OwnerIDFrom("42")) {
		t.Errorf("section owner = %v, want 42", got)
	}
	if got := stored[1].Data.Keys(); len(got) != 2 || got[0] != "z" || got[1] != "a" {
		t.Errorf("data keys = %v, want [z a]", got)
	}
	if got := stored[3].Data.String("og", "image"); got != "i.jpg" {
		t.Errorf("nested value = %q, want i.jpg", got)
	}
	if stored[0].CreatedAt.IsZero() {
		t.Error("created_at not populated")
	}
}

func TestRecords_FirstMatchSurvivesRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	if err := db.ImportRecords(ctx, sampleRecords(), false); err != nil {
		t.Fatalf("ImportRecords() error = %v", err)
	}
	stored, err := db.ListRecords(ctx)
	if err != nil {
		t.Fatalf("ListRecords() error = %v", err)
	}

	md := seo.ResolveMetadata(Records(stored), models.PageSection, models.NumericOwnerID(42))
	if got := md.String("z"); got != "last" {
		t.Errorf("resolved z = %q, want last", got)
	}
	if md.Has("description") {
		t.Error("second matching record leaked into the resolved metadata")
	}
}

func TestRecordsFor(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	if err := db.ImportRecords(ctx, sampleRecords(), false); err != nil {
		t.Fatalf("ImportRecords() error = %v", err)
	}

	tests := []struct {
		pageType models.PageType
		want     int
	}{
		{models.PageHome, 1},
		{models.PageSection, 2},
		{models.PageTag, 1},
		{models.PageStory, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.pageType), func(t *testing.T) {
			got, err := db.RecordsFor(ctx, tt.pageType)
			if err != nil {
				t.Fatalf("RecordsFor() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("RecordsFor(%s) = %d records, want %d", tt.pageType, len(got), tt.want)
			}
			for _, r := range got {
				if r.OwnerType != tt.pageType {
					t.Errorf("record owner type = %s, want %s", r.OwnerType, tt.pageType)
				}
			}
		})
	}
}

func TestDeleteRecords(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	if err := db.ImportRecords(ctx, sampleRecords(), false); err != nil {
		t.Fatalf("ImportRecords() error = %v", err)
	}

	tests := []struct {
		name      string
		ownerType models.PageType
		ownerID   models.OwnerID
		want      int64
	}{
		{"both section duplicates", models.PageSection, models.OwnerIDFrom("42"), 2},
		{"already deleted", models.PageSection, models.OwnerIDFrom("42"), 0},
		{"unset owner only matches NULL", models.PageTag, models.NoOwner, 0},
		{"singleton", models.PageHome, models.NoOwner, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := db.DeleteRecords(ctx, tt.ownerType, tt.ownerID)
			if err != nil {
				t.Fatalf("DeleteRecords() error = %v", err)
			}
			if n != tt.want {
				t.Errorf("DeleteRecords() = %d, want %d", n, tt.want)
			}
		})
	}

	left, err := db.ListRecords(ctx)
	if err != nil {
		t.Fatalf("ListRecords() error = %v", err)
	}
	if len(left) != 1 || left[0].OwnerType != models.PageTag {
		t.Errorf("remaining records = %+v, want only the tag record", left)
	}
}

func TestImportRecords_Replace(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	if err := db.ImportRecords(ctx, sampleRecords(), false); err != nil {
		t.Fatalf("ImportRecords() error = %v", err)
	}
	replacement := []models.SEOMetadataRecord{{OwnerType: models.PageSearch, Data: attrs.Of("title", "S")}}
	if err := db.ImportRecords(ctx, replacement, true); err != nil {
		t.Fatalf("ImportRecords(replace) error = %v", err)
	}

	stored, err := db.ListRecords(ctx)
	if err != nil {
		t.Fatalf("ListRecords() error = %v", err)
	}
	if len(stored) != 1 || stored[0].OwnerType != models.PageSearch {
		t.Errorf("records after replace = %+v, want the search record only", stored)
	}
}

func TestImportRecords_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	if err := db.ImportRecords(ctx, sampleRecords()[:1], false); err != nil {
		t.Fatalf("ImportRecords() error = %v", err)
	}

	bad := []models.SEOMetadataRecord{
		{OwnerType: models.PageTag, OwnerID: models.OwnerIDFrom("ok")},
		{Data: attrs.Of("title", "no owner type")},
	}
	if err := db.ImportRecords(ctx, bad, true); err == nil {
		t.Fatal("ImportRecords() expected error for record without owner type")
	}

	stored, err := db.ListRecords(ctx)
	if err != nil {
		t.Fatalf("ListRecords() error = %v", err)
	}
	if len(stored) != 1 || stored[0].OwnerType != models.PageHome {
		t.Errorf("records after failed import = %+v, want the original home record", stored)
	}
}

func TestOpen_FileDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), DefaultDBName)

	db, err := Open(ctx, path, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := db.InsertRecord(ctx, models.SEOMetadataRecord{OwnerType: models.PageHome, Data: attrs.Of("title", "T")}); err != nil {
		t.Fatalf("InsertRecord() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(ctx, path, nil)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	if reopened.Path() != path {
		t.Errorf("Path() = %q, want %q", reopened.Path(), path)
	}
	stored, err := reopened.ListRecords(ctx)
	if err != nil {
		t.Fatalf("ListRecords() error = %v", err)
	}
	if len(stored) != 1 {
		t.Errorf("reopened database has %d records, want 1", len(stored))
	}
}
