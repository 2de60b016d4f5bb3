package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/quintype/quintype-seo-go/models"
	"github.com/quintype/quintype-seo-go/pkg/attrs"
	"github.com/quintype/quintype-seo-go/pkg/logger"
)

// StoredRecord is a metadata record with its row information.
type StoredRecord struct {
	models.SEOMetadataRecord `yaml:",inline"`

	RecordID  int64     `json:"record-id" yaml:"record-id"`
	CreatedAt time.Time `json:"created-at" yaml:"created-at"`
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// InsertRecord appends a record, returning its record_id.
func (db *DB) InsertRecord(ctx context.Context, rec models.SEOMetadataRecord) (int64, error) {
	return insertRecord(ctx, db.DB, rec)
}

func insertRecord(ctx context.Context, ex execer, rec models.SEOMetadataRecord) (int64, error) {
	if rec.OwnerType == "" {
		return 0, fmt.Errorf("record has no owner type")
	}

	data := rec.Data
	if data == nil {
		data = attrs.New()
	}
	payload, err := data.MarshalJSON()
	if err != nil {
		return 0, fmt.Errorf("failed to encode record data: %w", err)
	}

	result, err := ex.ExecContext(ctx, `
		INSERT INTO seo_metadata (owner_type, owner_id, data)
		VALUES (?, ?, ?)
	`, string(rec.OwnerType), ownerColumn(rec.OwnerID), string(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get record ID: %w", err)
	}
	return id, nil
}

// ImportRecords inserts recs in order inside one transaction. When replace
// is set, existing records are removed first.
func (db *DB) ImportRecords(ctx context.Context, recs []models.SEOMetadataRecord, replace bool) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() // the import error is the one worth returning
		}
	}()

	if replace {
		if _, err = tx.ExecContext(ctx, "DELETE FROM seo_metadata"); err != nil {
			return fmt.Errorf("failed to clear records: %w", err)
		}
	}

	for i, rec := range recs {
		if _, err = insertRecord(ctx, tx, rec); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	db.log.Info("imported seo metadata", logger.Int("records", len(recs)), logger.Bool("replace", replace))
	return nil
}

// ListRecords returns every record in stored order.
func (db *DB) ListRecords(ctx context.Context) ([]StoredRecord, error) {
	return db.queryRecords(ctx, `
		SELECT record_id, owner_type, owner_id, data, created_at
		FROM seo_metadata
		ORDER BY record_id
	`)
}

// RecordsFor returns the records of one page type in stored order.
func (db *DB) RecordsFor(ctx context.Context, ownerType models.PageType) ([]StoredRecord, error) {
	return db.queryRecords(ctx, `
		SELECT record_id, owner_type, owner_id, data, created_at
		FROM seo_metadata
		WHERE owner_type = ?
		ORDER BY record_id
	`, string(ownerType))
}

// DeleteRecords removes every record matching the owner type and owner id,
// returning how many were removed.
func (db *DB) DeleteRecords(ctx context.Context, ownerType models.PageType, ownerID models.OwnerID) (int64, error) {
	var (
		result sql.Result
		err    error
	)
	if ownerID.Valid {
		result, err = db.ExecContext(ctx,
			"DELETE FROM seo_metadata WHERE owner_type = ? AND owner_id = ?", string(ownerType), ownerID.Value)
	} else {
		result, err = db.ExecContext(ctx,
			"DELETE FROM seo_metadata WHERE owner_type = ? AND owner_id IS NULL", string(ownerType))
	}
	if err != nil {
		return 0, fmt.Errorf("failed to delete records: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted records: %w", err)
	}
	db.log.Debug("deleted seo metadata",
		logger.String("owner_type", string(ownerType)),
		logger.String("owner_id", ownerID.String()),
		logger.Int64("records", n))
	return n, nil
}

func (db *DB) queryRecords(ctx context.Context, query string, args ...any) ([]StoredRecord, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var out []StoredRecord
	for rows.Next() {
		var (
			rec       StoredRecord
			ownerType string
			ownerID   sql.NullString
			data      string
		)
		if err := rows.Scan(&rec.RecordID, &ownerType, &ownerID, &data, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		tree, err := attrs.ParseJSON([]byte(data))
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", rec.RecordID, err)
		}
		rec.OwnerType = models.PageType(ownerType)
		if ownerID.Valid {
			rec.OwnerID = models.OwnerIDFrom(ownerID.String)
		}
		rec.Data = tree
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return out, nil
}

// Records strips the row information, keeping the order.
func Records(stored []StoredRecord) []models.SEOMetadataRecord {
	out := make([]models.SEOMetadataRecord, len(stored))
	for i, s := range stored {
		out[i] = s.SEOMetadataRecord
	}
	return out
}

func ownerColumn(id models.OwnerID) sql.NullString {
	return sql.NullString{String: id.Value, Valid: id.Valid}
}
