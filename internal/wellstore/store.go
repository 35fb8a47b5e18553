// Package wellstore persists uploaded LAS documents in SQLite so requests
// can address a document by handle. The stored artifact is the gzipped raw
// upload; documents are reparsed on read and stay immutable in memory.
package wellstore

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/welllog.report/internal/las"
)

type Store struct {
	*sql.DB
}

// WellRecord summarizes one stored upload.
type WellRecord struct {
	ID         string    `json:"well_id"`
	WellName   string    `json:"well_name"`
	Filename   string    `json:"filename"`
	Samples    int       `json:"samples"`
	Curves     int       `json:"curves"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Open opens (creating if needed) the well database at path. The schema is
// ensured inline; MigrateUp is available for versioned upgrades.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS wells (
			well_id       TEXT PRIMARY KEY,
			well_name     TEXT,
			filename      TEXT,
			sample_count  BIGINT,
			curve_count   BIGINT,
			las_blob      BLOB NOT NULL,
			uploaded_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_wells_uploaded_at ON wells (uploaded_at);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db}, nil
}

// Put stores a parsed document together with its raw LAS bytes and returns
// the generated document handle.
func (s *Store) Put(doc *las.Document, filename string, raw []byte) (string, error) {
	id := uuid.NewString()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(raw); err != nil {
		return "", fmt.Errorf("compress las blob: %w", err)
	}
	if err := gz.Close(); err != nil {
		return "", fmt.Errorf("compress las blob: %w", err)
	}

	wellName, _ := doc.Well("WELL")
	_, err := s.Exec(`
		INSERT INTO wells (well_id, well_name, filename, sample_count, curve_count, las_blob)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, wellName, filename, doc.SampleCount(), len(doc.CurveNames()), buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("insert well: %w", err)
	}
	return id, nil
}

// Get loads and reparses the document with the given handle. sql.ErrNoRows
// is returned unwrapped when the handle is unknown.
func (s *Store) Get(id string) (*las.Document, error) {
	var blob []byte
	if err := s.QueryRow(`SELECT las_blob FROM wells WHERE well_id = ?`, id).Scan(&blob); err != nil {
		return nil, err
	}

	gz, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("decompress las blob: %w", err)
	}
	defer gz.Close()

	doc, err := las.Parse(gz)
	if err != nil {
		return nil, fmt.Errorf("reparse stored well %s: %w", id, err)
	}
	return doc, nil
}

// Raw returns the stored LAS text and its upload filename for download.
func (s *Store) Raw(id string) ([]byte, string, error) {
	var blob []byte
	var filename string
	if err := s.QueryRow(`SELECT las_blob, filename FROM wells WHERE well_id = ?`, id).Scan(&blob, &filename); err != nil {
		return nil, "", err
	}
	gz, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, "", fmt.Errorf("decompress las blob: %w", err)
	}
	defer gz.Close()
	data, err := io.ReadAll(gz)
	if err != nil {
		return nil, "", err
	}
	return data, filename, nil
}

// ListRecent returns the most recent uploads, newest first.
func (s *Store) ListRecent(limit int) ([]WellRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := s.Query(`
		SELECT well_id, well_name, filename, sample_count, curve_count, uploaded_at
		FROM wells ORDER BY uploaded_at DESC, well_id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WellRecord
	for rows.Next() {
		var rec WellRecord
		if err := rows.Scan(&rec.ID, &rec.WellName, &rec.Filename, &rec.Samples, &rec.Curves, &rec.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Delete removes a stored upload. sql.ErrNoRows is returned unwrapped when
// the handle is unknown, matching Get.
func (s *Store) Delete(id string) error {
	res, err := s.Exec(`DELETE FROM wells WHERE well_id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
