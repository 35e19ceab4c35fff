package data

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id INTEGER PRIMARY KEY,
	title VARCHAR,
	slug VARCHAR,
	link VARCHAR,
	author VARCHAR,
	body VARCHAR,
	excerpt VARCHAR,
	date TIMESTAMP,
	status VARCHAR,
	kind VARCHAR
);
CREATE TABLE IF NOT EXISTS attachments (
	url VARCHAR PRIMARY KEY,
	filename VARCHAR,
	local_path VARCHAR,
	status VARCHAR,
	error VARCHAR,
	size BIGINT
);
`

// InitDuckDB opens (creating if needed) the manifest database at path.
func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Repository persists export records and the attachment manifest.
type Repository struct {
	db *sql.DB
}

// NewRepository opens a repository backed by the database at path.
func NewRepository(path string) (*Repository, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// SaveRecord inserts or replaces a record by ID.
func (r *Repository) SaveRecord(rec *ExportRecord) error {
	_, err := r.db.Exec(`
		INSERT OR REPLACE INTO records (id, title, slug, link, author, body, excerpt, date, status, kind)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Title, rec.Slug, rec.Link, rec.Author, rec.Body, rec.Excerpt,
		rec.Date, rec.Status, string(rec.Kind))
	return err
}

// GetRecord fetches a record by slug, or nil if absent.
func (r *Repository) GetRecord(slug string) (*ExportRecord, error) {
	row := r.db.QueryRow(`
		SELECT id, title, slug, link, author, body, excerpt, date, status, kind
		FROM records WHERE slug = ?`, slug)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

// ListRecords returns all records, pages before posts, newest first within kind.
func (r *Repository) ListRecords() ([]*ExportRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, title, slug, link, author, body, excerpt, date, status, kind
		FROM records ORDER BY kind, date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*ExportRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*ExportRecord, error) {
	var rec ExportRecord
	var kind string
	var date sql.NullTime
	err := s.Scan(&rec.ID, &rec.Title, &rec.Slug, &rec.Link, &rec.Author,
		&rec.Body, &rec.Excerpt, &date, &rec.Status, &kind)
	if err != nil {
		return nil, err
	}
	if date.Valid {
		rec.Date = date.Time
	}
	rec.Kind = RecordKind(kind)
	return &rec, nil
}

// SaveAttachment inserts or replaces an attachment by URL.
func (r *Repository) SaveAttachment(att *MediaAttachment) error {
	_, err := r.db.Exec(`
		INSERT OR REPLACE INTO attachments (url, filename, local_path, status, error, size)
		VALUES (?, ?, ?, ?, ?, ?)`,
		att.URL, att.Filename, att.LocalPath, string(att.Status), att.Error, att.Size)
	return err
}

// EnsureAttachment inserts an attachment if its URL is new, keeping any
// existing download status so re-converting never resets progress.
func (r *Repository) EnsureAttachment(att *MediaAttachment) error {
	_, err := r.db.Exec(`
		INSERT OR IGNORE INTO attachments (url, filename, local_path, status, error, size)
		VALUES (?, ?, ?, ?, ?, ?)`,
		att.URL, att.Filename, att.LocalPath, string(att.Status), att.Error, att.Size)
	return err
}

// ListAttachments returns the full manifest in URL order.
func (r *Repository) ListAttachments() ([]*MediaAttachment, error) {
	return r.queryAttachments(`
		SELECT url, filename, local_path, status, error, size
		FROM attachments ORDER BY url`)
}

// ListPendingAttachments returns attachments not yet successfully downloaded.
func (r *Repository) ListPendingAttachments() ([]*MediaAttachment, error) {
	return r.queryAttachments(`
		SELECT url, filename, local_path, status, error, size
		FROM attachments WHERE status != 'success' ORDER BY url`)
}

func (r *Repository) queryAttachments(query string) ([]*MediaAttachment, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attachments []*MediaAttachment
	for rows.Next() {
		var att MediaAttachment
		var status string
		if err := rows.Scan(&att.URL, &att.Filename, &att.LocalPath, &status, &att.Error, &att.Size); err != nil {
			return nil, err
		}
		att.Status = DownloadStatus(status)
		attachments = append(attachments, &att)
	}
	return attachments, rows.Err()
}

// UpdateAttachmentStatus records the outcome of a download attempt.
func (r *Repository) UpdateAttachmentStatus(url string, status DownloadStatus, localPath, errMsg string, size int64) error {
	_, err := r.db.Exec(`
		UPDATE attachments SET status = ?, local_path = ?, error = ?, size = ?
		WHERE url = ?`,
		string(status), localPath, errMsg, size, url)
	return err
}

// StatusCounts returns the number of attachments per download status.
func (r *Repository) StatusCounts() (map[DownloadStatus]int, error) {
	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM attachments GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[DownloadStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[DownloadStatus(status)] = n
	}
	return counts, rows.Err()
}
