package data

import "time"

// RecordKind distinguishes the two renderable WordPress item types.
type RecordKind string

const (
	KindPage RecordKind = "page"
	KindPost RecordKind = "post"
)

// DownloadStatus tracks the lifecycle of a media attachment.
type DownloadStatus string

const (
	StatusPending DownloadStatus = "pending"
	StatusSuccess DownloadStatus = "success"
	StatusFailed  DownloadStatus = "failed"
)

// Site holds the channel-level metadata of a WordPress export.
type Site struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// ExportRecord is a single page or post parsed from the export.
type ExportRecord struct {
	ID      int        `json:"id"`
	Title   string     `json:"title"`
	Slug    string     `json:"slug"`
	Link    string     `json:"link"`
	Author  string     `json:"author"`
	Body    string     `json:"content"`
	Excerpt string     `json:"excerpt"`
	Date    time.Time  `json:"date"`
	Status  string     `json:"status"` // "publish", "draft", ...
	Kind    RecordKind `json:"type"`
}

// Published reports whether the record should be rendered.
func (r *ExportRecord) Published() bool {
	return r.Status == "publish"
}

// MediaAttachment is a referenced media file to be downloaded locally.
type MediaAttachment struct {
	URL       string         `json:"url"`
	Filename  string         `json:"filename"`
	LocalPath string         `json:"local_path,omitempty"`
	Status    DownloadStatus `json:"status"`
	Error     string         `json:"error,omitempty"`
	Size      int64          `json:"size,omitempty"`
}
