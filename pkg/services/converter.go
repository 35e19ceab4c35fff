package services

import (
	"fmt"
	"log"

	"github.com/kerbaras/wpstatic/pkg/data"
	"github.com/kerbaras/wpstatic/pkg/site"
	"github.com/kerbaras/wpstatic/pkg/wxr"
)

// Repository is the manifest store needed by the conversion pipeline.
type Repository interface {
	SaveRecord(rec *data.ExportRecord) error
	EnsureAttachment(att *data.MediaAttachment) error
	ListAttachments() ([]*data.MediaAttachment, error)
	ListPendingAttachments() ([]*data.MediaAttachment, error)
	UpdateAttachmentStatus(url string, status data.DownloadStatus, localPath, errMsg string, size int64) error
	StatusCounts() (map[data.DownloadStatus]int, error)
}

// ConvertSummary reports the outcome of a conversion run.
type ConvertSummary struct {
	Pages       int
	Posts       int
	Attachments int
	Skipped     int
}

// Converter turns a WordPress export into a static site plus an
// attachment manifest for the downloader.
type Converter struct {
	repo    Repository
	builder *site.Builder
}

// NewConverter creates a converter writing to outDir. repo may be nil
// for manifest-less runs; the JSON manifests are always written.
func NewConverter(repo Repository, outDir string) *Converter {
	return &Converter{
		repo:    repo,
		builder: site.NewBuilder(outDir),
	}
}

// Convert parses the export at xmlPath and builds the site. A broken
// export file is fatal; individual bad records are skipped upstream.
func (c *Converter) Convert(xmlPath string) (*ConvertSummary, error) {
	export, err := wxr.Parse(xmlPath)
	if err != nil {
		return nil, err
	}

	attachments := CollectMedia(export)

	if c.repo != nil {
		for _, rec := range export.Records {
			if err := c.repo.SaveRecord(rec); err != nil {
				log.Printf("Warning: failed to save record %q: %v", rec.Slug, err)
			}
		}
		for _, att := range attachments {
			if err := c.repo.EnsureAttachment(att); err != nil {
				log.Printf("Warning: failed to save attachment %s: %v", att.URL, err)
			}
		}
	}

	summary, err := c.builder.Build(export.Site, export.Records, attachments)
	if err != nil {
		return nil, fmt.Errorf("failed to build site: %w", err)
	}

	return &ConvertSummary{
		Pages:       summary.Pages,
		Posts:       summary.Posts,
		Attachments: len(attachments),
		Skipped:     export.Skipped,
	}, nil
}

// CollectMedia merges the export's attachment items with remote image
// URLs referenced from record bodies, deduplicated in first-seen order.
func CollectMedia(export *wxr.Export) []*data.MediaAttachment {
	seen := make(map[string]bool)
	var out []*data.MediaAttachment

	add := func(att *data.MediaAttachment) {
		if att.URL == "" || seen[att.URL] {
			return
		}
		seen[att.URL] = true
		out = append(out, att)
	}

	for _, att := range export.Attachments {
		add(att)
	}

	for _, rec := range export.Records {
		for _, u := range site.ExtractMediaURLs(rec.Body) {
			if !site.IsRemoteURL(u) {
				continue
			}
			add(&data.MediaAttachment{
				URL:      u,
				Filename: wxr.FilenameFromURL(u),
				Status:   data.StatusPending,
			})
		}
	}

	return out
}
