package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kerbaras/wpstatic/pkg/data"
	"github.com/kerbaras/wpstatic/pkg/integrations"
	"github.com/kerbaras/wpstatic/pkg/site"
	"github.com/kerbaras/wpstatic/pkg/utils"
)

// DownloadProgress represents the progress of a media download run.
type DownloadProgress struct {
	URL      string
	Filename string
	Index    int
	Total    int
	Status   string // "downloading", "skipped", "complete", "error", "done"
	Error    error
}

// DownloadSummary totals the outcome of a download run.
type DownloadSummary struct {
	Total      int
	Downloaded int
	Skipped    int
	Failed     int

	FailedItems []*data.MediaAttachment
}

// DownloaderOptions tune a media download run.
type DownloaderOptions struct {
	Timeout    time.Duration
	UserAgent  string
	RateLimit  time.Duration
	Overwrite  bool
	Thumbnails bool
}

// Downloader fetches media attachments into the site's assets directory.
// Failures are per-item: the run always continues to the next URL.
type Downloader struct {
	repo         Repository
	outDir       string
	fetcher      *utils.Fetcher
	rateLimiter  *time.Ticker
	progressChan chan DownloadProgress
	overwrite    bool
	thumbnails   bool
}

// NewDownloader creates a downloader writing under outDir/assets.
// repo may be nil when running without a manifest database.
func NewDownloader(repo Repository, outDir string, opts DownloaderOptions) *Downloader {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RateLimit == 0 {
		opts.RateLimit = 500 * time.Millisecond // 2 req/sec
	}
	return &Downloader{
		repo:         repo,
		outDir:       outDir,
		fetcher:      utils.NewFetcher(opts.Timeout, opts.UserAgent),
		rateLimiter:  time.NewTicker(opts.RateLimit),
		progressChan: make(chan DownloadProgress, 100),
		overwrite:    opts.Overwrite,
		thumbnails:   opts.Thumbnails,
	}
}

// GetProgressChannel returns the channel for receiving progress updates.
func (d *Downloader) GetProgressChannel() <-chan DownloadProgress {
	return d.progressChan
}

// DownloadAll fetches every attachment in the list. It returns an error
// only for unrecoverable setup problems; per-item failures end up in the
// summary and in failed-downloads.json.
func (d *Downloader) DownloadAll(attachments []*data.MediaAttachment) (*DownloadSummary, error) {
	assetsDir := filepath.Join(d.outDir, "assets")
	if err := os.MkdirAll(assetsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create assets directory: %w", err)
	}

	summary := &DownloadSummary{Total: len(attachments)}

	for i, att := range attachments {
		if att.URL == "" || att.Filename == "" || att.Filename == "." {
			log.Printf("Warning: attachment %d has no usable URL, skipping", i+1)
			summary.Skipped++
			continue
		}

		d.sendProgress(DownloadProgress{
			URL: att.URL, Filename: att.Filename,
			Index: i + 1, Total: len(attachments),
			Status: "downloading",
		})

		dest := filepath.Join(assetsDir, att.Filename)

		if !d.overwrite {
			if info, err := os.Stat(dest); err == nil {
				d.markSuccess(att, dest, info.Size())
				summary.Skipped++
				d.sendProgress(DownloadProgress{
					URL: att.URL, Filename: att.Filename,
					Index: i + 1, Total: len(attachments),
					Status: "skipped",
				})
				continue
			}
		}

		<-d.rateLimiter.C

		body, contentType, err := d.fetcher.Get(att.URL)
		if err == nil {
			err = os.WriteFile(dest, body, 0644)
		}
		if err != nil {
			d.markFailed(att, err)
			summary.Failed++
			summary.FailedItems = append(summary.FailedItems, att)
			d.sendProgress(DownloadProgress{
				URL: att.URL, Filename: att.Filename,
				Index: i + 1, Total: len(attachments),
				Status: "error", Error: err,
			})
			continue
		}

		d.markSuccess(att, dest, int64(len(body)))
		summary.Downloaded++

		if d.thumbnails && strings.HasPrefix(contentType, "image/") {
			if err := integrations.NewThumbnailer(filepath.Join(assetsDir, "thumbs")).FromFile(dest); err != nil {
				log.Printf("Warning: thumbnail for %s: %v", att.Filename, err)
			}
		}

		d.sendProgress(DownloadProgress{
			URL: att.URL, Filename: att.Filename,
			Index: i + 1, Total: len(attachments),
			Status: "complete",
		})
	}

	if len(summary.FailedItems) > 0 {
		if err := site.WriteJSON(filepath.Join(d.outDir, "failed-downloads.json"), summary.FailedItems); err != nil {
			log.Printf("Warning: failed to write failure report: %v", err)
		}
	}

	d.sendProgress(DownloadProgress{Total: len(attachments), Status: "done"})

	return summary, nil
}

func (d *Downloader) markSuccess(att *data.MediaAttachment, dest string, size int64) {
	att.Status = data.StatusSuccess
	att.LocalPath = dest
	att.Error = ""
	att.Size = size
	if d.repo != nil {
		if err := d.repo.UpdateAttachmentStatus(att.URL, data.StatusSuccess, dest, "", size); err != nil {
			log.Printf("Warning: failed to update status for %s: %v", att.URL, err)
		}
	}
}

func (d *Downloader) markFailed(att *data.MediaAttachment, cause error) {
	att.Status = data.StatusFailed
	att.Error = cause.Error()
	if d.repo != nil {
		if err := d.repo.UpdateAttachmentStatus(att.URL, data.StatusFailed, "", cause.Error(), 0); err != nil {
			log.Printf("Warning: failed to update status for %s: %v", att.URL, err)
		}
	}
}

// sendProgress sends a progress update (non-blocking).
func (d *Downloader) sendProgress(progress DownloadProgress) {
	select {
	case d.progressChan <- progress:
	default:
		// Channel full, skip this update
	}
}

// Close cleans up resources.
func (d *Downloader) Close() {
	d.rateLimiter.Stop()
	close(d.progressChan)
}
