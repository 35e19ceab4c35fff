package wxr

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/kerbaras/wpstatic/pkg/data"
)

// Parse reads and parses the WordPress export file at xmlPath.
// A missing or syntactically broken file is a fatal error; individual
// items that cannot be parsed are skipped and logged.
func Parse(xmlPath string) (*Export, error) {
	f, err := os.Open(xmlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	defer f.Close()

	export, err := ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", xmlPath, err)
	}
	return export, nil
}

// ParseReader parses a WXR document from r.
func ParseReader(r io.Reader) (*Export, error) {
	var doc rss
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid WXR document: %w", err)
	}

	export := &Export{
		Site: data.Site{
			Title:       strings.TrimSpace(doc.Channel.Title),
			URL:         strings.TrimSpace(doc.Channel.Link),
			Description: strings.TrimSpace(doc.Channel.Description),
		},
	}
	if export.Site.Title == "" {
		export.Site.Title = "My Website"
	}

	for _, it := range doc.Channel.Items {
		switch it.PostType {
		case "page", "post":
			rec, err := it.toRecord()
			if err != nil {
				log.Printf("Warning: skipping item %q: %v", it.Title, err)
				export.Skipped++
				continue
			}
			export.Records = append(export.Records, rec)
		case "attachment":
			att := it.toAttachment()
			if att == nil {
				log.Printf("Warning: attachment %q has no URL, skipping", it.Title)
				export.Skipped++
				continue
			}
			export.Attachments = append(export.Attachments, att)
		}
	}

	return export, nil
}

func (it *item) toRecord() (*data.ExportRecord, error) {
	title := strings.TrimSpace(it.Title)
	body := strings.TrimSpace(it.Content)
	if title == "" && body == "" {
		return nil, fmt.Errorf("item has neither title nor content")
	}
	if title == "" {
		title = "Untitled"
	}

	name := strings.TrimSpace(it.PostName)
	if name == "" {
		normalized, err := slug.Normalize(title)
		if err != nil {
			return nil, fmt.Errorf("cannot derive slug from title: %w", err)
		}
		name = normalized
	}

	status := it.Status
	if status == "" {
		status = "draft"
	}

	author := it.Creator
	if author == "" {
		author = "Unknown"
	}

	return &data.ExportRecord{
		ID:      it.PostID,
		Title:   title,
		Slug:    name,
		Link:    it.Link,
		Author:  author,
		Body:    it.Content,
		Excerpt: strings.TrimSpace(it.Excerpt),
		Date:    parsePubDate(it.PubDate),
		Status:  status,
		Kind:    data.RecordKind(it.PostType),
	}, nil
}

func (it *item) toAttachment() *data.MediaAttachment {
	rawURL := strings.TrimSpace(it.AttachmentURL)
	if rawURL == "" {
		return nil
	}

	return &data.MediaAttachment{
		URL:      rawURL,
		Filename: FilenameFromURL(rawURL),
		Status:   data.StatusPending,
	}
}

// FilenameFromURL extracts the base filename from a media URL.
func FilenameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return path.Base(rawURL)
	}
	return path.Base(u.Path)
}

// parsePubDate parses the RSS pubDate field. WordPress emits RFC 1123
// with a numeric zone; a blank or malformed date yields the zero time.
func parsePubDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC1123Z, time.RFC1123} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
