// Package wxr parses WordPress eXtended RSS (WXR 1.2) export files.
package wxr

import (
	"github.com/kerbaras/wpstatic/pkg/data"
)

type rss struct {
	Channel channel `xml:"channel"`
}

type channel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Items       []item `xml:"item"`
}

type item struct {
	Title         string `xml:"title"`
	Link          string `xml:"link"`
	Creator       string `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Content       string `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
	Excerpt       string `xml:"http://wordpress.org/export/1.2/excerpt/ encoded"`
	PubDate       string `xml:"pubDate"`
	PostID        int    `xml:"http://wordpress.org/export/1.2/ post_id"`
	PostName      string `xml:"http://wordpress.org/export/1.2/ post_name"`
	PostType      string `xml:"http://wordpress.org/export/1.2/ post_type"`
	Status        string `xml:"http://wordpress.org/export/1.2/ status"`
	AttachmentURL string `xml:"http://wordpress.org/export/1.2/ attachment_url"`
}

// Export is the parsed content of a WordPress export file.
type Export struct {
	Site        data.Site
	Records     []*data.ExportRecord
	Attachments []*data.MediaAttachment

	// Skipped counts items that could not be turned into records.
	Skipped int
}

// Pages returns the page records in export order.
func (e *Export) Pages() []*data.ExportRecord {
	return e.byKind(data.KindPage)
}

// Posts returns the post records in export order.
func (e *Export) Posts() []*data.ExportRecord {
	return e.byKind(data.KindPost)
}

func (e *Export) byKind(kind data.RecordKind) []*data.ExportRecord {
	var out []*data.ExportRecord
	for _, rec := range e.Records {
		if rec.Kind == kind {
			out = append(out, rec)
		}
	}
	return out
}
