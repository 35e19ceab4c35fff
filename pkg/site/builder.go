package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/kerbaras/wpstatic/pkg/data"
)

// Builder renders parsed WordPress content into a static site directory.
type Builder struct {
	outDir string
}

// Summary reports what a build produced.
type Summary struct {
	Pages int
	Posts int
}

func NewBuilder(outDir string) *Builder {
	return &Builder{outDir: outDir}
}

// OutDir returns the root of the generated site.
func (b *Builder) OutDir() string {
	return b.outDir
}

// AssetsDir returns the directory media downloads are written to.
func (b *Builder) AssetsDir() string {
	return filepath.Join(b.outDir, "assets")
}

type navLink struct {
	Href  string
	Label string
}

type layoutData struct {
	Title   string
	Site    data.Site
	Root    string
	Nav     []navLink
	Content template.HTML
	Year    int
}

type articleData struct {
	Title string
	Date  string
	Body  template.HTML
}

type cardData struct {
	Slug   string
	Title  string
	Date   string
	Teaser string
}

type indexData struct {
	Site  data.Site
	Pages []cardData
	Posts []cardData
}

// Build writes the full static site: one HTML file per published record,
// an index page, the stylesheet, and the JSON manifests. Output is
// deterministic for a given input, so re-running overwrites identically.
func (b *Builder) Build(siteInfo data.Site, records []*data.ExportRecord, attachments []*data.MediaAttachment) (*Summary, error) {
	for _, dir := range []string{"pages", "posts", "assets", "css"} {
		if err := os.MkdirAll(filepath.Join(b.outDir, dir), 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(filepath.Join(b.outDir, "css", "style.css"), []byte(stylesheet), 0644); err != nil {
		return nil, fmt.Errorf("failed to write stylesheet: %w", err)
	}

	var pages, posts []*data.ExportRecord
	for _, rec := range records {
		if !rec.Published() {
			continue
		}
		switch rec.Kind {
		case data.KindPage:
			pages = append(pages, rec)
		case data.KindPost:
			posts = append(posts, rec)
		}
	}

	year := copyrightYear(records)

	for _, rec := range pages {
		if err := b.writeRecord(siteInfo, rec, "pages", year, pages); err != nil {
			return nil, err
		}
	}
	for _, rec := range posts {
		if err := b.writeRecord(siteInfo, rec, "posts", year, pages); err != nil {
			return nil, err
		}
	}

	if err := b.writeIndex(siteInfo, pages, posts, year); err != nil {
		return nil, err
	}

	siteData := map[string]any{
		"site":        siteInfo,
		"pages":       pages,
		"posts":       posts,
		"attachments": attachments,
	}
	if err := WriteJSON(filepath.Join(b.outDir, "site-data.json"), siteData); err != nil {
		return nil, err
	}
	if err := WriteJSON(filepath.Join(b.outDir, "attachments.json"), attachments); err != nil {
		return nil, err
	}

	return &Summary{Pages: len(pages), Posts: len(posts)}, nil
}

func (b *Builder) writeRecord(siteInfo data.Site, rec *data.ExportRecord, subdir string, year int, pages []*data.ExportRecord) error {
	var content bytes.Buffer
	err := articleTmpl.Execute(&content, articleData{
		Title: rec.Title,
		Date:  displayDate(rec.Date),
		Body:  template.HTML(rec.Body),
	})
	if err != nil {
		return fmt.Errorf("failed to render %q: %w", rec.Slug, err)
	}

	outPath := filepath.Join(b.outDir, subdir, rec.Slug+".html")
	return b.writePage(outPath, layoutData{
		Title:   rec.Title,
		Site:    siteInfo,
		Root:    "../",
		Nav:     navLinks("../", pages),
		Content: template.HTML(content.String()),
		Year:    year,
	})
}

func (b *Builder) writeIndex(siteInfo data.Site, pages, posts []*data.ExportRecord, year int) error {
	idx := indexData{Site: siteInfo}
	for _, rec := range pages {
		idx.Pages = append(idx.Pages, toCard(rec))
	}
	for _, rec := range posts {
		idx.Posts = append(idx.Posts, toCard(rec))
	}

	var content bytes.Buffer
	if err := indexTmpl.Execute(&content, idx); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}

	return b.writePage(filepath.Join(b.outDir, "index.html"), layoutData{
		Title:   "Home",
		Site:    siteInfo,
		Root:    "",
		Nav:     navLinks("", pages),
		Content: template.HTML(content.String()),
		Year:    year,
	})
}

func (b *Builder) writePage(outPath string, ld layoutData) error {
	var buf bytes.Buffer
	if err := layoutTmpl.Execute(&buf, ld); err != nil {
		return fmt.Errorf("failed to render layout for %s: %w", outPath, err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

// navLinks builds the navigation bar: home plus every published page.
func navLinks(root string, pages []*data.ExportRecord) []navLink {
	links := []navLink{{Href: root + "index.html", Label: "Home"}}
	for _, p := range pages {
		links = append(links, navLink{
			Href:  root + "pages/" + p.Slug + ".html",
			Label: p.Title,
		})
	}
	return links
}

func toCard(rec *data.ExportRecord) cardData {
	teaser := rec.Excerpt
	if runes := []rune(teaser); len(runes) > 150 {
		teaser = string(runes[:150])
	}
	if teaser == "" {
		teaser = "Read more..."
	}
	return cardData{
		Slug:   rec.Slug,
		Title:  rec.Title,
		Date:   displayDate(rec.Date),
		Teaser: teaser,
	}
}

func displayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// copyrightYear uses the newest record date so output stays stable for a
// fixed export, falling back to the current year for empty exports.
func copyrightYear(records []*data.ExportRecord) int {
	var latest time.Time
	for _, rec := range records {
		if rec.Date.After(latest) {
			latest = rec.Date
		}
	}
	if latest.IsZero() {
		return time.Now().Year()
	}
	return latest.Year()
}

// WriteJSON writes v as indented JSON, matching the manifest format the
// downloader and external tooling consume.
func WriteJSON(path string, v any) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	buf = append(buf, '\n')
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
