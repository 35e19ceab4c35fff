package integrations

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/wpstatic/pkg/data"
)

// EPubBuilder compiles the converted site content into a single EPUB.
type EPubBuilder struct {
	outputDir string
}

func NewEPubBuilder(outputDir string) *EPubBuilder {
	return &EPubBuilder{outputDir: outputDir}
}

// CreateEPub bundles the published records into one EPUB, pages first,
// posts in chronological order.
func (p *EPubBuilder) CreateEPub(siteInfo data.Site, records []*data.ExportRecord) (string, error) {
	var published []*data.ExportRecord
	for _, rec := range records {
		if rec.Published() {
			published = append(published, rec)
		}
	}
	if len(published) == 0 {
		return "", fmt.Errorf("no published content to compile")
	}

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	sorted := make([]*data.ExportRecord, len(published))
	copy(sorted, published)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Kind != sorted[j].Kind {
			return sorted[i].Kind == data.KindPage
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	e, err := epub.NewEpub(siteInfo.Title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}

	e.SetAuthor(siteInfo.Title)
	if siteInfo.Description != "" {
		e.SetDescription(siteInfo.Description)
	}
	e.SetLang("en")

	for _, rec := range sorted {
		body := fmt.Sprintf("<h1>%s</h1>\n%s", rec.Title, rec.Body)
		if _, err := e.AddSection(body, rec.Title, "", ""); err != nil {
			return "", fmt.Errorf("failed to add %q: %w", rec.Slug, err)
		}
	}

	safeTitle := sanitizeFilename(siteInfo.Title)
	if safeTitle == "" {
		safeTitle = "site"
	}
	outputPath := filepath.Join(p.outputDir, safeTitle+".epub")

	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	return strings.Trim(result, ".")
}
