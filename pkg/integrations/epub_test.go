package integrations

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kerbaras/wpstatic/pkg/data"
)

func TestCreateEPub(t *testing.T) {
	outDir := t.TempDir()
	builder := NewEPubBuilder(outDir)

	siteInfo := data.Site{
		Title:       "Modern Mothers Helper",
		Description: "Helping modern mothers",
	}
	records := []*data.ExportRecord{
		{
			Title: "Late Post", Slug: "late", Body: "<p>later</p>",
			Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Status: "publish", Kind: data.KindPost,
		},
		{
			Title: "About", Slug: "about", Body: "<p>Hi</p>",
			Date: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			Status: "publish", Kind: data.KindPage,
		},
		{
			Title: "Draft", Slug: "draft", Body: "<p>wip</p>",
			Status: "draft", Kind: data.KindPost,
		},
	}

	path, err := builder.CreateEPub(siteInfo, records)
	if err != nil {
		t.Fatalf("CreateEPub failed: %v", err)
	}

	if !strings.HasSuffix(path, ".epub") {
		t.Errorf("Expected .epub output, got %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected EPUB file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("EPUB file is empty")
	}
	if filepath.Dir(path) != outDir {
		t.Errorf("EPUB written outside output dir: %s", path)
	}
}

func TestCreateEPubNoPublishedContent(t *testing.T) {
	builder := NewEPubBuilder(t.TempDir())

	records := []*data.ExportRecord{
		{Title: "Draft", Slug: "draft", Body: "<p>wip</p>", Status: "draft", Kind: data.KindPost},
	}

	if _, err := builder.CreateEPub(data.Site{Title: "X"}, records); err == nil {
		t.Fatal("Expected error when nothing is published")
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"My Site":     "My Site",
		"a/b\\c":      "a_b_c",
		"  dots... ":  "dots",
		"what? why: x": "what_ why_ x",
	}
	for in, want := range cases {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
