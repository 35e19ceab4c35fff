package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kerbaras/wpstatic/pkg/data"
)

func testSite() data.Site {
	return data.Site{
		Title:       "Modern Mothers Helper",
		URL:         "https://modernmothershelper.com",
		Description: "Helping modern mothers",
	}
}

func testRecords() []*data.ExportRecord {
	return []*data.ExportRecord{
		{
			ID: 10, Title: "About", Slug: "about",
			Body:   "<p>Hi</p>",
			Date:   time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
			Status: "publish", Kind: data.KindPage,
		},
		{
			ID: 11, Title: "First Post", Slug: "first-post",
			Body:    "<p>Hello</p>",
			Excerpt: "The very first post",
			Date:    time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC),
			Status:  "publish", Kind: data.KindPost,
		},
		{
			ID: 14, Title: "Secret Draft", Slug: "secret-draft",
			Body:   "<p>wip</p>",
			Status: "draft", Kind: data.KindPost,
		},
	}
}

func TestBuildWritesOneFilePerPublishedRecord(t *testing.T) {
	outDir := t.TempDir()
	builder := NewBuilder(outDir)

	summary, err := builder.Build(testSite(), testRecords(), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if summary.Pages != 1 || summary.Posts != 1 {
		t.Errorf("Expected 1 page and 1 post, got %d and %d", summary.Pages, summary.Posts)
	}

	for _, path := range []string{
		"index.html",
		filepath.Join("pages", "about.html"),
		filepath.Join("posts", "first-post.html"),
		filepath.Join("css", "style.css"),
		"site-data.json",
		"attachments.json",
	} {
		if _, err := os.Stat(filepath.Join(outDir, path)); err != nil {
			t.Errorf("Expected %s to exist: %v", path, err)
		}
	}

	if _, err := os.Stat(filepath.Join(outDir, "posts", "secret-draft.html")); !os.IsNotExist(err) {
		t.Error("Draft should not be rendered")
	}
}

func TestBuildPageContent(t *testing.T) {
	outDir := t.TempDir()
	builder := NewBuilder(outDir)

	if _, err := builder.Build(testSite(), testRecords(), nil); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(outDir, "pages", "about.html"))
	if err != nil {
		t.Fatalf("Failed to read about.html: %v", err)
	}
	html := string(raw)

	for _, want := range []string{
		"<p>Hi</p>",
		"<title>About - Modern Mothers Helper</title>",
		"Published: March 4, 2024",
		`href="../css/style.css"`,
		`href="../index.html"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected about.html to contain %q", want)
		}
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	outDir := t.TempDir()
	builder := NewBuilder(outDir)

	read := func() map[string][]byte {
		t.Helper()
		files := make(map[string][]byte)
		err := filepath.Walk(outDir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return err
			}
			raw, err := os.ReadFile(path)
			files[path] = raw
			return err
		})
		if err != nil {
			t.Fatalf("Failed to read output tree: %v", err)
		}
		return files
	}

	if _, err := builder.Build(testSite(), testRecords(), nil); err != nil {
		t.Fatalf("First build failed: %v", err)
	}
	first := read()

	if _, err := builder.Build(testSite(), testRecords(), nil); err != nil {
		t.Fatalf("Second build failed: %v", err)
	}
	second := read()

	if len(first) != len(second) {
		t.Fatalf("File count changed between builds: %d vs %d", len(first), len(second))
	}
	for path, content := range first {
		if string(second[path]) != string(content) {
			t.Errorf("Output of %s changed between builds", path)
		}
	}
}

func TestBuildIndexLists(t *testing.T) {
	outDir := t.TempDir()
	builder := NewBuilder(outDir)

	if _, err := builder.Build(testSite(), testRecords(), nil); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatalf("Failed to read index: %v", err)
	}
	html := string(raw)

	for _, want := range []string{
		"Welcome to Modern Mothers Helper",
		`href="pages/about.html"`,
		`href="posts/first-post.html"`,
		"The very first post",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected index.html to contain %q", want)
		}
	}

	if strings.Contains(html, "secret-draft") {
		t.Error("Index should not link drafts")
	}
}
