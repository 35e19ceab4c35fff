package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const dirtyHTML = `<!DOCTYPE html>
<html>
<head>
<link rel="stylesheet" href="/css/style.css">
<link id="giftup-checkout-external-css" rel="stylesheet" href="https://cdn.gift-up.com/checkout.css">
<script src="https://example.com/wp-includes/js/jquery.js"></script>
<script>wp.i18n.setLocaleData({});</script>
</head>
<body>
<a href="https://modernmothershelper.com/">Home</a>
<img src="/assets/logo.png">
<p>Keep me</p>
</body>
</html>`

func TestCleanRemovesWordPressAssets(t *testing.T) {
	out, changed, err := Clean(dirtyHTML)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if !changed {
		t.Fatal("Expected document to change")
	}

	for _, gone := range []string{"wp-includes", "gift-up", "setLocaleData"} {
		if strings.Contains(out, gone) {
			t.Errorf("Expected %q to be removed", gone)
		}
	}
	if !strings.Contains(out, "<p>Keep me</p>") {
		t.Error("Content should be preserved")
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("Doctype should be preserved")
	}
}

func TestCleanNoChange(t *testing.T) {
	clean := "<!DOCTYPE html>\n<html><body><p>hi</p></body></html>"
	out, changed, err := Clean(clean)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if changed {
		t.Error("Expected no change")
	}
	if out != clean {
		t.Error("Unchanged input should come back untouched")
	}
}

func TestRelativize(t *testing.T) {
	out, changed, err := Relativize(dirtyHTML, 1, "https://modernmothershelper.com")
	if err != nil {
		t.Fatalf("Relativize failed: %v", err)
	}
	if !changed {
		t.Fatal("Expected document to change")
	}

	if !strings.Contains(out, `href="../css/style.css"`) {
		t.Error("Root-relative href should gain the depth prefix")
	}
	if !strings.Contains(out, `src="../assets/logo.png"`) {
		t.Error("Root-relative src should gain the depth prefix")
	}
	if !strings.Contains(out, `href="../index.html"`) {
		t.Error("Site URL should be rewritten to the home page")
	}
	if strings.Contains(out, `href="https://modernmothershelper.com/"`) {
		t.Error("Hardcoded domain link should be gone")
	}
}

func TestRelativizeLeavesExternalLinks(t *testing.T) {
	doc := `<html><body><a href="https://other.example.com/x">x</a><img src="//cdn.example.com/y.png"></body></html>`
	_, changed, err := Relativize(doc, 1, "https://modernmothershelper.com")
	if err != nil {
		t.Fatalf("Relativize failed: %v", err)
	}
	if changed {
		t.Error("External and protocol-relative URLs should be left alone")
	}
}

func TestCleanDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "pages"), 0755); err != nil {
		t.Fatal(err)
	}

	nested := filepath.Join(dir, "pages", "about.html")
	if err := os.WriteFile(nested, []byte(dirtyHTML), 0644); err != nil {
		t.Fatal(err)
	}
	untouched := filepath.Join(dir, "plain.html")
	if err := os.WriteFile(untouched, []byte("<!DOCTYPE html>\n<html><body><p>hi</p></body></html>"), 0644); err != nil {
		t.Fatal(err)
	}

	fixed, err := CleanDir(dir, "https://modernmothershelper.com")
	if err != nil {
		t.Fatalf("CleanDir failed: %v", err)
	}
	if fixed != 1 {
		t.Errorf("Expected 1 fixed file, got %d", fixed)
	}

	raw, err := os.ReadFile(nested)
	if err != nil {
		t.Fatal(err)
	}
	html := string(raw)
	if strings.Contains(html, "wp-includes") {
		t.Error("Nested file should be cleaned")
	}
	if !strings.Contains(html, `href="../css/style.css"`) {
		t.Error("Nested file should get depth-relative links")
	}
}
