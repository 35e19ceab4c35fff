package site

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors for WordPress plugin assets that do not exist in a static
// export and break the page when left referenced.
var wpAssetSelectors = []string{
	"link#giftup-checkout-external-css",
	"link[href*='gift-up']",
	"link[href*='wp-includes']",
	"link[href*='elementor/google-fonts']",
	"script[src*='gift-up']",
	"script[src*='wp-includes']",
	"script[src*='elementor-pro']",
	"script[src*='runtime.min.js'][src*='elementor']",
	"script[src*='webpack'][src*='elementor']",
	"script[src*='frontend'][src*='handlers']",
}

// Markers identifying inline WordPress bootstrap scripts.
var wpScriptMarkers = []string{
	"wp.i18n.setLocaleData",
	"wp.apiFetch",
	"wp-admin",
	"wp-json",
	"wp.",
}

// Clean strips WordPress-only script and stylesheet references from an
// HTML document. Returns the cleaned document and whether it changed.
func Clean(html string) (string, bool, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false, fmt.Errorf("failed to parse HTML: %w", err)
	}

	changed := false
	for _, sel := range wpAssetSelectors {
		found := doc.Find(sel)
		if found.Length() > 0 {
			found.Remove()
			changed = true
		}
	}

	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if _, hasSrc := s.Attr("src"); hasSrc {
			return
		}
		text := s.Text()
		for _, marker := range wpScriptMarkers {
			if strings.Contains(text, marker) {
				s.Remove()
				changed = true
				return
			}
		}
	})

	if !changed {
		return html, false, nil
	}
	return renderDocument(doc, html)
}

// Relativize rewrites root-relative href/src attributes, and links to
// siteURL, into paths relative to a file depth levels below the site
// root. This lets the output work when hosted under a subpath.
func Relativize(html string, depth int, siteURL string) (string, bool, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false, fmt.Errorf("failed to parse HTML: %w", err)
	}

	prefix := strings.Repeat("../", depth)
	siteURL = strings.TrimSuffix(siteURL, "/")

	changed := false
	for _, attr := range []string{"href", "src"} {
		doc.Find("[" + attr + "]").Each(func(_ int, s *goquery.Selection) {
			val, _ := s.Attr(attr)
			rewritten, ok := relativizeURL(val, prefix, siteURL)
			if ok {
				s.SetAttr(attr, rewritten)
				changed = true
			}
		})
	}

	if !changed {
		return html, false, nil
	}
	return renderDocument(doc, html)
}

func relativizeURL(val, prefix, siteURL string) (string, bool) {
	switch {
	case siteURL != "" && (val == siteURL || val == siteURL+"/"):
		return prefix + "index.html", true
	case siteURL != "" && strings.HasPrefix(val, siteURL+"/"):
		return prefix + strings.TrimPrefix(val, siteURL+"/"), true
	case strings.HasPrefix(val, "//"):
		return "", false // protocol-relative, leave alone
	case strings.HasPrefix(val, "/"):
		return prefix + strings.TrimPrefix(val, "/"), true
	}
	return "", false
}

// renderDocument serializes a parsed document, preserving the doctype
// declaration goquery drops.
func renderDocument(doc *goquery.Document, original string) (string, bool, error) {
	out, err := doc.Html()
	if err != nil {
		return "", false, fmt.Errorf("failed to serialize HTML: %w", err)
	}
	if strings.HasPrefix(strings.TrimSpace(strings.ToLower(original)), "<!doctype") {
		out = "<!DOCTYPE html>\n" + out
	}
	return out, true, nil
}

// CleanDir applies Clean and Relativize to every .html file under dir,
// writing back only files that changed. Returns the number of files fixed.
func CleanDir(dir, siteURL string) (int, error) {
	fixed := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		depth := len(strings.Split(rel, string(filepath.Separator))) - 1

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		content := string(raw)
		anyChange := false

		cleaned, changed, err := Clean(content)
		if err != nil {
			log.Printf("Warning: skipping %s: %v", rel, err)
			return nil
		}
		if changed {
			content = cleaned
			anyChange = true
		}

		relativized, changed, err := Relativize(content, depth, siteURL)
		if err != nil {
			log.Printf("Warning: skipping %s: %v", rel, err)
			return nil
		}
		if changed {
			content = relativized
			anyChange = true
		}

		if anyChange {
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return err
			}
			fixed++
		}
		return nil
	})
	return fixed, err
}
