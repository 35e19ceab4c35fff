package site

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractMediaURLs returns the src of every <img> in the fragment, in
// document order. Parse failures yield an empty list; a body that cannot
// be parsed is a record-level problem handled upstream.
func ExtractMediaURLs(fragment string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil
	}

	var urls []string
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		src = strings.TrimSpace(src)
		if ok && src != "" {
			urls = append(urls, src)
		}
	})
	return urls
}

// IsRemoteURL reports whether a media reference points at an HTTP(S) host.
func IsRemoteURL(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}
