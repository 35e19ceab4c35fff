package site

import "testing"

func TestExtractMediaURLs(t *testing.T) {
	body := `<p>Hello <img src="https://example.com/a.png"> and
	<img src="/local/b.jpg"/> and <img alt="no src"></p>`

	urls := ExtractMediaURLs(body)
	if len(urls) != 2 {
		t.Fatalf("Expected 2 URLs, got %d: %v", len(urls), urls)
	}
	if urls[0] != "https://example.com/a.png" {
		t.Errorf("Unexpected first URL: %s", urls[0])
	}
	if urls[1] != "/local/b.jpg" {
		t.Errorf("Unexpected second URL: %s", urls[1])
	}
}

func TestExtractMediaURLsEmptyBody(t *testing.T) {
	if urls := ExtractMediaURLs(""); len(urls) != 0 {
		t.Errorf("Expected no URLs, got %v", urls)
	}
}

func TestIsRemoteURL(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/a.png": true,
		"http://example.com/a.png":  true,
		"/assets/a.png":             false,
		"mailto:me@example.com":     false,
	}
	for u, want := range cases {
		if got := IsRemoteURL(u); got != want {
			t.Errorf("IsRemoteURL(%q) = %v, want %v", u, got, want)
		}
	}
}
