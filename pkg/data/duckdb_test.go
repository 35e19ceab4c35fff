package data

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	repo, err := NewRepository(dbPath)
	if err != nil {
		t.Fatalf("Failed to init repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestSaveAndGetRecord(t *testing.T) {
	repo := setupTestRepo(t)

	rec := &ExportRecord{
		ID:      10,
		Title:   "About",
		Slug:    "about",
		Link:    "https://example.com/about/",
		Author:  "david",
		Body:    "<p>Hi</p>",
		Excerpt: "All about us",
		Date:    time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
		Status:  "publish",
		Kind:    KindPage,
	}

	if err := repo.SaveRecord(rec); err != nil {
		t.Fatalf("Failed to save record: %v", err)
	}

	got, err := repo.GetRecord("about")
	if err != nil {
		t.Fatalf("Failed to get record: %v", err)
	}
	if got == nil {
		t.Fatal("Expected record to be found")
	}

	if got.Title != rec.Title {
		t.Errorf("Expected title %q, got %q", rec.Title, got.Title)
	}
	if got.Kind != KindPage {
		t.Errorf("Expected kind page, got %q", got.Kind)
	}
	if !got.Published() {
		t.Error("Expected record to be published")
	}
}

func TestGetRecordMissing(t *testing.T) {
	repo := setupTestRepo(t)

	got, err := repo.GetRecord("nope")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil, got %+v", got)
	}
}

func TestSaveRecordOverwrites(t *testing.T) {
	repo := setupTestRepo(t)

	rec := &ExportRecord{ID: 1, Title: "v1", Slug: "page", Kind: KindPage}
	if err := repo.SaveRecord(rec); err != nil {
		t.Fatalf("Failed to save record: %v", err)
	}

	rec.Title = "v2"
	if err := repo.SaveRecord(rec); err != nil {
		t.Fatalf("Failed to re-save record: %v", err)
	}

	records, err := repo.ListRecords()
	if err != nil {
		t.Fatalf("Failed to list records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Title != "v2" {
		t.Errorf("Expected title v2, got %q", records[0].Title)
	}
}

func TestEnsureAttachmentKeepsStatus(t *testing.T) {
	repo := setupTestRepo(t)

	att := &MediaAttachment{
		URL:      "https://example.com/logo.png",
		Filename: "logo.png",
		Status:   StatusPending,
	}
	if err := repo.EnsureAttachment(att); err != nil {
		t.Fatalf("Failed to ensure attachment: %v", err)
	}

	if err := repo.UpdateAttachmentStatus(att.URL, StatusSuccess, "/tmp/logo.png", "", 1234); err != nil {
		t.Fatalf("Failed to update status: %v", err)
	}

	// A re-convert must not reset the download status.
	if err := repo.EnsureAttachment(att); err != nil {
		t.Fatalf("Failed to re-ensure attachment: %v", err)
	}

	attachments, err := repo.ListAttachments()
	if err != nil {
		t.Fatalf("Failed to list attachments: %v", err)
	}
	if len(attachments) != 1 {
		t.Fatalf("Expected 1 attachment, got %d", len(attachments))
	}
	if attachments[0].Status != StatusSuccess {
		t.Errorf("Expected status success, got %q", attachments[0].Status)
	}
	if attachments[0].Size != 1234 {
		t.Errorf("Expected size 1234, got %d", attachments[0].Size)
	}
}

func TestListPendingAttachments(t *testing.T) {
	repo := setupTestRepo(t)

	urls := map[string]DownloadStatus{
		"https://example.com/a.png": StatusSuccess,
		"https://example.com/b.png": StatusPending,
		"https://example.com/c.png": StatusFailed,
	}
	for url, status := range urls {
		att := &MediaAttachment{URL: url, Filename: filepath.Base(url), Status: status}
		if err := repo.SaveAttachment(att); err != nil {
			t.Fatalf("Failed to save attachment: %v", err)
		}
	}

	pending, err := repo.ListPendingAttachments()
	if err != nil {
		t.Fatalf("Failed to list pending: %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("Expected 2 non-success attachments, got %d", len(pending))
	}
	for _, att := range pending {
		if att.Status == StatusSuccess {
			t.Errorf("Did not expect successful attachment %s", att.URL)
		}
	}
}

func TestStatusCounts(t *testing.T) {
	repo := setupTestRepo(t)

	for i, status := range []DownloadStatus{StatusPending, StatusPending, StatusFailed} {
		att := &MediaAttachment{
			URL:      "https://example.com/" + string(rune('a'+i)) + ".png",
			Filename: "x.png",
			Status:   status,
		}
		if err := repo.SaveAttachment(att); err != nil {
			t.Fatalf("Failed to save attachment: %v", err)
		}
	}

	counts, err := repo.StatusCounts()
	if err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if counts[StatusPending] != 2 {
		t.Errorf("Expected 2 pending, got %d", counts[StatusPending])
	}
	if counts[StatusFailed] != 1 {
		t.Errorf("Expected 1 failed, got %d", counts[StatusFailed])
	}
}
