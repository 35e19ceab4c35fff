package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/kerbaras/wpstatic/pkg/services"
)

func TestProgressTrackerView(t *testing.T) {
	tracker := NewProgressTracker(40)

	tracker.Update(services.DownloadProgress{
		URL:      "https://example.com/logo.png",
		Filename: "logo.png",
		Index:    3,
		Total:    10,
		Status:   "downloading",
	})

	view := tracker.View()
	if !strings.Contains(view, "logo.png") {
		t.Error("View should show the current filename")
	}
	if !strings.Contains(view, "[3/10]") {
		t.Error("View should show progress counts")
	}
}

func TestProgressTrackerCollectsErrors(t *testing.T) {
	tracker := NewProgressTracker(40)

	tracker.Update(services.DownloadProgress{
		Filename: "a.png", Index: 1, Total: 2,
		Status: "error", Error: errors.New("404 Not Found"),
	})
	tracker.Update(services.DownloadProgress{
		Filename: "b.png", Index: 2, Total: 2,
		Status: "complete",
	})

	if len(tracker.Errors()) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(tracker.Errors()))
	}

	view := tracker.View()
	if !strings.Contains(view, "1 failed") {
		t.Error("View should show the failure count")
	}
	if !strings.Contains(view, "a.png") {
		t.Error("View should list the failed file")
	}
}

func TestProgressTrackerEmpty(t *testing.T) {
	tracker := NewProgressTracker(40)
	if view := tracker.View(); view != "" {
		t.Errorf("Expected empty view, got %q", view)
	}
}
