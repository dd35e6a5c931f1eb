package studio

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return OpenStore(filepath.Join(t.TempDir(), "settings.json"), zap.NewNop())
}

func TestHistoryBoundedNewestFirst(t *testing.T) {
	h := NewHistory(newTestStore(t), zap.NewNop())

	for i := 0; i < HistoryCapacity+3; i++ {
		h.Add(fmt.Sprintf("tema %d", i), "copy", "aW1n", "image/png")
	}

	if h.Len() != HistoryCapacity {
		t.Fatalf("len = %d, want %d", h.Len(), HistoryCapacity)
	}
	if h.Entries()[0].Topic != fmt.Sprintf("tema %d", HistoryCapacity+2) {
		t.Fatalf("newest entry not first: %q", h.Entries()[0].Topic)
	}
}

func TestHistoryEntryDataURL(t *testing.T) {
	h := NewHistory(newTestStore(t), zap.NewNop())
	entry := h.Add("tema", "texto", "aW1n", "image/webp")

	if !strings.HasPrefix(entry.ImageDataURL, "data:image/webp;base64,") {
		t.Fatalf("data url = %q", entry.ImageDataURL)
	}
	if entry.ID == "" || entry.Timestamp == 0 {
		t.Error("entry must carry id and timestamp")
	}
}

func TestHistoryRecover(t *testing.T) {
	h := NewHistory(newTestStore(t), zap.NewNop())
	entry := h.Add("tema", "texto", "aW1n", "image/png")

	copyText, imageBase64, mimeType := entry.Recover()
	if copyText != "texto" || imageBase64 != "aW1n" || mimeType != "image/png" {
		t.Fatalf("recover = (%q, %q, %q)", copyText, imageBase64, mimeType)
	}
}

func TestHistoryPersistsAcrossReopen(t *testing.T) {
	store := newTestStore(t)
	NewHistory(store, zap.NewNop()).Add("tema", "texto", "aW1n", "image/png")

	again := NewHistory(store, zap.NewNop())
	if again.Len() != 1 {
		t.Fatalf("reopened history len = %d", again.Len())
	}
}

func TestHistoryDeleteAndClear(t *testing.T) {
	h := NewHistory(newTestStore(t), zap.NewNop())
	a := h.Add("a", "x", "aW1n", "image/png")
	h.Add("b", "y", "aW1n", "image/png")

	h.Delete(a.ID)
	if h.Len() != 1 || h.Entries()[0].Topic != "b" {
		t.Fatalf("after delete: %v", h.Entries())
	}

	h.Clear()
	if h.Len() != 0 {
		t.Fatal("clear left entries behind")
	}
}
