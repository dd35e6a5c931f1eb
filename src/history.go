package studio

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HistoryCapacity bounds the number of retained generations.
const HistoryCapacity = 10

// HistoryEntry is one successful full generation. The image travels as
// a data URL so an entry is self-contained.
type HistoryEntry struct {
	ID           string `json:"id"`
	Timestamp    int64  `json:"timestamp"`
	Topic        string `json:"topic"`
	Copy         string `json:"copy"`
	ImageDataURL string `json:"imageUrl"`
	MIMEType     string `json:"mimeType"`
}

// History is the bounded, newest-first record of completed pipelines,
// persisted through the key-value store.
type History struct {
	store   *Store
	logger  *zap.Logger
	entries []HistoryEntry
}

func NewHistory(store *Store, logger *zap.Logger) *History {
	h := &History{store: store, logger: logger}
	h.store.Load(keyHistory, &h.entries)
	if len(h.entries) > HistoryCapacity {
		h.entries = h.entries[:HistoryCapacity]
	}
	return h
}

// Entries returns the retained generations, newest first.
func (h *History) Entries() []HistoryEntry { return h.entries }

func (h *History) Len() int { return len(h.entries) }

// Add records a completed generation at the head, evicting the oldest
// entry past capacity.
func (h *History) Add(topic, copyText, imageBase64, mimeType string) HistoryEntry {
	entry := HistoryEntry{
		ID:           uuid.NewString(),
		Timestamp:    time.Now().UnixMilli(),
		Topic:        topic,
		Copy:         copyText,
		ImageDataURL: fmt.Sprintf("data:%s;base64,%s", mimeType, imageBase64),
		MIMEType:     mimeType,
	}
	h.entries = append([]HistoryEntry{entry}, h.entries...)
	if len(h.entries) > HistoryCapacity {
		h.entries = h.entries[:HistoryCapacity]
	}
	h.persist()
	h.logger.Info("history entry added", zap.String("id", entry.ID), zap.Int("size", len(h.entries)))
	return entry
}

// Recover splits an entry back into the raw base64 payload and mime
// type so it can repopulate the working slot.
func (e HistoryEntry) Recover() (copyText, imageBase64, mimeType string) {
	imageBase64 = e.ImageDataURL
	if idx := strings.IndexByte(e.ImageDataURL, ','); idx != -1 {
		imageBase64 = e.ImageDataURL[idx+1:]
	}
	mimeType = e.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}
	return e.Copy, imageBase64, mimeType
}

// Delete removes one entry by id.
func (h *History) Delete(id string) {
	for i, e := range h.entries {
		if e.ID == id {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			h.persist()
			return
		}
	}
}

// Clear wipes the record.
func (h *History) Clear() {
	h.entries = nil
	h.store.Delete(keyHistory)
}

func (h *History) persist() {
	h.store.Save(keyHistory, h.entries)
}
