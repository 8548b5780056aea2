package mail

import (
	"encoding/json"
	"fmt"
	"os"
)

// HistoryEntry records what happened to one processed message.
type HistoryEntry struct {
	Subject         string   `json:"subject"`
	From            string   `json:"from"`
	Date            string   `json:"date"`
	PDFFound        bool     `json:"pdf_found"`
	DownloadedFiles []string `json:"downloaded_files"`
}

// History is the Message-ID keyed record of processed mail, persisted as a
// JSON object so a run can be resumed without refetching.
type History struct {
	path    string
	entries map[string]HistoryEntry
}

// LoadHistory reads the history file at path. Missing or corrupt files
// yield an empty history.
func LoadHistory(path string) *History {
	h := &History{path: path, entries: make(map[string]HistoryEntry)}
	raw, err := os.ReadFile(path)
	if err != nil {
		return h
	}
	// a corrupt file leaves entries empty
	_ = json.Unmarshal(raw, &h.entries)
	return h
}

func (h *History) Contains(messageID string) bool {
	_, ok := h.entries[messageID]
	return ok
}

// Record stores the entry and saves the file immediately, so a crash
// mid-mailbox does not reprocess completed messages.
func (h *History) Record(messageID string, entry HistoryEntry) error {
	h.entries[messageID] = entry
	b, err := json.MarshalIndent(h.entries, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal mail history: %w", err)
	}
	if err := os.WriteFile(h.path, b, 0o644); err != nil {
		return fmt.Errorf("write mail history: %w", err)
	}
	return nil
}

func (h *History) Len() int { return len(h.entries) }
