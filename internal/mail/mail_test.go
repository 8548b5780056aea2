package mail

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSearchCriteria(t *testing.T) {
	now := time.Date(2025, 11, 30, 12, 0, 0, 0, time.UTC)

	t.Run("date window", func(t *testing.T) {
		c, err := BuildSearchCriteria("2025-10-01", "2025-11-01", "", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), c.Since)
		assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), c.Before)
	})

	t.Run("open end defaults to now", func(t *testing.T) {
		c, err := BuildSearchCriteria("2025-10-01", "", "", now)
		require.NoError(t, err)
		assert.Equal(t, now, c.Before)
	})

	t.Run("single sender goes in the header", func(t *testing.T) {
		c, err := BuildSearchCriteria("2025-10-01", "", "billing@example.com", now)
		require.NoError(t, err)
		assert.Equal(t, "billing@example.com", c.Header.Get("From"))
		assert.Empty(t, c.Or)
	})

	t.Run("multiple senders build a nested or chain", func(t *testing.T) {
		c, err := BuildSearchCriteria("2025-10-01", "", "a@x.com; b@x.com; c@x.com", now)
		require.NoError(t, err)
		require.Len(t, c.Or, 1)

		// (OR (OR a b) c)
		left, right := c.Or[0][0], c.Or[0][1]
		assert.Equal(t, "c@x.com", right.Header.Get("From"))
		require.Len(t, left.Or, 1)
		assert.Equal(t, "a@x.com", left.Or[0][0].Header.Get("From"))
		assert.Equal(t, "b@x.com", left.Or[0][1].Header.Get("From"))
	})

	t.Run("bad dates are rejected", func(t *testing.T) {
		_, err := BuildSearchCriteria("10/01/2025", "", "", now)
		assert.Error(t, err)
		_, err = BuildSearchCriteria("2025-10-01", "soon", "", now)
		assert.Error(t, err)
	})
}

func TestHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed_emails.json")

	h := LoadHistory(path)
	assert.False(t, h.Contains("<msg1@example.com>"))

	entry := HistoryEntry{
		Subject:         "Invoice 103694",
		From:            "billing@example.com",
		Date:            "Tue, 28 Oct 2025 09:00:00 -0600",
		PDFFound:        true,
		DownloadedFiles: []string{"103694_invoice.pdf"},
	}
	require.NoError(t, h.Record("<msg1@example.com>", entry))

	reloaded := LoadHistory(path)
	assert.True(t, reloaded.Contains("<msg1@example.com>"))
	assert.Equal(t, 1, reloaded.Len())
}

func TestHistoryCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))
	assert.Equal(t, 0, LoadHistory(path).Len())
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "invoice 103694.pdf", sanitizeFilename("invoice 103694.pdf"))
	assert.Equal(t, "a_b_c.pdf", sanitizeFilename(`a/b\c.pdf`))
}

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "x.pdf")

	assert.Equal(t, p, uniquePath(p))
	require.NoError(t, os.WriteFile(p, []byte("1"), 0o644))
	assert.Equal(t, filepath.Join(dir, "x_1.pdf"), uniquePath(p))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x_1.pdf"), []byte("2"), 0o644))
	assert.Equal(t, filepath.Join(dir, "x_2.pdf"), uniquePath(p))
}
