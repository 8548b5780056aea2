// Package mail downloads invoice PDFs from an IMAP mailbox.
package mail

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	gomail "github.com/emersion/go-message/mail"

	"github.com/arrowtc/invoice-pipeline/internal/common"
)

// Namer renames an attachment before it is saved; the batch wires this to
// a function that prefixes the file with its extracted invoice number. A
// nil Namer keeps the original filename.
type Namer func(content []byte, filename string) string

// Source fetches PDF attachments from the configured mailbox into the
// download directory, skipping messages already in the history file.
type Source struct {
	cfg     common.MailConfig
	destDir string
	namer   Namer
	logger  *slog.Logger
}

func NewSource(cfg common.MailConfig, destDir string, namer Namer, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{cfg: cfg, destDir: destDir, namer: namer, logger: logger}
}

// Fetch downloads new PDF attachments and returns the saved paths. A
// failure on one message or attachment is logged and skipped; only
// connection-level failures abort the run.
func (s *Source) Fetch(ctx context.Context) ([]string, error) {
	c, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer c.Logout()

	if _, err := c.Select(s.cfg.Mailbox, false); err != nil {
		return nil, fmt.Errorf("select mailbox %s: %w", s.cfg.Mailbox, err)
	}

	criteria, err := BuildSearchCriteria(s.cfg.DateStart, s.cfg.DateEnd, s.cfg.SearchFrom, time.Now())
	if err != nil {
		return nil, err
	}
	seqNums, err := c.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("search mailbox: %w", err)
	}
	s.logger.Info("mailbox searched", "mailbox", s.cfg.Mailbox, "messages", len(seqNums))
	if len(seqNums) == 0 {
		return nil, nil
	}

	history := LoadHistory(s.cfg.HistoryFile)
	if err := os.MkdirAll(s.destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create download dir: %w", err)
	}

	var saved []string
	for _, seq := range seqNums {
		select {
		case <-ctx.Done():
			return saved, ctx.Err()
		default:
		}
		paths, err := s.processMessage(c, seq, history)
		if err != nil {
			s.logger.Warn("message skipped", "seq", seq, "error", err)
			continue
		}
		saved = append(saved, paths...)
	}
	return saved, nil
}

// connect dials and authenticates, retrying transient failures a fixed
// number of times with a fixed backoff.
func (s *Source) connect(ctx context.Context) (*client.Client, error) {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	attempts := s.cfg.RetryCount
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		c, err := client.DialTLS(addr, nil)
		if err == nil {
			if err = c.Login(s.cfg.Username, s.cfg.Password); err == nil {
				return c, nil
			}
			c.Logout()
		}
		lastErr = err
		s.logger.Warn("imap connect failed", "addr", addr, "attempt", attempt, "error", err)
		if attempt < attempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.cfg.RetryBackoff):
			}
		}
	}
	return nil, fmt.Errorf("imap connect to %s: %w", addr, lastErr)
}

func (s *Source) processMessage(c *client.Client, seq uint32, history *History) ([]string, error) {
	seqSet := new(imap.SeqSet)
	seqSet.AddNum(seq)

	section := &imap.BodySectionName{}
	messages := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqSet, []imap.FetchItem{imap.FetchEnvelope, section.FetchItem()}, messages)
	}()

	msg := <-messages
	if err := <-done; err != nil {
		return nil, fmt.Errorf("fetch message: %w", err)
	}
	if msg == nil {
		return nil, fmt.Errorf("no data for message %d", seq)
	}

	messageID := ""
	subject := ""
	from := ""
	date := ""
	if msg.Envelope != nil {
		messageID = strings.TrimSpace(msg.Envelope.MessageId)
		subject = msg.Envelope.Subject
		if len(msg.Envelope.From) > 0 {
			from = msg.Envelope.From[0].Address()
		}
		date = msg.Envelope.Date.Format(time.RFC1123Z)
	}
	if messageID == "" {
		messageID = fmt.Sprintf("NOID-%d", seq)
	}

	if history.Contains(messageID) {
		s.logger.Debug("message already processed", "message_id", messageID)
		return nil, nil
	}

	body := msg.GetBody(section)
	if body == nil {
		return nil, fmt.Errorf("message %d has no body section", seq)
	}

	saved, err := s.saveAttachments(body, subject)
	if err != nil {
		return nil, err
	}
	if len(saved) == 0 {
		s.logger.Info("no pdf attachments in message", "subject", subject)
	}

	names := make([]string, len(saved))
	for i, p := range saved {
		names[i] = filepath.Base(p)
	}
	if err := history.Record(messageID, HistoryEntry{
		Subject:         subject,
		From:            from,
		Date:            date,
		PDFFound:        len(saved) > 0,
		DownloadedFiles: names,
	}); err != nil {
		s.logger.Warn("could not persist mail history", "error", err)
	}

	if s.cfg.MarkAsSeen {
		item := imap.FormatFlagsOp(imap.AddFlags, true)
		if err := c.Store(seqSet, item, []interface{}{imap.SeenFlag}, nil); err != nil {
			s.logger.Warn("could not mark message seen", "seq", seq, "error", err)
		}
	}
	return saved, nil
}

// saveAttachments walks the MIME parts and writes every PDF attachment to
// the download directory. One broken attachment does not stop the rest.
func (s *Source) saveAttachments(body io.Reader, subject string) ([]string, error) {
	mr, err := gomail.CreateReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse message: %w", err)
	}

	var saved []string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return saved, fmt.Errorf("read mime part: %w", err)
		}

		h, ok := part.Header.(*gomail.AttachmentHeader)
		if !ok {
			continue
		}
		filename, _ := h.Filename()
		contentType, _, _ := h.ContentType()
		if filename == "" {
			continue
		}
		if contentType != "application/pdf" && !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
			continue
		}

		content, err := io.ReadAll(part.Body)
		if err != nil {
			s.logger.Warn("could not read attachment", "filename", filename, "subject", subject, "error", err)
			continue
		}
		if s.namer != nil {
			filename = s.namer(content, filename)
		}

		path := uniquePath(filepath.Join(s.destDir, sanitizeFilename(filename)))
		if err := os.WriteFile(path, content, 0o644); err != nil {
			s.logger.Warn("could not save attachment", "filename", filename, "error", err)
			continue
		}
		s.logger.Info("attachment saved", "path", path, "subject", subject)
		saved = append(saved, path)
	}
	return saved, nil
}

// sanitizeFilename keeps alphanumerics plus a small safe set and replaces
// everything else with underscores.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return strings.TrimSpace(b.String())
}

// uniquePath appends _1, _2, ... until the path does not exist.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", base, n, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
