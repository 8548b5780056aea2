package mail

import (
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-imap"
)

// BuildSearchCriteria assembles the mailbox search: messages SINCE
// dateStart and BEFORE dateEnd (today when empty), optionally restricted
// to any of the semicolon-separated senders in searchFrom. Multiple
// senders become a nested OR chain, since IMAP OR is binary.
func BuildSearchCriteria(dateStart, dateEnd, searchFrom string, now time.Time) (*imap.SearchCriteria, error) {
	criteria := imap.NewSearchCriteria()

	if dateStart != "" {
		start, err := time.Parse("2006-01-02", dateStart)
		if err != nil {
			return nil, fmt.Errorf("invalid date_start %q: %w", dateStart, err)
		}
		criteria.Since = start
	}
	end := now
	if dateEnd != "" {
		parsed, err := time.Parse("2006-01-02", dateEnd)
		if err != nil {
			return nil, fmt.Errorf("invalid date_end %q: %w", dateEnd, err)
		}
		end = parsed
	}
	criteria.Before = end

	var senders []string
	for _, s := range strings.Split(searchFrom, ";") {
		if s = strings.TrimSpace(s); s != "" {
			senders = append(senders, s)
		}
	}
	switch len(senders) {
	case 0:
	case 1:
		criteria.Header.Add("From", senders[0])
	default:
		acc := fromCriteria(senders[0])
		for _, addr := range senders[1:] {
			combined := imap.NewSearchCriteria()
			combined.Or = [][2]*imap.SearchCriteria{{acc, fromCriteria(addr)}}
			acc = combined
		}
		criteria.Or = acc.Or
	}
	return criteria, nil
}

func fromCriteria(addr string) *imap.SearchCriteria {
	c := imap.NewSearchCriteria()
	c.Header.Add("From", addr)
	return c
}
