package booking

import (
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// DateParser resolves free-text dates ("tomorrow", "next friday",
// "december 5") to ISO calendar dates.
type DateParser struct {
	parser *when.Parser
	now    func() time.Time

	// RejectPast drops dates that resolve before today. Off by default: any
	// resolvable date is accepted.
	RejectPast bool
}

// NewDateParser builds a parser with the English and common rule sets.
func NewDateParser() *DateParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &DateParser{parser: w, now: time.Now}
}

// Extract resolves the utterance to an ISO date. "tomorrow" is special-cased
// ahead of general parsing. Unresolvable text yields no value.
func (p *DateParser) Extract(text string) (string, bool) {
	lower := strings.TrimSpace(strings.ToLower(text))
	now := p.now()

	if strings.Contains(lower, "tomorrow") {
		return now.AddDate(0, 0, 1).Format("2006-01-02"), true
	}

	r, err := p.parser.Parse(lower, now)
	if err != nil || r == nil {
		return "", false
	}

	if p.RejectPast {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if r.Time.Before(today) {
			return "", false
		}
	}

	return r.Time.Format("2006-01-02"), true
}
