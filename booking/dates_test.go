package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedDateParser(now time.Time) *DateParser {
	p := NewDateParser()
	p.now = func() time.Time { return now }
	return p
}

func TestDateParserTomorrow(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)
	p := fixedDateParser(now)

	got, ok := p.Extract("Tomorrow evening")
	require.True(t, ok)
	assert.Equal(t, "2026-09-01", got)
}

func TestDateParserNaturalLanguage(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)
	p := fixedDateParser(now)

	got, ok := p.Extract("book it for today")
	require.True(t, ok)
	assert.Equal(t, "2026-08-31", got)
}

func TestDateParserMiss(t *testing.T) {
	p := NewDateParser()
	_, ok := p.Extract("somewhere nice")
	assert.False(t, ok)
}

func TestDateParserAcceptsPastByDefault(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)
	p := fixedDateParser(now)

	got, ok := p.Extract("yesterday")
	require.True(t, ok)
	assert.Equal(t, "2026-08-30", got)
}

func TestDateParserRejectPast(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)
	p := fixedDateParser(now)
	p.RejectPast = true

	_, ok := p.Extract("yesterday")
	assert.False(t, ok)

	got, ok := p.Extract("tomorrow")
	require.True(t, ok)
	assert.Equal(t, "2026-09-01", got)
}
