package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlainObject(t *testing.T) {
	p, ok := Parse(`{"name":"Asha","guests":2,"date":"2026-09-01","time":"7:00 PM","cuisine":"italian","special":"none"}`)
	require.True(t, ok)
	assert.Equal(t, Proposals{
		Name:    "Asha",
		Guests:  2,
		Date:    "2026-09-01",
		Time:    "7:00 PM",
		Cuisine: "italian",
		Special: "none",
	}, p)
}

func TestParseFencedResponse(t *testing.T) {
	raw := "Sure, here is the extraction:\n```json\n{\"name\": \"Ravi\", \"guests\": null}\n```\n"
	p, ok := Parse(raw)
	require.True(t, ok)
	assert.Equal(t, "Ravi", p.Name)
	assert.Zero(t, p.Guests)
}

func TestParseGuestsAsString(t *testing.T) {
	p, ok := Parse(`{"guests": "4"}`)
	require.True(t, ok)
	assert.Equal(t, 4, p.Guests)
}

func TestParseGuestsNonNumericString(t *testing.T) {
	p, ok := Parse(`{"guests": "a few"}`)
	require.True(t, ok)
	assert.Zero(t, p.Guests)
}

func TestParseNulls(t *testing.T) {
	p, ok := Parse(`{"name": null, "guests": null, "date": null}`)
	require.True(t, ok)
	assert.Equal(t, Proposals{}, p)
}

func TestParseGarbage(t *testing.T) {
	for _, raw := range []string{
		"",
		"I could not find any booking details.",
		"{broken",
		`{"guests": }`,
	} {
		_, ok := Parse(raw)
		assert.False(t, ok, "raw=%q", raw)
	}
}

func TestParseBracesInsideStrings(t *testing.T) {
	p, ok := Parse(`{"special": "table near the {quiet} corner"}`)
	require.True(t, ok)
	assert.Equal(t, "table near the {quiet} corner", p.Special)
}

func TestPromptForEmbedsUtterance(t *testing.T) {
	prompt := PromptFor("a table for two tomorrow")
	assert.Contains(t, prompt, `"a table for two tomorrow"`)
	assert.Contains(t, prompt, "guests")
}
