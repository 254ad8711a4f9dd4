// Package extract defines the fallback structured-extraction contract: a
// whole-utterance LLM pass that proposes values for every booking slot at
// once, used to fill whatever the deterministic rules left empty.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Proposals carries the (possibly empty) values an extractor suggested for
// the six booking slots. Zero values mean "nothing proposed".
type Proposals struct {
	Name    string `json:"name"`
	Guests  int    `json:"guests"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Cuisine string `json:"cuisine"`
	Special string `json:"special"`
}

// Extractor is a fallback extraction backend. The boolean result is false
// when the service was unreachable or returned something unparseable; that
// is distinct from a reachable service proposing nothing.
type Extractor interface {
	Extract(ctx context.Context, utterance string) (Proposals, bool)
}

// PromptFor builds the JSON-only extraction prompt for an utterance.
func PromptFor(utterance string) string {
	return fmt.Sprintf(`Extract restaurant booking details from: %q

Return only a single JSON object, no code fences, no explanation:

{
 "name": string or null,
 "guests": number or null,
 "date": string or null,
 "time": string or null,
 "cuisine": string or null,
 "special": string or null
}
`, utterance)
}

// UnmarshalJSON tolerates guests arriving as a number, a numeric string, or
// null — small models do all three.
func (p *Proposals) UnmarshalJSON(data []byte) error {
	type alias Proposals
	aux := struct {
		Guests any `json:"guests"`
		*alias
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch v := aux.Guests.(type) {
	case float64:
		p.Guests = int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			p.Guests = n
		}
	}
	return nil
}

// Parse pulls the first JSON object out of a model response and decodes it.
// Anything malformed degrades to zero proposals with ok=false.
func Parse(raw string) (Proposals, bool) {
	js := firstJSONObject(raw)
	if js == "" {
		return Proposals{}, false
	}
	var p Proposals
	if err := json.Unmarshal([]byte(js), &p); err != nil {
		return Proposals{}, false
	}
	return p, true
}

// firstJSONObject returns the first balanced {...} block in s, or "".
func firstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
