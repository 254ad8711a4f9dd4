package booking

import (
	"regexp"
	"strconv"
	"strings"
)

// Deterministic pattern extractors. Each one takes the raw utterance, matches
// case-insensitively, and returns the extracted value plus an ok flag. A miss
// is a normal outcome, never an error.

var nameTriggers = []string{"my name is", "i am"}

// ExtractName pulls a customer name out of a self-identification phrase, or
// treats a bare single-word utterance as a name. Multi-word utterances with
// no trigger phrase are ambiguous and yield no value. The original casing of
// the utterance is preserved in the result.
func ExtractName(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, trigger := range nameTriggers {
		if idx := strings.LastIndex(lower, trigger); idx >= 0 {
			name := strings.TrimSpace(text[idx+len(trigger):])
			if name != "" {
				return name, true
			}
		}
	}
	if len(strings.Fields(text)) == 1 {
		return strings.TrimSpace(text), true
	}
	return "", false
}

// guestWords maps spoken number words to counts, including common Whisper
// mis-transcriptions ("too" for two, "ate" for eight, ...).
var guestWords = map[string]int{
	"one": 1, "1": 1,
	"two": 2, "to": 2, "too": 2, "tu": 2,
	"three": 3, "tree": 3, "free": 3, "3": 3,
	"four": 4, "for": 4, "4": 4,
	"five": 5, "5": 5,
	"six": 6, "sex": 6, "6": 6,
	"seven": 7, "7": 7,
	"eight": 8, "ate": 8, "8": 8,
	"nine": 9, "9": 9,
	"ten": 10, "10": 10,
}

// ExtractGuests finds a guest count between 1 and 10. The first token with a
// known mapping wins; everything else is ignored.
func ExtractGuests(text string) (int, bool) {
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if n, ok := guestWords[w]; ok {
			return n, true
		}
	}
	return 0, false
}

// cuisineTable is an ordered list so that ties between keywords of different
// cuisines break the same way on every run.
var cuisineTable = []struct {
	name     string
	keywords []string
}{
	{"italian", []string{"italian", "pasta", "pizza"}},
	{"chinese", []string{"chinese", "noodles"}},
	{"indian", []string{"indian", "curry"}},
	{"mexican", []string{"mexican", "taco"}},
	{"thai", []string{"thai"}},
	{"japanese", []string{"japanese", "sushi"}},
}

// ExtractCuisine matches the utterance against the keyword table. The first
// cuisine in table order with any keyword present wins.
func ExtractCuisine(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, c := range cuisineTable {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.name, true
			}
		}
	}
	return "", false
}

var (
	rePM       = regexp.MustCompile(`(\d{1,2})\s*p\s*m|\b(\d{1,2})pm\b|\b(\d{1,2})\s*pm\b`)
	reAM       = regexp.MustCompile(`(\d{1,2})\s*a\s*m|\b(\d{1,2})am\b|\b(\d{1,2})\s*am\b`)
	reClock    = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	reBareHour = regexp.MustCompile(`\b(\d{1,2})\b`)
)

func firstGroup(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

// ExtractTime resolves a spoken time through a fixed cascade: midnight/noon
// literals, then "N pm" variants, then "N am" variants, then "H:MM", then a
// bare hour. A bare hour 1-11 is AM, 12 is PM, 13-23 wraps to PM. The first
// matching layer wins.
func ExtractTime(text string) (string, bool) {
	t := strings.TrimSpace(strings.ReplaceAll(strings.ToLower(text), ".", ""))

	if strings.Contains(t, "midnight") {
		return "12:00 AM", true
	}
	if strings.Contains(t, "noon") {
		return "12:00 PM", true
	}

	if m := rePM.FindStringSubmatch(t); m != nil {
		return firstGroup(m) + ":00 PM", true
	}
	if m := reAM.FindStringSubmatch(t); m != nil {
		return firstGroup(m) + ":00 AM", true
	}
	if m := reClock.FindStringSubmatch(t); m != nil {
		return m[1] + ":" + m[2], true
	}
	if m := reBareHour.FindStringSubmatch(t); m != nil {
		hr, _ := strconv.Atoi(m[1])
		switch {
		case hr >= 1 && hr <= 11:
			return strconv.Itoa(hr) + ":00 AM", true
		case hr == 12:
			return "12:00 PM", true
		case hr >= 13 && hr <= 23:
			return strconv.Itoa(hr-12) + ":00 PM", true
		}
	}

	return "", false
}

var (
	negativeWords   = []string{"no", "none", "nothing", "nope"}
	specialKeywords = []string{"birthday", "anniversary", "diet", "allergy"}
)

// ExtractSpecial canonicalizes negative answers ("no allergies", "nothing")
// to the literal "none", matches known occasion keywords, and otherwise
// accepts any utterance of two or more words verbatim. A single unrecognized
// word is ambiguous and yields no value.
func ExtractSpecial(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	for _, tok := range strings.Fields(lower) {
		for _, neg := range negativeWords {
			if tok == neg {
				return "none", true
			}
		}
	}

	for _, kw := range specialKeywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}

	if len(strings.Fields(trimmed)) >= 2 {
		return trimmed, true
	}

	return "", false
}

// Verdict classifies a confirmation answer.
type Verdict int

const (
	VerdictUnclear Verdict = iota
	VerdictYes
	VerdictNo
)

var (
	yesWords = []string{"yes", "yeah", "yup", "ok", "okay", "haan", "sure"}
	noWords  = []string{"no", "nah", "nope", "cancel"}
)

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// ClassifyConfirmation decides whether an utterance is an affirmative, a
// negative, or neither. Negatives take precedence, and an utterance matching
// neither vocabulary is unclear — never a default answer.
func ClassifyConfirmation(text string) Verdict {
	lower := strings.ToLower(text)
	if containsAny(lower, noWords) {
		return VerdictNo
	}
	if containsAny(lower, yesWords) {
		return VerdictYes
	}
	return VerdictUnclear
}
