package booking

import "tablevoice/extract"

// applyExpected runs the deterministic extractor for the field the user was
// just asked about, if that slot is still empty. This context-directed pass
// always runs before fallback proposals are considered.
func applyExpected(s *Slots, expected Field, utterance string, dates *DateParser) {
	if expected == FieldNone || s.Filled(expected) {
		return
	}
	switch expected {
	case FieldName:
		if v, ok := ExtractName(utterance); ok {
			s.SetName(v)
		}
	case FieldGuests:
		if v, ok := ExtractGuests(utterance); ok {
			s.SetGuests(v)
		}
	case FieldDate:
		if v, ok := dates.Extract(utterance); ok {
			s.SetDate(v)
		}
	case FieldTime:
		if v, ok := ExtractTime(utterance); ok {
			s.SetTime(v)
		}
	case FieldCuisine:
		if v, ok := ExtractCuisine(utterance); ok {
			s.SetCuisine(v)
		}
	case FieldSpecial:
		if v, ok := ExtractSpecial(utterance); ok {
			s.SetSpecial(v)
		}
	}
}

// applyProposals fills still-empty slots from a fallback extraction. The
// first-write-wins setters guarantee proposals never overwrite anything the
// context-directed pass (or an earlier turn) already collected.
func applyProposals(s *Slots, p extract.Proposals) {
	s.SetName(p.Name)
	s.SetGuests(p.Guests)
	s.SetDate(p.Date)
	s.SetTime(p.Time)
	s.SetCuisine(p.Cuisine)
	s.SetSpecial(p.Special)
}
