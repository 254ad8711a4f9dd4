package booking

// Field identifies one of the six booking slots. The zero value means no
// field is currently expected.
type Field string

const (
	FieldNone    Field = ""
	FieldName    Field = "name"
	FieldGuests  Field = "guests"
	FieldDate    Field = "date"
	FieldTime    Field = "time"
	FieldCuisine Field = "cuisine"
	FieldSpecial Field = "special"
)

// askOrder is the fixed priority in which unfilled slots are asked about.
var askOrder = []Field{FieldName, FieldGuests, FieldDate, FieldTime, FieldCuisine, FieldSpecial}

// Slots is the structured memory of one booking session. Zero values mean
// "not collected yet". Every setter is first-write-wins: once a slot holds a
// value it is never overwritten until Reset.
type Slots struct {
	Name    string
	Guests  int
	Date    string // ISO calendar date (2006-01-02)
	Time    string // "H:MM AM/PM"
	Cuisine string
	Special string
}

// SetName records the customer name unless already set.
func (s *Slots) SetName(v string) {
	if s.Name == "" && v != "" {
		s.Name = v
	}
}

// SetGuests records the guest count unless already set.
func (s *Slots) SetGuests(v int) {
	if s.Guests == 0 && v > 0 {
		s.Guests = v
	}
}

// SetDate records the booking date unless already set.
func (s *Slots) SetDate(v string) {
	if s.Date == "" && v != "" {
		s.Date = v
	}
}

// SetTime records the booking time unless already set.
func (s *Slots) SetTime(v string) {
	if s.Time == "" && v != "" {
		s.Time = v
	}
}

// SetCuisine records the cuisine preference unless already set.
func (s *Slots) SetCuisine(v string) {
	if s.Cuisine == "" && v != "" {
		s.Cuisine = v
	}
}

// SetSpecial records the special request unless already set.
func (s *Slots) SetSpecial(v string) {
	if s.Special == "" && v != "" {
		s.Special = v
	}
}

// Filled reports whether the given slot already holds a value.
func (s *Slots) Filled(f Field) bool {
	switch f {
	case FieldName:
		return s.Name != ""
	case FieldGuests:
		return s.Guests != 0
	case FieldDate:
		return s.Date != ""
	case FieldTime:
		return s.Time != ""
	case FieldCuisine:
		return s.Cuisine != ""
	case FieldSpecial:
		return s.Special != ""
	}
	return false
}

// Complete reports whether all six slots are filled.
func (s *Slots) Complete() bool {
	for _, f := range askOrder {
		if !s.Filled(f) {
			return false
		}
	}
	return true
}

// NextUnfilled returns the first unfilled slot in asking order, or FieldNone
// when the booking is complete.
func (s *Slots) NextUnfilled() Field {
	for _, f := range askOrder {
		if !s.Filled(f) {
			return f
		}
	}
	return FieldNone
}

// Reset clears all slots for a fresh booking.
func (s *Slots) Reset() {
	*s = Slots{}
}
