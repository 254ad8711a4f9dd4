package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"my name is Asha", "Asha", true},
		{"hi, My name is Asha Verma", "Asha Verma", true},
		{"i am Ravi", "Ravi", true},
		{"Priya", "Priya", true},
		{"book me a table please", "", false},
	}
	for _, tt := range tests {
		got, ok := ExtractName(tt.text)
		assert.Equal(t, tt.ok, ok, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestExtractGuests(t *testing.T) {
	got, ok := ExtractGuests("party of too people")
	assert.True(t, ok)
	assert.Equal(t, 2, got)

	got, ok = ExtractGuests("eight of us")
	assert.True(t, ok)
	assert.Equal(t, 8, got)

	got, ok = ExtractGuests("we ate earlier") // "ate" is a known confusion for eight
	assert.True(t, ok)
	assert.Equal(t, 8, got)

	_, ok = ExtractGuests("a couple")
	assert.False(t, ok)
}

func TestExtractGuestsFirstTokenWins(t *testing.T) {
	got, ok := ExtractGuests("three or four")
	assert.True(t, ok)
	assert.Equal(t, 3, got)
}

func TestExtractCuisine(t *testing.T) {
	got, ok := ExtractCuisine("something with Noodles")
	assert.True(t, ok)
	assert.Equal(t, "chinese", got)

	_, ok = ExtractCuisine("surprise me")
	assert.False(t, ok)
}

func TestExtractCuisineTableOrderBreaksTies(t *testing.T) {
	// Both italian ("pasta") and japanese ("sushi") keywords present;
	// italian comes first in the table.
	got, ok := ExtractCuisine("either sushi or pasta works")
	assert.True(t, ok)
	assert.Equal(t, "italian", got)
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"6pm", "6:00 PM", true},
		{"6 pm", "6:00 PM", true},
		{"6 p.m.", "6:00 PM", true},
		{"8am", "8:00 AM", true},
		{"18", "6:00 PM", true},
		{"noon", "12:00 PM", true},
		{"midnight", "12:00 AM", true},
		{"9", "9:00 AM", true},
		{"12", "12:00 PM", true},
		{"13", "1:00 PM", true},
		{"6:30", "6:30", true},
		{"in the evening", "", false},
	}
	for _, tt := range tests {
		got, ok := ExtractTime(tt.text)
		assert.Equal(t, tt.ok, ok, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestExtractTimeFirstLayerWins(t *testing.T) {
	// "noon" beats the clock pattern, pm beats the bare hour.
	got, _ := ExtractTime("noon or 6:30")
	assert.Equal(t, "12:00 PM", got)

	got, _ = ExtractTime("7 pm not 9")
	assert.Equal(t, "7:00 PM", got)
}

func TestExtractSpecial(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"no", "none", true},
		{"nothing", "none", true},
		{"no allergies", "none", true},
		{"it's my anniversary", "anniversary", true},
		{"window seat please", "window seat please", true},
		{"hmm", "", false},
	}
	for _, tt := range tests {
		got, ok := ExtractSpecial(tt.text)
		assert.Equal(t, tt.ok, ok, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestClassifyConfirmation(t *testing.T) {
	assert.Equal(t, VerdictYes, ClassifyConfirmation("yes please"))
	assert.Equal(t, VerdictYes, ClassifyConfirmation("haan"))
	assert.Equal(t, VerdictNo, ClassifyConfirmation("nah"))
	assert.Equal(t, VerdictNo, ClassifyConfirmation("cancel it"))
	assert.Equal(t, VerdictUnclear, ClassifyConfirmation("what was the date again"))

	// Negatives take precedence over affirmatives
	assert.Equal(t, VerdictNo, ClassifyConfirmation("yes wait no"))
}
