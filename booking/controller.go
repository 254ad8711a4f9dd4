package booking

import (
	"context"
	"fmt"

	"tablevoice/extract"
)

// State is the dialogue phase of a controller.
type State int

const (
	// StateCollecting is the default phase: extract slot values from each
	// turn and ask for the next missing one.
	StateCollecting State = iota
	// StateConfirming means the summary was read out and the next utterance
	// answers the yes/no confirmation prompt.
	StateConfirming
)

// Fixed question and message texts.
const (
	GreetingText = "Hello, welcome to the restaurant booking assistant. How may I help you today?"

	cancelledText     = "Booking cancelled. You can start again."
	notUnderstoodText = "I didn't understand. Booking cancelled."
	submitFailedText  = "Error saving booking."
)

var questions = map[Field]string{
	FieldName:    "May I know your name?",
	FieldGuests:  "How many guests should I book the table for?",
	FieldDate:    "On what date would you like the booking?",
	FieldTime:    "What time should I book the table?",
	FieldCuisine: "What cuisine would you prefer? Italian, Chinese, Indian, or something else?",
	FieldSpecial: "Any special requests such as birthday, anniversary, or dietary needs?",
}

// Submitter sends a completed booking to the backend and composes the spoken
// confirmation. ok is false on any transport or server failure.
type Submitter interface {
	Submit(ctx context.Context, s Slots) (message string, ok bool)
}

// Controller is the turn-by-turn dialogue engine for one booking session.
// It owns the slot state and the expected-field pointer; nothing else
// mutates them. Not safe for concurrent use — each session drives exactly
// one controller from a single loop.
type Controller struct {
	slots    Slots
	expected Field
	state    State

	dates     *DateParser
	fallback  extract.Extractor // may be nil (no fallback service)
	submitter Submitter
}

// NewController builds a controller with empty slot state.
func NewController(dates *DateParser, fallback extract.Extractor, submitter Submitter) *Controller {
	if dates == nil {
		dates = NewDateParser()
	}
	return &Controller{dates: dates, fallback: fallback, submitter: submitter}
}

// Slots returns a copy of the current slot state.
func (c *Controller) Slots() Slots { return c.slots }

// Expected returns the field the last question asked about.
func (c *Controller) Expected() Field { return c.expected }

// State returns the current dialogue phase.
func (c *Controller) State() State { return c.state }

// Turn consumes one user utterance and returns what the assistant should say
// next. Every recognized failure inside a turn resolves to either asking
// again or resetting the form; Turn never returns an error.
func (c *Controller) Turn(ctx context.Context, utterance string) string {
	if c.state == StateConfirming {
		return c.confirmTurn(ctx, utterance)
	}
	return c.collectTurn(ctx, utterance)
}

func (c *Controller) collectTurn(ctx context.Context, utterance string) string {
	// Context-directed extraction for the field just asked about, then the
	// unconditional fallback pass filling any remaining gaps.
	applyExpected(&c.slots, c.expected, utterance, c.dates)
	if c.fallback != nil {
		if proposals, ok := c.fallback.Extract(ctx, utterance); ok {
			applyProposals(&c.slots, proposals)
		}
	}

	if c.slots.Complete() {
		c.state = StateConfirming
		c.expected = FieldNone
		return c.summary()
	}

	next := c.slots.NextUnfilled()
	c.expected = next
	return questions[next]
}

func (c *Controller) confirmTurn(ctx context.Context, utterance string) string {
	verdict := ClassifyConfirmation(utterance)

	// Anything but a clear yes cancels; only the message differs.
	switch verdict {
	case VerdictNo:
		c.reset()
		return cancelledText
	case VerdictUnclear:
		c.reset()
		return notUnderstoodText
	}

	message, ok := c.submitter.Submit(ctx, c.slots)
	c.reset()
	if !ok {
		return submitFailedText
	}
	return message
}

func (c *Controller) summary() string {
	return fmt.Sprintf(`Here is your booking summary:

Name: %s
Guests: %d
Date: %s
Time: %s
Cuisine: %s
Special Request: %s

Would you like to confirm this booking?
Say yes or no.`,
		c.slots.Name, c.slots.Guests, c.slots.Date, c.slots.Time, c.slots.Cuisine, c.slots.Special)
}

func (c *Controller) reset() {
	c.slots.Reset()
	c.expected = FieldNone
	c.state = StateCollecting
}
