// Package agent runs the turn-based conversation loop for a local console
// session: listen, run one dialogue turn, speak, repeat.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"tablevoice/booking"
	"tablevoice/speech"
)

// Listener produces the next user utterance. Implementations block until an
// utterance is available; io.EOF ends the conversation.
type Listener interface {
	Listen(ctx context.Context) (string, error)
}

// StdinListener reads utterances line by line from an input stream. It
// stands in for the microphone-plus-transcription path, which lives on the
// other side of the gateway.
type StdinListener struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewStdinListener reads from r and writes its prompt to out.
func NewStdinListener(r io.Reader, out io.Writer) *StdinListener {
	return &StdinListener{scanner: bufio.NewScanner(r), out: out}
}

func (l *StdinListener) Listen(ctx context.Context) (string, error) {
	fmt.Fprint(l.out, "You: ")
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return l.scanner.Text(), nil
}

// Agent drives one dialogue controller from a listener/speaker pair. All
// turns are strictly sequential; the agent owns the controller exclusively.
type Agent struct {
	listener   Listener
	speaker    speech.Speaker
	controller *booking.Controller
}

// New wires up a conversation loop.
func New(listener Listener, speaker speech.Speaker, controller *booking.Controller) *Agent {
	return &Agent{listener: listener, speaker: speaker, controller: controller}
}

// Run greets the user and loops turn by turn until the context is cancelled
// or the listener is exhausted. io.EOF is a clean shutdown.
func (a *Agent) Run(ctx context.Context) error {
	a.speaker.Say(booking.GreetingText)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		utterance, err := a.listener.Listen(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("listen failed: %w", err)
		}
		if strings.TrimSpace(utterance) == "" {
			continue
		}

		a.speaker.Say(a.controller.Turn(ctx, utterance))
	}
}
