// Package speech defines the narrow contracts the agent uses to talk to
// speech engines. Audio capture and playback stay outside the process; the
// agent only ever sees PCM buffers and transcript strings.
package speech

import (
	"context"
	"fmt"
)

// Transcriber converts a buffer of 16kHz mono 16-bit PCM audio into a single
// plain-text transcript. No partial results, no confidence scores.
type Transcriber interface {
	Transcribe(ctx context.Context, pcm []byte) (string, error)
}

// Synthesizer renders reply text to audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Speaker delivers an assistant reply to the user and blocks until done.
type Speaker interface {
	Say(text string)
}

// ConsoleSpeaker prints replies to stdout.
type ConsoleSpeaker struct{}

func (ConsoleSpeaker) Say(text string) {
	fmt.Println("Assistant:", text)
}
