// Package groq wraps Groq's OpenAI-compatible API: Whisper transcription,
// llama-based fallback extraction, and speech synthesis.
package groq

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"tablevoice/extract"
	"tablevoice/speech"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// Client talks to the Groq API. It serves as both the fallback extraction
// backend and the speech-to-text / text-to-speech collaborator.
type Client struct {
	api            *openai.Client
	extractModel   string
	whisperModel   string
	ttsModel       string
	ttsVoice       string
	extractTimeout time.Duration
}

// Options configures a Client.
type Options struct {
	APIKey         string
	BaseURL        string // defaults to the Groq endpoint
	ExtractModel   string
	WhisperModel   string
	TTSModel       string
	TTSVoice       string
	ExtractTimeout time.Duration
}

// NewClient builds a Groq client.
func NewClient(opts Options) *Client {
	cfg := openai.DefaultConfig(opts.APIKey)
	cfg.BaseURL = opts.BaseURL
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	return &Client{
		api:            openai.NewClientWithConfig(cfg),
		extractModel:   opts.ExtractModel,
		whisperModel:   opts.WhisperModel,
		ttsModel:       opts.TTSModel,
		ttsVoice:       opts.TTSVoice,
		extractTimeout: opts.ExtractTimeout,
	}
}

// Extract implements extract.Extractor: one chat completion asking the model
// for a JSON object over the six booking slots. Transport errors and
// malformed output both degrade to zero proposals.
func (c *Client) Extract(ctx context.Context, utterance string) (extract.Proposals, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.extractTimeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.extractModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: extract.PromptFor(utterance),
			},
		},
	})
	if err != nil {
		log.Printf("⚠️ Groq extraction failed: %v", err)
		return extract.Proposals{}, false
	}
	if len(resp.Choices) == 0 {
		return extract.Proposals{}, false
	}

	return extract.Parse(resp.Choices[0].Message.Content)
}

// Transcribe implements speech.Transcriber: frames raw 16kHz mono 16-bit PCM
// as WAV and sends it to the Whisper model, returning a single transcript.
func (c *Client) Transcribe(ctx context.Context, pcm []byte) (string, error) {
	if len(pcm) == 0 {
		return "", nil
	}

	wav := speech.WAVFromPCM(pcm)

	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.whisperModel,
		FilePath: "audio.wav",
		Reader:   bytes.NewReader(wav),
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	return resp.Text, nil
}

// Synthesize implements speech.Synthesizer: renders the reply text to audio
// bytes in WAV format.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := c.api.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(c.ttsModel),
		Input:          text,
		Voice:          openai.SpeechVoice(c.ttsVoice),
		ResponseFormat: openai.SpeechResponseFormatWav,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesized audio: %w", err)
	}
	return audio, nil
}
