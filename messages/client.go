package messages

import "encoding/json"

// ClientMessage represents a message from a gateway client
type ClientMessage struct {
	Type    string          `json:"type"` // "text", "audio", "control"
	Payload json.RawMessage `json:"payload"`
}

// TextPayload contains a typed (or externally transcribed) user utterance
type TextPayload struct {
	Text string `json:"text"`
}

// AudioPayload contains audio data from client
type AudioPayload struct {
	Data string `json:"data"` // Base64-encoded PCM audio
}

// ControlPayload contains control commands
type ControlPayload struct {
	Action string `json:"action"` // "ping", "end_turn"
}
