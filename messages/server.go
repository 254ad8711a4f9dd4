package messages

// Error codes
const (
	ErrCodeInvalidMessage     = "INVALID_MESSAGE"
	ErrCodeSessionFailed      = "SESSION_FAILED"
	ErrCodeTranscriptionError = "TRANSCRIPTION_ERROR"
	ErrCodeConnectionClosed   = "CONNECTION_CLOSED"
	ErrCodeBufferFull         = "BUFFER_FULL"
)

// Message types
const (
	TypeReply      = "reply"
	TypeTranscript = "transcript"
	TypeAudio      = "audio"
	TypeStatus     = "status"
	TypeError      = "error"
)

// ServerMessage represents a message sent to a gateway client
type ServerMessage struct {
	Type      string      `json:"type"` // "reply", "transcript", "audio", "status", "error"
	SessionID string      `json:"sessionId,omitempty"`
	Payload   interface{} `json:"payload"`
}

// ReplyPayload contains an assistant reply
type ReplyPayload struct {
	Text string `json:"text"`
}

// TranscriptPayload echoes back what the agent heard
type TranscriptPayload struct {
	Text string `json:"text"`
}

// AudioResponsePayload contains synthesized reply audio for the client
type AudioResponsePayload struct {
	Data     string `json:"data"`     // Base64-encoded audio
	MimeType string `json:"mimeType"` // "audio/wav"
}

// StatusPayload contains status updates
type StatusPayload struct {
	Status  string `json:"status"` // "connected", "pong", "disconnected"
	Message string `json:"message,omitempty"`
}

// ErrorPayload contains error information
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewReplyMessage creates an assistant reply message
func NewReplyMessage(sessionID, text string) *ServerMessage {
	return &ServerMessage{
		Type:      TypeReply,
		SessionID: sessionID,
		Payload: ReplyPayload{
			Text: text,
		},
	}
}

// NewTranscriptMessage creates a transcript echo message
func NewTranscriptMessage(sessionID, text string) *ServerMessage {
	return &ServerMessage{
		Type:      TypeTranscript,
		SessionID: sessionID,
		Payload: TranscriptPayload{
			Text: text,
		},
	}
}

// NewAudioMessage creates a reply audio message
func NewAudioMessage(sessionID, data string) *ServerMessage {
	return &ServerMessage{
		Type:      TypeAudio,
		SessionID: sessionID,
		Payload: AudioResponsePayload{
			Data:     data,
			MimeType: "audio/wav",
		},
	}
}

// NewStatusMessage creates a status message
func NewStatusMessage(sessionID, status, message string) *ServerMessage {
	return &ServerMessage{
		Type:      TypeStatus,
		SessionID: sessionID,
		Payload: StatusPayload{
			Status:  status,
			Message: message,
		},
	}
}

// NewErrorMessage creates an error message
func NewErrorMessage(sessionID, code, message string) *ServerMessage {
	return &ServerMessage{
		Type:      TypeError,
		SessionID: sessionID,
		Payload: ErrorPayload{
			Code:    code,
			Message: message,
		},
	}
}
