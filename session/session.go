package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"tablevoice/booking"
	"tablevoice/messages"
	"tablevoice/speech"
)

const (
	writeBufferSize = 256
	writeTimeout    = 10 * time.Second
)

// DialogueSession represents a single connected client and the booking
// conversation it is driving. Each session owns its controller exclusively;
// turns run one at a time on the read loop.
type DialogueSession struct {
	ID           string
	ClientConn   *websocket.Conn
	Controller   *booking.Controller
	AudioBuffer  *AudioBuffer // Buffer for the current spoken utterance
	CreatedAt    time.Time
	LastActivity time.Time

	transcriber speech.Transcriber
	synthesizer speech.Synthesizer // nil when TTS replies are disabled

	// Use channels for non-blocking writes
	writeChan chan any

	mu        sync.RWMutex
	closed    bool
	CloseChan chan struct{}
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewDialogueSession creates a session around a fresh dialogue controller
func NewDialogueSession(id string, clientConn *websocket.Conn, controller *booking.Controller,
	transcriber speech.Transcriber, synthesizer speech.Synthesizer, maxBufferSize int) *DialogueSession {

	ctx, cancel := context.WithCancel(context.Background())

	clientConn.SetReadLimit(512 * 1024) // 512KB max message
	clientConn.EnableWriteCompression(true)

	return &DialogueSession{
		ID:           id,
		ClientConn:   clientConn,
		Controller:   controller,
		AudioBuffer:  NewAudioBuffer(maxBufferSize),
		CreatedAt:    time.Now(),
		LastActivity: time.Now(),
		transcriber:  transcriber,
		synthesizer:  synthesizer,
		writeChan:    make(chan any, writeBufferSize),
		CloseChan:    make(chan struct{}),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Start begins message handling and greets the client
func (ds *DialogueSession) Start() {
	go ds.writePump()
	ds.queueMessage(messages.NewStatusMessage(ds.ID, "connected", "Session established"))
	ds.speak(booking.GreetingText)
	go ds.handleClientMessages()
}

// writePump handles all outgoing messages in a single goroutine
func (ds *DialogueSession) writePump() {
	defer func() {
		// Send close message before exiting
		ds.ClientConn.SetWriteDeadline(time.Now().Add(writeTimeout))
		ds.ClientConn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		)
	}()

	for {
		select {
		case <-ds.CloseChan:
			return
		case msg, ok := <-ds.writeChan:
			if !ok {
				// Channel closed, exit gracefully
				return
			}

			ds.ClientConn.SetWriteDeadline(time.Now().Add(writeTimeout))

			if err := ds.ClientConn.WriteJSON(msg); err != nil {
				return
			}

			n := len(ds.writeChan)
			for i := 0; i < n; i++ {
				select {
				case msg, ok := <-ds.writeChan:
					if !ok {
						return
					}
					if err := ds.ClientConn.WriteJSON(msg); err != nil {
						return
					}
				default:
					// No more messages, continue outer loop
				}
			}
		}
	}
}

// queueMessage adds a message to the write queue (non-blocking)
func (ds *DialogueSession) queueMessage(msg any) {
	ds.mu.RLock()
	closed := ds.closed
	ds.mu.RUnlock()
	if closed {
		return
	}
	select {
	case ds.writeChan <- msg:
		ds.mu.Lock()
		ds.LastActivity = time.Now()
		ds.mu.Unlock()
	default:
		// Queue full, drop message (shouldn't happen with proper sizing)
	}
}

// Close terminates the session and cleans up resources
func (ds *DialogueSession) Close() error {
	ds.mu.Lock()
	if ds.closed {
		ds.mu.Unlock()
		return nil
	}
	ds.closed = true
	ds.mu.Unlock()

	ds.cancel()

	// Close the write channel first to stop writePump
	close(ds.writeChan)

	// Signal close (for other goroutines waiting on this)
	close(ds.CloseChan)

	if ds.AudioBuffer != nil {
		ds.AudioBuffer.Clear()
	}

	// Close client connection - don't write close message as writePump is stopped
	if ds.ClientConn != nil {
		ds.ClientConn.Close()
	}

	return nil
}

func (ds *DialogueSession) handleClientMessages() {
	defer ds.Close()

	for {
		select {
		case <-ds.CloseChan:
			return
		default:
			messageType, message, err := ds.ClientConn.ReadMessage()
			if err != nil {
				if !ds.IsClosed() {
					log.Printf("🔌 [%s] WebSocket read error: %v", ds.ID[:8], err)
				}
				return
			}

			ds.mu.Lock()
			ds.LastActivity = time.Now()
			ds.mu.Unlock()

			// Binary messages are raw PCM audio - buffer until end_turn
			if messageType == websocket.BinaryMessage {
				log.Printf("🎤 [%s] Buffering binary audio: %d bytes from client", ds.ID[:8], len(message))
				if err := ds.AudioBuffer.Append(message); err != nil {
					ds.queueMessage(messages.NewErrorMessage(ds.ID, messages.ErrCodeBufferFull,
						fmt.Sprintf("Audio buffer full (max %d bytes)", ds.AudioBuffer.MaxSize())))
				}
				continue
			}

			// Handle text messages (JSON)
			var clientMsg messages.ClientMessage
			if err := json.Unmarshal(message, &clientMsg); err != nil {
				ds.queueMessage(messages.NewErrorMessage(ds.ID, messages.ErrCodeInvalidMessage, "Invalid message format"))
				continue
			}

			ds.processClientMessage(&clientMsg)
		}
	}
}

func (ds *DialogueSession) processClientMessage(msg *messages.ClientMessage) {
	switch msg.Type {
	case "text":
		var payload messages.TextPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			ds.queueMessage(messages.NewErrorMessage(ds.ID, messages.ErrCodeInvalidMessage, "Invalid text payload"))
			return
		}
		if strings.TrimSpace(payload.Text) == "" {
			return
		}
		ds.runTurn(payload.Text)

	case "audio":
		var payload messages.AudioPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			ds.queueMessage(messages.NewErrorMessage(ds.ID, messages.ErrCodeInvalidMessage, "Invalid audio payload"))
			return
		}
		// Decode base64 and buffer the audio
		audioBytes, err := base64.StdEncoding.DecodeString(payload.Data)
		if err != nil {
			ds.queueMessage(messages.NewErrorMessage(ds.ID, messages.ErrCodeInvalidMessage, "Invalid base64 audio data"))
			return
		}
		log.Printf("🎤 [%s] Buffering JSON audio: %d bytes from client", ds.ID[:8], len(audioBytes))
		if err := ds.AudioBuffer.Append(audioBytes); err != nil {
			ds.queueMessage(messages.NewErrorMessage(ds.ID, messages.ErrCodeBufferFull,
				fmt.Sprintf("Audio buffer full (max %d bytes)", ds.AudioBuffer.MaxSize())))
		}

	case "control":
		var payload messages.ControlPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			ds.queueMessage(messages.NewErrorMessage(ds.ID, messages.ErrCodeInvalidMessage, "Invalid control payload"))
			return
		}
		ds.handleControlMessage(&payload)

	default:
		ds.queueMessage(messages.NewErrorMessage(ds.ID, messages.ErrCodeInvalidMessage, "Unknown message type: "+msg.Type))
	}
}

func (ds *DialogueSession) handleControlMessage(payload *messages.ControlPayload) {
	switch payload.Action {
	case "ping":
		ds.queueMessage(messages.NewStatusMessage(ds.ID, "pong", ""))
	case "end_turn":
		// Flush buffered audio, transcribe, and run one dialogue turn
		ds.handleEndTurn()
	default:
		ds.queueMessage(messages.NewErrorMessage(ds.ID, messages.ErrCodeInvalidMessage, "Unknown control action: "+payload.Action))
	}
}

// handleEndTurn sends the buffered utterance through transcription and the
// dialogue controller
func (ds *DialogueSession) handleEndTurn() {
	if ds.AudioBuffer.IsEmpty() {
		log.Printf("⚠️ [%s] end_turn received but buffer is empty, ignoring", ds.ID[:8])
		return
	}

	pcm := ds.AudioBuffer.Flush()
	log.Printf("📤 [%s] Transcribing utterance: %d bytes", ds.ID[:8], len(pcm))

	transcript, err := ds.transcriber.Transcribe(ds.ctx, pcm)
	if err != nil {
		log.Printf("❌ [%s] Transcription failed: %v", ds.ID[:8], err)
		ds.queueMessage(messages.NewErrorMessage(ds.ID, messages.ErrCodeTranscriptionError, err.Error()))
		return
	}
	if strings.TrimSpace(transcript) == "" {
		log.Printf("⚠️ [%s] Empty transcript, skipping turn", ds.ID[:8])
		return
	}

	ds.queueMessage(messages.NewTranscriptMessage(ds.ID, transcript))
	ds.runTurn(transcript)
}

// runTurn feeds one utterance to the controller and delivers the reply,
// with synthesized audio when TTS is enabled
func (ds *DialogueSession) runTurn(utterance string) {
	log.Printf("💬 [%s] User: %s", ds.ID[:8], utterance)
	reply := ds.Controller.Turn(ds.ctx, utterance)
	log.Printf("💬 [%s] Assistant: %s", ds.ID[:8], reply)
	ds.speak(reply)
}

// speak queues a reply message, plus its audio rendering when available
func (ds *DialogueSession) speak(text string) {
	ds.queueMessage(messages.NewReplyMessage(ds.ID, text))

	if ds.synthesizer == nil {
		return
	}
	audio, err := ds.synthesizer.Synthesize(ds.ctx, text)
	if err != nil {
		log.Printf("⚠️ [%s] TTS synthesis failed: %v", ds.ID[:8], err)
		return
	}
	ds.queueMessage(messages.NewAudioMessage(ds.ID, base64.StdEncoding.EncodeToString(audio)))
}

// IsClosed returns whether the session is closed
func (ds *DialogueSession) IsClosed() bool {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.closed
}
