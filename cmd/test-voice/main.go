// Voice harness: connects to the gateway, streams a PCM (or WAV) file as one
// utterance, signals end_turn, and prints the transcript and replies. Reply
// audio is piped to sox when TTS is enabled on the gateway.
package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Message types matching the gateway
type ClientMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type ControlPayload struct {
	Action string `json:"action"`
}

type ServerMessage struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	Payload   json.RawMessage `json:"payload"`
}

type AudioResponsePayload struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

type TextResponsePayload struct {
	Text string `json:"text"`
}

type StatusPayload struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// AudioPlayer streams audio via sox
type AudioPlayer struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	mu     sync.Mutex
	closed bool
}

func NewAudioPlayer() *AudioPlayer {
	cmd := exec.Command("sox",
		"-t", "wav",
		"-",
		"-d",
	)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		log.Println("sox stdin error:", err)
		return nil
	}

	if err := cmd.Start(); err != nil {
		log.Println("sox start error:", err)
		return nil
	}

	return &AudioPlayer{cmd: cmd, stdin: stdin}
}

func (p *AudioPlayer) Play(audioData []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.stdin == nil {
		return
	}
	p.stdin.Write(audioData)
}

func (p *AudioPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if p.stdin != nil {
		p.stdin.Close()
	}
	if p.cmd != nil && p.cmd.Process != nil {
		p.cmd.Wait()
	}
}

func main() {
	// Flags
	serverURL := flag.String("server", "ws://localhost:8080/ws", "Gateway WebSocket URL")
	audioFile := flag.String("file", "examples/user.pcm", "Audio file to send (PCM or WAV)")
	play := flag.Bool("play", false, "Play reply audio via sox")
	flag.Parse()

	log.Printf("🔌 Connecting to %s...", *serverURL)

	conn, _, err := websocket.DefaultDialer.Dial(*serverURL, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	log.Println("✅ Connected!")

	var player *AudioPlayer
	if *play {
		player = NewAudioPlayer()
		if player == nil {
			log.Fatal("Failed to create audio player (is sox installed?)")
		}
		defer player.Close()
	}

	// Handle interrupt
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	done := make(chan struct{})

	// Read responses from the gateway
	go func() {
		defer close(done)
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				log.Println("Read error:", err)
				return
			}

			var msg ServerMessage
			if err := json.Unmarshal(message, &msg); err != nil {
				log.Println("Parse error:", err)
				continue
			}

			switch msg.Type {
			case "transcript":
				var payload TextResponsePayload
				json.Unmarshal(msg.Payload, &payload)
				fmt.Printf("🎙 Heard: %s\n", payload.Text)

			case "reply":
				var payload TextResponsePayload
				json.Unmarshal(msg.Payload, &payload)
				fmt.Printf("💬 Assistant: %s\n", payload.Text)

			case "audio":
				var payload AudioResponsePayload
				json.Unmarshal(msg.Payload, &payload)
				audioBytes, err := base64.StdEncoding.DecodeString(payload.Data)
				if err == nil && player != nil {
					log.Printf("🔊 Playing audio: %d bytes", len(audioBytes))
					player.Play(audioBytes)
				}

			case "status":
				var payload StatusPayload
				json.Unmarshal(msg.Payload, &payload)
				log.Printf("📊 Status: %s %s", payload.Status, payload.Message)

			case "error":
				log.Printf("❌ Error: %s", string(msg.Payload))
			}
		}
	}()

	// Wait for connected status
	time.Sleep(500 * time.Millisecond)

	// Load and send audio file
	log.Printf("📤 Sending audio file: %s", *audioFile)

	audioData, err := loadAudioFile(*audioFile)
	if err != nil {
		log.Fatalf("Failed to load audio: %v", err)
	}

	// Send audio in chunks (simulating real-time streaming)
	chunkSize := 3200 // 100ms at 16kHz
	for i := 0; i < len(audioData); i += chunkSize {
		end := i + chunkSize
		if end > len(audioData) {
			end = len(audioData)
		}
		chunk := audioData[i:end]

		// Send as binary (more efficient)
		if err := conn.WriteMessage(websocket.BinaryMessage, chunk); err != nil {
			log.Printf("Send error: %v", err)
			break
		}

		// Simulate real-time streaming pace
		time.Sleep(100 * time.Millisecond)
	}

	// Signal the end of the utterance so the gateway runs the turn
	endTurn := ClientMessage{Type: "control", Payload: ControlPayload{Action: "end_turn"}}
	if err := conn.WriteJSON(endTurn); err != nil {
		log.Fatalf("Failed to send end_turn: %v", err)
	}

	log.Println("✅ Audio sent, waiting for response...")

	// Wait for response or interrupt
	select {
	case <-done:
		log.Println("Connection closed")
	case <-interrupt:
		log.Println("\n👋 Interrupted, closing...")
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	case <-time.After(30 * time.Second):
		log.Println("⏰ Timeout waiting for response")
	}
}

// loadAudioFile loads PCM or WAV file and returns raw PCM bytes
func loadAudioFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Check if it's a WAV file (starts with "RIFF")
	if len(data) > 44 && string(data[0:4]) == "RIFF" {
		// Skip WAV header (44 bytes for standard WAV)
		log.Println("📁 Detected WAV file, skipping header")
		return data[44:], nil
	}

	// Assume raw PCM
	log.Println("📁 Detected raw PCM file")
	return data, nil
}
