package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tablevoice/agent"
	"tablevoice/backendapi"
	"tablevoice/booking"
	"tablevoice/config"
	"tablevoice/extract"
	"tablevoice/gemini"
	"tablevoice/groq"
	"tablevoice/server"
	"tablevoice/session"
	"tablevoice/speech"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var groqClient *groq.Client
	if cfg.GroqAPIKey != "" {
		groqClient = groq.NewClient(groq.Options{
			APIKey:         cfg.GroqAPIKey,
			ExtractModel:   cfg.ExtractModel,
			WhisperModel:   cfg.WhisperModel,
			TTSModel:       cfg.TTSModel,
			TTSVoice:       cfg.TTSVoice,
			ExtractTimeout: cfg.ExtractTimeout,
		})
	}

	// Fallback extraction backend
	var fallback extract.Extractor
	switch cfg.ExtractorBackend {
	case "groq":
		fallback = groqClient
	case "gemini":
		geminiExtractor, err := gemini.NewExtractor(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ExtractTimeout)
		if err != nil {
			log.Fatalf("Failed to create Gemini extractor: %v", err)
		}
		fallback = geminiExtractor
	case "none":
		log.Println("⚠️ Fallback extraction disabled, using pattern rules only")
	}

	submitter := backendapi.NewClient(cfg.BackendURL, cfg.DefaultCity)

	newController := func() *booking.Controller {
		dates := booking.NewDateParser()
		dates.RejectPast = cfg.RejectPastDates
		return booking.NewController(dates, fallback, submitter)
	}

	switch cfg.Mode {
	case "console":
		runConsole(newController())

	case "gateway":
		runGateway(cfg, newController, groqClient)

	default:
		log.Fatalf("Unknown AGENT_MODE: %s", cfg.Mode)
	}
}

// runConsole drives the conversation loop on stdin/stdout
func runConsole(controller *booking.Controller) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("\nReceived shutdown signal...")
		cancel()
	}()

	a := agent.New(agent.NewStdinListener(os.Stdin, os.Stdout), speech.ConsoleSpeaker{}, controller)
	if err := a.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Agent error: %v", err)
	}
	log.Println("Conversation ended")
}

// runGateway serves dialogue sessions over WebSocket
func runGateway(cfg *config.Config, newController session.ControllerFactory, groqClient *groq.Client) {
	var synthesizer speech.Synthesizer
	if cfg.TTSEnabled {
		synthesizer = groqClient
	}

	sessionManager, err := session.NewManager(cfg, newController, groqClient, synthesizer)
	if err != nil {
		log.Fatalf("Failed to create session manager: %v", err)
	}

	// Start cleanup routine
	ctx, cancel := context.WithCancel(context.Background())
	go sessionManager.StartCleanupRoutine(ctx)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	srv := server.NewServerWebsocket(cfg, sessionManager)

	go func() {
		<-sigChan
		log.Println("\nReceived shutdown signal...")
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server stopped")
}
