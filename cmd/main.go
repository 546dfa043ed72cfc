package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/lecture_notes/internal/config"
	"github.com/Vovarama1992/lecture_notes/internal/delivery"
	"github.com/Vovarama1992/lecture_notes/internal/delivery/ws"
	"github.com/Vovarama1992/lecture_notes/internal/domain"
	"github.com/Vovarama1992/lecture_notes/internal/media"
	"github.com/Vovarama1992/lecture_notes/internal/notes"
	"github.com/Vovarama1992/lecture_notes/internal/sessions"
	"github.com/Vovarama1992/lecture_notes/internal/stt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG INIT
	// =========================================================================

	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.Setup(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	decoder := media.NewFFmpegDecoder(cfg.Pipeline.FFmpegPath, cfg.Pipeline.SampleRate)
	mediaService := media.NewService(decoder, os.TempDir(), cfg.Pipeline.SampleRate)

	store := sessions.NewStore(
		time.Duration(cfg.Sessions.TTLMinutes)*time.Minute,
		time.Duration(cfg.Sessions.SweepMinutes)*time.Minute,
	)

	hub := ws.NewHub()

	// =========================================================================
	// CLIENTS (STT / SUMMARIZATION)
	// =========================================================================

	var sttClient stt.Client
	switch cfg.STT.Provider {
	case "deepgram":
		sttClient = stt.NewDeepgramClient(cfg.STT.Language)
	case "whisper":
		sttClient = stt.NewWhisperClient(cfg.STT.Language)
	default:
		log.Fatalf("unknown stt provider: %s", cfg.STT.Provider)
	}

	var notesClient notes.Client
	switch cfg.Summarizer.Provider {
	case "huggingface":
		notesClient = notes.NewHuggingFaceClient(
			cfg.Summarizer.Model,
			cfg.Summarizer.MaxLength,
			cfg.Summarizer.MinLength,
		)
	case "openai":
		notesClient = notes.NewOpenAIClient(cfg.Summarizer.MaxLength)
	case "gemini":
		notesClient, err = notes.NewGeminiClient(context.Background(), cfg.Summarizer.Model)
		if err != nil {
			log.Fatalf("gemini client: %v", err)
		}
	case "perplexity":
		notesClient = notes.NewPerplexityClient(cfg.Summarizer.MaxLength)
	default:
		log.Fatalf("unknown summarizer provider: %s", cfg.Summarizer.Provider)
	}

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	sttService := stt.NewService(sttClient)
	notesService := notes.NewService(notesClient, cfg.Summarizer.MaxLength)

	lectureService := domain.NewLectureService(
		mediaService,
		sttService,
		notesService,
		store,
		hub,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	if !cfg.Server.CORSEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		}))
	}

	// HANDLERS
	lectureHandler := delivery.NewLectureHandler(lectureService, zl)
	feedbackHandler := delivery.NewFeedbackHandler()

	// ROUTES
	delivery.RegisterRoutes(r, lectureHandler, feedbackHandler, hub)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := cfg.ListenAddr()
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "lecture_notes",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
