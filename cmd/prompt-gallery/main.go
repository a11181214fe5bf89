package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "promptGallery/docs"
	"promptGallery/internal/config"
	"promptGallery/internal/generator"
	"promptGallery/internal/http-server/handlers/image/deleteImage"
	"promptGallery/internal/http-server/handlers/image/favoriteImage"
	"promptGallery/internal/http-server/handlers/image/generateImage"
	"promptGallery/internal/http-server/handlers/image/getImage"
	"promptGallery/internal/http-server/handlers/image/listImages"
	"promptGallery/internal/http-server/handlers/moderation/checkContent"
	"promptGallery/internal/http-server/middleware/mwlogger"
	"promptGallery/internal/kafka/producer"
	"promptGallery/internal/lib/logger/handlers/slogpretty"
	"promptGallery/internal/lib/logger/sl"
	"promptGallery/internal/moderation"
	"promptGallery/internal/storage/postgres"
	"promptGallery/internal/uploader"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// @title        Prompt Gallery API
// @version      1.0
// @description  Generates images from text prompts, stores them in cloud storage and serves a searchable gallery.
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting prompt gallery", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	kafkaProducer, err := producer.NewProducer(&cfg.Kafka, log)
	if err != nil {
		log.Error("failed to create kafka producer", sl.Err(err))
		os.Exit(1)
	}

	moderationClient := moderation.New(&cfg.Moderation)
	generatorClient := generator.New(&cfg.Generator)
	uploaderClient := uploader.New(&cfg.Storage)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-API-Key"},
	}))

	router.Handle("/", http.FileServer(http.Dir("./static")))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/api", func(api chi.Router) {
		api.Post("/check-content", checkContent.New(log, moderationClient))
		api.Post("/generate-image", generateImage.New(log, cfg.APISecret, generatorClient, uploaderClient, storage, kafkaProducer))
		api.Get("/images", listImages.New(log, storage))
		api.Get("/images/{id}", getImage.New(log, storage))
		api.Post("/images/{id}/favorite", favoriteImage.New(log, storage, kafkaProducer))
		api.Post("/images/{id}/delete", deleteImage.New(log, storage, kafkaProducer))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", sl.Err(err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down server", sl.Err(err))
	}

	if err = storage.Close(); err != nil {
		log.Error("failed to close database", sl.Err(err))
	}

	if err = kafkaProducer.Close(); err != nil {
		log.Error("failed to close kafka producer", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
