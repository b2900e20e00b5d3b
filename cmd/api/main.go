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
	"github.com/joho/godotenv"
	"github.com/scribemd/scribemd-go/internal/config"
	"github.com/scribemd/scribemd-go/internal/gemini"
	"github.com/scribemd/scribemd-go/internal/handler"
	"github.com/scribemd/scribemd-go/internal/middleware"
	"github.com/scribemd/scribemd-go/internal/repository"
	"github.com/scribemd/scribemd-go/internal/service"
	"github.com/scribemd/scribemd-go/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	userRepo := repository.NewUserRepository(cfg.UsersFile)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService)

	if err := authService.EnsureDefaultUser(context.Background(), cfg.DefaultUser, cfg.DefaultPassword); err != nil {
		slog.Error("creating default user failed", "error", err)
		os.Exit(1)
	}

	var store storage.DocumentStore
	mode := "local"
	if cfg.GitHubConfigured() {
		mode = "github"
		store = storage.NewGitHubStore(cfg.GitHubToken, cfg.GitHubOwner, cfg.GitHubRepo, cfg.GitHubBranch, cfg.DocsPrefix)
	} else {
		local, err := storage.NewLocalStore(cfg.DocsDir)
		if err != nil {
			slog.Error("initializing local docs store failed", "error", err)
			os.Exit(1)
		}
		store = local
	}

	docService := service.NewDocumentService(store)
	docHandler := handler.NewDocumentHandler(docService)

	geminiClient := gemini.NewClient(cfg.GoogleAPIKey, cfg.GeminiModel)
	digitizeService := service.NewDigitizeService(geminiClient)
	digitizeHandler := handler.NewDigitizeHandler(digitizeService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Backend is running!","mode":"` + mode + `"}`))
	})

	r.Get("/prompts", digitizeHandler.HandlePrompts)
	r.Get("/docs/files", docHandler.HandleListFiles)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Post("/chat", digitizeHandler.HandleChat)
		r.Post("/digitize", digitizeHandler.HandleDigitize)
		r.Post("/save", docHandler.HandleSave)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "mode", mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
