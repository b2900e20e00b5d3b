package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	Port               string
	Env                string
	JWTSecret          string
	JWTExpiry          time.Duration
	CORSAllowedOrigins []string

	GoogleAPIKey string
	GeminiModel  string

	GitHubToken  string
	GitHubOwner  string
	GitHubRepo   string
	GitHubBranch string
	DocsPrefix   string

	DocsDir   string
	UsersFile string

	DefaultUser     string
	DefaultPassword string
}

func Load() Config {
	cfg := Config{
		Port:      getEnv("PORT", "3333"),
		Env:       getEnv("ENV", "development"),
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTExpiry: 7 * 24 * time.Hour,

		CORSAllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ","),

		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		GitHubOwner:  getEnv("GITHUB_OWNER", "moreira-m"),
		GitHubRepo:   getEnv("GITHUB_REPO", "my-notes"),
		GitHubBranch: getEnv("GITHUB_BRANCH", "main"),
		DocsPrefix:   getEnv("DOCS_PREFIX", "apps/web/docs"),

		DocsDir:   getEnv("DOCS_DIR", "./docs"),
		UsersFile: getEnv("USERS_FILE", "./users.json"),

		DefaultUser:     os.Getenv("DEFAULT_USER"),
		DefaultPassword: os.Getenv("DEFAULT_PASSWORD"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-me" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

// GitHubConfigured reports whether the remote (GitHub) document store should
// be used. The presence of GITHUB_TOKEN selects the mode for the whole
// process lifetime.
func (c Config) GitHubConfigured() bool {
	return c.GitHubToken != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
