package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server-level settings. Database settings are read by
// internal/database directly, matching the env names the deploy scripts use.
type Config struct {
	Port       string
	PublicDir  string // static Mini App assets
	BooksDir   string // directory scanned for the book PDF
	ContentDir string // per-level question JSON files

	WebAppURL string // public URL the bot's inline button opens
	BotToken  string // empty disables the Telegram bot

	MockAssistant  bool
	AnthropicModel string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		PublicDir:      getEnv("PUBLIC_DIR", "public"),
		BooksDir:       getEnv("BOOKS_DIR", "books"),
		ContentDir:     getEnv("CONTENT_DIR", "content"),
		WebAppURL:      getEnv("WEB_APP_URL", "https://your-domain.com"),
		BotToken:       os.Getenv("BOT_TOKEN"),
		MockAssistant:  os.Getenv("MOCK_ASSISTANT") == "true",
		AnthropicModel: getEnv("ANTHROPIC_MODEL", "claude-opus-4-5-20251101"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
