package app

import (
	"time"

	"github.com/asketsystem/lifebook/internal/platform/logger"
	"github.com/asketsystem/lifebook/internal/utils"
)

type StoreMode string

const (
	StoreModeFirestore StoreMode = "firestore"
	StoreModeMemory    StoreMode = "memory"
)

type Config struct {
	Port        string
	Mode        string // "development" or "production"
	FrontendURL string

	ProviderBaseURL string
	ProviderAPIKey  string
	ProviderModel   string
	ProviderTimeout time.Duration

	FirebaseProjectID       string
	FirebaseCredentialsFile string
	StoreMode               StoreMode

	RedisAddr       string
	RateLimitWindow time.Duration
	RateLimitMax    int
}

func LoadConfig(log *logger.Logger) Config {
	windowMinutes := utils.GetEnvAsInt("RATE_LIMIT_WINDOW_MINUTES", 5, log)
	timeoutSeconds := utils.GetEnvAsInt("AI_TIMEOUT_SECONDS", 120, log)

	return Config{
		Port:        utils.GetEnv("PORT", "3001", log),
		Mode:        utils.GetEnv("APP_ENV", "development", log),
		FrontendURL: utils.GetEnv("FRONTEND_URL", "http://localhost:3000", log),

		ProviderBaseURL: utils.GetEnv("GEMINI_API_BASE", "https://openrouter.ai/api/v1", log),
		ProviderAPIKey:  utils.GetEnv("GEMINI_API_KEY", "", log),
		ProviderModel:   utils.GetEnv("GEMINI_MODEL", "google/gemma-3-4b-it:free", log),
		ProviderTimeout: time.Duration(timeoutSeconds) * time.Second,

		FirebaseProjectID:       utils.GetEnv("FIREBASE_PROJECT_ID", "", log),
		FirebaseCredentialsFile: utils.GetEnv("FIREBASE_CREDENTIALS_FILE", "", log),
		StoreMode:               StoreMode(utils.GetEnv("STORE_MODE", string(StoreModeFirestore), log)),

		RedisAddr:       utils.GetEnv("REDIS_ADDR", "", log),
		RateLimitWindow: time.Duration(windowMinutes) * time.Minute,
		RateLimitMax:    utils.GetEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 100, log),
	}
}

func (c Config) Development() bool {
	return c.Mode != "production"
}
