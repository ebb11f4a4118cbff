package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the Screener company page prefix; pages live at <base>/<code>/.
const DefaultBaseURL = "https://www.screener.in/company"

// Settings holds runtime configuration read from the environment.
type Settings struct {
	BaseURL       string
	Port          string
	LogLevel      string
	CompaniesFile string

	// EnvFileLoaded is false when no .env file could be read
	EnvFileLoaded bool
}

// Load reads an optional .env file, then the environment.
func Load() *Settings {
	loaded := godotenv.Load() == nil

	return &Settings{
		BaseURL:       getEnv("SCREENER_BASE_URL", DefaultBaseURL),
		Port:          getEnv("PORT", "8000"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CompaniesFile: getEnv("COMPANIES_FILE", ""),
		EnvFileLoaded: loaded,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
