package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"copyfx/internal/domain/entities"
	"copyfx/internal/domain/repositories"
)

var (
	ErrMissingAPIKey  = errors.New("GEMINI_API_KEY environment variable not set. Please set it before running")
	ErrMissingProject = errors.New("PROJECT_ID environment variable not set (required with GOOGLE_GENAI_USE_VERTEXAI)")
)

type Config struct {
	APIKey      string
	UseVertexAI bool
	ProjectID   string
	Location    string
	BaseURL     string

	Model       string
	EffectsFile string
	Port        string
	LogLevel    string
}

// Load reads the configuration from the environment, after loading .env from
// the working directory if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := FromEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func FromEnv(getenv func(string) string) *Config {
	projectID := getenv("PROJECT_ID")
	if projectID == "" {
		projectID = getenv("GOOGLE_CLOUD_PROJECT")
	}

	return &Config{
		APIKey:      getenv("GEMINI_API_KEY"),
		UseVertexAI: strings.EqualFold(getenv("GOOGLE_GENAI_USE_VERTEXAI"), "true"),
		ProjectID:   projectID,
		Location:    valueOrDefault(getenv("LOCATION"), "us-central1"),
		BaseURL:     getenv("GENAI_BASE_URL"),
		Model:       valueOrDefault(getenv("IMAGE_MODEL"), entities.DefaultImageModel),
		EffectsFile: getenv("EFFECTS_FILE"),
		Port:        valueOrDefault(getenv("PORT"), "8080"),
		LogLevel:    valueOrDefault(getenv("LOG_LEVEL"), "info"),
	}
}

// Validate checks that a credential for the selected backend is present.
func (c *Config) Validate() error {
	if c.UseVertexAI {
		if c.ProjectID == "" {
			return ErrMissingProject
		}
		return nil
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (c *Config) AIClientConfig() *repositories.AIClientConfig {
	return &repositories.AIClientConfig{
		APIKey:      c.APIKey,
		UseVertexAI: c.UseVertexAI,
		ProjectID:   c.ProjectID,
		Location:    c.Location,
		BaseURL:     c.BaseURL,
	}
}

func valueOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
