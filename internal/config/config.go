package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Tracker TrackerConfig `mapstructure:"tracker"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	MiddlewareTimeout time.Duration `mapstructure:"middleware_timeout"`
	// MaxBodyBytes bounds request bodies; photos arrive base64 encoded.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LLMConfig configures the vision providers used for meal photo analysis
type LLMConfig struct {
	DefaultProvider string          `mapstructure:"default_provider"`
	Timeout         time.Duration   `mapstructure:"timeout"`
	MaxTokens       int             `mapstructure:"max_tokens"`
	Temperature     float64         `mapstructure:"temperature"`
	OpenAI          OpenAIConfig    `mapstructure:"openai"`
	Anthropic       AnthropicConfig `mapstructure:"anthropic"`
	Ollama          OllamaConfig    `mapstructure:"ollama"`
	Gemini          GeminiConfig    `mapstructure:"gemini"`
	Vertex          VertexConfig    `mapstructure:"vertex"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	// Detail is the image_url detail hint (low, high, auto).
	Detail string `mapstructure:"detail"`
}

type AnthropicConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

type OllamaConfig struct {
	Host         string `mapstructure:"host"`
	DefaultModel string `mapstructure:"default_model"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type VertexConfig struct {
	ProjectID       string `mapstructure:"project_id"`
	Location        string `mapstructure:"location"`
	CredentialsFile string `mapstructure:"credentials_file"`
	Model           string `mapstructure:"model"`
}

// TrackerConfig selects the key-value store holding per-device counters
type TrackerConfig struct {
	Store string        `mapstructure:"store"`
	TTL   time.Duration `mapstructure:"ttl"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LoggingConfig struct {
	Level  string        `mapstructure:"level"`
	Format string        `mapstructure:"format"`
	File   string        `mapstructure:"file"`
	MaxAge time.Duration `mapstructure:"max_age"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file path
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/config.yaml"
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	// Override with environment variables
	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "15s")
	v.SetDefault("server.middleware_timeout", "75s")
	v.SetDefault("server.max_body_bytes", 15<<20)

	// Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	// LLM
	v.SetDefault("llm.default_provider", "openai")
	v.SetDefault("llm.timeout", "60s")
	v.SetDefault("llm.max_tokens", 1000)
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.openai.model", "gpt-4o")
	v.SetDefault("llm.openai.detail", "high")
	v.SetDefault("llm.anthropic.base_url", "https://api.anthropic.com/v1")
	v.SetDefault("llm.ollama.default_model", "llava")
	v.SetDefault("llm.gemini.model", "gemini-1.5-flash")
	v.SetDefault("llm.vertex.location", "us-central1")
	v.SetDefault("llm.vertex.model", "gemini-1.5-flash")

	// Tracker
	v.SetDefault("tracker.store", "memory")
	v.SetDefault("tracker.ttl", "24h")

	// CORS
	v.SetDefault("cors.allowed_origins", []string{"*"})

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.max_age", "168h") // 7 days

	// Metrics
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

func bindEnvVars(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "SERVER_PORT")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// LLM
	v.BindEnv("llm.default_provider", "LLM_PROVIDER")
	v.BindEnv("llm.openai.api_key", "OPENAI_API_KEY")
	v.BindEnv("llm.openai.base_url", "OPENAI_BASE_URL")
	v.BindEnv("llm.openai.model", "OPENAI_MODEL")
	v.BindEnv("llm.anthropic.api_key", "ANTHROPIC_API_KEY")
	v.BindEnv("llm.gemini.api_key", "GEMINI_API_KEY")
	v.BindEnv("llm.ollama.host", "OLLAMA_HOST")
	v.BindEnv("llm.vertex.project_id", "GOOGLE_PROJECT_ID")
	v.BindEnv("llm.vertex.location", "GOOGLE_LOCATION")
	v.BindEnv("llm.vertex.credentials_file", "GOOGLE_CREDENTIALS_FILE")

	// Tracker
	v.BindEnv("tracker.store", "TRACKER_STORE")

	// Logging
	v.BindEnv("logging.level", "LOG_LEVEL")
	v.BindEnv("logging.file", "LOG_FILE")
}
