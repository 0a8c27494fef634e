package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`

	AzureOpenAIKey        string  `mapstructure:"AZURE_OPENAI_API_KEY"`
	AzureOpenAIEndpoint   string  `mapstructure:"AZURE_OPENAI_ENDPOINT"`
	AzureOpenAIAPIVersion string  `mapstructure:"AZURE_OPENAI_API_VERSION"`
	AzureOpenAIDeployment string  `mapstructure:"AZURE_OPENAI_DEPLOYMENT"`
	LLMTemperature        float64 `mapstructure:"LLM_TEMPERATURE"`

	KafkaBrokers []string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic   string   `mapstructure:"KAFKA_TOPIC"`

	// Tone selection thresholds and the generic fallback text are business
	// decisions, kept out of code.
	ToneYouthMaxAge      int    `mapstructure:"TONE_YOUTH_MAX_AGE"`
	ToneSeniorMinAge     int    `mapstructure:"TONE_SENIOR_MIN_AGE"`
	FallbackNotification string `mapstructure:"FALLBACK_NOTIFICATION"`

	RecommendationThreshold float64 `mapstructure:"RECOMMENDATION_THRESHOLD"`

	OtelEndpoint    string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelServiceName string `mapstructure:"OTEL_SERVICE_NAME"`
	OtelInsecure    bool   `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
}

// LLMConfigured reports whether all Azure OpenAI credentials are present.
// Without them the service still runs, serving template-based fallbacks only.
func (c *Config) LLMConfigured() bool {
	return c.AzureOpenAIKey != "" && c.AzureOpenAIEndpoint != "" && c.AzureOpenAIAPIVersion != ""
}

var cfg *Config

func NewConfig(path string) (*Config, error) {
	relativeUrl, err := GetBasePath(path)
	if err != nil {
		return nil, fmt.Errorf("error getting base path: %v", err)
	}

	vip := viper.New()
	vip.SetConfigType("env")
	vip.SetConfigName(".env")
	vip.AddConfigPath(relativeUrl)
	vip.AutomaticEnv()

	if err := vip.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	vip.BindEnv("SERVER_ADDRESS")
	vip.BindEnv("AZURE_OPENAI_API_KEY")
	vip.BindEnv("AZURE_OPENAI_ENDPOINT")
	vip.BindEnv("AZURE_OPENAI_API_VERSION")
	vip.BindEnv("AZURE_OPENAI_DEPLOYMENT")
	vip.BindEnv("LLM_TEMPERATURE")
	vip.BindEnv("KAFKA_BROKERS")
	vip.BindEnv("KAFKA_TOPIC")
	vip.BindEnv("TONE_YOUTH_MAX_AGE")
	vip.BindEnv("TONE_SENIOR_MIN_AGE")
	vip.BindEnv("FALLBACK_NOTIFICATION")
	vip.BindEnv("RECOMMENDATION_THRESHOLD")
	vip.BindEnv("OTEL_EXPORTER_OTLP_ENDPOINT")
	vip.BindEnv("OTEL_SERVICE_NAME")
	vip.BindEnv("OTEL_EXPORTER_OTLP_INSECURE")

	vip.SetDefault("SERVER_ADDRESS", ":8080")
	vip.SetDefault("AZURE_OPENAI_DEPLOYMENT", "gpt-4o-mini")
	vip.SetDefault("LLM_TEMPERATURE", 0.7)
	vip.SetDefault("KAFKA_TOPIC", "push-notifications")
	vip.SetDefault("TONE_YOUTH_MAX_AGE", 25)
	vip.SetDefault("TONE_SENIOR_MIN_AGE", 55)
	vip.SetDefault("FALLBACK_NOTIFICATION", "Ошибка генерации уведомления")
	vip.SetDefault("RECOMMENDATION_THRESHOLD", 0.5)
	vip.SetDefault("OTEL_SERVICE_NAME", "banking-notification-service")

	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %v", err)
	}
	return cfg, nil
}

func GetBasePath(path string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(cwd, "go.mod")); err == nil {
			return filepath.Join(cwd, path), nil
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			return "", errors.New("go.mod not found")
		}
		cwd = parent
	}
}

func GetConfig() *Config {
	return cfg
}

// SetTestConfig allows tests to set the global config variable directly.
func SetTestConfig(testCfg *Config) {
	cfg = testCfg
}
