package config

import (
	"fmt"
	"reflect"

	"github.com/caarlos0/env/v11"
)

// Provider names accepted in SEARCH_PROVIDER.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderLocal     = "local"
)

// Config holds the application configuration.
type Config struct {
	EnvVars EnvVars  `json:"env"`
	Prompts *Prompts `json:"-"`
}

// EnvVars holds environment variables required by the application.
// Fields tagged `optional:"true"` are skipped by CheckConfigEnvFields.
// The completion API keys are optional here on purpose: which one is required
// depends on SEARCH_PROVIDER, and that check happens per request so a missing
// key yields a config error response instead of a crash at boot.
type EnvVars struct {
	Port            string `env:"PORT" envDefault:"8080"`
	SearchProvider  string `env:"SEARCH_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY" optional:"true"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY" optional:"true"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY" optional:"true"`
	RedisURL        string `env:"REDIS_URL" optional:"true"`
}

// LoadConfig parses environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	var config Config
	if err := env.Parse(&config.EnvVars); err != nil {
		return nil, err
	}
	return &config, nil
}

// CheckConfigEnvFields validates that all required EnvVars fields are set.
func (c *Config) CheckConfigEnvFields() error {
	return checkFieldsRecursive(reflect.ValueOf(c.EnvVars))
}

func checkFieldsRecursive(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := v.Type().Field(i)
		if fieldType.Tag.Get("optional") == "true" {
			continue
		}
		if isZeroValue(field) {
			return fmt.Errorf("$%s must be set", fieldType.Name)
		}
		if field.Kind() == reflect.Struct {
			if err := checkFieldsRecursive(field); err != nil {
				return err
			}
		}
	}
	return nil
}

func isZeroValue(v reflect.Value) bool {
	return v.Interface() == reflect.Zero(v.Type()).Interface()
}
