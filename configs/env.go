package configs

import (
	_ "embed"
	"fmt"
	"os"

	"go-weather/pkg/msg"
	"go-weather/pkg/resource"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

//go:embed application.yml
var applicationYml []byte

//go:embed messages.yml
var messagesYml []byte

type EnvConfig struct {
	ApplicationName    string
	ContextPath        string
	PropertiesFilePath string
}

var Env *EnvConfig

// Load reads the .env file when present, then the properties and the log messages.
// Environment variables always win over .env values.
func Load() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read .env: %w", err)
	}

	env := viper.New()
	env.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName:    getStringOrDefault(env, "APPLICATION_NAME", "go-weather"),
		ContextPath:        getStringOrDefault(env, "CONTEXT_PATH", "/go-weather"),
		PropertiesFilePath: env.GetString("PROPERTIES_FILE_PATH"),
	}

	if err := resource.Load(applicationYml, Env.PropertiesFilePath); err != nil {
		return fmt.Errorf("failed to load properties: %w", err)
	}
	if err := msg.Load(messagesYml); err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}
	return nil
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
