package resource

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var properties = viper.New()
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// Load reads the embedded defaults and, when present, the override file on top of them.
// A missing override file is not an error; a malformed one is.
func Load(defaults []byte, overridePath string) error {
	properties = viper.New()
	properties.SetConfigType("yml")

	if len(defaults) > 0 {
		if err := properties.ReadConfig(bytes.NewReader(defaults)); err != nil {
			return err
		}
	}

	if overridePath != "" {
		file, err := os.Open(overridePath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Printf("Properties file '%s' not found, using embedded defaults.", overridePath)
		case err != nil:
			return err
		default:
			defer func() { _ = file.Close() }()
			if err := properties.MergeConfig(file); err != nil {
				return err
			}
		}
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", properties.AllSettings(), resolved)
	for key, value := range resolved {
		properties.Set(key, value)
	}
	return nil
}

// LoadReader is Load without an override file, mostly for tests.
func LoadReader(reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	return Load(data, "")
}

// parsePropertiesMap flattens the YAML tree and resolves ${ENV:default} placeholders
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]interface{}:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces a ${NAME:default} value with the environment value or its default.
// An empty environment value counts as unset.
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	if envValue := os.Getenv(matches[1]); envValue != "" {
		return envValue
	}
	if len(matches) > 2 {
		return matches[2]
	}
	return ""
}

func Set(key string, value any) {
	properties.Set(key, value)
}

func IsSet(key string) bool {
	return properties.IsSet(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetStringOrDefault(key, defaultValue string) string {
	if value := properties.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetIntOrDefault(key string, defaultValue int) int {
	if !properties.IsSet(key) {
		return defaultValue
	}
	return properties.GetInt(key)
}
