package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// EnvConfig names the config file to load.
	EnvConfig = "USELIST_CONFIG"
	// EnvLogLevel sets the log level (debug, info, warn, error).
	EnvLogLevel = "USELIST_LOG_LEVEL"
)

// Env holds settings taken from the environment.
type Env struct {
	ConfigPath string
	LogLevel   string
}

// LoadEnv reads dir/.env (if present) and overlays the process environment,
// which wins over the file.
func LoadEnv(dir string) (Env, error) {
	vars := map[string]string{}

	path := filepath.Join(dir, ".env")
	fileVars, err := godotenv.Read(path)
	switch {
	case err == nil:
		vars = fileVars
	case errors.Is(err, os.ErrNotExist):
	default:
		return Env{}, fmt.Errorf("load env file %q: %w", path, err)
	}

	for _, key := range []string{EnvConfig, EnvLogLevel} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	return Env{
		ConfigPath: vars[EnvConfig],
		LogLevel:   vars[EnvLogLevel],
	}, nil
}
