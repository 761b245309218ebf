package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvImageFile      = "HANGMAN_IMAGE_FILE"
	EnvDictionaryFile = "HANGMAN_DICTIONARY_FILE"
	EnvLogLevel       = "HANGMAN_LOG_LEVEL"
)

// LoadDotEnv loads variables from a dotenv file without overriding the
// environment. Missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnv returns cfg with values from the environment taking precedence.
func ApplyEnv(cfg FileConfig) FileConfig {
	if v, ok := os.LookupEnv(EnvImageFile); ok && v != "" {
		cfg.Game.ImageFile = &v
	}
	if v, ok := os.LookupEnv(EnvDictionaryFile); ok && v != "" {
		cfg.Game.DictionaryFile = &v
	}
	return cfg
}
