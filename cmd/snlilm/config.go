package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	envFile = ".env"

	envInPath  = "SNLILM_IN_PATH"
	envOutPath = "SNLILM_OUT_PATH"
	envPrefix  = "SNLILM_PREFIX"

	defaultInPath  = "snli_1.0"
	defaultOutPath = "snli_lm"
)

// loadEnv sets the variables of the env file that are not already set in
// the environment. A missing file is not an error.
func loadEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
