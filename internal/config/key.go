package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// placeholderKey is the value shipped in .env templates; treating it as
// absent stops requests that would only ever get a 401 back.
const placeholderKey = "YOUR_API_KEY_HERE"

// LoadAPIKey resolves the OpenAI API key. When the env file exists it is
// loaded into the environment first; variables that are already set win.
// A missing or placeholder key is an error, and it is the only failure in
// a generate run that callers treat as fatal.
func LoadAPIKey(envFile string) (string, error) {
	path, err := ExpandHome(envFile)
	if err != nil {
		return "", err
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return "", fmt.Errorf("loading %s: %w", path, err)
			}
		}
	}

	key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if key == "" || strings.Contains(key, placeholderKey) {
		return "", fmt.Errorf("OPENAI_API_KEY is missing or still the placeholder: set it in %s or export it", envFile)
	}
	return key, nil
}
