// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// LoadSecrets reads API keys from a directory of plain-text files: the
// filename is the key name, the trimmed contents are the value. A missing
// directory is not an error; unreadable files are logged and skipped.
//
// Supported key file: openai-api-key.
func LoadSecrets(dir string, log zerolog.Logger) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Warn().Err(err).Str("secret", entry.Name()).Msg("could not read secret")
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[entry.Name()] = value
		}
	}
	return secrets, nil
}

// ResolveAPIKey picks the LLM credential with the usual precedence: an
// explicit config value, then the environment variable, then the secrets
// directory entry.
func ResolveAPIKey(configured string, envKey string, secrets map[string]string, secretName string) string {
	if configured != "" {
		return configured
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return secrets[secretName]
}
