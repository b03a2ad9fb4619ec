// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, 0.7, cfg.LLM.Temperature)
	assert.Equal(t, 4000, cfg.LLM.MaxTokens)
	assert.Equal(t, 5, cfg.Search.MaxPerDatabase)
	assert.Equal(t, time.Second, cfg.Search.RequestInterval)

	names := cfg.DatabaseNames()
	assert.Equal(t, []string{
		"arXiv", "PubMed", "IEEE Xplore", "ACM Digital Library", "ScienceDirect",
	}, names)

	assert.True(t, cfg.HasMethodology("Systematic Review"))
	assert.True(t, cfg.HasMethodology("Integrative Review"))
	assert.False(t, cfg.HasMethodology("Systematic review"))
}

func TestDatabaseNames_SkipsDisabled(t *testing.T) {
	cfg := Default()
	cfg.Databases[1].Enabled = false

	names := cfg.DatabaseNames()
	assert.NotContains(t, names, "PubMed")
	assert.Len(t, names, 4)
}

func TestFromViper_OverlaysDefaults(t *testing.T) {
	v := viper.New()
	v.Set("llm.model", "gpt-4o-mini")
	v.Set("search.max_per_database", 9)

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 9, cfg.Search.MaxPerDatabase)
	// Untouched settings keep their defaults.
	assert.Equal(t, 4000, cfg.LLM.MaxTokens)
	assert.Len(t, cfg.Databases, 5)
}

func TestSave_RoundTripThroughViper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "litreview.yaml")

	cfg := Default()
	cfg.LLM.Model = "custom-model"
	cfg.RecentProjects = []string{"/tmp/a.json"}
	require.NoError(t, Save(cfg, path))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	loaded, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "custom-model", loaded.LLM.Model)
	assert.Equal(t, []string{"/tmp/a.json"}, loaded.RecentProjects)
}

func TestAddRecentProject_FrontAndDedupe(t *testing.T) {
	cfg := Default()

	AddRecentProject(&cfg, "/tmp/a.json")
	AddRecentProject(&cfg, "/tmp/b.json")
	AddRecentProject(&cfg, "/tmp/a.json")

	assert.Equal(t, []string{"/tmp/a.json", "/tmp/b.json"}, cfg.RecentProjects)
}

func TestAddRecentProject_CapAtTen(t *testing.T) {
	cfg := Default()
	for i := 0; i < 15; i++ {
		AddRecentProject(&cfg, fmt.Sprintf("/tmp/p%d.json", i))
	}

	require.Len(t, cfg.RecentProjects, 10)
	assert.Equal(t, "/tmp/p14.json", cfg.RecentProjects[0])
	assert.Equal(t, "/tmp/p5.json", cfg.RecentProjects[9])
}

func TestLoadSecrets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openai-api-key"), []byte("sk-test\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("ignored"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty-key"), []byte("   \n"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	secrets, err := LoadSecrets(dir, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "sk-test", secrets["openai-api-key"])
	assert.NotContains(t, secrets, ".hidden")
	assert.NotContains(t, secrets, "empty-key")
	assert.NotContains(t, secrets, "subdir")
}

func TestLoadSecrets_MissingDirectory(t *testing.T) {
	secrets, err := LoadSecrets(filepath.Join(t.TempDir(), "absent"), zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, secrets)
}

func TestResolveAPIKey_Precedence(t *testing.T) {
	const envKey = "LITREVIEW_TEST_API_KEY"
	secrets := map[string]string{"openai-api-key": "from-secrets"}

	t.Setenv(envKey, "from-env")
	assert.Equal(t, "from-config", ResolveAPIKey("from-config", envKey, secrets, "openai-api-key"))
	assert.Equal(t, "from-env", ResolveAPIKey("", envKey, secrets, "openai-api-key"))

	t.Setenv(envKey, "")
	assert.Equal(t, "from-secrets", ResolveAPIKey("", envKey, secrets, "openai-api-key"))
	assert.Equal(t, "", ResolveAPIKey("", envKey, nil, "openai-api-key"))
}

func TestUserConfigPath(t *testing.T) {
	path := UserConfigPath()
	assert.Contains(t, path, DefaultFileName)
}
