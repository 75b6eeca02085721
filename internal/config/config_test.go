package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes the variables for the duration of the test
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "LANGSALARY_LANGUAGES", "HH_AREA", "SJ_TOWN")
	t.Setenv("SJ_TOKEN", "v3.r.token")

	cfg, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, DefaultLanguages, cfg.Languages)
	assert.Equal(t, "v3.r.token", cfg.SuperJob.Token)
	assert.Equal(t, 1, cfg.HeadHunter.Area)
	assert.Equal(t, 30, cfg.HeadHunter.PeriodDays)
	assert.Equal(t, "Программист", cfg.HeadHunter.SearchPrefix)
	assert.Equal(t, 4, cfg.SuperJob.Town)
	assert.Equal(t, 48, cfg.SuperJob.Catalogue)
	assert.Equal(t, 100, cfg.SuperJob.Count)
	assert.Equal(t, "HeadHunter Moscow", cfg.HeadHunter.Title)
	assert.Equal(t, "SuperJob Moscow", cfg.SuperJob.Title)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
}

func TestLoadReadsDotEnv(t *testing.T) {
	unsetEnv(t, "SJ_TOKEN", "LANGSALARY_LANGUAGES")
	envFile := writeFile(t, ".env", "SJ_TOKEN=from-file\nLANGSALARY_LANGUAGES=Go,Rust\n")

	cfg, err := Load("", envFile)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.SuperJob.Token)
	assert.Equal(t, []string{"Go", "Rust"}, cfg.Languages)
}

func TestLoadMissingToken(t *testing.T) {
	unsetEnv(t, "SJ_TOKEN")

	_, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	unsetEnv(t, "SJ_TOKEN", "LANGSALARY_LANGUAGES")
	t.Setenv("HH_AREA", "2")

	path := writeFile(t, "config.yaml", `
languages: [Python, Go]
headhunter:
  area: 1
  title: HeadHunter Saint Petersburg
superjob:
  token: yaml-token
  town: 14
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "Go"}, cfg.Languages)
	assert.Equal(t, 2, cfg.HeadHunter.Area)
	assert.Equal(t, "HeadHunter Saint Petersburg", cfg.HeadHunter.Title)
	assert.Equal(t, "yaml-token", cfg.SuperJob.Token)
	assert.Equal(t, 14, cfg.SuperJob.Town)
	assert.Equal(t, 48, cfg.SuperJob.Catalogue)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Languages: []string{"Go"}, SuperJob: SuperJobConfig{Token: "t"}}
	assert.NoError(t, cfg.Validate())

	cfg.Languages = []string{"Go", ""}
	assert.Error(t, cfg.Validate())

	cfg.SuperJob.Token = ""
	assert.ErrorIs(t, cfg.Validate(), ErrMissingToken)
}
