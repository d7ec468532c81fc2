package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "service-key")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "https://project.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "service-key", cfg.Supabase.Key)
	assert.Equal(t, "public", cfg.Supabase.Schema)
	assert.Equal(t, "species", cfg.Supabase.Table)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "X-User-Id", cfg.Auth.UserHeader)
}

func TestLoad_AnonKeyFallback(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "anon-key", cfg.Supabase.Key)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_SERVICE_KEY", "")
	t.Setenv("SUPABASE_ANON_KEY", "")

	_, err := Load(viper.New(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supabase.url is required")
	assert.Contains(t, err.Error(), "supabase.key is required")
}

func TestLoad_ConfigFile(t *testing.T) {
	// Empty variables are ignored, so the file values show through.
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("SUPABASE_SERVICE_KEY", "from-env")

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := []byte(`
server:
  port: 7070
supabase:
  url: https://file.supabase.co
  key: from-file
  table: creatures
log:
  format: text
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "https://file.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "from-env", cfg.Supabase.Key, "environment wins over the file")
	assert.Equal(t, "creatures", cfg.Supabase.Table)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Server:   ServerConfig{Port: 70000},
		Supabase: SupabaseConfig{URL: "https://x.supabase.co", Key: "k"},
		Log:      LogConfig{Format: "xml"},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port 70000 is out of range")
	assert.Contains(t, err.Error(), `log.format "xml" must be json or text`)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LogConfig{Level: "warn", Format: "json"}, &buf)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	log = NewLogger(LogConfig{Level: "loud", Format: "text"}, &buf)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
	assert.Contains(t, buf.String(), "Unknown log level")
}

func TestNewSupabaseClient(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LogConfig{Level: "info"}, &buf)

	client, err := NewSupabaseClient(SupabaseConfig{URL: "https://x.supabase.co/", Key: "k", Schema: "public"}, log)
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = NewSupabaseClient(SupabaseConfig{URL: "https://x.supabase.co"}, log)
	assert.Error(t, err)
}
