package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Flags(t *testing.T) {
	v := viper.New()
	cmd := newRootCommand(v)

	require.NoError(t, cmd.ParseFlags([]string{"--port", "9090", "--log-level", "debug"}))
	assert.Equal(t, 9090, v.GetInt("server.port"))
	assert.Equal(t, "debug", v.GetString("log.level"))
}

func TestRootCommand_MissingSupabase(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_SERVICE_KEY", "")
	t.Setenv("SUPABASE_ANON_KEY", "")

	cmd := newRootCommand(viper.New())
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supabase.url is required")
}
