package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the runtime configuration of the catalog server.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Supabase SupabaseConfig `mapstructure:"supabase"`
	Log      LogConfig      `mapstructure:"log"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type SupabaseConfig struct {
	URL    string `mapstructure:"url"`
	Key    string `mapstructure:"key"`
	Schema string `mapstructure:"schema"`
	Table  string `mapstructure:"table"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AuthConfig names the request header carrying the opaque user id.
type AuthConfig struct {
	UserHeader string `mapstructure:"user_header"`
}

// envBinding ties a config key to the environment variables that can set it,
// in order of precedence.
type envBinding struct {
	Key  string
	Envs []string
}

var envBindings = []envBinding{
	{"server.port", []string{"PORT"}},
	{"supabase.url", []string{"SUPABASE_URL"}},
	{"supabase.key", []string{"SUPABASE_SERVICE_KEY", "SUPABASE_ANON_KEY"}},
	{"supabase.schema", []string{"SUPABASE_SCHEMA"}},
	{"supabase.table", []string{"SUPABASE_TABLE"}},
	{"log.level", []string{"LOG_LEVEL"}},
	{"log.format", []string{"LOG_FORMAT"}},
	{"auth.user_header", []string{"USER_ID_HEADER"}},
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("supabase.schema", "public")
	v.SetDefault("supabase.table", "species")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("auth.user_header", "X-User-Id")
}

// Load reads configuration from the environment and, when configFile is not
// empty, from that file. Environment variables win over the file.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	for _, b := range envBindings {
		args := append([]string{b.Key}, b.Envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("binding %s: %w", b.Key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every missing or malformed setting at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Supabase.URL) == "" {
		errs = append(errs, errors.New("supabase.url is required (SUPABASE_URL)"))
	}
	if strings.TrimSpace(c.Supabase.Key) == "" {
		errs = append(errs, errors.New("supabase.key is required (SUPABASE_SERVICE_KEY or SUPABASE_ANON_KEY)"))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range", c.Server.Port))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be json or text", c.Log.Format))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
