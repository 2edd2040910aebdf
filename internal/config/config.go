package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool

	// Target
	URL   string
	Tag   string
	Class string

	// HTTP
	HTTPTimeout time.Duration
	UserAgent   string
	Proxies     []string

	ProxyCooldown time.Duration
}

// Default returns a Config populated with the compiled-in defaults.
func Default() *Config {
	return &Config{
		LogLevel:      DefaultLogLevel,
		JSONLog:       DefaultJSONLog,
		URL:           DefaultURL,
		Tag:           DefaultTag,
		Class:         DefaultClass,
		HTTPTimeout:   DefaultHTTPTimeout,
		UserAgent:     DefaultUserAgent,
		ProxyCooldown: DefaultProxyCooldown,
	}
}

// Load builds a Config by combining defaults, an optional config file, environment variables, and CLI flags.
// Caller should pass the executing *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := Default()

	if path := flagString(cmd, "config"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	// Override from environment variables
	if v := os.Getenv("PRICEALERT_URL"); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv("PRICEALERT_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("PRICEALERT_PROXY"); v != "" {
		cfg.Proxies = splitList(v)
	}
	if v := os.Getenv("PRICEALERT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PRICEALERT_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = d
	}

	// Read CLI flags if provided
	if s := flagString(cmd, "user-agent"); s != "" {
		cfg.UserAgent = s
	}
	if s := flagString(cmd, "tag"); s != "" {
		cfg.Tag = s
	}
	if s := flagString(cmd, "class"); s != "" {
		cfg.Class = s
	}
	if s := flagString(cmd, "timeout"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid --timeout: %w", err)
		}
		cfg.HTTPTimeout = d
	}
	if f := lookupFlag(cmd, "proxy"); f != nil && f.Changed {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			cfg.Proxies = sv.GetSlice()
		}
	}
	if flagString(cmd, "json") == "true" {
		cfg.JSONLog = true
	}
	if flagString(cmd, "quiet") == "true" {
		cfg.LogLevel = "error"
	}
	if flagString(cmd, "verbose") == "true" {
		cfg.LogLevel = "debug"
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFile overlays values from a YAML (or any viper-supported) file onto cfg
func loadFile(cfg *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if v.IsSet("url") {
		cfg.URL = v.GetString("url")
	}
	if v.IsSet("user_agent") {
		cfg.UserAgent = v.GetString("user_agent")
	}
	if v.IsSet("tag") {
		cfg.Tag = v.GetString("tag")
	}
	if v.IsSet("class") {
		cfg.Class = v.GetString("class")
	}
	if v.IsSet("timeout") {
		cfg.HTTPTimeout = v.GetDuration("timeout")
	}
	if v.IsSet("proxies") {
		cfg.Proxies = v.GetStringSlice("proxies")
	}
	if v.IsSet("log_level") {
		cfg.LogLevel = strings.ToLower(v.GetString("log_level"))
	}
	if v.IsSet("json_log") {
		cfg.JSONLog = v.GetBool("json_log")
	}
	return nil
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if cmd == nil {
		return nil
	}
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.PersistentFlags().Lookup(name)
}

func flagString(cmd *cobra.Command, name string) string {
	if f := lookupFlag(cmd, name); f != nil {
		return f.Value.String()
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
