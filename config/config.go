package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Environment  string                         `mapstructure:"environment"`
	Server       ServerConfig                   `mapstructure:"server"`
	Auth         AuthConfig                     `mapstructure:"auth"`
	Proxy        ProxyConfig                    `mapstructure:"proxy"`
	RateLimit    RateLimitConfig                `mapstructure:"rate_limit"`
	DebounceMS   int                            `mapstructure:"debounce_ms"`
	Environments map[string]map[string]Endpoint `mapstructure:"environments"`
}

type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type AuthConfig struct {
	CookieName string `mapstructure:"cookie_name"`
	JWTSecret  string `mapstructure:"jwt_secret"`
}

type ProxyConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type RateLimitConfig struct {
	SubmitPerMinute int `mapstructure:"submit_per_minute"`
	SubmitBurst     int `mapstructure:"submit_burst"`
}

func (p ProxyConfig) Timeout() time.Duration {
	if p.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(p.TimeoutSeconds) * time.Second
}

func (c *Config) DebounceWindow() time.Duration {
	if c.DebounceMS <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Load đọc cấu hình mặc định (nhúng sẵn), sau đó config.yaml nếu có, cuối cùng là biến môi trường.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(defaultYAML)); err != nil {
		return nil, fmt.Errorf("error reading default config: %w", err)
	}

	v.SetConfigName("config")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	} else {
		log.Printf("config: merged %s", v.ConfigFileUsed())
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("environment", "APP_ENV")
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("server.allowed_origins", "ALLOWED_ORIGINS")
	_ = v.BindEnv("auth.cookie_name", "AUTH_COOKIE")
	_ = v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("proxy.base_url", "PROXY_BASE_URL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if _, ok := cfg.Environments[cfg.Environment]; !ok {
		return nil, fmt.Errorf("unknown environment %q", cfg.Environment)
	}
	if cfg.Proxy.BaseURL == "" {
		cfg.Proxy.BaseURL = LoopbackProxyURL(cfg.Server.Port)
	}
	return &cfg, nil
}

// LoopbackProxyURL is the proxy base on this same process.
func LoopbackProxyURL(port string) string {
	if port == "" {
		port = "8080"
	}
	return "http://127.0.0.1:" + port + "/api/aws"
}

// Catalog returns the endpoint map of the active environment.
func (c *Config) Catalog() Catalog {
	return Catalog(c.Environments[c.Environment])
}
