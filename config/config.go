package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const DefaultFile = "config/app.yaml"

type Config struct {
	Addr      string          `yaml:"addr"`
	Log       LogConfig       `yaml:"log"`
	Redis     RedisConfig     `yaml:"redis"`
	Session   SessionConfig   `yaml:"session"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Author    AuthorConfig    `yaml:"author"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// RedisConfig is optional; an empty Addr keeps sessions in memory.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	TTL        time.Duration `yaml:"ttl"`
	CookieName string        `yaml:"cookie_name"`
}

type RateLimitConfig struct {
	Capacity int           `yaml:"capacity"`
	Window   time.Duration `yaml:"window"`
}

type AuthorConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

func Default() Config {
	return Config{
		Addr: ":8080",
		Log:  LogConfig{Level: "info", Format: "console"},
		Session: SessionConfig{
			TTL:        24 * time.Hour,
			CookieName: "finance_toolkit_session",
		},
		RateLimit: RateLimitConfig{Capacity: 60, Window: time.Minute},
		Author: AuthorConfig{
			Name: "Kevin Joseph",
			URL:  "https://www.linkedin.com/in/kevin-joseph-in/",
		},
	}
}

// Load builds the configuration from defaults, an optional .env file, an
// optional YAML file and finally environment variables. The YAML path comes
// from CONFIG_FILE, falling back to DefaultFile; a missing file is not an
// error.
func Load() (Config, error) {
	// .env is optional, but a present one must parse
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = DefaultFile
	}
	if err := cfg.mergeFile(path); err != nil {
		return Config{}, err
	}
	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	setString(&c.Addr, "ADDR")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Author.Name, "AUTHOR_NAME")
	setString(&c.Author.URL, "AUTHOR_URL")

	if err := setInt(&c.Redis.DB, "REDIS_DB"); err != nil {
		return err
	}
	if err := setInt(&c.RateLimit.Capacity, "RATE_LIMIT"); err != nil {
		return err
	}
	if err := setDuration(&c.Session.TTL, "SESSION_TTL"); err != nil {
		return err
	}
	return setDuration(&c.RateLimit.Window, "RATE_WINDOW")
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return errors.New("config: addr must not be empty")
	}
	if c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("config: rate limit capacity must be positive, got %d", c.RateLimit.Capacity)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("config: rate limit window must be positive, got %s", c.RateLimit.Window)
	}
	if c.Session.CookieName == "" {
		return errors.New("config: session cookie name must not be empty")
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = d
	return nil
}
