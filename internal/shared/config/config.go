package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/channel-mirror/internal/shared/domain"
	"github.com/reshetovitsme/channel-mirror/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	TelegramBotToken    string        `koanf:"telegram_bot_token"`
	WorkerBotToken      string        `koanf:"worker_bot_token"`
	TelegramAPIURL      string        `koanf:"telegram_api_url"`
	StoragePath         string        `koanf:"storage_path"`
	HTTPPort            string        `koanf:"http_port"`
	AllowedUsers        []int64       `koanf:"allowed_users"`
	AppEnv              domain.AppEnv `koanf:"app_env"`
	LogLevel            string        `koanf:"log_level"`
	MaxParallelSends    int           `koanf:"max_parallel_sends"`
	SendTimeout         time.Duration `koanf:"send_timeout"`
	SendRatePerMinute   int           `koanf:"send_rate_per_minute"`
	PromptTTL           time.Duration `koanf:"prompt_ttl"`
	DeliveredTTL        time.Duration `koanf:"delivered_ttl"`
	DeliveredMaxEntries int           `koanf:"delivered_max_entries"`
	JournalTTL          time.Duration `koanf:"journal_ttl"`
	PruneSchedule       string        `koanf:"prune_schedule"`
	IngestToken         string        `koanf:"ingest_token"`
}

var defaults = map[string]any{
	"telegram_api_url":      "https://api.telegram.org",
	"storage_path":          "./data",
	"http_port":             "8080",
	"app_env":               "production",
	"log_level":             "info",
	"max_parallel_sends":    8,
	"send_timeout":          "30s",
	"send_rate_per_minute":  20,
	"prompt_ttl":            "5m",
	"delivered_ttl":         "72h",
	"delivered_max_entries": 10000,
	"journal_ttl":           "720h",
	"prune_schedule":        "@every 1h",
}

func Load() (*Config, error) {
	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, oops.With("context", "loading .env").Wrap(err)
	}

	return load(".")
}

func load(dir string) (*Config, error) {
	k := koanf.New(".")

	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	configFile, found := lo.Find(configFiles, func(name string) bool {
		_, err := os.Stat(filepath.Join(dir, name))
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(filepath.Join(dir, configFile)), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	for key, value := range defaults {
		if !k.Exists(key) {
			if err := k.Set(key, value); err != nil {
				return nil, oops.With("key", key).Wrap(err)
			}
		}
	}

	// allowed_users arrives as a comma-separated string from env, a list from files
	allowedUsers := k.Get("allowed_users")
	k.Delete("allowed_users")

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if allowedUsers != nil {
		switch v := allowedUsers.(type) {
		case string:
			cfg.AllowedUsers = ParseAllowedUsers(v)
		case []interface{}:
			cfg.AllowedUsers = lo.FilterMap(v, func(item interface{}, _ int) (int64, bool) {
				switch val := item.(type) {
				case int64:
					return val, true
				case int:
					return int64(val), true
				case float64:
					return int64(val), true
				default:
					return 0, false
				}
			})
		}
	}

	if env, err := domain.ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = env
	} else {
		cfg.AppEnv = domain.AppEnvProduction
	}

	if cfg.TelegramBotToken == "" {
		return nil, errors.ErrMissingBotToken
	}
	if cfg.WorkerBotToken == "" {
		cfg.WorkerBotToken = cfg.TelegramBotToken
	}
	if cfg.MaxParallelSends < 1 {
		cfg.MaxParallelSends = 1
	}

	return &cfg, nil
}

// ParseAllowedUsers parses comma-separated user IDs string into []int64
func ParseAllowedUsers(s string) []int64 {
	if s == "" {
		return []int64{}
	}
	parts := strings.Split(s, ",")
	return lo.FilterMap(parts, func(part string, _ int) (int64, bool) {
		part = strings.TrimSpace(part)
		if part == "" {
			return 0, false
		}
		var id int64
		if _, err := fmt.Sscanf(part, "%d", &id); err == nil {
			return id, true
		}
		return 0, false
	})
}

// SharedBot reports whether control and worker run on the same bot token.
func (c *Config) SharedBot() bool {
	return c.WorkerBotToken == c.TelegramBotToken
}
