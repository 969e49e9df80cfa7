package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 儲存 HTTP API、資料來源與推播的執行設定。
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	DB         DBConfig         `yaml:"db"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	Dashboard  DashboardConfig  `yaml:"dashboard"`
	Repository RepositoryConfig `yaml:"repository"`
	Notifier   NotifierConfig   `yaml:"notifier"`
	Seed       SeedConfig       `yaml:"seed"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

type DBConfig struct {
	DSN          string        `yaml:"dsn"`
	MaxOpenConns int           `yaml:"max_open_conns"`
	MaxIdleConns int           `yaml:"max_idle_conns"`
	MaxIdleTime  time.Duration `yaml:"max_idle_time"`
}

type AuthConfig struct {
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"token_ttl"`
	// Disabled 為 true 時 API 不驗證 bearer token，僅供本機開發。
	Disabled bool `yaml:"disabled"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

// DashboardConfig 控制儀表板計算。
type DashboardConfig struct {
	Timezone          string        `yaml:"timezone"`
	RecentLogLimit    int           `yaml:"recent_log_limit"`
	TransactionSample int           `yaml:"transaction_sample"`
	FetchTimeout      time.Duration `yaml:"fetch_timeout"`
}

// RepositoryConfig 設定 RemoteURL 時改從遠端紀錄服務讀取。
type RepositoryConfig struct {
	RemoteURL string        `yaml:"remote_url"`
	Token     string        `yaml:"token"`
	Timeout   time.Duration `yaml:"timeout"`
}

type NotifierConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

type TelegramConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Token    string        `yaml:"token"`
	ChatID   int64         `yaml:"chat_id"`
	Prefix   string        `yaml:"prefix"`
	Interval time.Duration `yaml:"interval"`
}

type SeedConfig struct {
	Demo bool `yaml:"demo"`
}

// LoadFromFile 從 YAML 組態檔載入設定。
func LoadFromFile(path string) (Config, error) {
	// 嘗試載入 .env 檔案（如果存在）
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg = applyDefaults(cfg)
	cfg = applyEnv(cfg)
	return cfg, nil
}

// Location 解析儀表板時區，無效時退回 UTC。
func (c DashboardConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func applyDefaults(cfg Config) Config {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.DB.MaxOpenConns == 0 {
		cfg.DB.MaxOpenConns = 5
	}
	if cfg.DB.MaxIdleConns == 0 {
		cfg.DB.MaxIdleConns = 2
	}
	if cfg.DB.MaxIdleTime == 0 {
		cfg.DB.MaxIdleTime = 15 * time.Minute
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 30 * time.Minute
	}
	if cfg.Auth.Secret == "" {
		cfg.Auth.Secret = "dev-secret-change-me"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Dashboard.Timezone == "" {
		cfg.Dashboard.Timezone = "UTC"
	}
	if cfg.Dashboard.RecentLogLimit == 0 {
		cfg.Dashboard.RecentLogLimit = 7
	}
	if cfg.Dashboard.TransactionSample == 0 {
		cfg.Dashboard.TransactionSample = 10
	}
	if cfg.Dashboard.FetchTimeout == 0 {
		cfg.Dashboard.FetchTimeout = 10 * time.Second
	}
	if cfg.Repository.Timeout == 0 {
		cfg.Repository.Timeout = 10 * time.Second
	}
	if cfg.Notifier.Telegram.Interval == 0 {
		cfg.Notifier.Telegram.Interval = 24 * time.Hour
	}
	return cfg
}

func applyEnv(cfg Config) Config {
	if val := os.Getenv("HTTP_ADDR"); val != "" {
		cfg.HTTP.Addr = val
	}
	if val := os.Getenv("PORT"); val != "" {
		cfg.HTTP.Addr = ":" + val
	}
	if val := os.Getenv("DB_DSN"); val != "" {
		cfg.DB.DSN = val
	}
	if val := os.Getenv("AUTH_SECRET"); val != "" {
		cfg.Auth.Secret = val
	}
	if val := os.Getenv("AUTH_DISABLED"); val != "" {
		cfg.Auth.Disabled = (val == "true")
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.Log.Level = strings.ToLower(val)
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		cfg.Log.Format = strings.ToLower(val)
	}
	if val := os.Getenv("DASHBOARD_TZ"); val != "" {
		cfg.Dashboard.Timezone = val
	}
	if val := os.Getenv("RECENT_LOG_LIMIT"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Dashboard.RecentLogLimit = n
		}
	}
	if val := os.Getenv("REPOSITORY_URL"); val != "" {
		cfg.Repository.RemoteURL = val
	}
	if val := os.Getenv("REPOSITORY_TOKEN"); val != "" {
		cfg.Repository.Token = val
	}
	if val := os.Getenv("TELEGRAM_TOKEN"); val != "" {
		cfg.Notifier.Telegram.Token = val
	}
	if val := os.Getenv("TELEGRAM_CHAT_ID"); val != "" {
		if id, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Notifier.Telegram.ChatID = id
		}
	}
	if val := os.Getenv("TELEGRAM_ENABLED"); val != "" {
		cfg.Notifier.Telegram.Enabled = (val == "true")
	}
	if val := os.Getenv("TELEGRAM_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Notifier.Telegram.Interval = d
		}
	}
	if val := os.Getenv("SEED_DEMO"); val != "" {
		cfg.Seed.Demo = (val == "true")
	}
	return cfg
}
