// Package config は環境変数と.envファイルからアプリケーション設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey はGOOGLE_API_KEYが未設定の場合に返されます。
// 起動を継続できない致命的な設定エラーです。
var ErrMissingAPIKey = errors.New("GOOGLE_API_KEY is not set")

// 環境変数キー
const (
	KeyAPIKey       = "GOOGLE_API_KEY"
	KeyModel        = "GEMINI_MODEL"
	KeyTimeout      = "GEMINI_TIMEOUT"
	KeyRateLimit    = "GEMINI_RATE_LIMIT"
	KeyRateInterval = "GEMINI_RATE_INTERVAL"
	KeyPort         = "PORT"
	KeyLogLevel     = "LOG_LEVEL"
	KeyLogFormat    = "LOG_FORMAT"
	KeyGinMode      = "GIN_MODE"
)

// DefaultModel は既定のGeminiモデルです。
const DefaultModel = "gemini-2.0-flash"

// Config はアプリケーション設定を保持します。起動後は読み取り専用として扱います。
type Config struct {
	Gemini GeminiConfig
	Server ServerConfig
	Log    LogConfig
}

// GeminiConfig はGemini APIクライアントの設定です。
type GeminiConfig struct {
	APIKey       string        // 認証用APIキー
	Model        string        // モデル識別子
	Timeout      time.Duration // HTTPリクエスト全体のタイムアウト
	RateLimit    int           // RateInterval あたりの最大呼び出し回数（0で無制限）
	RateInterval time.Duration
}

// ServerConfig はHTTPサーバーの設定です。
type ServerConfig struct {
	Port    string
	GinMode string
}

// Address はgin.Runに渡すリッスンアドレスを返します。
func (s ServerConfig) Address() string {
	return ":" + s.Port
}

// LogConfig はロガーの設定です。
type LogConfig struct {
	Level  string
	Format string
}

// DotEnvFile は起動時に読み込む.envファイルのパスです。
const DotEnvFile = ".env"

// Load は.envファイル（存在する場合）と環境変数から設定を読み込みます。
func Load() (*Config, error) {
	return LoadFile(DotEnvFile)
}

// LoadFile はpathの.envファイルと環境変数から設定を読み込みます。
// ファイルが存在しない場合はinfoログを出して環境変数のみを使い、
// 構文エラーなど読み込みに失敗した場合はエラーを返します。
func LoadFile(path string) (*Config, error) {
	// 既存の環境変数は上書きしない
	if err := godotenv.Load(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		log.Printf("[INFO] %s not found; using system environment variables", path)
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(KeyModel, DefaultModel)
	v.SetDefault(KeyTimeout, "60s")
	v.SetDefault(KeyRateLimit, 15)
	v.SetDefault(KeyRateInterval, "1m")
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	return v
}

// FromViper はviperインスタンスから設定を組み立てます。
func FromViper(v *viper.Viper) (*Config, error) {
	apiKey := strings.TrimSpace(v.GetString(KeyAPIKey))
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	timeout, err := parseDuration(v, KeyTimeout)
	if err != nil {
		return nil, err
	}
	interval, err := parseDuration(v, KeyRateInterval)
	if err != nil {
		return nil, err
	}
	limit, err := parseInt(v, KeyRateLimit)
	if err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, fmt.Errorf("%s must not be negative: %d", KeyRateLimit, limit)
	}

	return &Config{
		Gemini: GeminiConfig{
			APIKey:       apiKey,
			Model:        strings.TrimSpace(v.GetString(KeyModel)),
			Timeout:      timeout,
			RateLimit:    limit,
			RateInterval: interval,
		},
		Server: ServerConfig{
			Port:    v.GetString(KeyPort),
			GinMode: v.GetString(KeyGinMode),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString(KeyLogLevel)),
			Format: strings.ToLower(v.GetString(KeyLogFormat)),
		},
	}, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive: %s", key, raw)
	}
	return d, nil
}

func parseInt(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return n, nil
}
