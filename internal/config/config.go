package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`

	// URL protection settings
	SigningKey                              string `env:"QR_SIGNING_KEY"`
	SigningSalt                             string `env:"QR_SIGNING_SALT"`
	TokenLength                             int    `env:"QR_TOKEN_LENGTH"`
	AllowsExternalRequests                  bool   `env:"QR_ALLOWS_EXTERNAL_REQUESTS"`
	AllowsExternalRequestsForRegisteredUser bool   `env:"QR_ALLOWS_EXTERNAL_REQUESTS_FOR_REGISTERED_USER"`

	// Image cache settings
	CacheTTLSeconds int `env:"QR_CACHE_TTL"` // 0 — кеш выключен

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.SigningKey, "signing-key", cfg.SigningKey, "секрет для подписи токенов защиты URL")
	flag.StringVar(&cfg.SigningSalt, "signing-salt", cfg.SigningSalt, "соль домена подписи токенов защиты URL")
	flag.IntVar(&cfg.TokenLength, "token-length", cfg.TokenLength, "длина соли установки")
	flag.BoolVar(&cfg.AllowsExternalRequests, "allow-external", cfg.AllowsExternalRequests,
		"разрешить запросы к эндпоинту изображений без токена для всех")
	flag.BoolVar(&cfg.AllowsExternalRequestsForRegisteredUser, "allow-external-registered", cfg.AllowsExternalRequestsForRegisteredUser,
		"разрешить запросы без токена аутентифицированным пользователям")
	flag.IntVar(&cfg.CacheTTLSeconds, "cache-ttl", cfg.CacheTTLSeconds, "время жизни кеша изображений, сек (0 — выключен)")
	// Shared flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	// ключ подписи токенов по умолчанию совпадает с секретом сайта
	if cfg.SigningKey == "" {
		cfg.SigningKey = cfg.AuthSecret
	}
	if cfg.SigningSalt == "" {
		cfg.SigningSalt = "qr-code-url-protection-salt"
	}
	if cfg.TokenLength <= 0 {
		cfg.TokenLength = 20
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	return cfg
}
