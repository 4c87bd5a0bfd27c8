package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Arguments struct {
	APIAddr     string `env:"WALLET_API_ADDRESS" envDefault:"http://localhost:8080/api"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	SessionFile string `env:"WALLET_SESSION_FILE" envDefault:""`
	RedisURL    string `env:"WALLET_REDIS_URL" envDefault:""`
}

// Config модель настроек клиента кошелька
type Config struct {
	APIAddr         string
	LogLevel        string
	SessionFile     string
	RedisURL        string
	StatusTTL       time.Duration
	RefreshInterval time.Duration
}

func NewConfig() Config {

	// переменные окружения из .env имеют меньший приоритет, чем уже установленные
	_ = godotenv.Load()

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		apiAddr     = pflag.StringP("api", "a", args.APIAddr, "Wallet API base address.")
		logLevel    = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		sessionFile = pflag.StringP("session", "s", args.SessionFile, "Path to session file.")
		redisURL    = pflag.StringP("redis", "r", args.RedisURL, "Redis URL for shared session storage (optional).")
	)
	pflag.Parse()

	return Config{
		APIAddr:         *apiAddr,
		LogLevel:        *logLevel,
		SessionFile:     *sessionFile,
		RedisURL:        *redisURL,
		StatusTTL:       5 * time.Second,
		RefreshInterval: 30 * time.Second,
	}
}

func DefaultConfig() Config {
	return Config{
		APIAddr:         "http://localhost:8080/api",
		LogLevel:        "info",
		SessionFile:     "",
		RedisURL:        "",
		StatusTTL:       5 * time.Second,
		RefreshInterval: 30 * time.Second,
	}
}

// SessionPath - путь к файлу сессии, по умолчанию в домашнем каталоге
func (c Config) SessionPath() string {
	if c.SessionFile != "" {
		return c.SessionFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".upi-wallet", "session.json")
}
