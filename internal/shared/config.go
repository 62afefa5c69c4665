package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	StoreDriver string // redis|mysql|sqlite
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	MySQLDSN    string
	SQLitePath  string

	SessionTTL    time.Duration
	BcryptCost    int
	AdminEmail    string
	AdminName     string
	AdminPassword string
	AuthRPS       float64
	AuthBurst     int
	TrustProxy    bool

	WebhookURL     string
	WebhookRPS     int
	TelegramToken  string
	TelegramChatID int64
}

// Load reads configuration from the environment, after merging an optional .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env could not be parsed")
	}
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	boolean := func(k string, def bool) bool {
		if v := os.Getenv(k); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				return b
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		StoreDriver:    env("STORE_DRIVER", "redis"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisDB:        atoi("REDIS_DB", 0),
		RedisPass:      env("REDIS_PASSWORD", ""),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/luxehaven?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		SQLitePath:     env("SQLITE_PATH", "luxehaven.db"),
		SessionTTL:     time.Duration(atoi("SESSION_TTL_SECONDS", 7*24*3600)) * time.Second,
		BcryptCost:     atoi("BCRYPT_COST", 10),
		AdminEmail:     env("ADMIN_EMAIL", "admin@luxehaven.com"),
		AdminName:      env("ADMIN_NAME", "Admin User"),
		AdminPassword:  env("ADMIN_PASSWORD", "admin123"),
		AuthRPS:        atof("AUTH_RPS", 1),
		AuthBurst:      atoi("AUTH_BURST", 5),
		TrustProxy:     boolean("TRUST_PROXY", false),
		WebhookURL:     env("WEBHOOK_URL", ""),
		WebhookRPS:     atoi("WEBHOOK_RPS", 5),
		TelegramToken:  env("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID: int64(atoi("TELEGRAM_CHAT_ID", 0)),
	}
	if c.AdminPassword == "admin123" && c.AppEnv != "dev" && c.AppEnv != "development" {
		log.Warn().Msg("ADMIN_PASSWORD is the default; set it outside development")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
