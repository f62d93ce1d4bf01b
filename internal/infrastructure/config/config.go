package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=8h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Images   ImageConfig
	Login    LoginRateConfig
}

type PostgresConfig struct {
	DSN string `env:"DATABASE_URL, default=postgres://localhost:5432/practice?sslmode=disable"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// ImageConfig selects how doctor avatars are stored. Mode "file" writes them
// under UploadDir and serves them from PUBLIC_BASE_URL/uploads; mode "inline"
// keeps them in the doctor row as a data URI.
type ImageConfig struct {
	Mode          string `env:"IMAGE_STORAGE,   default=file"`
	UploadDir     string `env:"UPLOAD_DIR,      default=uploads"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL, default=http://localhost:8080"`
}

type LoginRateConfig struct {
	MaxAttempts int           `env:"LOGIN_RATE_MAX,    default=5"`
	Window      time.Duration `env:"LOGIN_RATE_WINDOW, default=5m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
