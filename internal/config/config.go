package config

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultPort     = 8080
	defaultBasePath = "/RestAPIFurb"
	defaultTokenTTL = time.Minute
)

type Config struct {
	// Server-side settings
	DBDriver    string        `env:"DB_DRIVER"`
	DBPath      string        `env:"DB_PATH"`
	DatabaseDSN string        `env:"DATABASE_URI"`
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL"`
	Port        int           `env:"PORT"`
	BasePath    string        `env:"BASE_PATH"`
	Debug       bool          `env:"DEBUG"`

	// Client-side settings
	ServerURL string `env:"SERVER_URL"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги перекрывают значения из окружения только если переданы явно
	// Server flags
	flag.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "драйвер БД: sqlite или postgres")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "путь к файлу SQLite")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к Postgres")
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "секрет для подписи JWT")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "время жизни токена")
	flag.IntVar(&cfg.Port, "port", cfg.Port, "порт HTTP сервера")
	flag.StringVar(&cfg.BasePath, "base-path", cfg.BasePath, "префикс маршрутов API")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "development-логгер и SQL-лог")
	// Client flags
	flag.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "URL сервера для CLI")
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "файл с токеном (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

// applyDefaults заполняет пустые и невалидные значения.
func (c *Config) applyDefaults() {
	if c.DBDriver == "" {
		c.DBDriver = "sqlite"
	}
	c.DBDriver = strings.ToLower(c.DBDriver)
	if c.DBPath == "" {
		c.DBPath = "comandas.db"
	}
	if c.JWTSecret == "" {
		c.JWTSecret = "dev-secret-key"
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = defaultTokenTTL
	}
	if c.Port <= 0 || c.Port > 65535 {
		c.Port = defaultPort
	}
	c.BasePath = normalizeBasePath(c.BasePath)

	if c.ServerURL == "" {
		c.ServerURL = "http://localhost:" + strconv.Itoa(c.Port)
	}
	c.ServerURL = strings.TrimRight(c.ServerURL, "/")
	if c.TokenFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, _ = os.UserHomeDir()
		}
		c.TokenFile = filepath.Join(dir, "RestAPIFurb", "auth_token")
	}
}

// Addr адрес для http.Server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// APIURL собирает URL клиента: ServerURL + BasePath + path.
func (c *Config) APIURL(path string) string {
	return strings.TrimRight(c.ServerURL, "/") + c.BasePath + path
}

func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return defaultBasePath
	}
	if p == "/" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}
