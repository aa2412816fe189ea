package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	Port           string
	DBDriver       string
	DBSource       string
	JWTSecret      string
	JWTTTL         time.Duration
	UploadDir      string
	MaxUploadSize  int64
	LogFile        string
	PublicBaseURL  string
	AllowedOrigins []string
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("файл .env не найден, используются переменные окружения")
	}

	return &Config{
		Env:            getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "3001"),
		DBDriver:       getEnv("DB_DRIVER", "postgres"),
		DBSource:       getEnv("DB_SOURCE", "host=localhost user=postgres dbname=mariaswimpro sslmode=disable"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		JWTTTL:         7 * 24 * time.Hour,
		UploadDir:      getEnv("UPLOAD_DIR", "/var/www/assets"),
		MaxUploadSize:  10 << 20, // 10MB
		LogFile:        getEnv("LOG_FILE", ""),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", ""),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
