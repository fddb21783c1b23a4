package config

import (
	"log"
	"os"
	"strconv"
)

// App 运行时配置，全部来自环境变量
type App struct {
	Env      string
	HTTPPort string

	MySQLDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AccessSecret  string
	RefreshSecret string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// 媒体存储（cloudinary 风格的 REST 上传）
	StorageCloudName string
	StorageAPIKey    string
	StorageAPISecret string
	StorageFolder    string

	KafkaBrokers string
	KafkaTopic   string

	RateLimitPerMin int
	MemberPageSize  int
}

func Load() App {
	return App{
		Env:      getEnv("APP_ENV", "dev"),
		HTTPPort: getEnv("HTTP_PORT", "8080"),

		MySQLDSN: getEnv("MYSQL_DSN", "midday:midday@tcp(127.0.0.1:3306)/midday?charset=utf8mb4&parseTime=True"),

		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       intEnv("REDIS_DB", 0),

		AccessSecret:  getEnv("JWT_ACCESS_SECRET", "dev-access-secret-change"),
		RefreshSecret: getEnv("JWT_REFRESH_SECRET", "dev-refresh-secret-change"),

		SMTPHost: getEnv("SMTP_HOST", "localhost"),
		SMTPPort: intEnv("SMTP_PORT", 587),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),
		SMTPFrom: getEnv("SMTP_FROM", "Mid-Day <no-reply@example.com>"),

		StorageCloudName: getEnv("STORAGE_CLOUD_NAME", ""),
		StorageAPIKey:    getEnv("STORAGE_API_KEY", ""),
		StorageAPISecret: getEnv("STORAGE_API_SECRET", ""),
		StorageFolder:    getEnv("STORAGE_FOLDER", "midday"),

		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "membership-events"),

		RateLimitPerMin: intEnv("RATE_LIMIT_PER_MIN", 120),
		MemberPageSize:  intEnv("MEMBER_PAGE_SIZE", 20),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using fallback %d", key, err, fallback)
			return fallback
		}
		return n
	}
	return fallback
}
