package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	EdgePort   string
	APIURL     string
	StaticDir  string

	MySQLDSN string
	// GormLogLevel is one of silent, error, warn, info.
	GormLogLevel string

	RedisAddr string
	RedisDB   int
	RedisPass string
	JWTSecret string

	KafkaBroker    string
	KafkaMailTopic string
	KafkaGroupID   string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	MailFromName string

	UploadDir   string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "4000"),
		EdgePort:   getEnv("PORT", "5000"),
		APIURL:     getEnv("API_URL", "http://localhost:4000"),
		StaticDir:  getEnv("STATIC_DIR", "dist/public"),

		MySQLDSN:     getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/lakehire?charset=utf8mb4&parseTime=True&loc=Local"),
		GormLogLevel: getEnv("GORM_LOG_LEVEL", "warn"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
		JWTSecret: getEnv("JWT_SECRET", "change-me"),

		KafkaBroker:    getEnv("KAFKA_BROKER", "localhost:9092"),
		KafkaMailTopic: getEnv("KAFKA_MAIL_TOPIC", "lakehire.mail"),
		KafkaGroupID:   getEnv("KAFKA_GROUP_ID", "mailer"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     getEnv("MAIL_FROM", "no-reply@lakehire.local"),
		MailFromName: getEnv("MAIL_FROM_NAME", "Lakehire"),

		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
