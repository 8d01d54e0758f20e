package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	ServerPort string

	QuestionCount    int
	TimeLimitSeconds int
	EnforceDeadline  bool
	DeadlineGraceSec int
	SeedQuestions    bool
}

func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "examplatform"),
		JWTSecret:  getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		QuestionCount:    getEnvInt("EXAM_QUESTION_COUNT", 10),
		TimeLimitSeconds: getEnvInt("EXAM_TIME_LIMIT_SECONDS", 30*60),
		EnforceDeadline:  getEnvBool("EXAM_ENFORCE_DEADLINE", false),
		DeadlineGraceSec: getEnvInt("EXAM_DEADLINE_GRACE_SECONDS", 30),
		SeedQuestions:    getEnvBool("SEED_QUESTIONS", false),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
		log.Printf("invalid value for %s, using %d", key, fallback)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
		log.Printf("invalid value for %s, using %t", key, fallback)
	}
	return fallback
}
