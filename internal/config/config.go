package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RabbitURI      string
	RabbitExchange string

	// SessionTTL bounds the lifetime of quiz sessions in the session store.
	SessionTTL time.Duration
	// WeakAreaThreshold is the mean score below which a category counts as weak.
	WeakAreaThreshold float64
	// DefaultQuizSize is used when a session request does not name a count.
	DefaultQuizSize int
	// MergeRetries bounds internal retries on a detected concurrent progress write.
	MergeRetries int
}

func New() *Config {
	sessionTTL := getEnvInt("QUIZ_SESSION_TTL_SECONDS", 3600)
	threshold, err := strconv.ParseFloat(getEnv("WEAK_AREA_THRESHOLD", "0.7"), 64)
	if err != nil {
		threshold = 0.7
	}
	quizSize := getEnvInt("DEFAULT_QUIZ_SIZE", 5)
	retries := getEnvInt("PROGRESS_MERGE_RETRIES", 3)
	redisDB := getEnvInt("REDIS_DB", 0)

	return &Config{
		Port:              getEnv("PORT", "6660"),
		MongoURI:          getEnv("MONGO_URI", ""),
		MongoDatabase:     getEnv("STUDY_SERVICE_MONGO_DB", "study_service"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PWD", ""),
		RedisDB:           redisDB,
		RabbitURI:         getEnv("RABBITMQ_URI", ""),
		RabbitExchange:    getEnv("RABBITMQ_EXCHANGE", ""),
		SessionTTL:        time.Duration(sessionTTL) * time.Second,
		WeakAreaThreshold: threshold,
		DefaultQuizSize:   quizSize,
		MergeRetries:      retries,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if fallback == "" {
		log.Printf("env %s is not set and has no default", key)
	}
	return fallback
}

// getEnvInt falls back to the default on a malformed value instead of
// propagating a zero, which would mean no session TTL at all.
func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("env %s has invalid value %q, using %d", key, value, fallback)
		return fallback
	}
	return n
}
