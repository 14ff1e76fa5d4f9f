package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DBDSN            string
	JWTSecret        string
	PaymentSecretKey string
	PaymentAPIURL    string
	RedisAddr        string
	LogFile          string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file, using process environment")
	}

	cfg := Config{
		Port:             getenv("PORT", "5000"),
		DBDSN:            getenv("DB_DSN", "phonerdokan.db"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		PaymentSecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
		PaymentAPIURL:    getenv("PAYMENT_API_URL", "https://api.stripe.com"),
		RedisAddr:        os.Getenv("REDIS_ADDR"), // empty disables caching
		LogFile:          os.Getenv("LOG_FILE"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s REDIS_ADDR=%q", cfg.Port, cfg.DBDSN, cfg.RedisAddr)
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
