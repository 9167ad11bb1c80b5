package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	SessionSecret   string
	SessionTTL      time.Duration
	MessengerPage   string
	DeliveryMinimum int
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "12h"))
	if err != nil {
		sessionTTL = 12 * time.Hour
	}

	deliveryMinimum, _ := strconv.Atoi(os.Getenv("DELIVERY_MINIMUM"))
	if deliveryMinimum == 0 {
		deliveryMinimum = 150
	}

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("APP_PORT", getEnv("PORT", "8082")),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "cafe_storefront"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		SessionSecret:   getEnv("SESSION_SECRET", "secret"),
		SessionTTL:      sessionTTL,
		MessengerPage:   getEnv("MESSENGER_PAGE", "justcafebatanes"),
		DeliveryMinimum: deliveryMinimum,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
