package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT key
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Reminder scheduler
	ReminderCron    string `yaml:"REMINDER_CRON"`
	ReminderWorkers string `yaml:"REMINDER_WORKERS"`
	WebhookTimeout  string `yaml:"WEBHOOK_TIMEOUT_SECONDS"`

	// Kafka event stream (optional)
	KafkaBrokers string `yaml:"KAFKA_BROKERS"`
	KafkaTopic   string `yaml:"KAFKA_TOPIC"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Keys that should be accessible via os.Getenv as well
	os.Setenv("JWT_SECRET", config.JWTSecret)
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "APP_URL":
		return config.AppURL
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "REMINDER_CRON":
		return config.ReminderCron
	case "REMINDER_WORKERS":
		return config.ReminderWorkers
	case "WEBHOOK_TIMEOUT_SECONDS":
		return config.WebhookTimeout
	case "KAFKA_BROKERS":
		return config.KafkaBrokers
	case "KAFKA_TOPIC":
		return config.KafkaTopic
	default:
		return ""
	}
}
