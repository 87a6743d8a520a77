package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// NLU agent configuration. When AGENT_BASE_URL is empty the
	// Gemini-backed gateway is used instead of the external agent.
	AgentBaseURL string `mapstructure:"AGENT_BASE_URL"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Google Cloud API key (speech-to-text for WhatsApp voice notes).
	GoogleAPIKey string `mapstructure:"GOOGLE_API_KEY"`

	// Twilio WhatsApp configuration.
	TwilioAccountSID     string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken      string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppNumber string `mapstructure:"TWILIO_WHATSAPP_NUMBER"`
	TwilioAPIBaseURL     string `mapstructure:"TWILIO_API_BASE_URL"`

	// Meta WhatsApp Business webhook verification token.
	WebhookVerifyToken string `mapstructure:"WEBHOOK_VERIFY_TOKEN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("AGENT_BASE_URL", "http://127.0.0.1:4002")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("TWILIO_API_BASE_URL", "https://api.twilio.com/2010-04-01")
	viper.SetDefault("WEBHOOK_VERIFY_TOKEN", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
