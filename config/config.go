package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking session lifetimes.
	SessionStore     string        `mapstructure:"SESSION_STORE"`
	SessionTTL       time.Duration `mapstructure:"BOOKING_SESSION_TTL"`
	NoticeTTL        time.Duration `mapstructure:"NOTICE_TTL"`
	SubmitLockTTL    time.Duration `mapstructure:"SUBMIT_LOCK_TTL"`
	SubmitStaleAfter time.Duration `mapstructure:"SUBMIT_STALE_AFTER"` // lets a new submit take over one that never finished

	// Inquiry API.
	InquiryAPIURL   string        `mapstructure:"INQUIRY_API_URL"`
	InquiryAPIKey   string        `mapstructure:"INQUIRY_API_KEY"`
	InquiryTimeout  time.Duration `mapstructure:"INQUIRY_TIMEOUT"`
	InquiryDispatch string        `mapstructure:"INQUIRY_DISPATCH"`

	// Catalog is the default add-on catalog used when a session is opened without one.
	Catalog CatalogConfig `mapstructure:"catalog"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := AppConfig.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
}

// Validate checks the submission timings: an inquiry call has to finish while
// its submit lock is held, and the lock has to expire before a submission can
// be considered stale.
func (c Config) Validate() error {
	if c.InquiryTimeout <= 0 {
		return fmt.Errorf("INQUIRY_TIMEOUT must be positive, got %s", c.InquiryTimeout)
	}
	if c.SubmitLockTTL <= c.InquiryTimeout {
		return fmt.Errorf("SUBMIT_LOCK_TTL (%s) must be longer than INQUIRY_TIMEOUT (%s)", c.SubmitLockTTL, c.InquiryTimeout)
	}
	if c.SubmitStaleAfter <= c.SubmitLockTTL {
		return fmt.Errorf("SUBMIT_STALE_AFTER (%s) must be longer than SUBMIT_LOCK_TTL (%s)", c.SubmitStaleAfter, c.SubmitLockTTL)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("SESSION_STORE", "redis")
	v.SetDefault("BOOKING_SESSION_TTL", 30*time.Minute)
	v.SetDefault("NOTICE_TTL", 5*time.Minute)
	v.SetDefault("SUBMIT_LOCK_TTL", 45*time.Second)
	v.SetDefault("SUBMIT_STALE_AFTER", 10*time.Minute)
	v.SetDefault("INQUIRY_API_URL", "http://localhost:5000/api/inquiry")
	v.SetDefault("INQUIRY_API_KEY", "")
	v.SetDefault("INQUIRY_TIMEOUT", 20*time.Second)
	v.SetDefault("INQUIRY_DISPATCH", "inline")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UsesQueuedDispatch reports whether inquiries are handed to the asynq worker
// instead of being sent inside the submit request.
func UsesQueuedDispatch() bool {
	return AppConfig.InquiryDispatch == "queue"
}
