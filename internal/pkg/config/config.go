package config

import (
	"errors"
	"log"
	"time"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the optional env file at configPath
// and from the environment. Environment variables win over the file.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				log.Println("config file not found, using environment", configPath)
			} else {
				log.Println("error loading config from file", err)
			}
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "verification-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "formsg")
	v.SetDefault("MONGO_TIMEOUT", 10*time.Second)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("VERIFICATION_ENABLED", true)
	v.SetDefault("VERIFICATION_TRANSACTION_LIFETIME", 4*time.Hour)
	v.SetDefault("VERIFICATION_OTP_LIFETIME", 10*time.Minute)
	v.SetDefault("VERIFICATION_MIN_WAIT_BETWEEN_OTP", 30*time.Second)
	v.SetDefault("VERIFICATION_MAX_RETRIES", 4)
	v.SetDefault("VERIFICATION_DELIVERY_TIMEOUT", 10*time.Second)
	v.SetDefault("VERIFICATION_HASH_COST", 10)
	v.SetDefault("VERIFICATION_HASH_CONCURRENCY", 8)
	v.SetDefault("VERIFICATION_SMS_QUOTA", 10000)

	v.SetDefault("SMS_SENDER_ID", "FormSG")
	v.SetDefault("SMS_DRY_RUN", false)

	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM", "donotreply@form.gov.sg")
	v.SetDefault("SMTP_FROM_NAME", "FormSG")
	v.SetDefault("SMTP_TLS", true)
	v.SetDefault("SMTP_DRY_RUN", false)

	v.SetDefault("SIGNING_ISSUER", "formsg-verification")

	v.SetDefault("NSQ_TOPIC", "verification-events")

	v.SetDefault("RATE_LIMIT_LIMIT", 60)
	v.SetDefault("RATE_LIMIT_PERIOD", time.Minute)

	v.SetDefault("LOG_LEVEL", "info")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetDuration("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetDuration("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetDuration("SERVER_SHUTDOWN_TIMEOUT")

	// Mongo config
	configs.Mongo.URI = v.GetString("MONGO_URI")
	configs.Mongo.Database = v.GetString("MONGO_DATABASE")
	configs.Mongo.Timeout = v.GetDuration("MONGO_TIMEOUT")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// Verification config
	configs.Verification.Enabled = v.GetBool("VERIFICATION_ENABLED")
	configs.Verification.TransactionLifetime = v.GetDuration("VERIFICATION_TRANSACTION_LIFETIME")
	configs.Verification.OtpLifetime = v.GetDuration("VERIFICATION_OTP_LIFETIME")
	configs.Verification.MinWaitBetweenOtp = v.GetDuration("VERIFICATION_MIN_WAIT_BETWEEN_OTP")
	configs.Verification.MaxRetries = v.GetInt("VERIFICATION_MAX_RETRIES")
	configs.Verification.DeliveryTimeout = v.GetDuration("VERIFICATION_DELIVERY_TIMEOUT")
	configs.Verification.HashCost = v.GetInt("VERIFICATION_HASH_COST")
	configs.Verification.HashConcurrency = v.GetInt("VERIFICATION_HASH_CONCURRENCY")
	configs.Verification.SmsQuota = v.GetInt64("VERIFICATION_SMS_QUOTA")

	// SMS config
	configs.SMS.BaseURL = v.GetString("SMS_BASE_URL")
	configs.SMS.APIKey = v.GetString("SMS_API_KEY")
	configs.SMS.SenderID = v.GetString("SMS_SENDER_ID")
	configs.SMS.DryRun = v.GetBool("SMS_DRY_RUN")

	// SMTP config
	configs.SMTP.Host = v.GetString("SMTP_HOST")
	configs.SMTP.Port = v.GetInt("SMTP_PORT")
	configs.SMTP.Username = v.GetString("SMTP_USERNAME")
	configs.SMTP.Password = v.GetString("SMTP_PASSWORD")
	configs.SMTP.From = v.GetString("SMTP_FROM")
	configs.SMTP.FromName = v.GetString("SMTP_FROM_NAME")
	configs.SMTP.TLS = v.GetBool("SMTP_TLS")
	configs.SMTP.DryRun = v.GetBool("SMTP_DRY_RUN")

	// Signing config
	configs.Signing.Secret = v.GetString("SIGNING_SECRET")
	configs.Signing.Issuer = v.GetString("SIGNING_ISSUER")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.Topic = v.GetString("NSQ_TOPIC")

	// Rate limit config
	configs.RateLimit.Limit = v.GetInt("RATE_LIMIT_LIMIT")
	configs.RateLimit.Period = v.GetDuration("RATE_LIMIT_PERIOD")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}
