package models

import "time"

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Mongo        MongoConfig
	Redis        RedisConfig
	Verification VerificationConfig
	SMS          SMSConfig
	SMTP         SMTPConfig
	Signing      SigningConfig
	NSQ          NSQConfig
	RateLimit    RateLimitConfig
	Logger       LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// MongoConfig contains MongoDB connection configuration
type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// VerificationConfig holds the tunables of the verification engine.
type VerificationConfig struct {
	Enabled             bool
	TransactionLifetime time.Duration
	OtpLifetime         time.Duration
	MinWaitBetweenOtp   time.Duration
	MaxRetries          int
	DeliveryTimeout     time.Duration
	HashCost            int
	HashConcurrency     int
	SmsQuota            int64
}

// SMSConfig contains the SMS gateway configuration
type SMSConfig struct {
	BaseURL  string
	APIKey   string
	SenderID string
	DryRun   bool
}

// SMTPConfig contains the outgoing mail configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	TLS      bool
	DryRun   bool
}

// SigningConfig holds the key material for signed verification tokens
type SigningConfig struct {
	Secret string
	Issuer string
}

// NSQConfig contains the event producer configuration. An empty address
// disables event publishing.
type NSQConfig struct {
	Address string
	Topic   string
}

// RateLimitConfig bounds OTP requests per client
type RateLimitConfig struct {
	Limit  int
	Period time.Duration
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
