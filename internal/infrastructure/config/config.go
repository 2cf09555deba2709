package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Redis       RedisConfig    `mapstructure:"redis"`
	RabbitMQ    RabbitMQConfig `mapstructure:"rabbitmq"`
	Paystack    PaystackConfig `mapstructure:"paystack"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Wallet      WalletConfig   `mapstructure:"wallet"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
}

// RedisConfig contains settings for the lock backend
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RabbitMQConfig contains settings for the credit job broker
type RabbitMQConfig struct {
	URL string `mapstructure:"url"`
}

// PaystackConfig contains payment gateway credentials and endpoints
type PaystackConfig struct {
	BaseURL       string `mapstructure:"baseUrl"`
	SecretKey     string `mapstructure:"secretKey"`
	WebhookSecret string `mapstructure:"webhookSecret"`
	CallbackURL   string `mapstructure:"callbackUrl"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// WalletConfig contains wallet processing settings.
// Amounts are in kobo, TTLs in seconds.
type WalletConfig struct {
	TransferLockTTL time.Duration `mapstructure:"transferLockTtl"` // seconds
	FundingLockTTL  time.Duration `mapstructure:"fundingLockTtl"`  // seconds
	MinTransferKobo int64         `mapstructure:"minTransferKobo"`
	MinFundingKobo  int64         `mapstructure:"minFundingKobo"`
}
