package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	AMQP     AMQPConfig
	API      APIConfig
	Pin      PinConfig
}

type ServerConfig struct {
	Port int
	Env  string // "development", "production"
}

type DatabaseConfig struct {
	Host    string
	Port    string
	Name    string
	User    string
	Pass    string
	Charset string
}

type RedisConfig struct {
	Addr string
	Pass string
	DB   int
}

type AMQPConfig struct {
	URL string
}

type APIConfig struct {
	Key string
}

// PinConfig holds the per-mode Pin Payments credentials. TestMode selects
// which pair Resolve hands out.
type PinConfig struct {
	TestMode     bool
	LiveSecret   string
	LiveEndpoint string
	TestSecret   string
	TestEndpoint string
}

// Resolved is the immutable credential pair for the active mode, used for
// every subsequent API call.
type Resolved struct {
	SecretKey string
	Endpoint  string
}

// GatewayConfigError reports missing credentials for the active mode. It is
// fatal and raised at construction time, never per call.
type GatewayConfigError struct {
	Mode string
}

func (e *GatewayConfigError) Error() string {
	return "the pin gateway is not correctly configured for " + e.Mode + " mode"
}

// Resolve returns the secret key and endpoint host for the active mode, or
// a GatewayConfigError when either is missing.
func (p *PinConfig) Resolve() (Resolved, error) {
	mode, secret, endpoint := "LIVE", p.LiveSecret, p.LiveEndpoint
	if p.TestMode {
		mode, secret, endpoint = "TEST", p.TestSecret, p.TestEndpoint
	}
	if secret == "" || endpoint == "" {
		return Resolved{}, &GatewayConfigError{Mode: mode}
	}
	return Resolved{SecretKey: secret, Endpoint: endpoint}, nil
}

// Load reads configuration from .env file and environment variables.
func Load() (*Config, error) {
	// Load .env file (ignore error if missing)
	_ = godotenv.Load()

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("APP_PORT", 8080)
	viper.SetDefault("APP_ENV", "production")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "3306")
	viper.SetDefault("DB_CHARSET", "utf8mb4")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("PIN_TEST_MODE", true)
	viper.SetDefault("PIN_LIVE_ENDPOINT", "api.pin.net.au")
	viper.SetDefault("PIN_TEST_ENDPOINT", "test-api.pin.net.au")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Database: DatabaseConfig{
			Host:    viper.GetString("DB_HOST"),
			Port:    viper.GetString("DB_PORT"),
			Name:    viper.GetString("DB_NAME"),
			User:    viper.GetString("DB_USER"),
			Pass:    viper.GetString("DB_PASS"),
			Charset: viper.GetString("DB_CHARSET"),
		},
		Redis: RedisConfig{
			Addr: viper.GetString("REDIS_ADDR"),
			Pass: viper.GetString("REDIS_PASS"),
			DB:   viper.GetInt("REDIS_DB"),
		},
		AMQP: AMQPConfig{
			URL: viper.GetString("AMQP_URL"),
		},
		API: APIConfig{
			Key: viper.GetString("API_KEY"),
		},
		Pin: PinConfig{
			TestMode:     viper.GetBool("PIN_TEST_MODE"),
			LiveSecret:   viper.GetString("PIN_LIVE_SECRET"),
			LiveEndpoint: viper.GetString("PIN_LIVE_ENDPOINT"),
			TestSecret:   viper.GetString("PIN_TEST_SECRET"),
			TestEndpoint: viper.GetString("PIN_TEST_ENDPOINT"),
		},
	}

	if cfg.Database.Name == "" {
		log.Println("WARNING: DB_NAME is not set")
	}
	if cfg.API.Key == "" {
		log.Println("WARNING: API_KEY is not set")
	}

	return cfg, nil
}

// DSN returns the MySQL DSN string for GORM.
func (d *DatabaseConfig) DSN() string {
	return d.User + ":" + d.Pass + "@tcp(" + d.Host + ":" + d.Port + ")/" + d.Name + "?charset=" + d.Charset + "&parseTime=True&loc=Local"
}
