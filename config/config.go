package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all configuration for both binaries.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Runtime Configuration
	AppEnv   string `mapstructure:"APP_ENV" validate:"required"` // "development" or "production"; selects gin mode and log format
	LogLevel string `mapstructure:"LOG_LEVEL"`                   // zerolog level name, e.g. "debug", "info"

	// Generation Service Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS" validate:"required"` // e.g., ":8000"

	// Builder Frontend Configuration
	ProxyAddress        string `mapstructure:"PROXY_ADDRESS" validate:"required"`              // e.g., ":3000"
	GenerateTargetURL   string `mapstructure:"GENERATE_TARGET_URL" validate:"required,url"`    // where the builder relays generation calls
	RelayTimeoutSeconds int    `mapstructure:"RELAY_TIMEOUT_SECONDS" validate:"required,gt=0"` // bound on one relay round trip
}

// RelayTimeout returns the relay timeout as a duration.
func (c Config) RelayTimeout() time.Duration {
	return time.Duration(c.RelayTimeoutSeconds) * time.Second
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)     // Path to look for the config file in
	viper.SetConfigName("config") // Name of config file (without extension)
	viper.SetConfigType("yaml")

	// Defaults double as viper's key registry: AutomaticEnv only resolves
	// keys viper already knows about.
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVER_ADDRESS", ":8000")
	viper.SetDefault("PROXY_ADDRESS", ":3000")
	viper.SetDefault("GENERATE_TARGET_URL", "http://localhost:8000/generate")
	viper.SetDefault("RELAY_TIMEOUT_SECONDS", 15)

	viper.AutomaticEnv() // Read environment variables that match keys

	// Attempt to read the config file
	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, continue on defaults and env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying on defaults and environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	// Unmarshal the configuration into the Config struct
	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err = validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}
