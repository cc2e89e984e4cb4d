package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`
	// MaxInvolvedWarehouses caps how many warehouses a single order may draw
	// from. Route enumeration is factorial in this count, so the optimizer
	// rejects orders above the ceiling instead of searching unbounded.
	MaxInvolvedWarehouses int `mapstructure:"MAX_INVOLVED_WAREHOUSES"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env") // Name of config file (without extension)
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("MAX_INVOLVED_WAREHOUSES", 6)

	viper.AutomaticEnv() // Read in environment variables that match

	err := viper.ReadInConfig()
	if err != nil {
		// Allow a missing .env file; defaults and env vars still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No .env file found.")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
