package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config stores configuration values for the token fetch binary.
// These values can be read from a configuration file or environment variables.
type Config struct {
	// ServerAddress is the base URL of the token issuance server.
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	// ChannelName is the channel to request a join token for.
	ChannelName string `mapstructure:"CHANNEL_NAME"`
	// UserID is the joining participant's identifier. 0 requests a token valid for any user.
	UserID uint32 `mapstructure:"USER_ID"`
	// TimeoutSeconds is the timeout for the token request. 0 means the library default.
	TimeoutSeconds int `mapstructure:"TIMEOUT_SECONDS"`
}

// Load loads configuration settings from a specified file or environment variables.
// If both a configuration file and environment variables are used, environment variables take precedence.
func Load(filePath string) (*Config, error) {
	viper.SetConfigFile(filePath)
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}
