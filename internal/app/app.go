package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MSSkowron/RTCTokenClient/internal/config"
	"github.com/MSSkowron/RTCTokenClient/pkg/client"
	"github.com/MSSkowron/RTCTokenClient/pkg/logger"
	"github.com/MSSkowron/RTCTokenClient/pkg/token"
)

// Run loads the configuration from the given file, fetches a single join
// token and prints it to stdout. Diagnostics go to stderr.
func Run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := []client.ClientOption{}
	if cfg.TimeoutSeconds > 0 {
		opts = append(opts, client.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}

	c, err := client.NewClient(cfg.ServerAddress, opts...)
	if err != nil {
		return fmt.Errorf("failed to create token client: %w", err)
	}

	url, err := client.BuildTokenURL(cfg.ServerAddress, cfg.ChannelName, cfg.UserID)
	if err != nil {
		return fmt.Errorf("failed to build token URL: %w", err)
	}
	logger.Info(fmt.Sprintf("Fetching token from %s", url))

	result, err := c.Fetch(context.Background(), cfg.ChannelName, cfg.UserID)
	if err != nil {
		if result != nil {
			logger.Error(fmt.Sprintf("Token server responded with status %d: %s", result.StatusCode, result.Body))
		}
		return fmt.Errorf("failed to fetch token: %w", err)
	}

	logger.Info(fmt.Sprintf("Token server responded with status %d", result.StatusCode))

	expiresAt, err := token.ExpiresAt(result.Token)
	switch {
	case err == nil:
		logger.Info(fmt.Sprintf("Token expires at %s", expiresAt.Format(time.RFC3339)))
	case errors.Is(err, token.ErrNotJWT):
		logger.Debug("Token is opaque")
	case errors.Is(err, token.ErrNoExpiry):
		logger.Debug("Token carries no expiration claim")
	}

	fmt.Println(result.Token)

	return nil
}
