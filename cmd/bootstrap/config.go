package bootstrap

import (
	"fmt"
	"time"

	"queue-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig loads the environment and refuses to start with an unknown engine time zone.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if _, err := time.LoadLocation(cfg.Engine.TimeZone); err != nil {
		return config.Config{}, fmt.Errorf("invalid ENGINE_TIMEZONE %q: %w", cfg.Engine.TimeZone, err)
	}
	if cfg.Engine.MonitorConcurrency < 1 {
		return config.Config{}, fmt.Errorf("ENGINE_MONITOR_CONCURRENCY must be positive, got %d", cfg.Engine.MonitorConcurrency)
	}
	return cfg, nil
}
