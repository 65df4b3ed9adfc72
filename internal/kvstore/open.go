package kvstore

import (
	"fmt"

	"github.com/su-physio/clinic-scheduler/internal/config"
)

// Open selects the durable storage driver from configuration.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		return NewRedisStore(cfg), nil
	case "postgres":
		return NewGormStore(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
