package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if err := c.Tasks.validate(); err != nil {
		return fmt.Errorf("tasks: %w", err)
	}

	if err := c.Moderation.validate(); err != nil {
		return fmt.Errorf("moderation: %w", err)
	}

	if c.Notify.Channel == "" {
		return fmt.Errorf("notify: channel must not be empty")
	}

	return nil
}

func (s *SearchConfig) validate() error {
	if s.UsersIndex == "" || s.GroupsIndex == "" || s.DomainsIndex == "" {
		return fmt.Errorf("index names must not be empty")
	}
	if s.BulkSize <= 0 {
		return fmt.Errorf("bulk_size must be > 0 (got %d)", s.BulkSize)
	}
	return nil
}

func (t *TasksConfig) validate() error {
	if t.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", t.Workers)
	}
	if t.RetryBaseDelay <= 0 {
		return fmt.Errorf("retry_base_delay must be > 0 (got %v)", t.RetryBaseDelay)
	}
	return nil
}

func (m *ModerationConfig) validate() error {
	if m.LockDefaultTimeout <= 0 {
		return fmt.Errorf("lock_default_timeout must be > 0 (got %d)", m.LockDefaultTimeout)
	}
	if m.LockRenewalTimeout < 1 {
		return fmt.Errorf("lock_renewal_timeout must be >= 1 (got %d)", m.LockRenewalTimeout)
	}
	if m.LockKeyPrefix == "" {
		return fmt.Errorf("lock_key_prefix must not be empty")
	}
	switch m.LockBackend {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unknown lock_backend %q", m.LockBackend)
	}
	return nil
}
