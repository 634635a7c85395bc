package robot

import "github.com/robotkit/robotkit-sdk/domain/errors"

// CreateOption configures the creation of a numbered entity.
type CreateOption func(*createConfig)

type createConfig struct {
	number    int
	numbered  bool
	overwrite bool
}

// Number creates the entity at number n instead of the lowest free number.
// n must be positive.
func Number(n int) CreateOption {
	return func(c *createConfig) {
		c.number = n
		c.numbered = true
	}
}

// Overwrite replaces an existing entity at the requested number instead of
// failing with IDConflictError.
func Overwrite() CreateOption {
	return func(c *createConfig) {
		c.overwrite = true
	}
}

func newCreateConfig(opts []CreateOption) (createConfig, error) {
	var cfg createConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.numbered && cfg.number <= 0 {
		return cfg, &errors.ValueError{Value: cfg.number, Reason: "entity number must be positive"}
	}
	return cfg, nil
}
