package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/flashdeck/internal/schedule"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("%w: srs: %w", ErrInvalid, err)
	}
	if _, err := c.Review.Order(); err != nil {
		return fmt.Errorf("%w: review: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("%w: log.format must be json or text (got %q)", ErrInvalid, c.Log.Format)
	}
	return nil
}

func (s *SRSConfig) validate() error {
	if _, err := schedule.ParseKind(s.Algorithm); err != nil {
		return err
	}
	return s.Settings().Validate()
}
