package schedule

import (
	"fmt"
	"strings"
)

// Kind selects the scheduling algorithm.
type Kind int

const (
	KindSM2 Kind = iota
	KindSpecifiedIntervals
)

var kindNames = [...]string{"SM2", "SpecifiedIntervals"}

func (k Kind) String() string {
	if k < KindSM2 || k > KindSpecifiedIntervals {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts the algorithm names used in configuration files.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidSettings, s)
}

const (
	// MinEase is the floor for the SM-2 ease factor.
	MinEase = 130

	// EaseStep is the ease change applied on Easy and Hard.
	EaseStep = 20

	// InitialInterval is the interval a new card starts from.
	InitialInterval = 1.0

	// LoadBalanceThreshold is the smallest interval that gets load balanced.
	LoadBalanceThreshold = 7
)

// Settings configures the scheduling algorithms.
type Settings struct {
	Kind Kind

	BaseEase            int
	LapseIntervalChange float64
	EasyBonus           float64
	MaximumInterval     int

	LoadBalance         bool
	LoadBalanceFraction float64
	LoadBalanceMaxFuzz  int

	// Fixed intervals in days used by KindSpecifiedIntervals.
	EasyInterval int
	GoodInterval int
	HardInterval int
}

// DefaultSettings returns the stock SM-2 configuration.
func DefaultSettings() Settings {
	return Settings{
		Kind:                KindSM2,
		BaseEase:            250,
		LapseIntervalChange: 0.5,
		EasyBonus:           1.3,
		MaximumInterval:     36525,
		LoadBalance:         true,
		LoadBalanceFraction: 0.05,
		LoadBalanceMaxFuzz:  7,
		EasyInterval:        4,
		GoodInterval:        3,
		HardInterval:        1,
	}
}

// Validate checks that the settings can drive an algorithm.
func (s Settings) Validate() error {
	switch {
	case s.Kind != KindSM2 && s.Kind != KindSpecifiedIntervals:
		return fmt.Errorf("%w: unknown algorithm %d", ErrInvalidSettings, int(s.Kind))
	case s.BaseEase < MinEase:
		return fmt.Errorf("%w: base ease must be >= %d (got %d)", ErrInvalidSettings, MinEase, s.BaseEase)
	case s.LapseIntervalChange <= 0 || s.LapseIntervalChange >= 1:
		return fmt.Errorf("%w: lapse interval change must be in (0, 1) (got %v)", ErrInvalidSettings, s.LapseIntervalChange)
	case s.EasyBonus < 1:
		return fmt.Errorf("%w: easy bonus must be >= 1 (got %v)", ErrInvalidSettings, s.EasyBonus)
	case s.MaximumInterval < 1:
		return fmt.Errorf("%w: maximum interval must be >= 1 (got %d)", ErrInvalidSettings, s.MaximumInterval)
	case s.LoadBalanceFraction < 0:
		return fmt.Errorf("%w: load balance fraction must be >= 0 (got %v)", ErrInvalidSettings, s.LoadBalanceFraction)
	case s.LoadBalanceMaxFuzz < 1:
		return fmt.Errorf("%w: load balance max fuzz must be >= 1 (got %d)", ErrInvalidSettings, s.LoadBalanceMaxFuzz)
	case s.EasyInterval < 1 || s.GoodInterval < 1 || s.HardInterval < 1:
		return fmt.Errorf("%w: specified intervals must be >= 1 day", ErrInvalidSettings)
	}
	return nil
}
