// Package config loads flashdeck settings from YAML and the environment.
package config

import (
	"github.com/abhisek/flashdeck/internal/iterator"
	"github.com/abhisek/flashdeck/internal/schedule"
)

// Config is the root application configuration.
type Config struct {
	SRS    SRSConfig    `yaml:"srs"`
	Review ReviewConfig `yaml:"review"`
	Store  StoreConfig  `yaml:"store"`
	Source SourceConfig `yaml:"source"`
	Log    LogConfig    `yaml:"log"`
}

// SRSConfig holds the scheduling algorithm parameters.
type SRSConfig struct {
	Algorithm           string  `yaml:"algorithm"             env:"FLASHDECK_ALGORITHM"             env-default:"SM2"`
	BaseEase            int     `yaml:"base_ease"             env:"FLASHDECK_BASE_EASE"             env-default:"250"`
	LapseIntervalChange float64 `yaml:"lapse_interval_change" env:"FLASHDECK_LAPSE_INTERVAL_CHANGE" env-default:"0.5"`
	EasyBonus           float64 `yaml:"easy_bonus"            env:"FLASHDECK_EASY_BONUS"            env-default:"1.3"`
	MaximumInterval     int     `yaml:"maximum_interval"      env:"FLASHDECK_MAXIMUM_INTERVAL"      env-default:"36525"`
	LoadBalance         bool    `yaml:"load_balance"          env:"FLASHDECK_LOAD_BALANCE"          env-default:"true"`
	LoadBalanceFraction float64 `yaml:"load_balance_fraction" env:"FLASHDECK_LOAD_BALANCE_FRACTION" env-default:"0.05"`
	LoadBalanceMaxFuzz  int     `yaml:"load_balance_max_fuzz" env:"FLASHDECK_LOAD_BALANCE_MAX_FUZZ" env-default:"7"`
	EasyInterval        int     `yaml:"easy_interval"         env:"FLASHDECK_EASY_INTERVAL"         env-default:"4"`
	GoodInterval        int     `yaml:"good_interval"         env:"FLASHDECK_GOOD_INTERVAL"         env-default:"3"`
	HardInterval        int     `yaml:"hard_interval"         env:"FLASHDECK_HARD_INTERVAL"         env-default:"1"`
}

// ReviewConfig holds review-session behaviour.
type ReviewConfig struct {
	DeckOrder    string `yaml:"deck_order"    env:"FLASHDECK_DECK_ORDER"    env-default:"PrevDeckComplete_Sequential"`
	CardOrder    string `yaml:"card_order"    env:"FLASHDECK_CARD_ORDER"    env-default:"DueFirstRandom"`
	BurySiblings bool   `yaml:"bury_siblings" env:"FLASHDECK_BURY_SIBLINGS" env-default:"false"`
	ShowInterval bool   `yaml:"show_interval" env:"FLASHDECK_SHOW_INTERVAL" env-default:"true"`
}

// StoreConfig holds database settings. An empty path falls back to the
// default XDG location.
type StoreConfig struct {
	Path string `yaml:"path" env:"FLASHDECK_DB"`
}

// SourceConfig locates deck files.
type SourceConfig struct {
	Dir string `yaml:"dir" env:"FLASHDECK_DECKS" env-default:"."`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"FLASHDECK_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"FLASHDECK_LOG_FORMAT" env-default:"text"`
}

// Settings converts the SRS section into scheduler settings. It assumes
// Validate has passed.
func (c SRSConfig) Settings() schedule.Settings {
	kind, _ := schedule.ParseKind(c.Algorithm)
	return schedule.Settings{
		Kind:                kind,
		BaseEase:            c.BaseEase,
		LapseIntervalChange: c.LapseIntervalChange,
		EasyBonus:           c.EasyBonus,
		MaximumInterval:     c.MaximumInterval,
		LoadBalance:         c.LoadBalance,
		LoadBalanceFraction: c.LoadBalanceFraction,
		LoadBalanceMaxFuzz:  c.LoadBalanceMaxFuzz,
		EasyInterval:        c.EasyInterval,
		GoodInterval:        c.GoodInterval,
		HardInterval:        c.HardInterval,
	}
}

// Order parses the configured iteration order.
func (c ReviewConfig) Order() (iterator.Order, error) {
	d, err := iterator.ParseDeckOrder(c.DeckOrder)
	if err != nil {
		return iterator.Order{}, err
	}
	cd, err := iterator.ParseCardOrder(c.CardOrder)
	if err != nil {
		return iterator.Order{}, err
	}
	return iterator.Order{Deck: d, Card: cd}, nil
}
