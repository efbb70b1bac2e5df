// Package config loads the engine harness's runtime configuration. None
// of it affects core matching semantics — ring size, pool sizing hints,
// and log verbosity are the only knobs — per the spec's non-goal on
// CLI/environment surfaces for the core itself.
package config

import "github.com/spf13/viper"

// Config holds the engine harness's tunables.
type Config struct {
	RingCapacity     int  `mapstructure:"ring_capacity"`
	PoolCapacityHint int  `mapstructure:"pool_capacity_hint"`
	ProductionLogger bool `mapstructure:"production_logger"`
}

// Default returns the harness's out-of-the-box configuration.
func Default() Config {
	return Config{
		RingCapacity:     1024,
		PoolCapacityHint: 10_000,
		ProductionLogger: false,
	}
}

// Load reads optional overrides from a "config.yaml" in the working
// directory (and ORDERBOOK_-prefixed environment variables), falling
// back to Default for anything unset.
func Load() (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("ORDERBOOK")
	v.AutomaticEnv()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("ring_capacity", cfg.RingCapacity)
	v.SetDefault("pool_capacity_hint", cfg.PoolCapacityHint)
	v.SetDefault("production_logger", cfg.ProductionLogger)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
