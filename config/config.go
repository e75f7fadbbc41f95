package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// Algorithm selects which solver the orchestrator treats as primary.
type Algorithm string

const (
	AlgorithmGreedy Algorithm = "greedy"
	AlgorithmCSO    Algorithm = "cso"
)

// Weights are the CSO objective's penalty weights (spec.md §4.3).
// Defaults: w_f=10, w_g=3, w_a=3, w_b=2, w_c=20.
type Weights struct {
	Friendship float64 `mapstructure:"w_f"`
	Gender     float64 `mapstructure:"w_g"`
	Academic   float64 `mapstructure:"w_a"`
	Behavior   float64 `mapstructure:"w_b"`
	Cluster    float64 `mapstructure:"w_c"`
}

// Config is the engine's full configuration surface.
type Config struct {
	Algorithm       Algorithm `mapstructure:"algorithm"`
	TimeoutSeconds  int       `mapstructure:"timeout_seconds"`
	FallbackEnabled bool      `mapstructure:"fallback_enabled"`
	MinClassSize    int       `mapstructure:"min_class_size"`
	Weights         Weights   `mapstructure:"weights"`
	MaxNodes        int       `mapstructure:"max_nodes"`
	MaxSwapRounds   int       `mapstructure:"max_swap_rounds"`
}

// setDefaults installs every default named in spec.md §6.4 and
// SPEC_FULL.md §6.4 onto v, before any file or environment layer is read.
func setDefaults(v *viper.Viper) {
	v.SetDefault("algorithm", string(AlgorithmCSO))
	v.SetDefault("timeout_seconds", 30)
	v.SetDefault("fallback_enabled", true)
	v.SetDefault("min_class_size", 2)
	v.SetDefault("weights.w_f", 10.0)
	v.SetDefault("weights.w_g", 3.0)
	v.SetDefault("weights.w_a", 3.0)
	v.SetDefault("weights.w_b", 2.0)
	v.SetDefault("weights.w_c", 20.0)
	v.SetDefault("max_nodes", 200000)
	v.SetDefault("max_swap_rounds", 3)
}

// Load builds a Config from, in precedence order: the defaults above, an
// optional YAML file at configPath (pass "" to skip the file layer), and
// environment variables prefixed CLASSPLAN_ (e.g. CLASSPLAN_ALGORITHM,
// CLASSPLAN_TIMEOUT_SECONDS). A missing config file is not an error; a
// malformed one is.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CLASSPLAN")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return &cfg, validate(&cfg)
}

// Default returns a Config with every field at its spec-mandated default,
// without reading a config file or the environment. Useful for tests and for library callers that
// construct an orchestrator programmatically.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg) // defaults always unmarshal cleanly
	cfg.Algorithm = AlgorithmCSO

	return &cfg
}

// validate rejects configuration values no component could act on, so
// misconfiguration surfaces at construction rather than mid-call.
func validate(cfg *Config) error {
	switch cfg.Algorithm {
	case AlgorithmGreedy, AlgorithmCSO:
	default:
		return fmt.Errorf("config: unknown algorithm %q", cfg.Algorithm)
	}
	if cfg.TimeoutSeconds <= 0 {
		return fmt.Errorf("config: timeout_seconds must be positive, got %d", cfg.TimeoutSeconds)
	}
	if cfg.MinClassSize <= 0 {
		return fmt.Errorf("config: min_class_size must be positive, got %d", cfg.MinClassSize)
	}
	if cfg.MaxNodes <= 0 {
		return fmt.Errorf("config: max_nodes must be positive, got %d", cfg.MaxNodes)
	}
	if cfg.MaxSwapRounds <= 0 {
		return fmt.Errorf("config: max_swap_rounds must be positive, got %d", cfg.MaxSwapRounds)
	}

	return nil
}
