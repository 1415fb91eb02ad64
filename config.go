package gesture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read by LoadConfig when no path is given.
const DefaultConfigFile = "gesture.yaml"

// EnvPrefix prefixes every environment override, e.g. GESTURE_TAP_RADIUS.
const EnvPrefix = "GESTURE_"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid gesture config")

// Config holds the recognition thresholds. The engine copies it at
// construction; it is never mutated afterwards.
type Config struct {
	// FlickMinLength is the distance in pixels a flick must cover.
	FlickMinLength int `yaml:"flick_min_length" env:"FLICK_MIN_LENGTH"`
	// FlickMaxDuration bounds one flick; a return flick may take twice this.
	FlickMaxDuration time.Duration `yaml:"flick_max_duration" env:"FLICK_MAX_DURATION"`
	// HoverLongpressTimeout is how long one finger must rest before hover begins.
	HoverLongpressTimeout time.Duration `yaml:"hover_longpress_timeout" env:"HOVER_LONGPRESS_TIMEOUT"`
	// TapTimeout is the inter-tap window; a sequence is reported when it lapses.
	TapTimeout time.Duration `yaml:"tap_timeout" env:"TAP_TIMEOUT"`
	// TapRadius is how far in pixels a finger may travel and still tap.
	TapRadius int `yaml:"tap_radius" env:"TAP_RADIUS"`
	// FlickToScrollTimeout is how long the second finger must be down before
	// its movement turns a two-finger flick into a scroll.
	FlickToScrollTimeout time.Duration `yaml:"flick_to_scroll_timeout" env:"FLICK_TO_SCROLL_TIMEOUT"`
	// FlickToScrollMinLength is the distance in pixels that arms flick-to-scroll.
	FlickToScrollMinLength int `yaml:"flick_to_scroll_min_length" env:"FLICK_TO_SCROLL_MIN_LENGTH"`

	Logging LoggingConfig `yaml:"logging" envPrefix:"LOG_"`

	// Source records where the configuration came from.
	Source string `yaml:"-"`
}

// LoggingConfig defines log verbosity and formatting.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// DefaultConfig returns the thresholds used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		FlickMinLength:         100,
		FlickMaxDuration:       400 * time.Millisecond,
		HoverLongpressTimeout:  600 * time.Millisecond,
		TapTimeout:             400 * time.Millisecond,
		TapRadius:              36,
		FlickToScrollTimeout:   200 * time.Millisecond,
		FlickToScrollMinLength: 50,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Source: "<defaults>",
	}
}

// LoadConfig layers defaults, a YAML file and GESTURE_* environment
// variables, in that order. An empty path reads DefaultConfigFile if present;
// an explicit path that does not exist is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	candidate := strings.TrimSpace(path)
	explicit := candidate != ""
	if !explicit {
		candidate = DefaultConfigFile
	}

	data, err := os.ReadFile(candidate)
	switch {
	case err == nil:
		if err := decodeConfig(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config file %q: %w", candidate, err)
		}
		cfg.Source = candidate
	case errors.Is(err, os.ErrNotExist) && !explicit:
	case errors.Is(err, os.ErrNotExist):
		return cfg, fmt.Errorf("config file %q not found", candidate)
	default:
		return cfg, fmt.Errorf("read config file %q: %w", candidate, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := decodeConfig(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func decodeConfig(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// An empty document leaves the defaults untouched.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

// Validate reports the first threshold that cannot drive recognition.
func (c Config) Validate() error {
	switch {
	case c.FlickMinLength <= 0:
		return fmt.Errorf("%w: flick_min_length must be positive, got %d", ErrInvalidConfig, c.FlickMinLength)
	case c.FlickMaxDuration <= 0:
		return fmt.Errorf("%w: flick_max_duration must be positive, got %v", ErrInvalidConfig, c.FlickMaxDuration)
	case c.HoverLongpressTimeout <= 0:
		return fmt.Errorf("%w: hover_longpress_timeout must be positive, got %v", ErrInvalidConfig, c.HoverLongpressTimeout)
	case c.TapTimeout <= 0:
		return fmt.Errorf("%w: tap_timeout must be positive, got %v", ErrInvalidConfig, c.TapTimeout)
	case c.TapRadius <= 0:
		return fmt.Errorf("%w: tap_radius must be positive, got %d", ErrInvalidConfig, c.TapRadius)
	case c.FlickToScrollTimeout <= 0:
		return fmt.Errorf("%w: flick_to_scroll_timeout must be positive, got %v", ErrInvalidConfig, c.FlickToScrollTimeout)
	case c.FlickToScrollMinLength <= 0:
		return fmt.Errorf("%w: flick_to_scroll_min_length must be positive, got %d", ErrInvalidConfig, c.FlickToScrollMinLength)
	}
	return nil
}

// YAML renders the effective configuration, as printed by
// `gesturectl config`.
func (c Config) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// flickWindow is the longest a single finger may take to flick. Doubled to
// admit the out-and-return variant.
func (c Config) flickWindow() uint32 {
	return uint32(2 * c.FlickMaxDuration / time.Millisecond)
}
