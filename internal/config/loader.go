package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Validation errors.
var (
	ErrInvalidArena   = errors.New("config: invalid arena")
	ErrUnknownControl = errors.New("config: unknown paddle control")
	ErrMissingKey     = errors.New("config: human paddle needs up and down keys")
	ErrUnknownPreset  = errors.New("config: unknown speed preset")
)

// Load loads the Pong configuration.
// Search order: customPath -> ~/.pong/config.yaml -> ./configs/pong.yaml -> embedded default.
// Every file is merged over the built-in defaults, so partial files are fine.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped silently.
func Load(customPath string) (PongConfig, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", "pong.yaml")); err == nil {
		return cfg, cfg.Validate()
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPongYAML)
	if err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads a YAML file and merges it over the defaults.
func LoadFile(path string) (PongConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultPongConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults.
func Parse(data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultPongConfig(), err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c PongConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks that the arena is playable and the paddles are wired.
func (c PongConfig) Validate() error {
	a := c.Arena
	switch {
	case a.Width <= 0 || a.Height <= 0:
		return fmt.Errorf("%w: size must be positive, got %gx%g", ErrInvalidArena, a.Width, a.Height)
	case a.WallHeight < 0 || a.Padding < 0:
		return fmt.Errorf("%w: wall height and padding must not be negative", ErrInvalidArena)
	case a.PaddleWidth <= 0 || a.PaddleHeight <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalidArena)
	case a.BallRadius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidArena)
	case a.PaddleSpeed < 0 || a.BallSpeed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidArena)
	case a.PaddleHeight > a.Height-2*a.WallHeight:
		return fmt.Errorf("%w: paddle height %g does not fit between the walls", ErrInvalidArena, a.PaddleHeight)
	case 2*a.BallRadius > a.Height-2*a.WallHeight:
		return fmt.Errorf("%w: ball radius %g does not fit between the walls", ErrInvalidArena, a.BallRadius)
	case 2*(a.PaddleWidth+a.Padding+a.BallRadius) >= a.Width:
		return fmt.Errorf("%w: paddles leave no room for the ball", ErrInvalidArena)
	}

	if _, err := MultiplierForPreset(c.Speed); err != nil {
		return err
	}

	for name, p := range map[string]PaddleConfig{"left": c.Paddles.Left, "right": c.Paddles.Right} {
		switch p.Control {
		case ControlHuman:
			if p.Up == "" || p.Down == "" {
				return fmt.Errorf("%w (%s paddle)", ErrMissingKey, name)
			}
		case ControlRandom:
		default:
			return fmt.Errorf("%w: %q (%s paddle)", ErrUnknownControl, p.Control, name)
		}
	}
	return nil
}

// ParseControl converts a flag value to a Control.
func ParseControl(s string) (Control, error) {
	switch c := Control(s); c {
	case ControlHuman, ControlRandom:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownControl, s)
	}
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", filename)
}
