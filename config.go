package squall

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys read by LoadConfig.
const (
	EnvTitle            = "SQUALL_TITLE"
	EnvDebug            = "SQUALL_DEBUG"
	EnvScreenResolution = "SQUALL_SCREEN_RESOLUTION"
	EnvWindowSize       = "SQUALL_WINDOW_SIZE"
	EnvPlayArea         = "SQUALL_PLAY_AREA"
	EnvGravity          = "SQUALL_GRAVITY"
)

// DefaultEnvFile is loaded by LoadConfig when no file is given.
const DefaultEnvFile = ".env"

// Config holds the settings a host needs to build a World and open a window.
type Config struct {
	Title string
	// Debug is the initial renderer debug level; any level above zero also
	// turns on scene debug logging.
	Debug int
	// Resolution is the logical screen size, also the camera viewport.
	Resolution Size
	// WindowSize is the size of the OS window.
	WindowSize Size
	PlayArea   Size
	Gravity    float64
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Title:      "squall",
		Resolution: Size{320, 200},
		WindowSize: Size{320, 200},
		PlayArea:   Size{320, 200},
		Gravity:    DefaultGravity,
	}
}

// LoadConfig loads the given .env files into the environment, then builds a
// Config from the SQUALL_* variables on top of DefaultConfig. Variables
// already set in the environment win over file values. With no files, a
// missing DefaultEnvFile is not an error.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", DefaultEnvFile, err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}
	return ParseConfig(os.LookupEnv)
}

// ParseConfig builds a Config from lookup, starting from DefaultConfig.
func ParseConfig(lookup func(key string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	if v, ok := lookup(EnvTitle); ok {
		cfg.Title = v
	}
	if v, ok := lookup(EnvDebug); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		cfg.Debug = n
	}
	for _, d := range []struct {
		key string
		dst *Size
	}{
		{EnvScreenResolution, &cfg.Resolution},
		{EnvWindowSize, &cfg.WindowSize},
		{EnvPlayArea, &cfg.PlayArea},
	} {
		v, ok := lookup(d.key)
		if !ok {
			continue
		}
		sz, err := ParseSize(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = sz
	}
	if v, ok := lookup(EnvGravity); ok {
		g, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvGravity, err)
		}
		cfg.Gravity = g
	}
	return cfg, nil
}

// ParseSize parses a "WxH" dimension such as "320x200".
func ParseSize(s string) (Size, error) {
	w, h, ok := strings.Cut(strings.TrimSpace(s), "x")
	if !ok {
		return Size{}, fmt.Errorf("invalid size %q: want WxH", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Size{}, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Size{}, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return Size{}, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return Size{float64(width), float64(height)}, nil
}

// World builds the physics World described by c.
func (c Config) World() *World {
	return NewWorld(c.Gravity, c.PlayArea)
}
