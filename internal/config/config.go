// Package config loads run settings for the lifegrid commands from TOML or
// YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"lifegrid/internal/observability"
	"lifegrid/pkg/sims/life"
)

var (
	ErrUnsupportedFormat = errors.New("config: unsupported file extension")
	ErrInvalid           = errors.New("config: invalid setting")
)

// Settings holds everything a run can be configured with. Zero values are
// never meaningful; start from Default.
type Settings struct {
	Width       int      `toml:"width" yaml:"width"`
	Height      int      `toml:"height" yaml:"height"`
	Edge        string   `toml:"edge" yaml:"edge"`
	Density     float64  `toml:"density" yaml:"density"`
	Pattern     string   `toml:"pattern" yaml:"pattern"`
	Seed        int64    `toml:"seed" yaml:"seed"`
	Steps       int      `toml:"steps" yaml:"steps"`
	TPS         int      `toml:"tps" yaml:"tps"`
	Scale       int      `toml:"scale" yaml:"scale"`
	LogLevel    string   `toml:"log_level" yaml:"log_level"`
	ListenAddr  string   `toml:"listen_addr" yaml:"listen_addr"`
	CORSOrigins []string `toml:"cors_origins" yaml:"cors_origins"`
	StoreApp    string   `toml:"store_app" yaml:"store_app"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	cfg := life.DefaultConfig()
	return Settings{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Edge:     life.EdgeOf(cfg.Toroidal).String(),
		Density:  cfg.Density,
		Seed:     42,
		Steps:    100,
		TPS:      0,
		Scale:    3,
		LogLevel: "info",
		StoreApp: "lifegrid",
	}
}

// Load reads path, choosing the decoder from its extension, and layers the
// values it defines over Default.
func Load(path string) (Settings, error) {
	var (
		cfg Settings
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		cfg, err = loadTOML(path)
	case ".yaml", ".yml":
		cfg, err = loadYAML(path)
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return Settings{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func loadTOML(path string) (Settings, error) {
	cfg := Default()

	var raw Settings
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Settings{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("width") {
		cfg.Width = raw.Width
	}
	if meta.IsDefined("height") {
		cfg.Height = raw.Height
	}
	if meta.IsDefined("edge") {
		cfg.Edge = strings.TrimSpace(raw.Edge)
	}
	if meta.IsDefined("density") {
		cfg.Density = raw.Density
	}
	if meta.IsDefined("pattern") {
		cfg.Pattern = strings.TrimSpace(raw.Pattern)
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}
	if meta.IsDefined("steps") {
		cfg.Steps = raw.Steps
	}
	if meta.IsDefined("tps") {
		cfg.TPS = raw.TPS
	}
	if meta.IsDefined("scale") {
		cfg.Scale = raw.Scale
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("listen_addr") {
		cfg.ListenAddr = strings.TrimSpace(raw.ListenAddr)
	}
	if meta.IsDefined("cors_origins") {
		cfg.CORSOrigins = raw.CORSOrigins
	}
	if meta.IsDefined("store_app") {
		cfg.StoreApp = strings.TrimSpace(raw.StoreApp)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	return cfg, nil
}

func loadYAML(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("load config: %w", err)
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		// Unknown keys and mistyped values surface as a TypeError.
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return Settings{}, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(typeErr.Errors, "; "))
		}
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings no run could use.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, s.Width, s.Height)
	}
	if s.Density < 0 || s.Density > 1 {
		return fmt.Errorf("%w: density %v outside [0,1]", ErrInvalid, s.Density)
	}
	if _, err := life.ParseEdge(s.Edge); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if s.Steps < 0 {
		return fmt.Errorf("%w: negative steps %d", ErrInvalid, s.Steps)
	}
	if s.TPS < 0 {
		return fmt.Errorf("%w: negative tps %d", ErrInvalid, s.TPS)
	}
	if s.Scale <= 0 {
		return fmt.Errorf("%w: scale %d", ErrInvalid, s.Scale)
	}
	if s.LogLevel != "" {
		if _, ok := observability.ParseLevel(s.LogLevel); !ok {
			return fmt.Errorf("%w: log level %q", ErrInvalid, s.LogLevel)
		}
	}
	return nil
}

// EdgePolicy returns the parsed edge setting.
func (s Settings) EdgePolicy() life.Edge {
	e, _ := life.ParseEdge(s.Edge)
	return e
}

// SimConfig renders the settings as the key/value map the sim registry
// factories accept.
func (s Settings) SimConfig() map[string]string {
	m := map[string]string{
		"w":       strconv.Itoa(s.Width),
		"h":       strconv.Itoa(s.Height),
		"edge":    s.EdgePolicy().String(),
		"density": strconv.FormatFloat(s.Density, 'f', -1, 64),
	}
	if s.Pattern != "" {
		m["pattern"] = s.Pattern
	}
	return m
}
