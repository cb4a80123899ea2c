package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the glue for all configuration sections
type Config struct {
	Server  Server  `toml:"server"`
	Data    Data    `toml:"data"`
	Log     Log     `toml:"log"`
	Session Session `toml:"session"`
	View    View    `toml:"view"`
}

// Server is the HTTP listener configuration
type Server struct {
	Addr            string   `toml:"addr"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// Data selects where posts come from. An empty Dir serves the built-in
// sample posts from memory; otherwise Dir is a badger directory.
type Data struct {
	Dir string `toml:"dir"`
}

type Log struct {
	Debug bool   `toml:"debug"`
	File  string `toml:"file"`
}

type Session struct {
	TTL      Duration `toml:"ttl"`
	Capacity int64    `toml:"capacity"`
}

type View struct {
	PreviewLength int `toml:"preview_length"`
}

// Duration wraps time.Duration so it can be written as "30m" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	dur, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = dur
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: Server{
			Addr:            ":8080",
			ShutdownTimeout: Duration{10 * time.Second},
		},
		Session: Session{
			TTL:      Duration{30 * time.Minute},
			Capacity: 10000,
		},
		View: View{
			PreviewLength: 40,
		},
	}
}

// Load reads a TOML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config keys in %s: %v", path, undecoded)
	}
	return cfg, cfg.Validate()
}

// Validate checks values that would make the server misbehave.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Session.TTL.Duration <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	if c.Session.Capacity <= 0 {
		return fmt.Errorf("session.capacity must be positive")
	}
	if c.View.PreviewLength < 0 {
		return fmt.Errorf("view.preview_length cannot be negative")
	}
	return nil
}
