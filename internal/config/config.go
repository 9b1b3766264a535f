package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/tokenstudio/tokenstudio/internal/site"
)

// DefaultConfigFilename is the default configuration filename.
const DefaultConfigFilename = "tokenstudio.yaml"

// Validation errors.
var (
	errAddrRequired       = errors.New("listen address is required")
	errSessionTTLInvalid  = errors.New("session TTL must be positive")
	errMaxSessionsInvalid = errors.New("max sessions must be positive")
	errShutdownInvalid    = errors.New("shutdown timeout must be positive")
	errUnknownSkin        = errors.New("unknown skin")
	errLogFormatInvalid   = errors.New("log format must be console or json")
)

// Config is the server configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr" env:"ADDR"`

	Log      LogConfig      `yaml:"log" envPrefix:"LOG_"`
	Sessions SessionsConfig `yaml:"sessions" envPrefix:"SESSION_"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`

	// DefaultSkin is the landing page skin when the request names none.
	DefaultSkin string `yaml:"default_skin" env:"DEFAULT_SKIN"`
}

// LogConfig controls the server logger.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// SessionsConfig controls the in-memory wizard session store.
type SessionsConfig struct {
	// TTL is how long an idle session is kept.
	TTL time.Duration `yaml:"ttl" env:"TTL"`

	// Max is the number of sessions kept before the oldest is evicted.
	Max int `yaml:"max" env:"MAX"`

	// SweepInterval is how often expired sessions are removed.
	SweepInterval time.Duration `yaml:"sweep_interval" env:"SWEEP_INTERVAL"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Addr: ":8080",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Sessions: SessionsConfig{
			TTL:           30 * time.Minute,
			Max:           10000,
			SweepInterval: time.Minute,
		},
		ShutdownTimeout: 10 * time.Second,
		DefaultSkin:     string(site.DefaultSkin),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errAddrRequired
	}
	if c.Sessions.TTL <= 0 {
		return errSessionTTLInvalid
	}
	if c.Sessions.Max <= 0 {
		return errMaxSessionsInvalid
	}
	if c.Sessions.SweepInterval <= 0 {
		c.Sessions.SweepInterval = c.Sessions.TTL
	}
	if c.ShutdownTimeout <= 0 {
		return errShutdownInvalid
	}
	if _, ok := site.LookupSkin(c.DefaultSkin); !ok {
		return fmt.Errorf("%w: %q", errUnknownSkin, c.DefaultSkin)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %q", errLogFormatInvalid, c.Log.Format)
	}
	return nil
}
