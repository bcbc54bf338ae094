// Package config reads server settings from the environment.
//
// Every setting has a development default so the site runs with no
// configuration at all. A .env file in the working directory is loaded by
// main; LoadFile loads an explicit one.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Development defaults.
const (
	DefaultPort          = "8080"
	DefaultLogLevel      = "info"
	DefaultDBPath        = "portfolio.db"
	DefaultAssetsDir     = "public"
	DefaultSMTPHost      = "smtp.gmail.com"
	DefaultSMTPPort      = "587"
	DefaultToEmail       = "hungkeiyau@gmail.com"
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultRetention     = 365 * 24 * time.Hour
)

// SMTP holds outgoing mail settings. Mail is disabled when User or Pass is
// empty.
type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Enabled reports whether credentials are set.
func (s SMTP) Enabled() bool { return s.User != "" && s.Pass != "" }

// Config is the server configuration.
type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	DBPath      string
	ContentFile string
	AssetsDir   string
	SMTP        SMTP

	AdminUsername string
	AdminPassword string
	// DefaultAdmin is set when either admin credential fell back to its
	// development default.
	DefaultAdmin bool

	VisitorRetention time.Duration
}

// LoadFile loads a .env file into the process environment. Variables that
// are already set win.
func LoadFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	c := Config{
		Port:        getenv("PORT", DefaultPort),
		GinMode:     os.Getenv("GIN_MODE"),
		LogLevel:    getenv("LOG_LEVEL", DefaultLogLevel),
		DBPath:      getenv("DB_PATH", DefaultDBPath),
		ContentFile: os.Getenv("CONTENT_FILE"),
		AssetsDir:   getenv("ASSETS_DIR", DefaultAssetsDir),
		SMTP: SMTP{
			Host: getenv("SMTP_HOST", DefaultSMTPHost),
			Port: getenv("SMTP_PORT", DefaultSMTPPort),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			To:   getenv("TO_EMAIL", DefaultToEmail),
		},
		AdminUsername:    os.Getenv("ADMIN_USERNAME"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		VisitorRetention: DefaultRetention,
	}
	if c.AdminUsername == "" {
		c.AdminUsername = DefaultAdminUsername
		c.DefaultAdmin = true
	}
	if c.AdminPassword == "" {
		c.AdminPassword = DefaultAdminPassword
		c.DefaultAdmin = true
	}
	if v := os.Getenv("VISITOR_RETENTION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("VISITOR_RETENTION: %w", err)
		}
		c.VisitorRetention = d
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c Config) Validate() error {
	var errs []error
	if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
		errs = append(errs, fmt.Errorf("PORT %q is not a valid port", c.Port))
	}
	if p, err := strconv.Atoi(c.SMTP.Port); err != nil || p < 1 || p > 65535 {
		errs = append(errs, fmt.Errorf("SMTP_PORT %q is not a valid port", c.SMTP.Port))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	switch c.GinMode {
	case "", "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE %q must be debug, release or test", c.GinMode))
	}
	if c.VisitorRetention <= 0 {
		errs = append(errs, fmt.Errorf("VISITOR_RETENTION must be positive, got %s", c.VisitorRetention))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("DB_PATH must not be empty"))
	}
	return errors.Join(errs...)
}

// Addr returns the listen address.
func (c Config) Addr() string { return ":" + c.Port }

// Level returns the parsed log level, or info when LogLevel is invalid.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
