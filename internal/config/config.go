// Package config contains everything related to configuration
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	BackendURL     string
	RequestTimeout time.Duration
	// AddressPinned is set when the backend address came from the process
	// environment, which edits to EnvFile cannot override.
	AddressPinned bool
	EnvFile       string
	WatchEnv      bool
	DesktopNotify bool
	LogFile       string
	LogLevel      string
}

// Default values
const (
	DefaultBackendURL     = "http://localhost:3000"
	defaultRequestTimeout = 10 * time.Second
	defaultLogLevel       = "info"
)

// Environment keys consulted for the backend address, in precedence order.
const (
	BackendURLKey     = "BACKEND_URL"
	WebBackendURLKey  = "VITE_Backend_URL"
	ViteBackendURLKey = "VITE_BACKEND_URL"
)

var backendURLKeys = []string{BackendURLKey, WebBackendURLKey, ViteBackendURLKey}

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	pinned := false
	for _, key := range backendURLKeys {
		pinned = pinned || hasEnv(key)
	}

	// First .env found wins; real environment variables are not overridden.
	var envFile string
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", path, err)
			}
			envFile = path
			break
		}
	}

	addrValues := make(map[string]string, len(backendURLKeys))
	for _, key := range backendURLKeys {
		addrValues[key] = os.Getenv(key)
	}

	cfg := &Config{
		BackendURL:     ResolveBackendURL(addrValues),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", defaultRequestTimeout),
		AddressPinned:  pinned,
		EnvFile:        envFile,
		WatchEnv:       getEnvBool("WATCH_ENV", true),
		DesktopNotify:  getEnvBool("DESKTOP_NOTIFY", false),
		LogFile:        getEnvString("LOG_FILE", getDefaultLogPath()),
		LogLevel:       strings.ToLower(getEnvString("LOG_LEVEL", defaultLogLevel)),
	}

	if err := ValidateBackendURL(cfg.BackendURL); err != nil {
		return nil, err
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	// Ensure log directory exists
	if err := ensureDir(filepath.Dir(cfg.LogFile)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ResolveBackendURL picks the backend address from a set of env values:
// BACKEND_URL, then the web build's VITE_Backend_URL, then VITE_BACKEND_URL,
// then the local default.
func ResolveBackendURL(values map[string]string) string {
	for _, key := range backendURLKeys {
		if v := strings.TrimSpace(values[key]); v != "" {
			return strings.TrimRight(v, "/")
		}
	}
	return DefaultBackendURL
}

// ValidateBackendURL checks that addr is an absolute http(s) URL.
func ValidateBackendURL(addr string) error {
	u, err := url.Parse(addr)
	if err != nil {
		return fmt.Errorf("invalid backend URL %q: %w", addr, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid backend URL %q: scheme must be http or https", addr)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid backend URL %q: missing host", addr)
	}
	return nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "trafficbuddy", ".env"),
			filepath.Join(home, ".trafficbuddy", ".env"),
		)
	}

	// Parent directory, for running from inside a checkout
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(cwd), ".env"))
	}

	return paths
}

// getDefaultLogPath returns the default path for the log file.
func getDefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tbd.log"
	}
	return filepath.Join(home, ".config", "trafficbuddy", "tbd.log")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// hasEnv reports whether key is set to a non-blank value.
func hasEnv(key string) bool {
	return strings.TrimSpace(os.Getenv(key)) != ""
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns the default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
