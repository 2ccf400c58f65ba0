// ABOUTME: Configuration options for the sniffclient library
// ABOUTME: Provides functional options pattern for flexible client configuration

package sniffclient

import (
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the analysis API base used when none is configured
	DefaultBaseURL = "http://localhost:8001/api"

	// DefaultTimeout bounds a single analysis request
	DefaultTimeout = 60 * time.Second
)

// Config holds the configuration for the client
type Config struct {
	// BaseURL is the analysis API base, e.g. "https://host/api"
	BaseURL string

	// Timeout bounds each analysis request
	Timeout time.Duration

	// HTTPClient is the underlying transport
	HTTPClient *http.Client
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithBaseURL sets the analysis API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		if strings.TrimSpace(baseURL) == "" {
			return NewError(ErrorTypeConfiguration, "base URL must not be empty")
		}
		c.BaseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "timeout must be positive")
		}
		c.Timeout = timeout
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) error {
		if client == nil {
			return NewError(ErrorTypeConfiguration, "HTTP client must not be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		BaseURL:    DefaultBaseURL,
		Timeout:    DefaultTimeout,
		HTTPClient: &http.Client{},
	}
}
