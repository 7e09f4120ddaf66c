// Package vendusclient provides the main entry point for creating Vendus API clients
package vendusclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/codetech/vendus-go/internal/client"
	"github.com/codetech/vendus-go/pkg/vendus"
)

// New creates a new Vendus API client. The config is copied; BaseURL is
// normalized to carry a scheme and a trailing slash.
func New(config *vendus.Config) (vendus.API, error) {
	if config == nil {
		return nil, vendus.ErrConfigRequired
	}

	normalized := *config

	if normalized.BaseURL != "" {
		baseURL, err := normalizeBaseURL(normalized.BaseURL)
		if err != nil {
			return nil, err
		}

		normalized.BaseURL = baseURL
	}

	// Use the internal client implementation
	api, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return api, nil
}

// normalizeBaseURL adds https:// when no scheme is present and makes sure the
// value ends with a slash.
func normalizeBaseURL(baseURL string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("%w: %q", vendus.ErrInvalidBaseURL, baseURL)
	}

	return baseURL, nil
}

// NewWithAPIKey creates a new client for the public API root.
func NewWithAPIKey(apiKey string) (vendus.API, error) {
	return New(&vendus.Config{
		APIKey: apiKey,
	})
}

// NewWithBaseURL creates a new client for a custom API root.
func NewWithBaseURL(baseURL, apiKey string) (vendus.API, error) {
	return New(&vendus.Config{
		APIKey:  apiKey,
		BaseURL: baseURL,
	})
}
