// Package translator provides chunk-level text translation through the
// Azure Translator Text API.
package translator

import (
	"context"
	"fmt"
	"strings"
)

// Options controls a single translation request
type Options struct {
	From string // source language code; empty means auto-detect
	To   string // target language code
}

// Client defines the interface for text translation services
type Client interface {
	// Translate translates a single chunk of text
	Translate(ctx context.Context, text string, opts Options) (string, error)

	// Name returns the client name
	Name() string
}

// Config holds Azure Translator credentials
type Config struct {
	Key      string // subscription key (AZURE_TRANSLATOR_KEY)
	Endpoint string // service endpoint (AZURE_TRANSLATOR_ENDPOINT)
	Region   string // subscription region, optional (AZURE_TRANSLATOR_REGION)
}

// Validate reports every missing required setting at once, so a
// misconfigured run fails before any network call is attempted.
func (c *Config) Validate() error {
	var missing []string
	if c.Key == "" {
		missing = append(missing, "AZURE_TRANSLATOR_KEY")
	}
	if c.Endpoint == "" {
		missing = append(missing, "AZURE_TRANSLATOR_ENDPOINT")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing Azure Translator configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// APIError represents an error response from the Translator service
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("translator API error (status %d): %s", e.Status, e.Message)
}

// RateLimitError indicates that the API rate limit has been exceeded
type RateLimitError struct {
	RetryAfter int // seconds to wait before retry, 0 if unknown
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("translator rate limit exceeded, retry after %ds", e.RetryAfter)
	}
	return "translator rate limit exceeded"
}
