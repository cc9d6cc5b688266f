package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

const (
	apiVersion     = "3.0"
	requestTimeout = 30 * time.Second
)

// AzureClient implements Client for the Azure Translator Text API v3.0
type AzureClient struct {
	config     Config
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// translateRequest is one entry in the request body array
type translateRequest struct {
	Text string `json:"text"`
}

// translateResponse is one entry in the response array
type translateResponse struct {
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

// NewAzureClient creates a new Azure Translator client
func NewAzureClient(config Config) (*AzureClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &AzureClient{
		config: config,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "azure-translator",
			Timeout: 30 * time.Second,
		}),
	}, nil
}

// Translate translates a single chunk of text. Empty input short-circuits
// to an empty result without a network call.
func (c *AzureClient) Translate(ctx context.Context, text string, opts Options) (string, error) {
	if text == "" {
		return "", nil
	}
	if opts.To == "" {
		return "", fmt.Errorf("target language is required")
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.translate(ctx, text, opts)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (c *AzureClient) translate(ctx context.Context, text string, opts Options) (string, error) {
	params := url.Values{}
	params.Set("api-version", apiVersion)
	params.Set("to", opts.To)
	if opts.From != "" {
		params.Set("from", opts.From)
	}
	reqURL := strings.TrimRight(c.config.Endpoint, "/") + "/translate?" + params.Encode()

	body, err := json.Marshal([]translateRequest{{Text: text}})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.config.Key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-ClientTraceId", uuid.NewString())
	if c.config.Region != "" {
		req.Header.Set("Ocp-Apim-Subscription-Region", c.config.Region)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return "", &RateLimitError{RetryAfter: retryAfter}

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", &APIError{
			Status:  resp.StatusCode,
			Message: "authentication failed, check AZURE_TRANSLATOR_KEY and AZURE_TRANSLATOR_REGION",
		}

	case resp.StatusCode != http.StatusOK:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &APIError{
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(snippet)),
		}
	}

	var parsed []translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &APIError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("failed to decode response: %v", err),
		}
	}
	if len(parsed) == 0 || len(parsed[0].Translations) == 0 {
		return "", &APIError{
			Status:  resp.StatusCode,
			Message: "no translation in response",
		}
	}

	return parsed[0].Translations[0].Text, nil
}

// Name returns the client name
func (c *AzureClient) Name() string {
	return "azure-translator"
}
