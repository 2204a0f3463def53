// Package datamuse wraps the Datamuse word-relation API
// (https://www.datamuse.com/api/), which serves Open English WordNet data.
package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the public Datamuse endpoint.
	DefaultBaseURL = "https://api.datamuse.com"

	// DefaultMaxRetryAttempts bounds retries on transient upstream failures.
	DefaultMaxRetryAttempts = 2
)

// Entry is one word in a Datamuse response.
type Entry struct {
	Word  string   `json:"word"`
	Score int      `json:"score"`
	Defs  []string `json:"defs,omitempty"`
}

// Client queries the Datamuse API.
type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// NewClient creates a Datamuse client for the given base URL. An empty base
// URL uses the public endpoint.
func NewClient(baseURL string, retryAttempts uint) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

// Definitions fetches the best spelling match for a word with its
// tab-delimited "partOfSpeech\tdefinition" pairs attached.
func (c *Client) Definitions(ctx context.Context, word string) ([]Entry, error) {
	return c.words(ctx, map[string]string{
		"sp":  word,
		"md":  "d",
		"max": "1",
	})
}

// Synonyms fetches up to max words in a synonym relation with word.
func (c *Client) Synonyms(ctx context.Context, word string, max int) ([]Entry, error) {
	return c.words(ctx, map[string]string{
		"rel_syn": word,
		"max":     fmt.Sprintf("%d", max),
	})
}

// Antonyms fetches up to max words in an antonym relation with word.
func (c *Client) Antonyms(ctx context.Context, word string, max int) ([]Entry, error) {
	return c.words(ctx, map[string]string{
		"rel_ant": word,
		"max":     fmt.Sprintf("%d", max),
	})
}

func (c *Client) words(ctx context.Context, params map[string]string) ([]Entry, error) {
	var result []Entry
	if err := retry.Do(
		func() error {
			entries, err := c.fetchWords(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = entries
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) fetchWords(ctx context.Context, params map[string]string) ([]Entry, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/words")
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("response error %d: %s", res.StatusCode(), string(res.Body()))
	}

	var entries []Entry
	if err := json.Unmarshal(res.Body(), &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return entries, nil
}

// isRetryableError determines whether an error should trigger a retry.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	if strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}
