// Package catalog implements the external reference-catalog collaborator:
// an HTTP client for a Pokémon card catalog API used to resolve imported
// records to authoritative catalog entries.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/cardledger/server/internal/match"
	"github.com/cardledger/server/internal/retry"
)

// Card is one catalog entry as returned by the API.
type Card struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
	Rarity string `json:"rarity"`
	Set    struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Series string `json:"series"`
	} `json:"set"`
	Images struct {
		Small string `json:"small"`
		Large string `json:"large"`
	} `json:"images"`
}

// Candidate converts a catalog card into the matcher's candidate shape.
func (c Card) Candidate() match.Candidate {
	return match.Candidate{
		ID:       c.ID,
		Name:     c.Name,
		SetName:  c.Set.Name,
		Number:   c.Number,
		Rarity:   c.Rarity,
		ImageURL: c.Images.Small,
	}
}

type searchResponse struct {
	Data []Card `json:"data"`
}

// Options configures the catalog client.
type Options struct {
	BaseURL    string
	APIKey     string
	PageSize   int
	Timeout    time.Duration
	MaxRetries int
}

// Client is an HTTP client for the card catalog API. Search results are
// cached per query for the lifetime of the client; catalog data changes
// rarely enough that a process-lifetime cache is safe.
type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
	retryCfg   retry.Config
	cache      sync.Map // query -> []match.Candidate
}

// NewClient creates a catalog client. Zero-value options get sensible
// defaults (10s timeout, 2 retries, 20 results per search).
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 20
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	return &Client{
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		pageSize:   opts.PageSize,
		httpClient: &http.Client{Timeout: opts.Timeout},
		retryCfg: retry.Config{
			MaxRetries: opts.MaxRetries,
			BaseDelay:  500 * time.Millisecond,
			MaxDelay:   5 * time.Second,
			Timeout:    opts.Timeout,
		},
	}
}

// Search queries the catalog by card name and returns matcher candidates.
// It satisfies match.SearchFunc.
func (c *Client) Search(ctx context.Context, name string) ([]match.Candidate, error) {
	if cached, ok := c.cache.Load(name); ok {
		return cached.([]match.Candidate), nil
	}

	cards, err := retry.WithRetry(ctx, c.retryCfg, func(ctx context.Context) ([]Card, error) {
		return c.searchOnce(ctx, name)
	})
	if err != nil {
		return nil, fmt.Errorf("catalog search %q: %w", name, err)
	}

	candidates := make([]match.Candidate, len(cards))
	for i, card := range cards {
		candidates[i] = card.Candidate()
	}

	c.cache.Store(name, candidates)
	return candidates, nil
}

func (c *Client) searchOnce(ctx context.Context, name string) ([]Card, error) {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("name:%q", name))
	q.Set("pageSize", fmt.Sprintf("%d", c.pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cards?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("catalog returned %d: %s", resp.StatusCode, body)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return parsed.Data, nil
}
