package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"
)

// SearchConfig holds configuration for the web-search tool backend.
type SearchConfig struct {
	Endpoint  string
	APIKey    string
	TimeoutMs int
}

// DefaultSearchConfig returns the Tavily defaults.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Endpoint:  "https://api.tavily.com",
		TimeoutMs: 10000,
	}
}

// LoadSearchConfig reads search configuration from ESTATEPATH_SEARCH_*
// environment variables.
func LoadSearchConfig() SearchConfig {
	cfg := DefaultSearchConfig()
	if v := os.Getenv("ESTATEPATH_SEARCH_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("ESTATEPATH_SEARCH_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("ESTATEPATH_SEARCH_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	return cfg
}

// SearchResult is one web-search hit.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// SearchClient performs web searches for the assistant's tool calls.
// Without an API key it serves a canned result so the offline demo flow
// still works.
type SearchClient struct {
	cfg  SearchConfig
	http *http.Client
}

// NewSearchClient creates a SearchClient.
func NewSearchClient(cfg SearchConfig) *SearchClient {
	return &SearchClient{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond},
	}
}

type searchRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results"`
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

// Search runs a web search for the query. A missing API key yields a mock
// result rather than an error.
func (c *SearchClient) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if c.cfg.APIKey == "" {
		return mockResults(query), nil
	}

	body := searchRequest{
		APIKey:      c.cfg.APIKey,
		Query:       query,
		SearchDepth: "basic",
		MaxResults:  3,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/search", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search endpoint returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var sr searchResponse
	if err := json.Unmarshal(respBody, &sr); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return sr.Results, nil
}

func mockResults(query string) []SearchResult {
	return []SearchResult{
		{
			Title:   "Family Justice Courts - Probate and Administration",
			URL:     "https://www.judiciary.gov.sg/family/probate-administration",
			Content: "General information on applying for a Grant of Probate or Letters of Administration in Singapore, including required documents and court fees. (Offline result for: " + query + ")",
		},
	}
}
