package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Result is one hit returned by the SearxNG metasearch backend.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
	ImgSrc  string `json:"img_src,omitempty"`
	Author  string `json:"author,omitempty"`
}

type searxngResponse struct {
	Results     []Result `json:"results"`
	Suggestions []string `json:"suggestions"`
}

// Options narrow a SearxNG query. Empty Engines uses the instance defaults.
type Options struct {
	Engines    []string
	Language   string
	PageNumber int
}

// Client is a thin JSON client for a SearxNG instance.
type Client struct {
	BaseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Search runs a query and returns results plus query suggestions.
func (c *Client) Search(ctx context.Context, query string, opts *Options) ([]Result, []string, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	if opts != nil {
		if len(opts.Engines) > 0 {
			params.Set("engines", strings.Join(opts.Engines, ","))
		}
		if opts.Language != "" {
			params.Set("language", opts.Language)
		}
		if opts.PageNumber > 0 {
			params.Set("pageno", fmt.Sprintf("%d", opts.PageNumber))
		}
	}

	endpoint := fmt.Sprintf("%s/search?%s", c.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("searxng request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("searxng error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed searxngResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return parsed.Results, parsed.Suggestions, nil
}
