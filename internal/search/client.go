package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/skabbuzaid/AiBackend/internal/config"
)

const defaultBaseURL = "https://api.duckduckgo.com"

type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// Client queries the DuckDuckGo instant-answer API. Search is always
// best-effort: callers are expected to degrade to Unavailable text rather
// than fail their request.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

type instantAnswer struct {
	Heading       string `json:"Heading"`
	AbstractText  string `json:"AbstractText"`
	AbstractURL   string `json:"AbstractURL"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	endpoint := fmt.Sprintf("%s/?q=%s&format=json&no_html=1&skip_disambig=1",
		c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var answer instantAnswer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	var results []Result
	if answer.AbstractText != "" {
		results = append(results, Result{
			Title:   answer.Heading,
			Snippet: answer.AbstractText,
			URL:     answer.AbstractURL,
		})
	}
	for _, rt := range answer.RelatedTopics {
		if len(results) >= maxResults {
			break
		}
		if rt.Text == "" {
			continue
		}
		results = append(results, Result{
			Title:   rt.Text,
			Snippet: rt.Text,
			URL:     rt.FirstURL,
		})
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// Unavailable is the sentinel appended to a prompt when search fails.
const Unavailable = "Search is currently unavailable."

// SearchFormatted runs a query and renders the results for prompt
// injection. It never fails: errors collapse into the sentinel text.
func (c *Client) SearchFormatted(ctx context.Context, query string, maxResults int) string {
	results, err := c.Search(ctx, query, maxResults)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("web search failed, continuing without results")
		return Unavailable
	}
	return Format(results)
}

// Format renders results the way the tutor prompt embeds them.
func Format(results []Result) string {
	if len(results) == 0 {
		return "No results found."
	}

	var b strings.Builder
	b.WriteString("Search Results:\n\n")
	for i, r := range results {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, r.Title)
		fmt.Fprintf(&b, "   %s\n", r.Snippet)
		fmt.Fprintf(&b, "   Source: %s\n\n", r.URL)
	}
	return b.String()
}
