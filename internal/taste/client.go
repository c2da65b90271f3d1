// Package taste adapts the external recommendation provider to the
// engine's fetch contract.
package taste

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/smereddy/vibetrail/internal/core/model"
)

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type recommendationResponse struct {
	Results []struct {
		ID          string                 `json:"id"`
		Name        string                 `json:"name"`
		Description string                 `json:"description"`
		Location    string                 `json:"location"`
		Score       float64                `json:"score"`
		Metadata    map[string]interface{} `json:"metadata"`
	} `json:"results"`
}

// Fetch retrieves candidate entities for one category. Errors are returned
// as-is; the engine treats them as a recoverable per-category failure.
func (c *Client) Fetch(ctx context.Context, category, location string, queryTags []string, seeds []model.ExtractedSeed, limit int) ([]model.Entity, error) {
	params := url.Values{}
	params.Set("type", category)
	params.Set("take", strconv.Itoa(limit))
	if location != "" {
		params.Set("location", location)
	}
	if len(queryTags) > 0 {
		params.Set("tags", strings.Join(queryTags, ","))
	}
	for _, seed := range seeds {
		params.Add("signal", seed.Text)
	}

	endpoint := fmt.Sprintf("%s/recommendations?%s", c.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if c.APIKey != "" {
		req.Header.Set("X-Api-Key", c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recommendation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recommendation provider returned status %d", resp.StatusCode)
	}

	var payload recommendationResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode recommendation response: %w", err)
	}

	entities := make([]model.Entity, 0, len(payload.Results))
	for _, r := range payload.Results {
		entities = append(entities, model.Entity{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Location:    r.Location,
			Score:       r.Score,
			Category:    category,
			Metadata:    r.Metadata,
		})
	}
	return entities, nil
}
