package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/grubline/grubline/internal/models"
)

type autocompleteResponse struct {
	Suggestions []models.Suggestion `json:"suggestions"`
}

type trendingResponse struct {
	Trending []models.TrendingTerm `json:"trending"`
}

// SearchFoods runs a free-text search. Query text and category scoping are
// mutually exclusive; pass exactly one.
func (c *Client) SearchFoods(ctx context.Context, query, category string) ([]models.Food, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	} else {
		q.Set("q", query)
	}
	var res foodListResponse
	if err := c.do(ctx, http.MethodGet, "/search/food/search", models.StoreKeyUserToken, q, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) Autocomplete(ctx context.Context, query string) ([]models.Suggestion, error) {
	q := url.Values{"q": {query}}
	var res autocompleteResponse
	if err := c.do(ctx, http.MethodGet, "/search/food/autocomplete", models.StoreKeyUserToken, q, nil, &res); err != nil {
		return nil, err
	}
	return res.Suggestions, nil
}

func (c *Client) Trending(ctx context.Context, limit int) ([]models.TrendingTerm, error) {
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	var res trendingResponse
	if err := c.do(ctx, http.MethodGet, "/search/food/trending", models.StoreKeyUserToken, q, nil, &res); err != nil {
		return nil, err
	}
	return res.Trending, nil
}
