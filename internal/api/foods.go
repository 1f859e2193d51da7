package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/grubline/grubline/internal/models"
)

type foodListResponse struct {
	Data []models.Food `json:"data"`
}

type foodResponse struct {
	Data models.Food `json:"data"`
}

// ListFoods returns foods, optionally scoped to one vendor.
func (c *Client) ListFoods(ctx context.Context, vendorID string) ([]models.Food, error) {
	q := url.Values{}
	if vendorID != "" {
		q.Set("vendorId", vendorID)
	}
	var res foodListResponse
	if err := c.do(ctx, http.MethodGet, "/vendors/foods/get-foods", models.StoreKeyVendorToken, q, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) GetFood(ctx context.Context, id string) (*models.Food, error) {
	q := url.Values{"id": {id}}
	var res foodResponse
	if err := c.do(ctx, http.MethodGet, "/vendors/foods/get-food", models.StoreKeyVendorToken, q, nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// CreateFood creates a listing under the vendor from a completed draft.
func (c *Client) CreateFood(ctx context.Context, vendorID string, draft *models.FoodDraft) (*models.Food, error) {
	q := url.Values{"vendorId": {vendorID}}
	var res foodResponse
	if err := c.do(ctx, http.MethodPost, "/vendors/foods/create", models.StoreKeyVendorToken, q, draft, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) UpdateFood(ctx context.Context, id string, draft *models.FoodDraft) (*models.Food, error) {
	q := url.Values{"id": {id}}
	var res foodResponse
	if err := c.do(ctx, http.MethodPatch, "/vendors/foods/update-food", models.StoreKeyVendorToken, q, draft, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// DeleteFood removes the whole listing or one sub-resource of it, as
// selected by opts.
func (c *Client) DeleteFood(ctx context.Context, id string, opts DeleteOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	q := url.Values{"id": {id}}
	return c.do(ctx, http.MethodDelete, "/vendors/foods/delete-food", models.StoreKeyVendorToken, q, opts, nil)
}
