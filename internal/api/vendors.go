package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/grubline/grubline/internal/models"
)

type vendorListResponse struct {
	Data []models.Vendor `json:"data"`
}

type vendorResponse struct {
	Data models.Vendor `json:"data"`
}

func (c *Client) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	var res vendorListResponse
	if err := c.do(ctx, http.MethodGet, "/vendors/get-vendors", models.StoreKeyUserToken, nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) GetVendor(ctx context.Context, id string) (*models.Vendor, error) {
	q := url.Values{"id": {id}}
	var res vendorResponse
	if err := c.do(ctx, http.MethodGet, "/vendors/get-vendor", models.StoreKeyVendorToken, q, nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) UpdateVendor(ctx context.Context, id string, vendor *models.Vendor) (*models.Vendor, error) {
	q := url.Values{"id": {id}}
	var res vendorResponse
	if err := c.do(ctx, http.MethodPatch, "/vendors/update-vendor", models.StoreKeyVendorToken, q, vendor, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) DeleteVendor(ctx context.Context, id string) error {
	q := url.Values{"id": {id}}
	return c.do(ctx, http.MethodDelete, "/vendors/delete-vendor", models.StoreKeyVendorToken, q, nil, nil)
}
