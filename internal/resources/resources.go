// Package resources binds the query/cache layer to the remote resource
// client: typed reads served through the cache and mutations applied
// optimistically with rollback when the remote call fails.
package resources

import (
	"context"
	"time"

	"github.com/grubline/grubline/internal/api"
	"github.com/grubline/grubline/internal/cache"
	"github.com/grubline/grubline/internal/models"
)

type Resources struct {
	cache *cache.Cache
	api   *api.Client
}

func New(c *cache.Cache, client *api.Client) *Resources {
	return &Resources{cache: c, api: client}
}

// Foods returns the vendor's food list through the cache; concurrent
// callers share one request.
func (r *Resources) Foods(ctx context.Context, vendorID string) ([]models.Food, error) {
	v, err := r.cache.Get(ctx, models.CacheKeyFoods, func(ctx context.Context) (any, error) {
		return r.api.ListFoods(ctx, vendorID)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Food), nil
}

func (r *Resources) Food(ctx context.Context, id string) (*models.Food, error) {
	v, err := r.cache.Get(ctx, models.CacheKeyFood(id), func(ctx context.Context) (any, error) {
		return r.api.GetFood(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Food), nil
}

func (r *Resources) Vendors(ctx context.Context) ([]models.Vendor, error) {
	v, err := r.cache.Get(ctx, models.CacheKeyVendors, func(ctx context.Context) (any, error) {
		return r.api.ListVendors(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Vendor), nil
}

func (r *Resources) Vendor(ctx context.Context, id string) (*models.Vendor, error) {
	v, err := r.cache.Get(ctx, models.CacheKeyVendor(id), func(ctx context.Context) (any, error) {
		return r.api.GetVendor(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Vendor), nil
}

// WatchFoods subscribes to the food list with periodic background
// refresh; the visible list never blanks while a refresh runs.
func (r *Resources) WatchFoods(ctx context.Context, vendorID string, interval time.Duration) *cache.Resource {
	return r.cache.Subscribe(ctx, models.CacheKeyFoods, func(ctx context.Context) (any, error) {
		return r.api.ListFoods(ctx, vendorID)
	}, cache.Options{RefreshInterval: interval})
}

// CreateFood submits a completed draft. The new listing is appended to the
// cached food list optimistically and rolled back if the server rejects
// the create.
func (r *Resources) CreateFood(ctx context.Context, vendorID string, d *models.FoodDraft) (*models.Food, error) {
	pending := draftToFood(d)
	tok := r.cache.Mutate(models.CacheKeyFoods, func(prev any) any {
		foods, _ := prev.([]models.Food)
		out := make([]models.Food, 0, len(foods)+1)
		out = append(out, foods...)
		return append(out, pending)
	})

	created, err := r.api.CreateFood(ctx, vendorID, d)
	if err != nil {
		_ = r.cache.Rollback(tok)
		return nil, err
	}
	_ = r.cache.Commit(tok)
	return created, nil
}

// UpdateFood applies the draft optimistically to both the detail entry and
// the cached list before the remote call confirms it.
func (r *Resources) UpdateFood(ctx context.Context, id string, d *models.FoodDraft) (*models.Food, error) {
	updated := draftToFood(d)
	updated.ID = id

	listTok := r.cache.Mutate(models.CacheKeyFoods, func(prev any) any {
		foods, _ := prev.([]models.Food)
		out := make([]models.Food, len(foods))
		copy(out, foods)
		for i := range out {
			if out[i].ID == id {
				out[i] = updated
			}
		}
		return out
	})
	itemTok := r.cache.Mutate(models.CacheKeyFood(id), func(prev any) any {
		return &updated
	})

	confirmed, err := r.api.UpdateFood(ctx, id, d)
	if err != nil {
		_ = r.cache.Rollback(itemTok)
		_ = r.cache.Rollback(listTok)
		return nil, err
	}
	_ = r.cache.Commit(itemTok)
	_ = r.cache.Commit(listTok)
	return confirmed, nil
}

// DeleteFood removes the listing (or one sub-resource of it, per opts).
// Only a whole-listing delete is reflected optimistically in the list;
// sub-resource deletes invalidate instead, since the server owns their
// interpretation.
func (r *Resources) DeleteFood(ctx context.Context, id string, opts api.DeleteOptions) error {
	if !opts.DeleteAll {
		if err := r.api.DeleteFood(ctx, id, opts); err != nil {
			return err
		}
		r.cache.Invalidate(models.CacheKeyFood(id))
		r.cache.Invalidate(models.CacheKeyFoods)
		return nil
	}

	tok := r.cache.Mutate(models.CacheKeyFoods, func(prev any) any {
		foods, _ := prev.([]models.Food)
		out := make([]models.Food, 0, len(foods))
		for _, f := range foods {
			if f.ID != id {
				out = append(out, f)
			}
		}
		return out
	})

	if err := r.api.DeleteFood(ctx, id, opts); err != nil {
		_ = r.cache.Rollback(tok)
		return err
	}
	_ = r.cache.Commit(tok)
	r.cache.Invalidate(models.CacheKeyFood(id))
	return nil
}

// UpdateVendor applies the vendor profile edit optimistically.
func (r *Resources) UpdateVendor(ctx context.Context, id string, v *models.Vendor) (*models.Vendor, error) {
	tok := r.cache.Mutate(models.CacheKeyVendor(id), func(prev any) any {
		return v
	})

	confirmed, err := r.api.UpdateVendor(ctx, id, v)
	if err != nil {
		_ = r.cache.Rollback(tok)
		return nil, err
	}
	_ = r.cache.Commit(tok)
	return confirmed, nil
}

func (r *Resources) DeleteVendor(ctx context.Context, id string) error {
	if err := r.api.DeleteVendor(ctx, id); err != nil {
		return err
	}
	r.cache.Invalidate(models.CacheKeyVendor(id))
	r.cache.Invalidate(models.CacheKeyVendors)
	return nil
}

// draftToFood shapes a draft into the listing the server is expected to
// echo back, for optimistic display.
func draftToFood(d *models.FoodDraft) models.Food {
	return models.Food{
		ID:                    d.FoodID,
		Name:                  d.Name,
		Description:           d.Description,
		Category:              d.Category,
		Price:                 d.Price,
		DeliveryFee:           d.DeliveryFee,
		EstimatedDeliveryTime: d.EstimatedDeliveryTime,
		Tags:                  append([]string(nil), d.Tags...),
		Available:             d.Available,
		Images:                append([]string(nil), d.Images...),
		Variants:              append([]models.Variant(nil), d.Variants...),
	}
}
