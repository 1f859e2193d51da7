package models

// Local-storage keys. The draft key is owned exclusively by the draft
// store and the metadata key by the metadata editor; nothing else writes
// to them.
const (
	StoreKeyUserToken    = "user_token"
	StoreKeyVendorToken  = "vendor_token"
	StoreKeyFoodDraft    = "food_draft"
	StoreKeyFoodMetadata = "food_metadata"
)

// Cache keys for the query/cache layer.
const (
	CacheKeyFoods   = "foods"
	CacheKeyVendors = "vendors"
)

func CacheKeyFood(id string) string   { return "food:" + id }
func CacheKeyVendor(id string) string { return "vendor:" + id }
