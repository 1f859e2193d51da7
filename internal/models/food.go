package models

// Food is a menu listing as served by the platform API.
type Food struct {
	ID                    string    `json:"id"`
	VendorID              string    `json:"vendor_id"`
	Name                  string    `json:"name"`
	Description           string    `json:"description"`
	Category              string    `json:"category"`
	Price                 float64   `json:"price"`
	DeliveryFee           float64   `json:"delivery_fee"`
	EstimatedDeliveryTime string    `json:"estimated_delivery_time"`
	Tags                  []string  `json:"tags"`
	Available             bool      `json:"available"`
	Images                []string  `json:"images"`
	Variants              []Variant `json:"variants"`
	Metadata              *Metadata `json:"metadata,omitempty"`
	Rating                float64   `json:"rating"`
	TotalRatings          int       `json:"total_ratings"`
}

// Variant is one sellable variation of a food item (e.g. size or portion).
// ID is set only for variants the server has already persisted; a variant
// added locally and not yet submitted has an empty ID. While a draft is
// being edited, variant identity is positional (index in the parent slice),
// never the ID. See wizard.EditToken.
type Variant struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}

// SpiceLevel enumerates the metadata spice scale.
type SpiceLevel string

const (
	SpiceMild   SpiceLevel = "Mild"
	SpiceMedium SpiceLevel = "Medium"
	SpiceHot    SpiceLevel = "Hot"
)

// Metadata is the flat extras record attached to a food item. It is echoed
// to local storage independently of the draft so a metadata-only edit
// survives a reload mid-form.
type Metadata struct {
	PortionSize string     `json:"portion_size"`
	SpiceLevel  SpiceLevel `json:"spice_level"`
	ChefSpecial bool       `json:"chef_special"`
}

// FoodDraft is the in-progress create/update form state. It is transient:
// the durable source of truth is the remote API, but the draft is persisted
// to local storage between edits so a reload does not lose work.
type FoodDraft struct {
	FoodID                string    `json:"food_id,omitempty"`
	Name                  string    `json:"name"`
	Description           string    `json:"description"`
	Category              string    `json:"category"`
	Price                 float64   `json:"price"`
	DeliveryFee           float64   `json:"delivery_fee"`
	EstimatedDeliveryTime string    `json:"estimated_delivery_time"`
	Tags                  []string  `json:"tags"`
	Available             bool      `json:"available"`
	Images                []string  `json:"images"`
	Variants              []Variant `json:"variants"`
}

// NewFoodDraft returns the empty default draft a form starts from.
func NewFoodDraft() *FoodDraft {
	return &FoodDraft{Available: true}
}

// DraftFromFood seeds a draft from an existing listing for the update flow.
func DraftFromFood(f *Food) *FoodDraft {
	d := &FoodDraft{
		FoodID:                f.ID,
		Name:                  f.Name,
		Description:           f.Description,
		Category:              f.Category,
		Price:                 f.Price,
		DeliveryFee:           f.DeliveryFee,
		EstimatedDeliveryTime: f.EstimatedDeliveryTime,
		Available:             f.Available,
	}
	d.Tags = append(d.Tags, f.Tags...)
	d.Images = append(d.Images, f.Images...)
	d.Variants = append(d.Variants, f.Variants...)
	return d
}
