package models

// SuggestionType discriminates what an autocomplete entry points at.
type SuggestionType string

const (
	SuggestionFood     SuggestionType = "food"
	SuggestionVendor   SuggestionType = "vendor"
	SuggestionCategory SuggestionType = "category"
)

// Suggestion is one autocomplete entry.
type Suggestion struct {
	Name       string         `json:"name"`
	VendorName string         `json:"vendorName,omitempty"`
	Type       SuggestionType `json:"type"`
}

// TrendingTerm is one entry of the trending-searches strip.
type TrendingTerm struct {
	Term string `json:"term"`
}
