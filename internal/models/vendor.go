package models

// Vendor is a restaurant/seller account on the platform.
type Vendor struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	SlugName      string   `json:"slug_name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Town          string   `json:"town"`
	Address       string   `json:"address"`
	LogoURL       string   `json:"logo_url"`
	CoverImageURL string   `json:"cover_image_url"`
	Cuisines      []string `json:"cuisines"`
	Rating        float64  `json:"rating"`
	TotalRatings  float64  `json:"total_ratings"`
	KYCVerified   bool     `json:"kyc_verified"`
	Offline       bool     `json:"offline"`
}
