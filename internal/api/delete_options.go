package api

import "errors"

// DeleteOptions is the discriminator sent with a food delete: exactly one
// field selects what the server removes. The client validates exclusivity
// and passes the choice through unmodified; it never infers deletion scope
// itself.
type DeleteOptions struct {
	DeleteAll bool   `json:"deleteAll,omitempty"`
	VariantID string `json:"variantId,omitempty"`
	ImageID   string `json:"imageId,omitempty"`
	TagKey    string `json:"tagKey,omitempty"`
	MetaKey   string `json:"metaKey,omitempty"`
}

var ErrDeleteScope = errors.New("delete options must select exactly one scope")

func (o DeleteOptions) Validate() error {
	n := 0
	if o.DeleteAll {
		n++
	}
	if o.VariantID != "" {
		n++
	}
	if o.ImageID != "" {
		n++
	}
	if o.TagKey != "" {
		n++
	}
	if o.MetaKey != "" {
		n++
	}
	if n != 1 {
		return ErrDeleteScope
	}
	return nil
}
