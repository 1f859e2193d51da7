package search

import "net/url"

// URLState mirrors the selected category into the page URL so the
// selection survives back-navigation and is shareable as a link. Only the
// category parameter is part of the contract.
type URLState interface {
	Category() string
	SetCategory(category string)
}

// PageURL is the URLState over a real URL's query string.
type PageURL struct {
	u *url.URL
}

func NewPageURL(u *url.URL) *PageURL {
	return &PageURL{u: u}
}

func (p *PageURL) Category() string {
	return p.u.Query().Get("category")
}

func (p *PageURL) SetCategory(category string) {
	q := p.u.Query()
	if category == "" {
		q.Del("category")
	} else {
		q.Set("category", category)
	}
	p.u.RawQuery = q.Encode()
}

// String returns the full URL for display or sharing.
func (p *PageURL) String() string {
	return p.u.String()
}
