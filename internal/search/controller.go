// Package search coordinates the storefront search box: free-text query,
// category selection, autocomplete suggestions and the trending strip.
// Query and category are mutually exclusive; picking one clears the other.
package search

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/grubline/grubline/internal/models"
)

// DefaultDebounce is the quiet period after the last keystroke before an
// autocomplete request fires.
const DefaultDebounce = 300 * time.Millisecond

// MinQueryLen is the shortest query that triggers autocomplete. Anything
// shorter clears the suggestion list immediately, no request and no
// debounce.
const MinQueryLen = 2

// Backend is the slice of the API client the controller needs.
type Backend interface {
	SearchFoods(ctx context.Context, query, category string) ([]models.Food, error)
	Autocomplete(ctx context.Context, query string) ([]models.Suggestion, error)
	Trending(ctx context.Context, limit int) ([]models.TrendingTerm, error)
}

// State is a point-in-time snapshot of the controller for rendering.
type State struct {
	Query          string
	ActiveCategory string
	Autocomplete   []models.Suggestion
	Trending       []models.TrendingTerm
	Results        []models.Food
	ShowDropdown   bool
	Loading        bool
	ErrorMessage   string
}

type Controller struct {
	backend       Backend
	urlState      URLState
	debounce      time.Duration
	trendingLimit int

	mu           sync.Mutex
	query        string
	category     string
	suggestions  []models.Suggestion
	trending     []models.TrendingTerm
	results      []models.Food
	showDropdown bool
	loading      bool
	errMsg       string

	timer *time.Timer
	// Generation counters: only the most recently issued fetch of each
	// kind may update state; a stale response that resolves late is
	// discarded rather than allowed to overwrite a newer one.
	suggestGen int
	resultGen  int

	// Last issued results fetch, for Retry.
	lastQuery    string
	lastCategory string
}

func NewController(backend Backend, urlState URLState, debounce time.Duration, trendingLimit int) *Controller {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if trendingLimit <= 0 {
		trendingLimit = 10
	}
	return &Controller{
		backend:       backend,
		urlState:      urlState,
		debounce:      debounce,
		trendingLimit: trendingLimit,
	}
}

// Start fetches the trending terms once (never refetched automatically)
// and restores a category carried in the URL from a previous visit.
func (c *Controller) Start(ctx context.Context) {
	terms, err := c.backend.Trending(ctx, c.trendingLimit)
	c.mu.Lock()
	if err != nil {
		// Non-critical: clear the strip, no user-visible error.
		log.Printf("search: trending fetch failed: %v", err)
		c.trending = nil
	} else {
		c.trending = terms
	}
	c.mu.Unlock()

	if cat := c.urlState.Category(); cat != "" {
		c.mu.Lock()
		c.category = cat
		c.mu.Unlock()
		c.fetchResults(ctx, "", cat)
	}
}

// SetQuery records a keystroke. The autocomplete request is debounced;
// queries below MinQueryLen skip the request entirely and empty the
// suggestion list right away.
func (c *Controller) SetQuery(ctx context.Context, q string) {
	c.mu.Lock()
	c.query = q
	c.showDropdown = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.suggestGen++
	gen := c.suggestGen

	if len(q) < MinQueryLen {
		c.suggestions = nil
		c.mu.Unlock()
		return
	}

	c.timer = time.AfterFunc(c.debounce, func() {
		c.fireAutocomplete(ctx, q, gen)
	})
	c.mu.Unlock()
}

func (c *Controller) fireAutocomplete(ctx context.Context, q string, gen int) {
	c.mu.Lock()
	if gen != c.suggestGen {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	suggestions, err := c.backend.Autocomplete(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.suggestGen {
		return
	}
	if err != nil {
		// Non-critical: clear only the suggestion list, log, move on.
		log.Printf("search: autocomplete fetch failed: %v", err)
		c.suggestions = nil
		return
	}
	c.suggestions = suggestions
}

// SelectCategory scopes results to the category, clearing the free-text
// query. Selecting the already-active category toggles it back off and
// refetches unscoped results. The URL parameter tracks the selection.
func (c *Controller) SelectCategory(ctx context.Context, category string) {
	c.mu.Lock()
	c.cancelPendingLocked()
	c.query = ""
	c.suggestions = nil
	c.showDropdown = false

	if c.category == category {
		c.category = ""
		c.urlState.SetCategory("")
		c.mu.Unlock()
		c.fetchResults(ctx, "", "")
		return
	}

	c.category = category
	c.urlState.SetCategory(category)
	c.mu.Unlock()
	c.fetchResults(ctx, "", category)
}

// Submit runs the explicit free-text search: category scoping is dropped
// and the dropdown closes.
func (c *Controller) Submit(ctx context.Context) {
	c.mu.Lock()
	c.cancelPendingLocked()
	c.category = ""
	c.urlState.SetCategory("")
	c.showDropdown = false
	q := c.query
	c.mu.Unlock()
	c.fetchResults(ctx, q, "")
}

// Choose applies an autocomplete suggestion as if the user had typed its
// value and submitted, routed by the suggestion's declared type.
func (c *Controller) Choose(ctx context.Context, s models.Suggestion) {
	if s.Type == models.SuggestionCategory {
		c.SelectCategory(ctx, s.Name)
		return
	}
	c.mu.Lock()
	c.query = s.Name
	c.mu.Unlock()
	c.Submit(ctx)
}

// ChooseTrending searches for a trending term as an explicit submit.
func (c *Controller) ChooseTrending(ctx context.Context, term models.TrendingTerm) {
	c.mu.Lock()
	c.query = term.Term
	c.mu.Unlock()
	c.Submit(ctx)
}

// CloseDropdown hides the suggestion dropdown without touching query,
// category or results (the click-outside behavior).
func (c *Controller) CloseDropdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showDropdown = false
}

// Retry re-issues the last results fetch after a failure.
func (c *Controller) Retry(ctx context.Context) {
	c.mu.Lock()
	q, cat := c.lastQuery, c.lastCategory
	c.mu.Unlock()
	c.fetchResults(ctx, q, cat)
}

// fetchResults issues a results fetch guarded by the result generation:
// only the newest issued fetch may update the list. On failure the
// previous results stay visible next to an inline error message.
func (c *Controller) fetchResults(ctx context.Context, query, category string) {
	c.mu.Lock()
	c.resultGen++
	gen := c.resultGen
	c.loading = true
	c.lastQuery, c.lastCategory = query, category
	c.mu.Unlock()

	foods, err := c.backend.SearchFoods(ctx, query, category)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.resultGen {
		return
	}
	c.loading = false
	if err != nil {
		c.errMsg = err.Error()
		return
	}
	c.errMsg = ""
	c.results = foods
}

// cancelPendingLocked stops the debounce timer and invalidates any
// autocomplete fetch it would have fired. Caller holds c.mu.
func (c *Controller) cancelPendingLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.suggestGen++
}

// State snapshots the controller for rendering.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Query:          c.query,
		ActiveCategory: c.category,
		Autocomplete:   append([]models.Suggestion(nil), c.suggestions...),
		Trending:       append([]models.TrendingTerm(nil), c.trending...),
		Results:        append([]models.Food(nil), c.results...),
		ShowDropdown:   c.showDropdown,
		Loading:        c.loading,
		ErrorMessage:   c.errMsg,
	}
}

// Close cancels any pending debounce timer.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelPendingLocked()
}
