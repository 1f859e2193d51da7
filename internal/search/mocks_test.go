package search

import (
	"context"
	"sync"

	"github.com/grubline/grubline/internal/models"
)

type searchCall struct {
	Query    string
	Category string
}

// MockBackend is a test double for the API client slice the controller
// consumes. Default behavior returns canned values; override per test via
// the Func fields.
type MockBackend struct {
	mu            sync.Mutex
	searchCalls   []searchCall
	autoCalls     []string
	trendingCalls int

	SearchFoodsFunc  func(ctx context.Context, query, category string) ([]models.Food, error)
	AutocompleteFunc func(ctx context.Context, query string) ([]models.Suggestion, error)
	TrendingFunc     func(ctx context.Context, limit int) ([]models.TrendingTerm, error)
}

func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

func (m *MockBackend) SearchFoods(ctx context.Context, query, category string) ([]models.Food, error) {
	m.mu.Lock()
	m.searchCalls = append(m.searchCalls, searchCall{Query: query, Category: category})
	m.mu.Unlock()
	if m.SearchFoodsFunc != nil {
		return m.SearchFoodsFunc(ctx, query, category)
	}
	name := query
	if category != "" {
		name = category + " special"
	}
	if name == "" {
		name = "House Pick"
	}
	return []models.Food{{ID: "f1", Name: name, Category: category}}, nil
}

func (m *MockBackend) Autocomplete(ctx context.Context, query string) ([]models.Suggestion, error) {
	m.mu.Lock()
	m.autoCalls = append(m.autoCalls, query)
	m.mu.Unlock()
	if m.AutocompleteFunc != nil {
		return m.AutocompleteFunc(ctx, query)
	}
	return []models.Suggestion{{Name: query + " pizza", Type: models.SuggestionFood}}, nil
}

func (m *MockBackend) Trending(ctx context.Context, limit int) ([]models.TrendingTerm, error) {
	m.mu.Lock()
	m.trendingCalls++
	m.mu.Unlock()
	if m.TrendingFunc != nil {
		return m.TrendingFunc(ctx, limit)
	}
	return []models.TrendingTerm{{Term: "jollof"}, {Term: "ramen"}}, nil
}

func (m *MockBackend) SearchCalls() []searchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]searchCall(nil), m.searchCalls...)
}

func (m *MockBackend) AutoCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.autoCalls...)
}

func (m *MockBackend) TrendingCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trendingCalls
}
