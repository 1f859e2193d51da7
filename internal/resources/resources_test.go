package resources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/grubline/grubline/internal/api"
	"github.com/grubline/grubline/internal/cache"
	"github.com/grubline/grubline/internal/models"
	"github.com/grubline/grubline/internal/store"
)

func newTestResources(t *testing.T, handler http.HandlerFunc) *Resources {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.NewClientWithHTTP(srv.URL, srv.Client(), store.NewMemStore())
	return New(cache.New(time.Minute), client)
}

func sendFoods(w http.ResponseWriter, foods []models.Food) {
	json.NewEncoder(w).Encode(map[string]any{"data": foods})
}

func TestFoodsListIsCached(t *testing.T) {
	var hits int32
	r := newTestResources(t, func(w http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&hits, 1)
		sendFoods(w, []models.Food{{ID: "f1", Name: "Margherita"}})
	})

	ctx := context.Background()
	if _, err := r.Foods(ctx, ""); err != nil {
		t.Fatalf("Foods() error = %v", err)
	}
	if _, err := r.Foods(ctx, ""); err != nil {
		t.Fatalf("Foods() error = %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("network calls = %d, want 1 (second read served from cache)", n)
	}
}

func TestCreateFoodRollsBackOnRejection(t *testing.T) {
	r := newTestResources(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/vendors/foods/get-foods":
			sendFoods(w, []models.Food{{ID: "f1", Name: "Margherita"}})
		case "/vendors/foods/create":
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]any{"status": false, "message": "name already taken"})
		}
	})

	ctx := context.Background()
	before, err := r.Foods(ctx, "")
	if err != nil {
		t.Fatalf("Foods() error = %v", err)
	}

	_, err = r.CreateFood(ctx, "v1", &models.FoodDraft{Name: "Margherita"})
	if err == nil {
		t.Fatal("CreateFood() expected the rejection")
	}

	after, err := r.Foods(ctx, "")
	if err != nil {
		t.Fatalf("Foods() error = %v", err)
	}
	if len(after) != len(before) {
		t.Errorf("list length = %d after rollback, want %d", len(after), len(before))
	}
}

func TestUpdateFoodCommitRefetches(t *testing.T) {
	var listHits int32
	r := newTestResources(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/vendors/foods/get-foods":
			name := "Margherita"
			if atomic.AddInt32(&listHits, 1) > 1 {
				name = "Margherita Deluxe"
			}
			sendFoods(w, []models.Food{{ID: "f1", Name: name}})
		case "/vendors/foods/update-food":
			json.NewEncoder(w).Encode(map[string]any{"data": models.Food{ID: "f1", Name: "Margherita Deluxe"}})
		}
	})

	ctx := context.Background()
	if _, err := r.Foods(ctx, ""); err != nil {
		t.Fatalf("Foods() error = %v", err)
	}

	confirmed, err := r.UpdateFood(ctx, "f1", &models.FoodDraft{FoodID: "f1", Name: "Margherita Deluxe"})
	if err != nil {
		t.Fatalf("UpdateFood() error = %v", err)
	}
	if confirmed.Name != "Margherita Deluxe" {
		t.Errorf("confirmed name = %q", confirmed.Name)
	}

	// The commit invalidated the list; the next read revalidates.
	foods, err := r.Foods(ctx, "")
	if err != nil {
		t.Fatalf("Foods() error = %v", err)
	}
	if atomic.LoadInt32(&listHits) != 2 {
		t.Errorf("list fetches = %d, want a refetch after commit", listHits)
	}
	if foods[0].Name != "Margherita Deluxe" {
		t.Errorf("list name = %q, want the server's version", foods[0].Name)
	}
}

func TestDeleteAllRemovesOptimistically(t *testing.T) {
	var deleteHit bool
	r := newTestResources(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/vendors/foods/get-foods":
			sendFoods(w, []models.Food{{ID: "f1"}, {ID: "f2"}})
		case "/vendors/foods/delete-food":
			deleteHit = true
			json.NewEncoder(w).Encode(map[string]any{"status": true})
		}
	})

	ctx := context.Background()
	if _, err := r.Foods(ctx, ""); err != nil {
		t.Fatalf("Foods() error = %v", err)
	}

	if err := r.DeleteFood(ctx, "f1", api.DeleteOptions{DeleteAll: true}); err != nil {
		t.Fatalf("DeleteFood() error = %v", err)
	}
	if !deleteHit {
		t.Fatal("delete never reached the server")
	}
}

func TestDeleteRejectionRestoresList(t *testing.T) {
	r := newTestResources(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/vendors/foods/get-foods":
			sendFoods(w, []models.Food{{ID: "f1"}, {ID: "f2"}})
		case "/vendors/foods/delete-food":
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]any{"status": false, "message": "not your listing"})
		}
	})

	ctx := context.Background()
	if _, err := r.Foods(ctx, ""); err != nil {
		t.Fatalf("Foods() error = %v", err)
	}

	if err := r.DeleteFood(ctx, "f1", api.DeleteOptions{DeleteAll: true}); err == nil {
		t.Fatal("DeleteFood() expected the rejection")
	}

	foods, err := r.Foods(ctx, "")
	if err != nil {
		t.Fatalf("Foods() error = %v", err)
	}
	if len(foods) != 2 {
		t.Errorf("list length = %d after rolled-back delete, want 2", len(foods))
	}
}
