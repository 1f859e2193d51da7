package wizard

import (
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/grubline/grubline/internal/models"
)

func TestStepGating(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		set     func(w *Wizard, in string)
		wantErr error
	}{
		{"emptyName", "", (*Wizard).SetName, ErrNameRequired},
		{"whitespaceName", "   ", (*Wizard).SetName, ErrNameRequired},
		{"validName", "Large", (*Wizard).SetName, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			tt.set(w, tt.input)
			err := w.Next()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Next() error = %v, want %v", err, tt.wantErr)
			}
			wantStep := StepName
			if tt.wantErr == nil {
				wantStep = StepPrice
			}
			if w.Step() != wantStep {
				t.Errorf("Step() = %v, want %v", w.Step(), wantStep)
			}
		})
	}
}

func TestPriceGating(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		wantErr error
	}{
		{"empty", "", ErrPriceRequired},
		{"notANumber", "cheap", ErrPriceInvalid},
		{"negative", "-3", ErrPriceInvalid},
		{"explicitZero", "0", nil},
		{"decimal", "12.50", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			w.SetName("Large")
			if err := w.Next(); err != nil {
				t.Fatalf("Next() past name: %v", err)
			}
			w.SetPrice(tt.price)
			err := w.Next()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Next() error = %v, want %v", err, tt.wantErr)
			}
			wantStep := StepPrice
			if tt.wantErr == nil {
				wantStep = StepImage
			}
			if w.Step() != wantStep {
				t.Errorf("Step() = %v, want %v", w.Step(), wantStep)
			}
		})
	}
}

func TestBackFromFirstStepExits(t *testing.T) {
	w := New()
	w.SetName("Large")
	w.SetPrice("10")

	if exited := w.Back(); !exited {
		t.Error("Back() at first step = false, want exit")
	}

	// The in-progress variant is discarded.
	w.SetPrice("") // no-op check: wizard is blank again
	if err := w.Next(); !errors.Is(err, ErrNameRequired) {
		t.Errorf("Next() after exit = %v, want ErrNameRequired (fields discarded)", err)
	}
}

func TestBackStepsBackward(t *testing.T) {
	w := atImageStep(t, "Large", "10")
	if exited := w.Back(); exited {
		t.Fatal("Back() from image step exited")
	}
	if w.Step() != StepPrice {
		t.Errorf("Step() = %v, want StepPrice", w.Step())
	}
}

func TestSaveOnlyAtImageStep(t *testing.T) {
	w := New()
	w.SetName("Large")
	if _, _, err := w.Save(); !errors.Is(err, ErrSaveOnlyAtLast) {
		t.Errorf("Save() at name step error = %v, want ErrSaveOnlyAtLast", err)
	}
}

func TestSaveEmitsTrimmedVariantAndResets(t *testing.T) {
	w := atImageStep(t, "  Family Size  ", "19.90")

	v, tok, err := w.Save()
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if tok != nil {
		t.Errorf("Save() token = %+v, want nil for a fresh variant", tok)
	}
	want := models.Variant{Name: "Family Size", Price: 19.90}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("Save() = %+v, want %+v", v, want)
	}
	if w.Step() != StepName {
		t.Errorf("Step() after save = %v, want StepName", w.Step())
	}
	if err := w.Next(); !errors.Is(err, ErrNameRequired) {
		t.Error("wizard not blank after save")
	}
}

func TestLoadPreSeedsForEdit(t *testing.T) {
	w := New()
	w.Load(models.Variant{ID: "v2", Name: "Large", Price: 13, Image: "https://cdn/x.jpg"}, &EditToken{Index: 1})

	if w.Step() != StepName {
		t.Errorf("Step() after Load = %v, want StepName", w.Step())
	}
	if err := w.Next(); err != nil {
		t.Errorf("Next() with pre-seeded name = %v", err)
	}
	if err := w.Next(); err != nil {
		t.Errorf("Next() with pre-seeded price = %v", err)
	}
	v, tok, err := w.Save()
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if tok == nil || tok.Index != 1 {
		t.Errorf("Save() token = %+v, want index 1", tok)
	}
	if v.Name != "Large" || v.Price != 13 || v.Image != "https://cdn/x.jpg" {
		t.Errorf("Save() = %+v, pre-seeded fields lost", v)
	}
}

func TestMergeAppendsWithoutToken(t *testing.T) {
	list := []models.Variant{{Name: "Small", Price: 5}}
	got := Merge(list, models.Variant{Name: "Large", Price: 10}, nil)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[1].Name != "Large" {
		t.Errorf("appended variant = %+v", got[1])
	}
	if len(list) != 1 {
		t.Error("input slice mutated")
	}
}

func TestMergeReplacesExactIndex(t *testing.T) {
	list := []models.Variant{
		{ID: "v1", Name: "Small", Price: 5},
		{ID: "v2", Name: "Large", Price: 10},
		{Name: "Small", Price: 5}, // same name/price as index 0, must not be matched
	}

	got := Merge(list, models.Variant{Name: "Medium", Price: 7}, &EditToken{Index: 2})

	if len(got) != len(list) {
		t.Fatalf("len = %d, want unchanged %d", len(got), len(list))
	}
	if got[0].Name != "Small" || got[1].Name != "Large" {
		t.Error("untouched positions changed")
	}
	if got[2].Name != "Medium" {
		t.Errorf("position 2 = %+v, want the replacement", got[2])
	}
}

func TestMergeKeepsRemoteID(t *testing.T) {
	list := []models.Variant{{ID: "v2", Name: "Large", Price: 10}}
	got := Merge(list, models.Variant{Name: "Larger", Price: 12}, &EditToken{Index: 0})
	if got[0].ID != "v2" {
		t.Errorf("replacement lost remote ID: %+v", got[0])
	}
}

type mockUploader struct {
	UploadFunc func(ctx context.Context, name, contentType string, body io.Reader) (string, error)
}

func (m *mockUploader) Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, name, contentType, body)
	}
	return "https://cdn/" + name, nil
}

func TestUploadImageAttachesURL(t *testing.T) {
	w := atImageStep(t, "Large", "10")

	err := w.UploadImage(context.Background(), &mockUploader{}, "pic.jpg", "image/jpeg", 1024, strings.NewReader("img"))
	if err != nil {
		t.Fatalf("UploadImage() error = %v", err)
	}
	if w.Image() != "https://cdn/pic.jpg" {
		t.Errorf("Image() = %q", w.Image())
	}
}

func TestUploadImageRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
	}{
		{"wrongType", "application/pdf", 1024},
		{"tooLarge", "image/png", 6 << 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := atImageStep(t, "Large", "10")
			err := w.UploadImage(context.Background(), &mockUploader{}, "f", tt.contentType, tt.size, strings.NewReader("x"))
			if err == nil {
				t.Fatal("UploadImage() accepted an invalid file")
			}
			// Sibling fields survive the rejection.
			v, _, saveErr := w.Save()
			if saveErr != nil {
				t.Fatalf("Save() after rejected upload: %v", saveErr)
			}
			if v.Name != "Large" || v.Price != 10 || v.Image != "" {
				t.Errorf("Save() = %+v, name/price should survive with empty image", v)
			}
		})
	}
}

func TestUploadFailureLeavesImageEmpty(t *testing.T) {
	w := atImageStep(t, "Large", "10")

	up := &mockUploader{UploadFunc: func(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
		return "", errors.New("hosting provider down")
	}}
	if err := w.UploadImage(context.Background(), up, "pic.jpg", "image/jpeg", 1024, strings.NewReader("img")); err == nil {
		t.Fatal("UploadImage() expected the provider error")
	}
	if w.Image() != "" {
		t.Errorf("Image() = %q, want empty after failure", w.Image())
	}
}

func TestLateUploadResultDiscardedAfterClose(t *testing.T) {
	w := atImageStep(t, "Large", "10")

	started := make(chan struct{})
	release := make(chan struct{})
	up := &mockUploader{UploadFunc: func(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
		close(started)
		<-release
		return "https://cdn/late.jpg", nil
	}}

	done := make(chan error, 1)
	go func() {
		done <- w.UploadImage(context.Background(), up, "late.jpg", "image/jpeg", 10, strings.NewReader("x"))
	}()

	<-started
	w.Close()
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("UploadImage() error = %v", err)
	}

	if w.Image() != "" {
		t.Errorf("Image() = %q, late result applied to a closed wizard", w.Image())
	}
}

func atImageStep(t *testing.T, name, price string) *Wizard {
	t.Helper()
	w := New()
	w.SetName(name)
	if err := w.Next(); err != nil {
		t.Fatalf("Next() past name: %v", err)
	}
	w.SetPrice(price)
	if err := w.Next(); err != nil {
		t.Fatalf("Next() past price: %v", err)
	}
	return w
}
