package editors

import (
	"reflect"
	"testing"

	"github.com/grubline/grubline/internal/models"
	"github.com/grubline/grubline/internal/store"
)

func TestTagAdd(t *testing.T) {
	tests := []struct {
		name  string
		start []string
		input string
		want  []string
	}{
		{"firstTag", nil, "spicy", []string{"spicy"}},
		{"secondTag", []string{"spicy"}, "vegan", []string{"spicy", "vegan"}},
		{"duplicateIsNoOp", []string{"spicy"}, "spicy", []string{"spicy"}},
		{"caseSensitive", []string{"spicy"}, "Spicy", []string{"spicy", "Spicy"}},
		{"emptyInput", []string{"spicy"}, "", []string{"spicy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewTagEditor(tt.start)
			e.SetInput(tt.input)
			e.Add()

			if got := e.Tags(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tags() = %v, want %v", got, tt.want)
			}
			// The input field clears whether or not the tag was new.
			if e.Input() != "" {
				t.Errorf("Input() = %q, want cleared", e.Input())
			}
		})
	}
}

func TestTagRemove(t *testing.T) {
	e := NewTagEditor([]string{"spicy", "vegan", "bestseller"})
	e.Remove("vegan")

	want := []string{"spicy", "bestseller"}
	if got := e.Tags(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}

	// Removing something absent changes nothing.
	e.Remove("halal")
	if got := e.Tags(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}
}

func TestTagsReturnsCopy(t *testing.T) {
	e := NewTagEditor([]string{"spicy"})
	got := e.Tags()
	got[0] = "mutated"
	if e.Tags()[0] != "spicy" {
		t.Error("Tags() exposed internal state")
	}
}

func TestMetadataEchoesImmediately(t *testing.T) {
	kv := store.NewMemStore()
	e := NewMetadataEditor(kv)

	e.SetPortionSize("Family")
	if _, ok, _ := kv.Get(models.StoreKeyFoodMetadata); !ok {
		t.Fatal("no echo after SetPortionSize")
	}

	e.SetSpiceLevel(models.SpiceHot)
	e.SetChefSpecial(true)

	// A fresh editor over the same store restores all of it.
	restored := NewMetadataEditor(kv)
	want := models.Metadata{PortionSize: "Family", SpiceLevel: models.SpiceHot, ChefSpecial: true}
	if got := restored.Metadata(); got != want {
		t.Errorf("Metadata() = %+v, want %+v", got, want)
	}
}

func TestMetadataCorruptEchoStartsFresh(t *testing.T) {
	kv := store.NewMemStore()
	kv.Set(models.StoreKeyFoodMetadata, "{broken")

	e := NewMetadataEditor(kv)
	if got := e.Metadata(); got != (models.Metadata{}) {
		t.Errorf("Metadata() = %+v, want zero values", got)
	}
}

func TestMetadataClear(t *testing.T) {
	kv := store.NewMemStore()
	e := NewMetadataEditor(kv)
	e.SetChefSpecial(true)

	e.Clear()
	if _, ok, _ := kv.Get(models.StoreKeyFoodMetadata); ok {
		t.Error("echo still stored after Clear()")
	}
	if got := e.Metadata(); got != (models.Metadata{}) {
		t.Errorf("Metadata() = %+v, want zero values after Clear()", got)
	}
}
