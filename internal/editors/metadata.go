package editors

import (
	"encoding/json"
	"log"

	"github.com/grubline/grubline/internal/models"
	"github.com/grubline/grubline/internal/store"
)

// MetadataEditor manages the flat extras record. Unlike the draft, every
// change is echoed to local storage immediately rather than debounced:
// metadata edits are rare and losing one to a reload is the bigger risk.
type MetadataEditor struct {
	kv   store.Store
	key  string
	meta models.Metadata
}

// NewMetadataEditor restores any previously echoed record; an absent or
// corrupt echo starts from zero values.
func NewMetadataEditor(kv store.Store) *MetadataEditor {
	e := &MetadataEditor{kv: kv, key: models.StoreKeyFoodMetadata}
	raw, ok, err := kv.Get(e.key)
	if err != nil {
		log.Printf("metadata: failed to read echo: %v", err)
		return e
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &e.meta); err != nil {
			log.Printf("metadata: stored echo is corrupt, starting fresh: %v", err)
			e.meta = models.Metadata{}
		}
	}
	return e
}

func (e *MetadataEditor) SetPortionSize(s string) {
	e.meta.PortionSize = s
	e.echo()
}

func (e *MetadataEditor) SetSpiceLevel(l models.SpiceLevel) {
	e.meta.SpiceLevel = l
	e.echo()
}

func (e *MetadataEditor) SetChefSpecial(v bool) {
	e.meta.ChefSpecial = v
	e.echo()
}

func (e *MetadataEditor) Metadata() models.Metadata {
	return e.meta
}

// Clear drops the echo, after the parent form submits successfully.
func (e *MetadataEditor) Clear() {
	e.meta = models.Metadata{}
	if err := e.kv.Delete(e.key); err != nil {
		log.Printf("metadata: failed to clear echo: %v", err)
	}
}

func (e *MetadataEditor) echo() {
	raw, err := json.Marshal(e.meta)
	if err != nil {
		log.Printf("metadata: failed to serialize echo: %v", err)
		return
	}
	if err := e.kv.Set(e.key, string(raw)); err != nil {
		log.Printf("metadata: failed to echo: %v", err)
	}
}
