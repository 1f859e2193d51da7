// Package wizard implements the bounded three-step variant editor:
// name, then price, then image. Forward motion is gated per step, backward
// motion is always allowed, and backing out of the first step discards the
// in-progress variant.
package wizard

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/grubline/grubline/internal/models"
)

type Step int

const (
	StepName Step = iota
	StepPrice
	StepImage
)

func (s Step) String() string {
	switch s {
	case StepName:
		return "name"
	case StepPrice:
		return "price"
	case StepImage:
		return "image"
	}
	return "unknown"
}

// EditToken pins a variant edit to a position in the parent's variant
// slice. Identity while editing is the index, never the variant's optional
// remote ID, so not-yet-persisted variants are editable like any other.
type EditToken struct {
	Index int
}

// Validation failures shown inline next to the offending field.
var (
	ErrNameRequired   = errors.New("variant name is required")
	ErrPriceRequired  = errors.New("variant price is required")
	ErrPriceInvalid   = errors.New("variant price must be a non-negative number")
	ErrSaveOnlyAtLast = errors.New("finish all steps before saving")
)

type Wizard struct {
	mu      sync.Mutex
	step    Step
	name    string
	price   string
	image   string
	editing *EditToken
	session int
}

func New() *Wizard {
	return &Wizard{}
}

// Load pre-seeds all three fields from an existing variant for editing and
// resets the step pointer to the first step. tok carries the position the
// saved result must replace; nil means the save will append.
func (w *Wizard) Load(v models.Variant, tok *EditToken) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.name = v.Name
	w.price = strconv.FormatFloat(v.Price, 'f', -1, 64)
	w.image = v.Image
	w.editing = tok
	w.step = StepName
	w.session++
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) SetName(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.name = name
}

func (w *Wizard) SetPrice(price string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.price = price
}

func (w *Wizard) Editing() *EditToken {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.editing
}

// Next advances one step. It returns a field-level validation error and
// stays put when the current step's input does not pass its gate.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.step {
	case StepName:
		if strings.TrimSpace(w.name) == "" {
			return ErrNameRequired
		}
		w.step = StepPrice
	case StepPrice:
		if _, err := w.parsePrice(); err != nil {
			return err
		}
		w.step = StepImage
	case StepImage:
		// Terminal for forward motion; save is offered here instead.
	}
	return nil
}

// Back moves one step backward. From the first step it exits the wizard,
// discarding the in-progress variant, and reports exited=true.
func (w *Wizard) Back() (exited bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepName {
		w.resetLocked()
		return true
	}
	w.step--
	return false
}

// Save emits the completed variant and the edit token it was opened with,
// then resets the wizard to blank. Only valid at the image step.
func (w *Wizard) Save() (models.Variant, *EditToken, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepImage {
		return models.Variant{}, nil, ErrSaveOnlyAtLast
	}
	price, err := w.parsePrice()
	if err != nil {
		return models.Variant{}, nil, err
	}
	v := models.Variant{
		Name:  strings.TrimSpace(w.name),
		Price: price,
		Image: w.image,
	}
	tok := w.editing
	w.resetLocked()
	return v, tok, nil
}

// Close abandons the wizard. An image upload still in flight for the old
// session is discarded when it lands.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resetLocked()
}

func (w *Wizard) resetLocked() {
	w.name = ""
	w.price = ""
	w.image = ""
	w.editing = nil
	w.step = StepName
	w.session++
}

// parsePrice accepts any numeric-coercible input, explicit 0 included.
func (w *Wizard) parsePrice() (float64, error) {
	in := strings.TrimSpace(w.price)
	if in == "" {
		return 0, ErrPriceRequired
	}
	p, err := strconv.ParseFloat(in, 64)
	if err != nil || p < 0 {
		return 0, ErrPriceInvalid
	}
	return p, nil
}

// Merge folds a saved variant back into the parent list: with a token it
// replaces exactly that position, without one it appends.
func Merge(list []models.Variant, v models.Variant, tok *EditToken) []models.Variant {
	if tok != nil && tok.Index >= 0 && tok.Index < len(list) {
		out := make([]models.Variant, len(list))
		copy(out, list)
		// An edited variant keeps the remote ID of the entry it replaces.
		v.ID = list[tok.Index].ID
		out[tok.Index] = v
		return out
	}
	out := make([]models.Variant, 0, len(list)+1)
	out = append(out, list...)
	return append(out, v)
}
