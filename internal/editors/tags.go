// Package editors holds the small controlled-field managers of the food
// form: the tag list and the metadata record.
package editors

// TagEditor manages an ordered, deduplicated tag list together with its
// input field.
type TagEditor struct {
	tags  []string
	input string
}

func NewTagEditor(tags []string) *TagEditor {
	e := &TagEditor{}
	e.tags = append(e.tags, tags...)
	return e
}

func (e *TagEditor) SetInput(s string) { e.input = s }
func (e *TagEditor) Input() string     { return e.input }

// Add appends the current input to the tag list. Adding a tag that already
// exists (case-sensitive exact match) is a no-op, but the input field is
// cleared either way.
func (e *TagEditor) Add() {
	tag := e.input
	e.input = ""
	if tag == "" {
		return
	}
	for _, t := range e.tags {
		if t == tag {
			return
		}
	}
	e.tags = append(e.tags, tag)
}

// Remove drops every exact match of tag, preserving order of the rest.
func (e *TagEditor) Remove(tag string) {
	kept := e.tags[:0]
	for _, t := range e.tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	e.tags = kept
}

// Tags returns a copy of the current list.
func (e *TagEditor) Tags() []string {
	out := make([]string, len(e.tags))
	copy(out, e.tags)
	return out
}
