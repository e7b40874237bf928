package lexicon

import "github.com/vovakirdan/lexicon/internal/physics"

// EntityID identifies a word on the field. IDs are never reused within a Registry.
type EntityID uint64

// Entity is a word drifting on the field.
type Entity struct {
	ID    EntityID
	Body  physics.BodyID
	Text  string
	Typed int // Characters typed so far; non-zero only while locked
	Width int // Rendered width in cells, brackets included
}

// Remaining returns the part of the word still to be typed.
func (e *Entity) Remaining() string {
	return e.Text[e.Typed:]
}

// Done reports whether every character has been typed.
func (e *Entity) Done() bool {
	return e.Typed >= len(e.Text)
}

// Registry holds the words on the field in spawn order.
// Duplicate texts are allowed and are distinct entities.
type Registry struct {
	items  []*Entity
	cap    int
	nextID EntityID
}

// NewRegistry creates an empty registry holding at most capacity words.
func NewRegistry(capacity int) *Registry {
	return &Registry{cap: capacity}
}

// Add appends a word. Returns false when the registry is already full.
func (r *Registry) Add(text string, body physics.BodyID) (*Entity, bool) {
	if r.Full() {
		return nil, false
	}
	r.nextID++
	e := &Entity{
		ID:    r.nextID,
		Body:  body,
		Text:  text,
		Width: len(text) + 2,
	}
	r.items = append(r.items, e)
	return e, true
}

// Remove deletes the entity with the given ID, keeping the order of the rest.
func (r *Registry) Remove(id EntityID) (*Entity, bool) {
	for i, e := range r.items {
		if e.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return e, true
		}
	}
	return nil, false
}

// Get returns the entity with the given ID.
func (r *Registry) Get(id EntityID) (*Entity, bool) {
	for _, e := range r.items {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Len returns the number of words on the field.
func (r *Registry) Len() int {
	return len(r.items)
}

// Cap returns the capacity.
func (r *Registry) Cap() int {
	return r.cap
}

// Full reports whether the registry holds its capacity.
func (r *Registry) Full() bool {
	return len(r.items) >= r.cap
}

// Entities returns the words in spawn order. The slice is a copy; the
// entities are shared.
func (r *Registry) Entities() []*Entity {
	out := make([]*Entity, len(r.items))
	copy(out, r.items)
	return out
}

// Clear removes every word. IDs keep increasing.
func (r *Registry) Clear() {
	r.items = nil
}
