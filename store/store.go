// Package store is an in-memory host entity store implementing the
// boundary interfaces of the root package. It backs tests and the
// paramview tool; a production host would sit behind the same
// interfaces. Elements live in a handle-style table with free-slot
// reuse, and parameter slots are runtime-typed cells.
package store

import (
	"sync"

	"github.com/yk35/revitobjects"
	"github.com/yk35/revitobjects/errors"
	"github.com/yk35/revitobjects/param"
)

// Document is an in-memory revitobjects.Document.
type Document struct {
	title    string
	entries  []entry
	freeList []revitobjects.ElementID
	mu       sync.RWMutex
}

type entry struct {
	el    *Element
	valid bool
}

// NewDocument creates an empty document.
func NewDocument(title string) *Document {
	return &Document{
		title:   title,
		entries: make([]entry, 0, 64),
	}
}

// Title returns the document's display title.
func (d *Document) Title() string {
	return d.title
}

// AddElement creates an element with the given slots and returns it.
// Element ids are assigned from the table position; ids of removed
// elements are reused.
func (d *Document) AddElement(slots ...SlotSpec) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()

	var id revitobjects.ElementID
	if n := len(d.freeList); n > 0 {
		id = d.freeList[n-1]
		d.freeList = d.freeList[:n-1]
	} else {
		id = revitobjects.ElementID(len(d.entries) + 1)
		d.entries = append(d.entries, entry{})
	}

	el := newElement(d, id, slots)
	d.entries[id-1] = entry{el: el, valid: true}
	return el
}

// addAt places an element at a fixed id, growing the table as needed.
// Used by snapshot loading; an already occupied id is an error.
func (d *Document) addAt(id revitobjects.ElementID, slots []SlotSpec) (*Element, error) {
	if !id.IsValid() {
		return nil, errors.InvalidInput(errors.PhaseHost, "element id must be positive")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for int(id) > len(d.entries) {
		d.freeList = append(d.freeList, revitobjects.ElementID(len(d.entries)+1))
		d.entries = append(d.entries, entry{})
	}
	if d.entries[id-1].valid {
		return nil, errors.InvalidInput(errors.PhaseHost, "duplicate element id")
	}

	for i, free := range d.freeList {
		if free == id {
			d.freeList = append(d.freeList[:i], d.freeList[i+1:]...)
			break
		}
	}

	el := newElement(d, id, slots)
	d.entries[id-1] = entry{el: el, valid: true}
	return el, nil
}

// ElementByID resolves an element or fails with element_not_found.
func (d *Document) ElementByID(id revitobjects.ElementID) (revitobjects.Element, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !id.IsValid() || int(id) > len(d.entries) || !d.entries[id-1].valid {
		return nil, errors.ElementNotFound(int64(id))
	}
	return d.entries[id-1].el, nil
}

// Remove drops an element and frees its id for reuse.
func (d *Document) Remove(id revitobjects.ElementID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !id.IsValid() || int(id) > len(d.entries) || !d.entries[id-1].valid {
		return false
	}
	d.entries[id-1] = entry{}
	d.freeList = append(d.freeList, id)
	return true
}

// Elements returns the live elements in id order.
func (d *Document) Elements() []*Element {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*Element, 0, len(d.entries))
	for _, e := range d.entries {
		if e.valid {
			out = append(out, e.el)
		}
	}
	return out
}

// Element is an in-memory revitobjects.Element.
type Element struct {
	doc       *Document
	id        revitobjects.ElementID
	slots     []*Slot
	byName    map[string]*Slot
	byBuiltIn map[revitobjects.BuiltIn]*Slot
}

func newElement(doc *Document, id revitobjects.ElementID, specs []SlotSpec) *Element {
	el := &Element{
		doc:       doc,
		id:        id,
		byName:    make(map[string]*Slot, len(specs)),
		byBuiltIn: make(map[revitobjects.BuiltIn]*Slot),
	}
	for _, spec := range specs {
		s := spec.build(doc)
		el.slots = append(el.slots, s)
		if s.name != "" {
			el.byName[s.name] = s
		}
		if s.builtin != revitobjects.BuiltInInvalid {
			el.byBuiltIn[s.builtin] = s
		}
	}
	return el
}

// ID returns the element's id.
func (e *Element) ID() revitobjects.ElementID {
	return e.id
}

// Doc returns the owning document.
func (e *Element) Doc() *Document {
	return e.doc
}

// SlotByName resolves a parameter slot by symbolic name.
func (e *Element) SlotByName(name string) (revitobjects.Slot, error) {
	if s, ok := e.byName[name]; ok {
		return s, nil
	}
	return nil, errors.SlotNotFound(errors.PhaseHost, name)
}

// SlotByBuiltIn resolves a parameter slot by well-known id.
func (e *Element) SlotByBuiltIn(id revitobjects.BuiltIn) (revitobjects.Slot, error) {
	if s, ok := e.byBuiltIn[id]; ok {
		return s, nil
	}
	return nil, errors.SlotNotFound(errors.PhaseHost, string(id))
}

// Slots returns the element's slots in declaration order.
func (e *Element) Slots() []*Slot {
	return e.slots
}

// Kind reports the storage type of a slot. Only the four storage kinds
// appear here; booleans are integer-stored.
func (s *Slot) Kind() param.Kind {
	return s.kind
}
