package store

import (
	"fmt"
	"sync"

	"github.com/yk35/revitobjects"
	"github.com/yk35/revitobjects/errors"
	"github.com/yk35/revitobjects/param"
)

// Slot is a runtime-typed parameter cell. Getters return the stored
// representation or the zero value on a storage mismatch; setters of the
// wrong storage type fail, mirroring hosts that reject such writes.
type Slot struct {
	mu      *sync.RWMutex // the owning document's lock
	name    string
	builtin revitobjects.BuiltIn
	kind    param.Kind

	intVal int64
	dblVal float64
	strVal string
	idVal  revitobjects.ElementID
}

// SlotSpec declares one slot of a new element.
type SlotSpec struct {
	Name    string
	BuiltIn revitobjects.BuiltIn
	Kind    param.Kind
	Integer int64
	Double  float64
	Text    string
	Ref     revitobjects.ElementID
}

// Integer declares an integer-storage slot. Boolean parameters live in
// integer slots with values 1 and 0.
func Integer(name string, v int64) SlotSpec {
	return SlotSpec{Name: name, Kind: param.KindInteger, Integer: v}
}

// Double declares a floating-point slot.
func Double(name string, v float64) SlotSpec {
	return SlotSpec{Name: name, Kind: param.KindDouble, Double: v}
}

// Text declares a text slot.
func Text(name string, v string) SlotSpec {
	return SlotSpec{Name: name, Kind: param.KindText, Text: v}
}

// Reference declares an element-reference slot.
func Reference(name string, id revitobjects.ElementID) SlotSpec {
	return SlotSpec{Name: name, Kind: param.KindElementID, Ref: id}
}

// AsBuiltIn additionally exposes the slot under a well-known id.
func (s SlotSpec) AsBuiltIn(id revitobjects.BuiltIn) SlotSpec {
	s.BuiltIn = id
	return s
}

func (s SlotSpec) build(doc *Document) *Slot {
	return &Slot{
		mu:      &doc.mu,
		name:    s.Name,
		builtin: s.BuiltIn,
		kind:    s.Kind,
		intVal:  s.Integer,
		dblVal:  s.Double,
		strVal:  s.Text,
		idVal:   s.Ref,
	}
}

// Name returns the slot's symbolic name.
func (s *Slot) Name() string {
	return s.name
}

func (s *Slot) AsInteger() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.intVal
}

func (s *Slot) AsDouble() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dblVal
}

func (s *Slot) AsString() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.strVal
}

func (s *Slot) AsElementID() revitobjects.ElementID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idVal
}

func (s *Slot) SetInteger(v int64) error {
	if err := s.check(param.KindInteger); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intVal = v
	return nil
}

func (s *Slot) SetDouble(v float64) error {
	if err := s.check(param.KindDouble); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dblVal = v
	return nil
}

func (s *Slot) SetString(v string) error {
	if err := s.check(param.KindText); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strVal = v
	return nil
}

func (s *Slot) SetElementID(id revitobjects.ElementID) error {
	if err := s.check(param.KindElementID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idVal = id
	return nil
}

func (s *Slot) check(want param.Kind) error {
	if s.kind != want {
		return errors.New(errors.PhaseHost, errors.KindTypeMismatch).
			Slot(s.name).
			Detail("%s write to %s slot", want, s.kind).
			Build()
	}
	return nil
}

// Display renders the slot's current value for listing tools.
func (s *Slot) Display() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch s.kind {
	case param.KindInteger:
		return fmt.Sprintf("%d", s.intVal)
	case param.KindDouble:
		return fmt.Sprintf("%g", s.dblVal)
	case param.KindText:
		return s.strVal
	case param.KindElementID:
		return fmt.Sprintf("%d", s.idVal)
	default:
		return "?"
	}
}
