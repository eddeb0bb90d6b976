// Package binding discovers how a wrapper struct's fields map onto host
// parameter slots. Discovery runs once per concrete type and is cached;
// the result is a flat table of bound fields with their coercion codecs
// already resolved.
package binding

import (
	"reflect"

	"github.com/yk35/revitobjects"
	"github.com/yk35/revitobjects/param"
)

// TagKey is the struct tag carrying binding metadata.
//
//	Field bool       `param:"IsExternal"`          // slot by name
//	Field ElementID  `param:"LEVEL_PARAM,builtin"` // well-known slot id
//	Field int64      `param:"OwnerId,id"`          // integer holds an element reference
//	Field string     `param:"-"`                   // never bound
const TagKey = "param"

// SlotRef identifies a host slot either by symbolic name or by a
// well-known builtin id. Exactly one side is set.
type SlotRef struct {
	Name    string
	BuiltIn revitobjects.BuiltIn
}

func (r SlotRef) String() string {
	if r.BuiltIn != revitobjects.BuiltInInvalid {
		return "builtin:" + string(r.BuiltIn)
	}
	return r.Name
}

// Resolve looks the slot up on the element. Lookups happen on every
// access; the element may have been mutated by the host in between.
func (r SlotRef) Resolve(el revitobjects.Element) (revitobjects.Slot, error) {
	if r.BuiltIn != revitobjects.BuiltInInvalid {
		return el.SlotByBuiltIn(r.BuiltIn)
	}
	return el.SlotByName(r.Name)
}

// Field is one bound struct field.
type Field struct {
	Name  string
	Index []int
	Kind  param.Kind
	Codec param.Codec
	Ref   SlotRef
}

// Compiled is the binding table of one wrapper type.
type Compiled struct {
	GoType reflect.Type
	Fields []Field
}
