package element

import (
	"reflect"
	"sync"

	"github.com/yk35/revitobjects/errors"
)

// Category is the host-side category a wrapper type belongs to.
type Category string

// CategoryInvalid is the sentinel for wrapper types that declare only an
// element class.
const CategoryInvalid Category = ""

// Common host categories.
const (
	Walls    Category = "Walls"
	Floors   Category = "Floors"
	Doors    Category = "Doors"
	Windows  Category = "Windows"
	Levels   Category = "Levels"
	Rooms    Category = "Rooms"
	Ceilings Category = "Ceilings"
)

// Class is the host element class a wrapper type maps to.
type Class string

// ClassElement is the host's generic entity class, used when a wrapper
// type declares only a category.
const ClassElement Class = "Element"

// Common host element classes.
const (
	ClassWall           Class = "Wall"
	ClassWallType       Class = "WallType"
	ClassFloor          Class = "Floor"
	ClassFloorType      Class = "FloorType"
	ClassLevel          Class = "Level"
	ClassFamilyInstance Class = "FamilyInstance"
	ClassFamilySymbol   Class = "FamilySymbol"
)

// declaration holds what Register recorded for a wrapper type. Validity
// is judged by the resolver at construction, and the instance/template
// side lazily by IsInstance.
type declaration struct {
	category    Category
	class       Class
	hasCategory bool
	hasClass    bool
	instance    bool
	template    bool
}

// Option declares one classification fact about a wrapper type.
type Option func(*declaration)

// WithCategory declares the wrapper's host category.
func WithCategory(c Category) Option {
	return func(d *declaration) {
		d.category = c
		d.hasCategory = true
	}
}

// WithClass declares the wrapper's host element class.
func WithClass(c Class) Option {
	return func(d *declaration) {
		d.class = c
		d.hasClass = true
	}
}

// Instance declares that the wrapper maps placed instances.
func Instance() Option {
	return func(d *declaration) { d.instance = true }
}

// Template declares that the wrapper maps element templates (types).
func Template() Option {
	return func(d *declaration) { d.template = true }
}

var registry sync.Map // reflect.Type -> *declaration

// Register records classification facts for the wrapper type T. It takes
// the place of type-level annotations: call it once per wrapper type,
// typically from an init function. Registering the same type again
// replaces the earlier declaration. Validation happens at Wrap, not here.
func Register[T any](opts ...Option) {
	d := &declaration{}
	for _, opt := range opts {
		opt(d)
	}
	registry.Store(reflect.TypeFor[T](), d)
}

// resolve derives the classification of t. Declaring only one of
// category and class is fine; each missing side falls back to its
// sentinel. Declaring neither is a configuration error.
func resolve(t reflect.Type) (*declaration, Category, Class, error) {
	v, ok := registry.Load(t)
	if !ok {
		return nil, CategoryInvalid, ClassElement, errors.MissingClassification(t.Name())
	}
	d := v.(*declaration)
	if !d.hasCategory && !d.hasClass {
		return nil, CategoryInvalid, ClassElement, errors.MissingClassification(t.Name())
	}

	cat := CategoryInvalid
	if d.hasCategory {
		cat = d.category
	}
	cls := ClassElement
	if d.hasClass {
		cls = d.class
	}
	return d, cat, cls, nil
}

// isInstance answers the instance/template question for a declaration.
// Exactly one of the two tags must be present.
func (d *declaration) isInstance(typeName string) (bool, error) {
	if d.instance && d.template {
		return false, errors.AmbiguousClassification(typeName,
			"both instance and template declared")
	}
	if !d.instance && !d.template {
		return false, errors.AmbiguousClassification(typeName,
			"neither instance nor template declared")
	}
	return d.instance, nil
}
