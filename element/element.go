// Package element implements the wrapper-object core: classification of
// user structs, hydration of their bound fields from host parameter
// slots, and committing mutations back through the serialized execution
// bridge.
package element

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/yk35/revitobjects"
	"github.com/yk35/revitobjects/binding"
	"github.com/yk35/revitobjects/errors"
)

// Object is the base every wrapper struct embeds. It carries the wrapped
// host element, the resolved classification, and the compiled binding
// table. All of it is set once by Wrap and never reassigned.
type Object struct {
	host   revitobjects.Element
	doc    revitobjects.Document
	runner revitobjects.Runner

	category Category
	class    Class
	decl     *declaration

	table *binding.Compiled
	self  reflect.Value
}

var objectType = reflect.TypeOf(Object{})

// Wrap constructs a wrapper of type T around a host element. T must be a
// struct embedding Object and must have been classified via Register;
// construction fails with missing_classification otherwise. Binding
// metadata is discovered here (cached per type). The returned wrapper's
// fields are zero until Init hydrates them.
func Wrap[T any](host revitobjects.Element, doc revitobjects.Document, runner revitobjects.Runner) (*T, error) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil, errors.NotWrapper(t.String(), "wrapper must be a struct type")
	}
	if host == nil {
		return nil, errors.NilPointer(errors.PhaseResolve, []string{t.Name()}, "revitobjects.Element")
	}

	base, ok := findBase(t)
	if !ok {
		return nil, errors.NotWrapper(t.Name(), "wrapper must embed element.Object")
	}

	decl, cat, cls, err := resolve(t)
	if err != nil {
		return nil, err
	}

	table, err := binding.Compile(t)
	if err != nil {
		return nil, err
	}

	w := new(T)
	rv := reflect.ValueOf(w).Elem()
	obj := rv.FieldByIndex(base).Addr().Interface().(*Object)
	*obj = Object{
		host:     host,
		doc:      doc,
		runner:   runner,
		category: cat,
		class:    cls,
		decl:     decl,
		table:    table,
		self:     rv,
	}

	Logger().Debug("wrapper constructed",
		zap.String("type", t.Name()),
		zap.String("category", string(cat)),
		zap.String("class", string(cls)),
		zap.Int64("element", int64(host.ID())),
	)
	return w, nil
}

// findBase locates the embedded Object field.
func findBase(t reflect.Type) ([]int, bool) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous && sf.Type == objectType {
			return sf.Index, true
		}
	}
	return nil, false
}

// Category returns the resolved host category, or CategoryInvalid when
// the type declared only a class.
func (o *Object) Category() Category {
	return o.category
}

// Class returns the resolved host element class, or ClassElement when
// the type declared only a category.
func (o *Object) Class() Class {
	return o.class
}

// Host returns the wrapped host element.
func (o *Object) Host() revitobjects.Element {
	return o.host
}

// Doc returns the document the wrapped element lives in.
func (o *Object) Doc() revitobjects.Document {
	return o.doc
}

// IsInstance reports whether the wrapper type was declared as an
// instance (true) or a template (false). It fails with
// ambiguous_classification when the declaration carries neither or both
// tags; the two triggers share one error kind and differ only in
// message.
func (o *Object) IsInstance() (bool, error) {
	return o.decl.isInstance(o.table.GoType.Name())
}
