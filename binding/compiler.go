package binding

import (
	"reflect"
	"strings"
	"sync"

	"github.com/yk35/revitobjects"
	"github.com/yk35/revitobjects/errors"
	"github.com/yk35/revitobjects/param"
)

// Compiler builds binding tables from struct tags. Compilation is
// idempotent and cached per concrete type.
type Compiler struct {
	cache sync.Map // reflect.Type -> *Compiled
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

var defaultCompiler = NewCompiler()

// Compile builds (or returns the cached) binding table for t using the
// package-level compiler.
func Compile(t reflect.Type) (*Compiled, error) {
	return defaultCompiler.Compile(t)
}

// Compile builds the binding table for t. t must be a struct type;
// pointer types are dereferenced first.
func (c *Compiler) Compile(t reflect.Type) (*Compiled, error) {
	if t == nil {
		return nil, errors.New(errors.PhaseCompile, errors.KindNilPointer).
			Detail("wrapper type cannot be nil").
			Build()
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.NotWrapper(t.String(), "wrapper must be a struct type")
	}

	if cached, ok := c.cache.Load(t); ok {
		return cached.(*Compiled), nil
	}

	ct, err := compile(t)
	if err != nil {
		return nil, err
	}

	c.cache.Store(t, ct)
	return ct, nil
}

func compile(t reflect.Type) (*Compiled, error) {
	fields := make([]Field, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}

		tag, ok := sf.Tag.Lookup(TagKey)
		if !ok || tag == "-" {
			continue
		}

		ref, reference, err := parseTag(t.Name(), sf.Name, tag)
		if err != nil {
			return nil, err
		}

		kind := param.KindOf(sf.Type, reference)
		if reference && kind != param.KindElementID {
			return nil, errors.InvalidTag([]string{t.Name(), sf.Name}, tag,
				"id flag requires an integer field, have "+sf.Type.String())
		}
		if !kind.IsValid() {
			// Outside the mapping contract; the field stays untouched
			// by both the read and the write path.
			continue
		}

		codec, ok := param.CodecFor(kind)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseCompile,
				[]string{t.Name(), sf.Name}, sf.Type.String(), ref.String())
		}

		fields = append(fields, Field{
			Name:  sf.Name,
			Index: sf.Index,
			Kind:  kind,
			Codec: codec,
			Ref:   ref,
		})
	}

	return &Compiled{GoType: t, Fields: fields}, nil
}

// parseTag splits `param:"NAME[,builtin][,id]"` into a slot reference and
// the element-reference flag.
func parseTag(typeName, fieldName, tag string) (SlotRef, bool, error) {
	parts := strings.Split(tag, ",")
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return SlotRef{}, false, errors.InvalidTag(
			[]string{typeName, fieldName}, tag, "slot name is empty")
	}

	var builtin, reference bool
	for _, flag := range parts[1:] {
		switch strings.TrimSpace(flag) {
		case "builtin":
			builtin = true
		case "id":
			reference = true
		default:
			return SlotRef{}, false, errors.InvalidTag(
				[]string{typeName, fieldName}, tag, "unknown flag "+strings.TrimSpace(flag))
		}
	}

	if builtin {
		return SlotRef{BuiltIn: revitobjects.BuiltIn(name)}, reference, nil
	}
	return SlotRef{Name: name}, reference, nil
}
