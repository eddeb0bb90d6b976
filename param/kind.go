package param

import (
	"reflect"

	"github.com/yk35/revitobjects"
)

// Kind is the semantic storage type of a bound field.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindDouble
	KindText
	KindInteger
	KindElementID
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindBool:      "bool",
	KindDouble:    "double",
	KindText:      "text",
	KindInteger:   "integer",
	KindElementID: "element_id",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsValid reports whether k is one of the five supported storage types.
func (k Kind) IsValid() bool {
	return k > KindInvalid && k <= KindElementID
}

var elementIDType = reflect.TypeOf(revitobjects.ElementID(0))

// KindOf maps a Go field type to its storage kind. reference marks an
// integer field declared to hold an element reference. Types outside the
// supported set map to KindInvalid; callers skip those fields.
func KindOf(t reflect.Type, reference bool) Kind {
	if t == elementIDType {
		return KindElementID
	}
	switch t.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Float64:
		return KindDouble
	case reflect.String:
		return KindText
	case reflect.Int, reflect.Int32, reflect.Int64:
		if reference {
			return KindElementID
		}
		return KindInteger
	default:
		return KindInvalid
	}
}
