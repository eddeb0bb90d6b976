package param

import (
	"reflect"
	"testing"

	"github.com/yk35/revitobjects"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		want string
		kind Kind
	}{
		{"invalid", KindInvalid},
		{"bool", KindBool},
		{"double", KindDouble},
		{"text", KindText},
		{"integer", KindInteger},
		{"element_id", KindElementID},
		{"unknown", Kind(255)},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.kind.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKindIsValid(t *testing.T) {
	valid := []Kind{KindBool, KindDouble, KindText, KindInteger, KindElementID}
	for _, k := range valid {
		if !k.IsValid() {
			t.Errorf("%s should be valid", k)
		}
	}
	if KindInvalid.IsValid() {
		t.Error("KindInvalid should not be valid")
	}
	if Kind(200).IsValid() {
		t.Error("out-of-range kind should not be valid")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name      string
		goType    reflect.Type
		reference bool
		want      Kind
	}{
		{"bool", reflect.TypeOf(false), false, KindBool},
		{"float64", reflect.TypeOf(1.5), false, KindDouble},
		{"string", reflect.TypeOf(""), false, KindText},
		{"int", reflect.TypeOf(int(0)), false, KindInteger},
		{"int32", reflect.TypeOf(int32(0)), false, KindInteger},
		{"int64", reflect.TypeOf(int64(0)), false, KindInteger},
		{"int with id flag", reflect.TypeOf(int(0)), true, KindElementID},
		{"int64 with id flag", reflect.TypeOf(int64(0)), true, KindElementID},
		{"ElementID", reflect.TypeOf(revitobjects.ElementID(0)), false, KindElementID},
		{"float32 unsupported", reflect.TypeOf(float32(0)), false, KindInvalid},
		{"uint unsupported", reflect.TypeOf(uint(0)), false, KindInvalid},
		{"slice unsupported", reflect.TypeOf([]int{}), false, KindInvalid},
		{"struct unsupported", reflect.TypeOf(struct{}{}), false, KindInvalid},
		{"bool with id flag stays bool", reflect.TypeOf(false), true, KindBool},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.goType, tc.reference); got != tc.want {
				t.Errorf("KindOf() = %s, want %s", got, tc.want)
			}
		})
	}
}
