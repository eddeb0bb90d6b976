package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseHydrate,
				Kind:   KindTypeMismatch,
				Path:   []string{"Wall", "IsExternal"},
				GoType: "string",
				SlotID: "IsExternal",
				Detail: "cannot convert",
			},
			contains: []string{"[hydrate]", "type_mismatch", "Wall.IsExternal", "string", "IsExternal", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseSave,
				Kind:  KindSlotNotFound,
			},
			contains: []string{"[save]", "slot_not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseEvent,
				Kind:   KindHostFailure,
				Detail: "job failed",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[event]", "host_failure", "job failed", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseHost,
		Kind:  KindHostFailure,
		Cause: cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Is(t *testing.T) {
	err := SlotNotFound(PhaseSave, "IsExternal")

	tests := []struct {
		name   string
		target *Error
		want   bool
	}{
		{"exact match", &Error{Phase: PhaseSave, Kind: KindSlotNotFound}, true},
		{"kind wildcard phase", &Error{Kind: KindSlotNotFound}, true},
		{"phase only", &Error{Phase: PhaseSave}, true},
		{"wrong kind", &Error{Kind: KindTypeMismatch}, false},
		{"wrong phase", &Error{Phase: PhaseHydrate, Kind: KindSlotNotFound}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseCompile, KindInvalidTag).
		Path("Wall", "Level").
		GoType("revitobjects.ElementID").
		Slot("LEVEL_PARAM").
		Value(42).
		Cause(cause).
		Detail("bad flag %q", "builtinn").
		Build()

	if err.Phase != PhaseCompile || err.Kind != KindInvalidTag {
		t.Errorf("phase/kind = %s/%s", err.Phase, err.Kind)
	}
	if len(err.Path) != 2 || err.Path[1] != "Level" {
		t.Errorf("path = %v", err.Path)
	}
	if err.GoType != "revitobjects.ElementID" {
		t.Errorf("go type = %q", err.GoType)
	}
	if err.SlotID != "LEVEL_PARAM" {
		t.Errorf("slot = %q", err.SlotID)
	}
	if err.Value != 42 {
		t.Errorf("value = %v", err.Value)
	}
	if err.Cause != cause {
		t.Error("cause not set")
	}
	if err.Detail != `bad flag "builtinn"` {
		t.Errorf("detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"missing classification", MissingClassification("Unclassified"), KindMissingClassification},
		{"ambiguous classification", AmbiguousClassification("Wall", "both declared"), KindAmbiguousClassification},
		{"slot not found", SlotNotFound(PhaseHydrate, "Missing"), KindSlotNotFound},
		{"element not found", ElementNotFound(99), KindElementNotFound},
		{"type mismatch", TypeMismatch(PhaseCompile, nil, "chan int", "X"), KindTypeMismatch},
		{"overflow", Overflow(PhaseHydrate, "Count", "int32", 1<<40+7), KindOverflow},
		{"invalid tag", InvalidTag([]string{"Wall", "F"}, "a,b,c,d", "too many flags"), KindInvalidTag},
		{"not wrapper", NotWrapper("Plain", "no embedded Object"), KindNotWrapper},
		{"bridge closed", BridgeClosed("save Wall"), KindBridgeClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}
