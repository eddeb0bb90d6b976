package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseResolve Phase = "resolve" // classification resolution
	PhaseCompile Phase = "compile" // binding discovery
	PhaseHydrate Phase = "hydrate" // slot to field
	PhaseSave    Phase = "save"    // field to slot
	PhaseHost    Phase = "host"    // host store access
	PhaseEvent   Phase = "event"   // serialized execution bridge
)

// Kind categorizes the error
type Kind string

const (
	KindMissingClassification   Kind = "missing_classification"
	KindAmbiguousClassification Kind = "ambiguous_classification"
	KindSlotNotFound            Kind = "slot_not_found"
	KindElementNotFound         Kind = "element_not_found"
	KindTypeMismatch            Kind = "type_mismatch"
	KindOverflow                Kind = "overflow"
	KindInvalidTag              Kind = "invalid_tag"
	KindNotWrapper              Kind = "not_wrapper"
	KindNilPointer              Kind = "nil_pointer"
	KindBridgeClosed            Kind = "bridge_closed"
	KindHostFailure             Kind = "host_failure"
	KindInvalidInput            Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	SlotID string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.SlotID != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.SlotID != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", slot ")
			b.WriteString(e.SlotID)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("slot ")
			b.WriteString(e.SlotID)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.SlotID != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by Phase and Kind. A zero Phase or Kind on the target
// acts as a wildcard, so errors.Is(err, &Error{Kind: KindSlotNotFound})
// matches a slot-not-found from any phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	return true
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Slot sets the slot identifier
func (b *Builder) Slot(id string) *Builder {
	b.err.SlotID = id
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MissingClassification reports a wrapper type declaring neither a
// category nor an element class.
func MissingClassification(typeName string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindMissingClassification,
		Path:   []string{typeName},
		Detail: "type declares neither a category nor an element class",
	}
}

// AmbiguousClassification reports a wrapper type whose instance/template
// declaration is absent or contradictory.
func AmbiguousClassification(typeName, detail string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindAmbiguousClassification,
		Path:   []string{typeName},
		Detail: detail,
	}
}

// SlotNotFound reports a parameter lookup the host could not satisfy
func SlotNotFound(phase Phase, slotID string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindSlotNotFound,
		SlotID: slotID,
		Detail: fmt.Sprintf("element has no parameter %q", slotID),
	}
}

// ElementNotFound reports a document lookup by an unknown element id
func ElementNotFound(id int64) *Error {
	return &Error{
		Phase:  PhaseHost,
		Kind:   KindElementNotFound,
		Detail: fmt.Sprintf("document has no element %d", id),
		Value:  id,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, slotID string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		GoType: goType,
		SlotID: slotID,
	}
}

// Overflow reports a slot value outside the range of its bound field
func Overflow(phase Phase, slotID, goType string, value int64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		GoType: goType,
		SlotID: slotID,
		Value:  value,
		Detail: fmt.Sprintf("value %d does not fit", value),
	}
}

// InvalidTag reports a malformed param struct tag
func InvalidTag(path []string, tag, detail string) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindInvalidTag,
		Path:   path,
		Detail: fmt.Sprintf("tag %q: %s", tag, detail),
	}
}

// NotWrapper reports a type that cannot act as a wrapper object
func NotWrapper(typeName, detail string) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindNotWrapper,
		Path:   []string{typeName},
		Detail: detail,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, path []string, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Path:   path,
		GoType: goType,
		Detail: "nil pointer",
	}
}

// BridgeClosed reports a submission to a closed execution bridge
func BridgeClosed(label string) *Error {
	return &Error{
		Phase:  PhaseEvent,
		Kind:   KindBridgeClosed,
		Detail: fmt.Sprintf("bridge closed, job %q rejected", label),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
