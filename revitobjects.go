package revitobjects

// ElementID identifies a host element. Zero and negative values mean
// "no element".
type ElementID int64

// None is the null element reference.
const None ElementID = -1

// IsValid reports whether the id refers to an element.
func (id ElementID) IsValid() bool {
	return id > 0
}

// BuiltIn names a parameter from the host's closed, well-known vocabulary.
// The set of valid values is owned by the host, not by this library.
type BuiltIn string

// Well-known parameter ids used across hosts of this family.
const (
	BuiltInInvalid BuiltIn = ""
	LevelParam     BuiltIn = "LEVEL_PARAM"
	ElemTypeParam  BuiltIn = "ELEM_TYPE_PARAM"
	CommentsParam  BuiltIn = "ALL_MODEL_INSTANCE_COMMENTS"
	MarkParam      BuiltIn = "ALL_MODEL_MARK"
)

// Slot is a single named parameter cell owned by a host element. Values
// are runtime-typed on the host side; the getters return the host's
// representation for each storage type. Slots are looked up fresh on
// every access and must not be cached across operations.
type Slot interface {
	Name() string

	AsInteger() int64
	AsDouble() float64
	AsString() string
	AsElementID() ElementID

	SetInteger(v int64) error
	SetDouble(v float64) error
	SetString(v string) error
	SetElementID(id ElementID) error
}

// Element is a host-owned entity exposing parameter slots. Lookup by an
// unknown name or builtin fails with a slot-not-found error; callers are
// expected to let that propagate.
type Element interface {
	ID() ElementID
	SlotByName(name string) (Slot, error)
	SlotByBuiltIn(id BuiltIn) (Slot, error)
}

// Document is the host container an element lives in. Mutations to its
// elements are only valid inside the document's serialized execution
// context (see Runner).
type Document interface {
	Title() string
	ElementByID(id ElementID) (Element, error)
}

// Runner executes a mutation job inside the host's serialized execution
// context for the given document. Run blocks the caller until the job
// completed there; the job's error is returned unchanged. Submissions
// against one Runner never overlap.
type Runner interface {
	Run(job func() error, doc Document, label string) error
}
