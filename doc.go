// Package revitobjects maps typed Go structs onto parameter slots of a
// BIM-style host element store.
//
// # Quick Start
//
//	type Wall struct {
//	    element.Object
//	    IsExternal bool                  `param:"IsExternal"`
//	    Level      revitobjects.ElementID `param:"LEVEL_PARAM,builtin,id"`
//	}
//
//	func init() {
//	    element.Register[Wall](
//	        element.WithCategory(element.Walls),
//	        element.Instance(),
//	    )
//	}
//
//	wall, err := element.Wrap[Wall](host, doc, bridge)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := wall.Init(); err != nil { // hydrate fields from slots
//	    log.Fatal(err)
//	}
//	wall.IsExternal = false
//	if err := wall.Save(true); err != nil { // commit via the event bridge
//	    log.Fatal(err)
//	}
//
// # Field Binding
//
// Exported struct fields carry a `param` tag naming the host slot. Binding
// metadata is discovered by reflection once per concrete type and cached;
// untagged fields, `param:"-"` fields, and fields whose Go type is outside
// the supported set are skipped on both read and write.
//
// Supported field types and their slot storage:
//
//	Go Type                  Slot Storage
//	─────────────────────────────────────
//	bool                     integer (1/0)
//	float64                  double
//	string                   text
//	int, int32, int64        integer
//	revitobjects.ElementID   element reference
//
// An integer field tagged with the `id` flag is treated as an element
// reference: it is written only when its value is positive. The `id`
// flag on a non-integer field is a compile error. Hydrating an integer
// slot value that does not fit the field's range fails with an overflow
// error rather than truncating.
//
// # Classification
//
// Wrapper types are classified at registration time with a category
// and/or an element class, and exactly one of instance or template.
// Construction fails when neither category nor class was declared;
// IsInstance fails when the instance/template declaration is absent or
// contradictory.
//
// # Saving
//
// Save(true) submits the write through a Runner, which marshals it into
// the host's single serialized execution context and blocks until done.
// Save(false) writes inline and is only safe when the caller is already
// inside that context.
//
// # Thread Safety
//
// A wrapper object is not safe for concurrent use. The event bridge is
// the sole synchronization point: transactional saves from any number of
// goroutines are executed one at a time.
package revitobjects
