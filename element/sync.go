package element

import (
	"go.uber.org/zap"

	"github.com/yk35/revitobjects/errors"
)

// Init hydrates every bound field from its host slot. Slots are resolved
// fresh by name or builtin id on each call; a lookup the host cannot
// satisfy propagates as slot_not_found, and an integer slot value the
// field type cannot represent fails with overflow. Fields without a
// binding, and bound fields outside the supported storage kinds, are
// left untouched.
func (o *Object) Init() error {
	if o.host == nil {
		return errors.NilPointer(errors.PhaseHydrate, nil, "element.Object")
	}

	for i := range o.table.Fields {
		f := &o.table.Fields[i]
		slot, err := f.Ref.Resolve(o.host)
		if err != nil {
			return err
		}
		if err := f.Codec.Read(slot, o.self.FieldByIndex(f.Index)); err != nil {
			return err
		}
	}

	Logger().Debug("wrapper hydrated",
		zap.String("type", o.table.GoType.Name()),
		zap.Int("fields", len(o.table.Fields)),
	)
	return nil
}

// updateElement is the write path: push every bound field into its host
// slot. Field order carries no meaning; no field's write may depend on
// another's. It must only run inside the host's serialized execution
// context.
func (o *Object) updateElement() error {
	for i := range o.table.Fields {
		f := &o.table.Fields[i]
		slot, err := f.Ref.Resolve(o.host)
		if err != nil {
			return err
		}
		if err := f.Codec.Write(slot, o.self.FieldByIndex(f.Index)); err != nil {
			return err
		}
	}
	return nil
}

// Save commits the wrapper's field values to the host. With
// transactional set, the write is submitted through the runner and Save
// blocks until it executed inside the host's serialized context. With
// transactional unset the write runs inline; the caller then guarantees
// it is already inside such a context.
func (o *Object) Save(transactional bool) error {
	if o.host == nil {
		return errors.NilPointer(errors.PhaseSave, nil, "element.Object")
	}
	if !transactional {
		return o.updateElement()
	}
	if o.runner == nil {
		return errors.InvalidInput(errors.PhaseSave,
			"transactional save requires a runner")
	}
	return o.runner.Run(o.updateElement, o.doc, "save "+o.table.GoType.Name())
}
