package param

import (
	"reflect"

	"github.com/yk35/revitobjects"
	"github.com/yk35/revitobjects/errors"
)

// Codec is the read/write transform pair between a host slot and a Go
// field of one storage kind. Codecs are pure per slot: no state is kept
// across calls, and the slot is re-resolved by the caller on every use.
type Codec struct {
	// Read assigns the slot's value to dst. A value the field type cannot
	// represent fails with an overflow error and leaves dst untouched.
	Read func(slot revitobjects.Slot, dst reflect.Value) error
	// Write pushes src's value into the slot.
	Write func(slot revitobjects.Slot, src reflect.Value) error
}

var codecs = [...]Codec{
	KindBool:      {Read: readBool, Write: writeBool},
	KindDouble:    {Read: readDouble, Write: writeDouble},
	KindText:      {Read: readText, Write: writeText},
	KindInteger:   {Read: readInteger, Write: writeInteger},
	KindElementID: {Read: readElementID, Write: writeElementID},
}

// CodecFor returns the codec for a storage kind. The second result is
// false for KindInvalid and out-of-range kinds.
func CodecFor(k Kind) (Codec, bool) {
	if !k.IsValid() {
		return Codec{}, false
	}
	return codecs[k], true
}

// Booleans are stored as integer 1/0 on the host side.

func readBool(slot revitobjects.Slot, dst reflect.Value) error {
	dst.SetBool(slot.AsInteger() == 1)
	return nil
}

func writeBool(slot revitobjects.Slot, src reflect.Value) error {
	if src.Bool() {
		return slot.SetInteger(1)
	}
	return slot.SetInteger(0)
}

func readDouble(slot revitobjects.Slot, dst reflect.Value) error {
	dst.SetFloat(slot.AsDouble())
	return nil
}

func writeDouble(slot revitobjects.Slot, src reflect.Value) error {
	return slot.SetDouble(src.Float())
}

func readText(slot revitobjects.Slot, dst reflect.Value) error {
	dst.SetString(slot.AsString())
	return nil
}

func writeText(slot revitobjects.Slot, src reflect.Value) error {
	return slot.SetString(src.String())
}

// readInteger rejects slot values outside the field's range; SetInt
// would narrow silently for int32 and 32-bit int fields.
func readInteger(slot revitobjects.Slot, dst reflect.Value) error {
	v := slot.AsInteger()
	if dst.OverflowInt(v) {
		return errors.Overflow(errors.PhaseHydrate, slot.Name(), dst.Type().String(), v)
	}
	dst.SetInt(v)
	return nil
}

func writeInteger(slot revitobjects.Slot, src reflect.Value) error {
	return slot.SetInteger(src.Int())
}

func readElementID(slot revitobjects.Slot, dst reflect.Value) error {
	dst.SetInt(int64(slot.AsElementID()))
	return nil
}

// writeElementID skips non-positive values: they mean "no reference" and
// the slot is left untouched.
func writeElementID(slot revitobjects.Slot, src reflect.Value) error {
	v := src.Int()
	if v <= 0 {
		return nil
	}
	return slot.SetElementID(revitobjects.ElementID(v))
}
