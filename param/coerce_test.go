package param

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/yk35/revitobjects"
	"github.com/yk35/revitobjects/errors"
)

// stubSlot records the last written value per storage type.
type stubSlot struct {
	name    string
	intVal  int64
	dblVal  float64
	strVal  string
	idVal   revitobjects.ElementID
	writes  int
	lastErr error
}

func (s *stubSlot) Name() string                        { return s.name }
func (s *stubSlot) AsInteger() int64                    { return s.intVal }
func (s *stubSlot) AsDouble() float64                   { return s.dblVal }
func (s *stubSlot) AsString() string                    { return s.strVal }
func (s *stubSlot) AsElementID() revitobjects.ElementID { return s.idVal }

func (s *stubSlot) SetInteger(v int64) error {
	s.writes++
	s.intVal = v
	return s.lastErr
}

func (s *stubSlot) SetDouble(v float64) error {
	s.writes++
	s.dblVal = v
	return s.lastErr
}

func (s *stubSlot) SetString(v string) error {
	s.writes++
	s.strVal = v
	return s.lastErr
}

func (s *stubSlot) SetElementID(id revitobjects.ElementID) error {
	s.writes++
	s.idVal = id
	return s.lastErr
}

func TestCodecFor(t *testing.T) {
	for _, k := range []Kind{KindBool, KindDouble, KindText, KindInteger, KindElementID} {
		if _, ok := CodecFor(k); !ok {
			t.Errorf("CodecFor(%s) should resolve", k)
		}
	}
	if _, ok := CodecFor(KindInvalid); ok {
		t.Error("CodecFor(KindInvalid) should not resolve")
	}
	if _, ok := CodecFor(Kind(99)); ok {
		t.Error("CodecFor out of range should not resolve")
	}
}

func TestBoolCodec(t *testing.T) {
	codec, _ := CodecFor(KindBool)

	tests := []struct {
		name    string
		slotInt int64
		want    bool
	}{
		{"one is true", 1, true},
		{"zero is false", 0, false},
		{"other integers are false", 7, false},
		{"negative is false", -1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slot := &stubSlot{intVal: tc.slotInt}
			var field bool
			codec.Read(slot, reflect.ValueOf(&field).Elem())
			if field != tc.want {
				t.Errorf("read %d = %v, want %v", tc.slotInt, field, tc.want)
			}
		})
	}

	slot := &stubSlot{}
	if err := codec.Write(slot, reflect.ValueOf(true)); err != nil {
		t.Fatalf("write true: %v", err)
	}
	if slot.intVal != 1 {
		t.Errorf("true should encode as 1, got %d", slot.intVal)
	}
	if err := codec.Write(slot, reflect.ValueOf(false)); err != nil {
		t.Fatalf("write false: %v", err)
	}
	if slot.intVal != 0 {
		t.Errorf("false should encode as 0, got %d", slot.intVal)
	}
}

func TestBoolRoundTrip(t *testing.T) {
	codec, _ := CodecFor(KindBool)
	slot := &stubSlot{}

	for _, v := range []bool{true, false} {
		if err := codec.Write(slot, reflect.ValueOf(v)); err != nil {
			t.Fatalf("write %v: %v", v, err)
		}
		var got bool
		codec.Read(slot, reflect.ValueOf(&got).Elem())
		if got != v {
			t.Errorf("round trip %v yielded %v", v, got)
		}
	}
}

func TestDoubleCodec(t *testing.T) {
	codec, _ := CodecFor(KindDouble)
	slot := &stubSlot{dblVal: 2.75}

	var field float64
	codec.Read(slot, reflect.ValueOf(&field).Elem())
	if field != 2.75 {
		t.Errorf("read = %v, want 2.75", field)
	}

	if err := codec.Write(slot, reflect.ValueOf(-0.5)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if slot.dblVal != -0.5 {
		t.Errorf("slot = %v, want -0.5", slot.dblVal)
	}
}

func TestTextCodec(t *testing.T) {
	codec, _ := CodecFor(KindText)
	slot := &stubSlot{strVal: "Basic Wall"}

	var field string
	codec.Read(slot, reflect.ValueOf(&field).Elem())
	if field != "Basic Wall" {
		t.Errorf("read = %q", field)
	}

	// Empty text is a legal value in both directions.
	if err := codec.Write(slot, reflect.ValueOf("")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if slot.strVal != "" {
		t.Errorf("slot = %q, want empty", slot.strVal)
	}
}

func TestIntegerCodec(t *testing.T) {
	codec, _ := CodecFor(KindInteger)
	slot := &stubSlot{intVal: -12}

	var field int64
	if err := codec.Read(slot, reflect.ValueOf(&field).Elem()); err != nil {
		t.Fatalf("read: %v", err)
	}
	if field != -12 {
		t.Errorf("read = %d, want -12", field)
	}

	if err := codec.Write(slot, reflect.ValueOf(int64(300))); err != nil {
		t.Fatalf("write: %v", err)
	}
	if slot.intVal != 300 {
		t.Errorf("slot = %d, want 300", slot.intVal)
	}
}

func TestIntegerReadOverflow(t *testing.T) {
	codec, _ := CodecFor(KindInteger)
	slot := &stubSlot{name: "Count", intVal: 1<<40 + 7}

	var narrow int32
	err := codec.Read(slot, reflect.ValueOf(&narrow).Elem())
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindOverflow}) {
		t.Errorf("want overflow, got %v", err)
	}
	if narrow != 0 {
		t.Errorf("field must stay untouched, got %d", narrow)
	}

	var wide int64
	if err := codec.Read(slot, reflect.ValueOf(&wide).Elem()); err != nil {
		t.Fatalf("int64 read: %v", err)
	}
	if wide != 1<<40+7 {
		t.Errorf("wide = %d, want %d", wide, int64(1<<40+7))
	}
}

func TestElementIDCodec(t *testing.T) {
	codec, _ := CodecFor(KindElementID)

	t.Run("read decodes raw id", func(t *testing.T) {
		slot := &stubSlot{idVal: 42}
		var field revitobjects.ElementID
		codec.Read(slot, reflect.ValueOf(&field).Elem())
		if field != 42 {
			t.Errorf("read = %d, want 42", field)
		}
	})

	t.Run("positive value writes", func(t *testing.T) {
		slot := &stubSlot{}
		if err := codec.Write(slot, reflect.ValueOf(revitobjects.ElementID(5))); err != nil {
			t.Fatalf("write: %v", err)
		}
		if slot.idVal != 5 || slot.writes != 1 {
			t.Errorf("slot id = %d, writes = %d", slot.idVal, slot.writes)
		}
	})

	t.Run("zero and negative skip the slot", func(t *testing.T) {
		for _, v := range []revitobjects.ElementID{0, -1, revitobjects.None} {
			slot := &stubSlot{idVal: 42}
			if err := codec.Write(slot, reflect.ValueOf(v)); err != nil {
				t.Fatalf("write %d: %v", v, err)
			}
			if slot.writes != 0 {
				t.Errorf("write %d touched the slot", v)
			}
			if slot.idVal != 42 {
				t.Errorf("write %d changed the slot to %d", v, slot.idVal)
			}
		}
	})
}
