package store

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/yk35/revitobjects"
	"github.com/yk35/revitobjects/errors"
	"github.com/yk35/revitobjects/param"
)

// Snapshot is the serializable form of a document.
type Snapshot struct {
	Title    string            `json:"title"`
	Elements []ElementSnapshot `json:"elements"`
}

type ElementSnapshot struct {
	ID    int64          `json:"id"`
	Slots []SlotSnapshot `json:"slots"`
}

type SlotSnapshot struct {
	Name    string  `json:"name"`
	BuiltIn string  `json:"builtin,omitempty"`
	Kind    string  `json:"kind"`
	Integer int64   `json:"integer,omitempty"`
	Double  float64 `json:"double,omitempty"`
	Text    string  `json:"text,omitempty"`
	Ref     int64   `json:"ref,omitempty"`
}

var kindsByName = map[string]param.Kind{
	param.KindInteger.String():   param.KindInteger,
	param.KindDouble.String():    param.KindDouble,
	param.KindText.String():      param.KindText,
	param.KindElementID.String(): param.KindElementID,
}

// Snapshot captures the document's current state.
func (d *Document) Snapshot() Snapshot {
	snap := Snapshot{Title: d.title}
	for _, el := range d.Elements() {
		es := ElementSnapshot{ID: int64(el.id)}
		for _, s := range el.slots {
			s.mu.RLock()
			es.Slots = append(es.Slots, SlotSnapshot{
				Name:    s.name,
				BuiltIn: string(s.builtin),
				Kind:    s.kind.String(),
				Integer: s.intVal,
				Double:  s.dblVal,
				Text:    s.strVal,
				Ref:     int64(s.idVal),
			})
			s.mu.RUnlock()
		}
		snap.Elements = append(snap.Elements, es)
	}
	return snap
}

// Dump writes the document as JSON.
func (d *Document) Dump(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d.Snapshot())
}

// Load reads a JSON snapshot and rebuilds the document, preserving
// element ids.
func Load(r io.Reader) (*Document, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, errors.Wrap(errors.PhaseHost, errors.KindInvalidInput, err,
			"malformed document snapshot")
	}
	return FromSnapshot(snap)
}

// FromSnapshot rebuilds a document from its serialized form.
func FromSnapshot(snap Snapshot) (*Document, error) {
	doc := NewDocument(snap.Title)
	for _, es := range snap.Elements {
		specs := make([]SlotSpec, 0, len(es.Slots))
		for _, ss := range es.Slots {
			kind, ok := kindsByName[ss.Kind]
			if !ok {
				return nil, errors.InvalidInput(errors.PhaseHost,
					"unknown slot kind "+ss.Kind)
			}
			specs = append(specs, SlotSpec{
				Name:    ss.Name,
				BuiltIn: revitobjects.BuiltIn(ss.BuiltIn),
				Kind:    kind,
				Integer: ss.Integer,
				Double:  ss.Double,
				Text:    ss.Text,
				Ref:     revitobjects.ElementID(ss.Ref),
			})
		}
		if _, err := doc.addAt(revitobjects.ElementID(es.ID), specs); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
