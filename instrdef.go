package verovio

import "github.com/withSang/verovio/att"

// InstrDef declares the MIDI instrument of a staff or a group (MEI instrDef).
type InstrDef struct {
	Object

	MidiChannel   int
	MidiInstrNum  int
	MidiInstrName att.MidiValueName
	MidiPan       att.MidiValuePan
}

// NewInstrDef returns an instrument definition with no MIDI settings.
func NewInstrDef() *InstrDef {
	d := &InstrDef{MidiChannel: -1, MidiInstrNum: -1}
	d.init(d, ClassInstrDef)
	return d
}

func (d *InstrDef) Clone() Node {
	c := &InstrDef{}
	*c = *d
	c.Object = d.Object.clone(c)
	return c
}
