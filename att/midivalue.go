package att

// MidiValueNameType selects the alternative held by a MidiValueName.
type MidiValueNameType int

const (
	MidiValueNameTypeNone MidiValueNameType = iota
	MidiValueNameTypeMidiValue
	MidiValueNameTypeNCName
)

func (t MidiValueNameType) String() string {
	switch t {
	case MidiValueNameTypeNone:
		return "none"
	case MidiValueNameTypeMidiValue:
		return "midivalue"
	case MidiValueNameTypeNCName:
		return "ncname"
	default:
		return enumString("MidiValueNameType", int(t), nil)
	}
}

// MidiValueName is MEI data.MIDIVALUE_NAME: a MIDI value (0-127) or an XML
// NCName. The zero value is unset.
type MidiValueName struct {
	a alternate[MidiValueNameType]
}

// Reset clears the value and selects the given alternative without a payload.
func (m *MidiValueName) Reset(kind MidiValueNameType) { m.a.reset(kind) }

// Type returns the selected alternative.
func (m MidiValueName) Type() MidiValueNameType { return m.a.kind }

// MidiValue returns the MIDI value, or -1.
func (m MidiValueName) MidiValue() int {
	v, _ := m.LookupMidiValue()
	return v
}

// LookupMidiValue returns the MIDI value and whether MidiValueNameTypeMidiValue
// is the selected alternative.
func (m MidiValueName) LookupMidiValue() (int, bool) {
	return payload[int](m.a, MidiValueNameTypeMidiValue, -1)
}

// SetMidiValue selects MidiValueNameTypeMidiValue and stores v.
func (m *MidiValueName) SetMidiValue(v int) { m.a.set(MidiValueNameTypeMidiValue, v) }

// NCName returns the name, or the empty string.
func (m MidiValueName) NCName() string {
	v, _ := m.LookupNCName()
	return v
}

// LookupNCName returns the name and whether MidiValueNameTypeNCName is the
// selected alternative.
func (m MidiValueName) LookupNCName() (string, bool) {
	return payload[string](m.a, MidiValueNameTypeNCName, "")
}

// SetNCName selects MidiValueNameTypeNCName and stores v.
func (m *MidiValueName) SetNCName(v string) { m.a.set(MidiValueNameTypeNCName, v) }

// HasValue reports whether any alternative holds a value other than its
// sentinel.
func (m MidiValueName) HasValue() bool {
	if m.MidiValue() != -1 {
		return true
	}
	if m.NCName() != "" {
		return true
	}
	return false
}

// Equal reports whether m and other select the same alternative and read the
// same on every alternative.
func (m MidiValueName) Equal(other MidiValueName) bool {
	return m.Type() == other.Type() &&
		m.MidiValue() == other.MidiValue() &&
		m.NCName() == other.NCName()
}

func (m MidiValueName) String() string { return m.a.String() }

// MidiValuePanType selects the alternative held by a MidiValuePan.
type MidiValuePanType int

const (
	MidiValuePanTypeNone MidiValuePanType = iota
	MidiValuePanTypeMidiValue
	MidiValuePanTypePercentLimitedSigned
)

func (t MidiValuePanType) String() string {
	switch t {
	case MidiValuePanTypeNone:
		return "none"
	case MidiValuePanTypeMidiValue:
		return "midivalue"
	case MidiValuePanTypePercentLimitedSigned:
		return "percent"
	default:
		return enumString("MidiValuePanType", int(t), nil)
	}
}

// MidiValuePan is MEI data.MIDIVALUE_PAN: a MIDI value (0-127) or a signed
// percentage (-100 to 100). The zero value is unset.
type MidiValuePan struct {
	a alternate[MidiValuePanType]
}

// Reset clears the value and selects the given alternative without a payload.
func (m *MidiValuePan) Reset(kind MidiValuePanType) { m.a.reset(kind) }

// Type returns the selected alternative.
func (m MidiValuePan) Type() MidiValuePanType { return m.a.kind }

// MidiValue returns the MIDI value, or -1.
func (m MidiValuePan) MidiValue() int {
	v, _ := m.LookupMidiValue()
	return v
}

// LookupMidiValue returns the MIDI value and whether MidiValuePanTypeMidiValue
// is the selected alternative.
func (m MidiValuePan) LookupMidiValue() (int, bool) {
	return payload[int](m.a, MidiValuePanTypeMidiValue, -1)
}

// SetMidiValue selects MidiValuePanTypeMidiValue and stores v.
func (m *MidiValuePan) SetMidiValue(v int) { m.a.set(MidiValuePanTypeMidiValue, v) }

// PercentLimitedSigned returns the signed percentage, or Unset.
func (m MidiValuePan) PercentLimitedSigned() float64 {
	v, _ := m.LookupPercentLimitedSigned()
	return v
}

// LookupPercentLimitedSigned returns the signed percentage and whether
// MidiValuePanTypePercentLimitedSigned is the selected alternative.
func (m MidiValuePan) LookupPercentLimitedSigned() (float64, bool) {
	return payload[float64](m.a, MidiValuePanTypePercentLimitedSigned, Unset)
}

// SetPercentLimitedSigned selects MidiValuePanTypePercentLimitedSigned and
// stores v.
func (m *MidiValuePan) SetPercentLimitedSigned(v float64) {
	m.a.set(MidiValuePanTypePercentLimitedSigned, v)
}

// HasValue reports whether any alternative holds a value other than its
// sentinel.
func (m MidiValuePan) HasValue() bool {
	if m.MidiValue() != -1 {
		return true
	}
	if m.PercentLimitedSigned() != Unset {
		return true
	}
	return false
}

// Equal reports whether m and other select the same alternative and read the
// same on every alternative.
func (m MidiValuePan) Equal(other MidiValuePan) bool {
	return m.Type() == other.Type() &&
		m.MidiValue() == other.MidiValue() &&
		m.PercentLimitedSigned() == other.PercentLimitedSigned()
}

func (m MidiValuePan) String() string { return m.a.String() }
