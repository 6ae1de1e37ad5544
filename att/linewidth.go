package att

// LineWidthType selects the alternative held by a LineWidth.
type LineWidthType int

const (
	LineWidthTypeNone LineWidthType = iota
	LineWidthTypeTerm
	LineWidthTypeMeasurementUnsigned
)

func (t LineWidthType) String() string {
	switch t {
	case LineWidthTypeNone:
		return "none"
	case LineWidthTypeTerm:
		return "term"
	case LineWidthTypeMeasurementUnsigned:
		return "measurement"
	default:
		return enumString("LineWidthType", int(t), nil)
	}
}

// LineWidth is MEI data.LINEWIDTH: a named width or an unsigned measurement
// in staff units. The zero value is unset.
type LineWidth struct {
	a alternate[LineWidthType]
}

// Reset clears the value and selects the given alternative without a payload.
func (w *LineWidth) Reset(kind LineWidthType) { w.a.reset(kind) }

// Type returns the selected alternative.
func (w LineWidth) Type() LineWidthType { return w.a.kind }

// Term returns the named width, or LineWidthTermNone.
func (w LineWidth) Term() LineWidthTerm {
	v, _ := w.LookupTerm()
	return v
}

// LookupTerm returns the named width and whether LineWidthTypeTerm is the
// selected alternative.
func (w LineWidth) LookupTerm() (LineWidthTerm, bool) {
	return payload[LineWidthTerm](w.a, LineWidthTypeTerm, LineWidthTermNone)
}

// SetTerm selects LineWidthTypeTerm and stores v.
func (w *LineWidth) SetTerm(v LineWidthTerm) { w.a.set(LineWidthTypeTerm, v) }

// MeasurementUnsigned returns the measured width, or Unset.
func (w LineWidth) MeasurementUnsigned() float64 {
	v, _ := w.LookupMeasurementUnsigned()
	return v
}

// LookupMeasurementUnsigned returns the measured width and whether
// LineWidthTypeMeasurementUnsigned is the selected alternative.
func (w LineWidth) LookupMeasurementUnsigned() (float64, bool) {
	return payload[float64](w.a, LineWidthTypeMeasurementUnsigned, Unset)
}

// SetMeasurementUnsigned selects LineWidthTypeMeasurementUnsigned and stores v.
func (w *LineWidth) SetMeasurementUnsigned(v float64) {
	w.a.set(LineWidthTypeMeasurementUnsigned, v)
}

// HasValue reports whether any alternative holds a value other than its
// sentinel.
func (w LineWidth) HasValue() bool {
	if w.Term() != LineWidthTermNone {
		return true
	}
	if w.MeasurementUnsigned() != Unset {
		return true
	}
	return false
}

// Equal reports whether w and other select the same alternative and read the
// same on every alternative.
func (w LineWidth) Equal(other LineWidth) bool {
	return w.Type() == other.Type() &&
		w.Term() == other.Term() &&
		w.MeasurementUnsigned() == other.MeasurementUnsigned()
}

func (w LineWidth) String() string { return w.a.String() }
