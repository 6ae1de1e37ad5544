package att

// FontSizeType selects the alternative held by a FontSize.
type FontSizeType int

const (
	FontSizeTypeNone FontSizeType = iota
	FontSizeTypeNumeric
	FontSizeTypeTerm
	FontSizeTypePercent
)

func (t FontSizeType) String() string {
	switch t {
	case FontSizeTypeNone:
		return "none"
	case FontSizeTypeNumeric:
		return "numeric"
	case FontSizeTypeTerm:
		return "term"
	case FontSizeTypePercent:
		return "percent"
	default:
		return enumString("FontSizeType", int(t), nil)
	}
}

// FontSize is MEI data.FONTSIZE: a size in points, a named term or a
// percentage. The zero value is unset.
type FontSize struct {
	a alternate[FontSizeType]
}

// Reset clears the value and selects the given alternative without a payload.
func (f *FontSize) Reset(kind FontSizeType) { f.a.reset(kind) }

// Type returns the selected alternative.
func (f FontSize) Type() FontSizeType { return f.a.kind }

// Numeric returns the size in points, or Unset.
func (f FontSize) Numeric() float64 {
	v, _ := f.LookupNumeric()
	return v
}

// LookupNumeric returns the size in points and whether FontSizeTypeNumeric is the
// selected alternative.
func (f FontSize) LookupNumeric() (float64, bool) {
	return payload[float64](f.a, FontSizeTypeNumeric, Unset)
}

// SetNumeric selects FontSizeTypeNumeric and stores v.
func (f *FontSize) SetNumeric(v float64) { f.a.set(FontSizeTypeNumeric, v) }

// Term returns the named size, or FontSizeTermNone.
func (f FontSize) Term() FontSizeTerm {
	v, _ := f.LookupTerm()
	return v
}

// LookupTerm returns the named size and whether FontSizeTypeTerm is the selected
// alternative.
func (f FontSize) LookupTerm() (FontSizeTerm, bool) {
	return payload[FontSizeTerm](f.a, FontSizeTypeTerm, FontSizeTermNone)
}

// SetTerm selects FontSizeTypeTerm and stores v.
func (f *FontSize) SetTerm(v FontSizeTerm) { f.a.set(FontSizeTypeTerm, v) }

// Percent returns the relative size, or 0.
func (f FontSize) Percent() float64 {
	v, _ := f.LookupPercent()
	return v
}

// LookupPercent returns the relative size and whether FontSizeTypePercent is the
// selected alternative.
func (f FontSize) LookupPercent() (float64, bool) {
	return payload[float64](f.a, FontSizeTypePercent, 0)
}

// SetPercent selects FontSizeTypePercent and stores v.
func (f *FontSize) SetPercent(v float64) { f.a.set(FontSizeTypePercent, v) }

// PercentForTerm maps the named size to a percentage of the default size.
// Terms without an entry, FontSizeTermNone included, map to 100.
func (f FontSize) PercentForTerm() int {
	switch f.Term() {
	case FontSizeTermXXLarge:
		return 200
	case FontSizeTermXLarge:
		return 150
	case FontSizeTermLarge, FontSizeTermLarger:
		return 110
	case FontSizeTermSmall, FontSizeTermSmaller:
		return 80
	case FontSizeTermXSmall:
		return 60
	case FontSizeTermXXSmall:
		return 50
	default:
		return 100
	}
}

// HasValue reports whether any alternative holds a value other than its
// sentinel.
func (f FontSize) HasValue() bool {
	if f.Numeric() != Unset {
		return true
	}
	if f.Term() != FontSizeTermNone {
		return true
	}
	if f.Percent() != 0 {
		return true
	}
	return false
}

// Equal reports whether f and other select the same alternative and read the
// same on every alternative.
func (f FontSize) Equal(other FontSize) bool {
	return f.Type() == other.Type() &&
		f.Numeric() == other.Numeric() &&
		f.Term() == other.Term() &&
		f.Percent() == other.Percent()
}

func (f FontSize) String() string { return f.a.String() }
