package verovio

import "github.com/withSang/verovio/att"

// StaffDef describes a staff (MEI staffDef).
type StaffDef struct {
	Object
	drawingState

	N     int
	Lines int
	Type  string

	scale int
}

// NewStaffDef returns a staff definition for staff n with no explicit scale.
func NewStaffDef(n int) *StaffDef {
	s := &StaffDef{}
	s.init(s, ClassStaffDef)
	s.Reset()
	s.N = n
	return s
}

// Reset clears the attributes and the computed visibility of the staff
// definition. Children are kept.
func (s *StaffDef) Reset() {
	s.N = 0
	s.Lines = 0
	s.Type = ""
	s.scale = att.Unset
	s.visibility = att.OptimizationNone
}

// HasScale reports whether the staff definition declares a scale.
func (s *StaffDef) HasScale() bool { return s.scale != att.Unset }

// Scale returns the declared scale in percent, or att.Unset.
func (s *StaffDef) Scale() int { return s.scale }

// SetScale declares the scale of the staff in percent.
func (s *StaffDef) SetScale(percent int) { s.scale = percent }

// ResetScale removes the declared scale.
func (s *StaffDef) ResetScale() { s.scale = att.Unset }

// IsSupportedChild accepts instrDef, label, labelAbbr and editorial elements.
func (s *StaffDef) IsSupportedChild(child Node) bool {
	switch c := classOf(child); c {
	case ClassInstrDef, ClassLabel, ClassLabelAbbr:
		return true
	default:
		return c.IsEditorial()
	}
}

func (s *StaffDef) Clone() Node {
	c := &StaffDef{}
	*c = *s
	c.Object = s.Object.clone(c)
	return c
}

func (s *StaffDef) cloneReset() {
	s.Object.cloneReset()
	s.visibility = att.OptimizationNone
}
