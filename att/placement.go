package att

import "fmt"

// PlacementType selects the alternative held by a Placement.
type PlacementType int

const (
	PlacementTypeNone PlacementType = iota
	PlacementTypeStaffRel
	PlacementTypeNonStaffPlace
	PlacementTypeNMToken
)

func (t PlacementType) String() string {
	switch t {
	case PlacementTypeNone:
		return "none"
	case PlacementTypeStaffRel:
		return "staffrel"
	case PlacementTypeNonStaffPlace:
		return "nonstaffplace"
	case PlacementTypeNMToken:
		return "nmtoken"
	default:
		return enumString("PlacementType", int(t), nil)
	}
}

// Placement is MEI data.PLACEMENT: a position relative to the staff, a position
// on the page outside the staff, or a free NMTOKEN. The zero value is unset.
//
// The staff relation lives outside the shared payload slot so that
// StaffRelAlternate can hand out a pointer to it.
type Placement struct {
	a        alternate[PlacementType]
	staffRel StaffRel
}

// Reset clears the value and selects the given alternative without a payload.
func (p *Placement) Reset(kind PlacementType) {
	p.a.reset(kind)
	p.staffRel = StaffRelNone
}

// Type returns the selected alternative.
func (p Placement) Type() PlacementType { return p.a.kind }

// StaffRel returns the staff relation, or StaffRelNone.
//
// Unlike the other getters, it returns whatever StaffRelAlternate last wrote,
// regardless of the selected alternative.
func (p Placement) StaffRel() StaffRel { return p.staffRel }

// LookupStaffRel returns the staff relation and whether PlacementTypeStaffRel
// is the selected alternative.
func (p Placement) LookupStaffRel() (StaffRel, bool) {
	if p.a.kind != PlacementTypeStaffRel {
		return StaffRelNone, false
	}
	return p.staffRel, true
}

// SetStaffRel selects PlacementTypeStaffRel and stores v.
func (p *Placement) SetStaffRel(v StaffRel) {
	p.Reset(PlacementTypeStaffRel)
	p.staffRel = v
}

// StaffRelAlternate returns a pointer to the staff relation slot so that
// callers can fill it in place.
//
// Writing through the pointer neither selects PlacementTypeStaffRel nor resets
// the other alternatives; HasValue still sees the write. No other alternate
// type exposes its storage this way.
func (p *Placement) StaffRelAlternate() *StaffRel { return &p.staffRel }

// NonStaffPlace returns the page position, or NonStaffPlaceNone.
func (p Placement) NonStaffPlace() NonStaffPlace {
	v, _ := p.LookupNonStaffPlace()
	return v
}

// LookupNonStaffPlace returns the page position and whether
// PlacementTypeNonStaffPlace is the selected alternative.
func (p Placement) LookupNonStaffPlace() (NonStaffPlace, bool) {
	return payload[NonStaffPlace](p.a, PlacementTypeNonStaffPlace, NonStaffPlaceNone)
}

// SetNonStaffPlace selects PlacementTypeNonStaffPlace and stores v.
func (p *Placement) SetNonStaffPlace(v NonStaffPlace) {
	p.Reset(PlacementTypeNonStaffPlace)
	p.a.value = v
}

// NMToken returns the token, or the empty string.
func (p Placement) NMToken() string {
	v, _ := p.LookupNMToken()
	return v
}

// LookupNMToken returns the token and whether PlacementTypeNMToken is the
// selected alternative.
func (p Placement) LookupNMToken() (string, bool) {
	return payload[string](p.a, PlacementTypeNMToken, "")
}

// SetNMToken selects PlacementTypeNMToken and stores v.
func (p *Placement) SetNMToken(v string) {
	p.Reset(PlacementTypeNMToken)
	p.a.value = v
}

// HasValue reports whether any alternative holds a value other than its
// sentinel.
func (p Placement) HasValue() bool {
	if p.StaffRel() != StaffRelNone {
		return true
	}
	if p.NonStaffPlace() != NonStaffPlaceNone {
		return true
	}
	if p.NMToken() != "" {
		return true
	}
	return false
}

// Equal reports whether p and other select the same alternative and read the
// same on every alternative.
func (p Placement) Equal(other Placement) bool {
	return p.Type() == other.Type() &&
		p.StaffRel() == other.StaffRel() &&
		p.NonStaffPlace() == other.NonStaffPlace() &&
		p.NMToken() == other.NMToken()
}

func (p Placement) String() string {
	if p.a.kind == PlacementTypeStaffRel {
		return fmt.Sprintf("%v(%v)", p.a.kind, p.staffRel)
	}
	return p.a.String()
}
