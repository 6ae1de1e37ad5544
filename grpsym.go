package verovio

import "github.com/withSang/verovio/att"

// GrpSym is a grouping symbol spanning a range of staves (MEI grpSym).
type GrpSym struct {
	Object

	Symbol  att.StaffGroupingSym
	Level   int
	StartID string
	EndID   string
}

// NewGrpSym returns a grouping symbol of the given kind.
func NewGrpSym(symbol att.StaffGroupingSym) *GrpSym {
	s := &GrpSym{Symbol: symbol}
	s.init(s, ClassGrpSym)
	return s
}

func (s *GrpSym) Clone() Node {
	c := &GrpSym{}
	*c = *s
	c.Object = s.Object.clone(c)
	return c
}
