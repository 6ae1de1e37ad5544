package verovio

// ScoreDef is the root of a score definition (MEI scoreDef). It holds the
// top-level staff group of the score.
type ScoreDef struct {
	Object
}

// NewScoreDef returns an empty score definition.
func NewScoreDef() *ScoreDef {
	d := &ScoreDef{}
	d.init(d, ClassScoreDef)
	return d
}

// IsSupportedChild accepts grpSym, staffGrp and editorial elements.
func (d *ScoreDef) IsSupportedChild(child Node) bool {
	switch c := classOf(child); c {
	case ClassGrpSym, ClassStaffGrp:
		return true
	default:
		return c.IsEditorial()
	}
}

// StaffGrp returns the first staff group of the score definition, looking
// through editorial elements.
func (d *ScoreDef) StaffGrp() (*StaffGrp, bool) {
	g, ok := d.FindDescendantByType(ClassStaffGrp, UnlimitedDepth).(*StaffGrp)
	return g, ok
}

func (d *ScoreDef) Clone() Node {
	c := &ScoreDef{}
	c.Object = d.Object.clone(c)
	return c
}
