package verovio

import (
	"fmt"

	"github.com/withSang/verovio/att"
)

// drawingState holds the visibility computed for a node by the score
// definition optimisation pass. Layout reads it; only the pass writes it.
type drawingState struct {
	visibility att.VisibilityOptimization
}

// DrawingVisibility returns the computed visibility, OptimizationNone until the
// optimisation pass has run.
func (d *drawingState) DrawingVisibility() att.VisibilityOptimization { return d.visibility }

// SetDrawingVisibility records the computed visibility.
func (d *drawingState) SetDrawingVisibility(v att.VisibilityOptimization) { d.visibility = v }

// StaffGrp is a group of staff definitions and nested groups (MEI staffGrp).
type StaffGrp struct {
	Object
	drawingState

	N    string
	Type string
	// LabelAttr is the label attribute of the group, as opposed to its label
	// child (see Label).
	LabelAttr string
	Symbol    att.StaffGroupingSym
	BarThru   att.Boolean

	groupSymbol *GrpSym
	staffDefs   ObjectList
}

// NewStaffGrp returns an empty staff group.
func NewStaffGrp() *StaffGrp {
	g := &StaffGrp{}
	g.init(g, ClassStaffGrp)
	g.Reset()
	return g
}

// Reset clears the attributes, the computed visibility and the group symbol of
// the group. Children are kept.
func (g *StaffGrp) Reset() {
	g.N = ""
	g.Type = ""
	g.LabelAttr = ""
	g.Symbol = att.StaffGroupingSymNone
	g.BarThru = att.BooleanNone
	g.visibility = att.OptimizationNone
	g.groupSymbol = nil
	g.staffDefs = NewObjectList(ByClass(ClassStaffDef))
}

// IsSupportedChild accepts grpSym, instrDef, label, labelAbbr, staffDef,
// staffGrp and editorial elements.
func (g *StaffGrp) IsSupportedChild(child Node) bool {
	switch c := classOf(child); c {
	case ClassGrpSym, ClassInstrDef, ClassLabel, ClassLabelAbbr, ClassStaffDef, ClassStaffGrp:
		return true
	default:
		return c.IsEditorial()
	}
}

// InsertChild inserts child at position idx. AddChild goes through it too.
//
// A group holds at most one grpSym child: inserting a grpSym when there is
// already one replaces the existing one in its position, ignoring idx. The
// inserted grpSym becomes the group symbol.
func (g *StaffGrp) InsertChild(child Node, idx int) error {
	sym, ok := child.(*GrpSym)
	if !ok {
		return g.Object.InsertChild(child, idx)
	}
	if sym == nil {
		return fmt.Errorf("add nil grpSym to %s: %w", g.classID, ErrUnsupportedChild)
	}
	if old := g.FindDescendantByType(ClassGrpSym, 1); old != nil {
		return g.replaceChild(old, sym)
	}
	if err := g.Object.InsertChild(sym, idx); err != nil {
		return err
	}
	g.SetGroupSymbol(sym)
	return nil
}

// ReplaceChild puts replacement in the position of old, which is detached.
//
// A grpSym replacement must take the place of the grpSym child, if the group
// has one; it then becomes the group symbol. Replacing the group symbol with
// anything else unlinks it.
func (g *StaffGrp) ReplaceChild(old, replacement Node) error {
	if sym, ok := replacement.(*GrpSym); ok {
		if sym == nil {
			return fmt.Errorf("replace %s in %s with nil grpSym: %w", classOf(old), g.classID, ErrUnsupportedChild)
		}
		if existing := g.FindDescendantByType(ClassGrpSym, 1); existing != nil && existing != old {
			return fmt.Errorf("replace %s in %s: second grpSym: %w", classOf(old), g.classID, ErrUnsupportedChild)
		}
	}
	return g.replaceChild(old, replacement)
}

func (g *StaffGrp) replaceChild(old, replacement Node) error {
	if err := g.Object.ReplaceChild(old, replacement); err != nil {
		return err
	}
	if sym, ok := replacement.(*GrpSym); ok {
		g.SetGroupSymbol(sym)
	} else if g.groupSymbol != nil && old == Node(g.groupSymbol) {
		g.groupSymbol = nil
	}
	return nil
}

// RemoveChild detaches child from the group. Removing the group symbol unlinks
// it.
func (g *StaffGrp) RemoveChild(child Node) error {
	if err := g.Object.RemoveChild(child); err != nil {
		return err
	}
	if g.groupSymbol != nil && child == Node(g.groupSymbol) {
		g.groupSymbol = nil
	}
	return nil
}

func (g *StaffGrp) objectList() *ObjectList { return &g.staffDefs }

// ResetList marks the cached list of staff definitions stale. Structural
// changes made through the Node methods do so already.
func (g *StaffGrp) ResetList() { g.staffDefs.Reset() }

// List returns the staff definitions below the group in document order,
// including those of nested groups and editorial elements. The cache behind it
// is rebuilt only after a structural change or a call to ResetList.
func (g *StaffGrp) List() []*StaffDef {
	nodes := g.staffDefs.List(g)
	staffDefs := make([]*StaffDef, len(nodes))
	for i, n := range nodes {
		staffDefs[i] = n.(*StaffDef)
	}
	return staffDefs
}

// MaxStaffSize returns the staff size, in percent, the group should be laid
// out with. It is 100 when the group has no staff definition.
//
// The value is a left-to-right fold over List, starting at 0: a staff
// definition with an explicit scale not smaller than the running value becomes
// the new value; any other staff definition sets it back to 100. This is not
// the maximum scale of the group (the scales 80, 90, 70 give 100) and is kept
// for compatibility with existing layouts.
func (g *StaffGrp) MaxStaffSize() int {
	staffDefs := g.List()
	if len(staffDefs) == 0 {
		return 100
	}

	size := 0
	for _, staffDef := range staffDefs {
		if staffDef.HasScale() && staffDef.Scale() >= size {
			size = staffDef.Scale()
		} else {
			size = 100
		}
	}
	return size
}

// FirstLastStaffDef returns the first and the last staff definitions of List
// that are not hidden. Either may be nil, and both may be the same staff
// definition.
func (g *StaffGrp) FirstLastStaffDef() (first, last *StaffDef) {
	staffDefs := g.List()
	for _, staffDef := range staffDefs {
		if staffDef.DrawingVisibility() != att.OptimizationHidden {
			first = staffDef
			break
		}
	}
	for i := len(staffDefs) - 1; i >= 0; i-- {
		if staffDefs[i].DrawingVisibility() != att.OptimizationHidden {
			last = staffDefs[i]
			break
		}
	}
	return first, last
}

// SetGroupSymbol links sym as the symbol of the group, replacing any previous
// link. The group does not take ownership of sym, which stays wherever it is
// in the tree. A nil sym leaves the current link unchanged.
func (g *StaffGrp) SetGroupSymbol(sym *GrpSym) {
	if sym != nil {
		g.groupSymbol = sym
	}
}

// GroupSymbol returns the linked group symbol, or nil.
func (g *StaffGrp) GroupSymbol() *GrpSym { return g.groupSymbol }

// HasLabelInfo reports whether the group has a label child.
func (g *StaffGrp) HasLabelInfo() bool {
	return g.FindDescendantByType(ClassLabel, 1) != nil
}

// HasLabelAbbrInfo reports whether the group has a labelAbbr child.
func (g *StaffGrp) HasLabelAbbrInfo() bool {
	return g.FindDescendantByType(ClassLabelAbbr, 1) != nil
}

// Label returns the first label child of the group and whether there is one.
func (g *StaffGrp) Label() (*Label, bool) {
	label, ok := g.FindDescendantByType(ClassLabel, 1).(*Label)
	return label, ok
}

// LabelAbbr returns the first labelAbbr child of the group and whether there
// is one.
func (g *StaffGrp) LabelAbbr() (*LabelAbbr, bool) {
	labelAbbr, ok := g.FindDescendantByType(ClassLabelAbbr, 1).(*LabelAbbr)
	return labelAbbr, ok
}

// LabelCopy returns a detached copy of the label child with fresh
// identifiers, ready to be placed elsewhere, and whether there is a label.
func (g *StaffGrp) LabelCopy() (*Label, bool) {
	label, ok := g.Label()
	if !ok {
		return nil, false
	}
	return CloneReset(label).(*Label), true
}

// LabelAbbrCopy returns a detached copy of the labelAbbr child with fresh
// identifiers, and whether there is a labelAbbr.
func (g *StaffGrp) LabelAbbrCopy() (*LabelAbbr, bool) {
	labelAbbr, ok := g.LabelAbbr()
	if !ok {
		return nil, false
	}
	return CloneReset(labelAbbr).(*LabelAbbr), true
}

// ScoreDefOptimizeEnd computes the visibility of the group once all its
// children have computed theirs.
//
// The group is shown if any staffDef or staffGrp child is not hidden, and
// hidden otherwise. A shown group with a brace shows all its staffDef children,
// so that braced staves are never split.
func (g *StaffGrp) ScoreDefOptimizeEnd() WalkAction {
	g.SetDrawingVisibility(att.OptimizationHidden)

	for _, child := range g.Children() {
		var v att.VisibilityOptimization
		switch child := child.(type) {
		case *StaffDef:
			v = child.DrawingVisibility()
		case *StaffGrp:
			v = child.DrawingVisibility()
		default:
			continue
		}
		if v != att.OptimizationHidden {
			g.SetDrawingVisibility(att.OptimizationShow)
			break
		}
	}

	if g.Symbol == att.StaffGroupingSymBrace && g.DrawingVisibility() != att.OptimizationHidden {
		for _, child := range g.Children() {
			if staffDef, ok := child.(*StaffDef); ok {
				staffDef.SetDrawingVisibility(att.OptimizationShow)
			}
		}
	}

	return WalkContinue
}

// Clone returns a deep copy of the group. If the group symbol is a child of
// the group, the copy links the copied symbol; a symbol linked from elsewhere
// in the tree is not linked by the copy.
func (g *StaffGrp) Clone() Node {
	c := &StaffGrp{}
	*c = *g
	c.Object = g.Object.clone(c)
	c.staffDefs = NewObjectList(ByClass(ClassStaffDef))
	c.groupSymbol = nil
	if idx := g.childIndex(g.groupSymbol); idx >= 0 {
		c.groupSymbol = c.children[idx].(*GrpSym)
	}
	return c
}

func (g *StaffGrp) cloneReset() {
	g.Object.cloneReset()
	g.visibility = att.OptimizationNone
}
