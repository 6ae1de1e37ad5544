package verovio_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/withSang/verovio"
	"github.com/withSang/verovio/att"
)

func TestObject_AddChild(t *testing.T) {
	tests := []struct {
		name    string
		parent  Node
		child   func() Node
		wantErr error
	}{
		{"supported", NewScoreDef(), func() Node { return NewStaffGrp() }, nil},
		{"unsupported", NewScoreDef(), func() Node { return NewStaffDef(1) }, ErrUnsupportedChild},
		{"nil", NewStaffGrp(), func() Node { return nil }, ErrUnsupportedChild},
		{"leaf", NewText("x"), func() Node { return NewText("y") }, ErrUnsupportedChild},
		{"editorial accepts anything", NewEditorialElement(ClassChoice), func() Node { return NewText("y") }, nil},
		{"attached", NewStaffGrp(), func() Node {
			s := NewStaffDef(1)
			_ = NewStaffGrp().AddChild(s)
			return s
		}, ErrAttached},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := tt.child()
			err := tt.parent.AddChild(child)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddChild() error = %v, expected %v", err, tt.wantErr)
			}
			if err != nil {
				if tt.parent.ChildCount() != 0 {
					t.Errorf("failed AddChild() modified the parent")
				}
				return
			}
			if child.Parent() != tt.parent {
				t.Errorf("Parent() = %v, expected %v", child.Parent(), tt.parent)
			}
		})
	}
}

func TestObject_AddChildCycle(t *testing.T) {
	// outer
	// └─ app
	//    └─ inner
	outer, inner := NewStaffGrp(), NewStaffGrp()
	app := NewEditorialElement(ClassApp)
	mustAdd(t, outer, app)
	mustAdd(t, app, inner)

	tests := []struct {
		name          string
		parent, child Node
	}{
		{"self", outer, outer},
		{"leaf self", inner, inner},
		{"parent", app, outer},
		{"ancestor", inner, outer},
		{"editorial self", app, app},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.parent.ChildCount()
			if err := tt.parent.AddChild(tt.child); !errors.Is(err, ErrCycle) {
				t.Errorf("AddChild() error = %v, expected %v", err, ErrCycle)
			}
			if got := tt.parent.ChildCount(); got != n {
				t.Errorf("rejected AddChild() changed the child count from %d to %d", n, got)
			}
		})
	}

	t.Run("replace", func(t *testing.T) {
		s := NewStaffDef(1)
		mustAdd(t, inner, s)
		if err := inner.ReplaceChild(s, outer); !errors.Is(err, ErrCycle) {
			t.Errorf("ReplaceChild() error = %v, expected %v", err, ErrCycle)
		}
		if s.Parent() != Node(inner) {
			t.Errorf("rejected ReplaceChild() detached the old child")
		}
	})

	if outer.Parent() != nil {
		t.Errorf("outer Parent() = %v, expected nil", outer.Parent())
	}
	if got := len(outer.List()); got != 1 {
		t.Errorf("List() = %d staff definitions, expected 1", got)
	}
}

func TestObject_InsertChild(t *testing.T) {
	g := NewStaffGrp()
	s1, s2, s3 := NewStaffDef(1), NewStaffDef(2), NewStaffDef(3)
	mustAdd(t, g, s1)
	mustAdd(t, g, s3)
	if err := g.InsertChild(s2, 1); err != nil {
		t.Fatalf("InsertChild() failed: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, staffNumbers(g.List())); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	for _, idx := range []int{-1, 4} {
		if err := g.InsertChild(NewStaffDef(9), idx); err == nil {
			t.Errorf("InsertChild(%d) succeeded, expected an out of range error", idx)
		}
	}
	if g.ChildCount() != 3 {
		t.Errorf("ChildCount() = %d, expected 3", g.ChildCount())
	}
}

func TestObject_RemoveReplaceChild(t *testing.T) {
	g := NewStaffGrp()
	s1, s2 := NewStaffDef(1), NewStaffDef(2)
	mustAdd(t, g, s1)
	mustAdd(t, g, s2)

	if err := g.RemoveChild(NewStaffDef(3)); !errors.Is(err, ErrNotChild) {
		t.Errorf("RemoveChild(stranger) error = %v, expected %v", err, ErrNotChild)
	}
	if err := g.RemoveChild(nil); !errors.Is(err, ErrNotChild) {
		t.Errorf("RemoveChild(nil) error = %v, expected %v", err, ErrNotChild)
	}

	s3 := NewStaffDef(3)
	if err := g.ReplaceChild(s1, s3); err != nil {
		t.Fatalf("ReplaceChild() failed: %v", err)
	}
	if s1.Parent() != nil || s3.Parent() != Node(g) {
		t.Errorf("ReplaceChild() parents = (%v, %v), expected (nil, group)", s1.Parent(), s3.Parent())
	}
	if err := g.ReplaceChild(s2, NewText("x")); !errors.Is(err, ErrUnsupportedChild) {
		t.Errorf("ReplaceChild(text) error = %v, expected %v", err, ErrUnsupportedChild)
	}

	if err := g.RemoveChild(s2); err != nil {
		t.Fatalf("RemoveChild() failed: %v", err)
	}
	if diff := cmp.Diff([]int{3}, staffNumbers(g.List())); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	// a removed node may be added elsewhere
	mustAdd(t, NewStaffGrp(), s2)
}

func TestObject_FindDescendantByType(t *testing.T) {
	// staffGrp
	// ├─ app
	// │  └─ staffGrp inner
	// │     └─ staffDef
	// └─ staffDef
	g, inner := NewStaffGrp(), NewStaffGrp()
	app := NewEditorialElement(ClassApp)
	deep, shallow := NewStaffDef(1), NewStaffDef(2)
	mustAdd(t, inner, deep)
	mustAdd(t, app, inner)
	mustAdd(t, g, app)
	mustAdd(t, g, shallow)

	tests := []struct {
		class    ClassID
		maxDepth int
		want     Node
	}{
		{ClassStaffDef, UnlimitedDepth, deep},
		{ClassStaffDef, 1, shallow},
		{ClassStaffDef, 2, shallow},
		{ClassStaffGrp, 1, nil},
		{ClassStaffGrp, 2, inner},
		{ClassApp, 1, app},
		{ClassLabel, UnlimitedDepth, nil},
		{ClassStaffDef, 0, nil},
	}
	for _, tt := range tests {
		got := g.FindDescendantByType(tt.class, tt.maxDepth)
		if got != tt.want {
			t.Errorf("FindDescendantByType(%s, %d) = %v, expected %v", tt.class, tt.maxDepth, got, tt.want)
		}
	}

	all := g.FindAllDescendantsByType(ClassStaffDef, UnlimitedDepth)
	if diff := cmp.Diff([]Node{deep, shallow}, all, cmp.Comparer(sameNode)); diff != "" {
		t.Errorf("FindAllDescendantsByType() mismatch (-want +got):\n%s", diff)
	}
}

func TestObject_ID(t *testing.T) {
	tests := []struct {
		node   Node
		prefix string
	}{
		{NewScoreDef(), "scoredef-"},
		{NewStaffGrp(), "staffgrp-"},
		{NewStaffDef(1), "staffdef-"},
		{NewGrpSym(att.StaffGroupingSymLine), "grpsym-"},
		{NewLabelAbbr(""), "labelabbr-"},
		{NewEditorialElement(ClassSupplied), "supplied-"},
	}
	for _, tt := range tests {
		if id := tt.node.ID(); !strings.HasPrefix(id, tt.prefix) || id == tt.prefix {
			t.Errorf("%s ID() = %q, expected a generated identifier starting with %q", tt.node.ClassID(), id, tt.prefix)
		}
	}

	a, b := NewStaffDef(1), NewStaffDef(1)
	if a.ID() == b.ID() {
		t.Errorf("two staff definitions share the identifier %q", a.ID())
	}

	a.SetID("s1")
	if a.ID() != "s1" {
		t.Errorf("ID() = %q after SetID, expected %q", a.ID(), "s1")
	}
	a.ResetID()
	if !strings.HasPrefix(a.ID(), "staffdef-") {
		t.Errorf("ID() = %q after ResetID, expected a generated identifier", a.ID())
	}
}

func TestCloneReset(t *testing.T) {
	s := NewStaffDef(4)
	s.SetScale(75)
	s.Lines = 5
	s.SetDrawingVisibility(att.OptimizationHidden)
	instr := NewInstrDef()
	instr.MidiInstrName.SetNCName("Violin")
	mustAdd(t, s, instr)
	mustAdd(t, s, NewLabel("Vl."))
	mustAdd(t, NewStaffGrp(), s)

	c := CloneReset(s).(*StaffDef)
	if c.Parent() != nil {
		t.Errorf("CloneReset() Parent() = %v, expected nil", c.Parent())
	}
	if c.N != 4 || c.Lines != 5 || c.Scale() != 75 {
		t.Errorf("CloneReset() attributes = (%d, %d, %d), expected (4, 5, 75)", c.N, c.Lines, c.Scale())
	}
	if got := c.DrawingVisibility(); got != att.OptimizationNone {
		t.Errorf("CloneReset() DrawingVisibility() = %v, expected %v", got, att.OptimizationNone)
	}

	var origIDs, cloneIDs []string
	Inspect(s, func(n Node) bool { origIDs = append(origIDs, n.ID()); return true })
	Inspect(c, func(n Node) bool { cloneIDs = append(cloneIDs, n.ID()); return true })
	if len(origIDs) != len(cloneIDs) {
		t.Fatalf("CloneReset() copied %d nodes, expected %d", len(cloneIDs), len(origIDs))
	}
	for i := range origIDs {
		if origIDs[i] == cloneIDs[i] {
			t.Errorf("node %d kept the identifier %q", i, origIDs[i])
		}
	}

	ci := c.Children()[0].(*InstrDef)
	if ci == instr || ci.Parent() != Node(c) {
		t.Errorf("cloned instrDef is not a child of the clone")
	}
	if !ci.MidiInstrName.Equal(instr.MidiInstrName) {
		t.Errorf("cloned MidiInstrName = %v, expected %v", ci.MidiInstrName, instr.MidiInstrName)
	}
}
