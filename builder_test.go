package verovio

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/withSang/verovio/att"
)

// based on stdlib strings/builder_test.go
func TestBuilderCopyPanic(t *testing.T) {
	tests := []struct {
		name      string
		fn        func()
		wantPanic bool
	}{
		{
			name:      "Build",
			wantPanic: false,
			fn: func() {
				var a Builder
				a.Root(NewScoreDef())
				b := a
				_, _ = b.Build() // appease vet
			},
		},
		{
			name:      "Reset",
			wantPanic: false,
			fn: func() {
				var a Builder
				a.Root(NewScoreDef())
				b := a
				b.Reset()
				b.Root(NewScoreDef())
			},
		},
		{
			name:      "Root",
			wantPanic: true,
			fn: func() {
				var a Builder
				a.Root(NewScoreDef())
				b := a
				b.Root(NewScoreDef())
			},
		},
		{
			name:      "Open",
			wantPanic: true,
			fn: func() {
				var a Builder
				a.Root(NewScoreDef())
				b := a
				b.Open(NewStaffGrp())
			},
		},
		{
			name:      "Add",
			wantPanic: true,
			fn: func() {
				var a Builder
				a.Root(NewStaffGrp())
				b := a
				b.Add(NewStaffDef(1))
			},
		},
		{
			name:      "Close",
			wantPanic: true,
			fn: func() {
				var a Builder
				a.Root(NewScoreDef()).Open(NewStaffGrp())
				b := a
				b.Close()
			},
		},
	}
	for _, tt := range tests {
		didPanic := make(chan bool)
		go func() {
			defer func() { didPanic <- recover() != nil }()
			tt.fn()
		}()
		if got := <-didPanic; got != tt.wantPanic {
			t.Errorf("%s: panicked = %v; want %v", tt.name, got, tt.wantPanic)
		}
	}
}

func TestBuilderMisusePanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *Builder)
	}{
		{"Add without root", func(b *Builder) { b.Add(NewStaffDef(1)) }},
		{"Close without root", func(b *Builder) { b.Close() }},
		{"Close root", func(b *Builder) { b.Root(NewScoreDef()).Close() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", tt.name)
				}
			}()
			var b Builder
			tt.fn(&b)
		})
	}
}

func TestBuilder(t *testing.T) {
	// scoreDef
	// └─ staffGrp (brace)
	//    ├─ grpSym
	//    ├─ label
	//    ├─ staffDef 1
	//    └─ staffDef 2
	//       └─ instrDef
	g := NewStaffGrp()
	g.Symbol = att.StaffGroupingSymBrace
	s1, s2 := NewStaffDef(1), NewStaffDef(2)

	var b Builder
	b.Open(NewScoreDef()).
		Open(g).
		Add(NewGrpSym(att.StaffGroupingSymBrace), NewLabel("Piano"), s1).
		Open(s2).Add(NewInstrDef()).Close().
		Close()
	root, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	want := []ClassID{ClassScoreDef, ClassStaffGrp, ClassGrpSym, ClassLabel, ClassText, ClassStaffDef, ClassStaffDef, ClassInstrDef}
	var got []ClassID
	Inspect(root, func(n Node) bool {
		got = append(got, n.ClassID())
		return true
	})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build() tree mismatch (-want +got):\n%s", diff)
	}

	if g.Parent() != root {
		t.Errorf("staffGrp parent = %v, expected the scoreDef", g.Parent())
	}
	if g.GroupSymbol() == nil {
		t.Errorf("GroupSymbol() = nil, expected the built grpSym")
	}
	if got := len(g.List()); got != 2 {
		t.Errorf("List() = %d staff definitions, expected 2", got)
	}
}

func TestBuilderError(t *testing.T) {
	var b Builder
	s := NewStaffDef(1)
	b.Root(NewScoreDef()).
		Add(s). // a scoreDef does not hold staffDefs directly
		Open(NewStaffGrp()).
		Add(NewStaffDef(2)).
		Close()

	root, err := b.Build()
	if !errors.Is(err, ErrUnsupportedChild) {
		t.Fatalf("Build() error = %v, expected %v", err, ErrUnsupportedChild)
	}
	if root.ChildCount() != 0 {
		t.Errorf("calls after the error modified the tree: %d children", root.ChildCount())
	}
	if s.Parent() != nil {
		t.Errorf("rejected node has a parent")
	}

	b.Reset()
	if root, err := b.Build(); root != nil || err != nil {
		t.Errorf("Build() after Reset = (%v, %v), expected (nil, nil)", root, err)
	}
}

func TestBuilderAttached(t *testing.T) {
	s := NewStaffDef(1)
	var b Builder
	b.Root(NewStaffGrp()).Add(s, s)
	if _, err := b.Build(); !errors.Is(err, ErrAttached) {
		t.Errorf("Build() error = %v, expected %v", err, ErrAttached)
	}
}
