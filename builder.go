package verovio

import (
	"unsafe"
)

// A Builder is used to build a document tree using fluent calls, as a parser
// populating the tree would. The first error stops the build; later calls are
// no-ops and Build reports it.
//
// The zero value is ready to use.
// Do not copy a non-zero Builder.
type Builder struct {
	root Node
	// open nodes, innermost last; stack[0] is root.
	stack []Node
	err   error
	// address of receiver - to detect copies by value.
	// see copyCheck below for details.
	addr *Builder
}

// Build returns the root of the built tree and the first error encountered.
func (b *Builder) Build() (Node, error) {
	return b.root, b.err
}

// Reset resets the Builder to be empty.
func (b *Builder) Reset() {
	b.root = nil
	b.stack = nil
	b.err = nil
	b.addr = nil
}

// Root shall replace b's root with n and make it the only open node.
func (b *Builder) Root(n Node) *Builder {
	b.copyCheck()
	b.root = n
	b.stack = append(b.stack[:0], n)
	b.err = nil
	return b
}

// Open shall add n to the innermost open node and open it, so that following
// calls add to n until Close. If there is no root yet, n becomes the root.
func (b *Builder) Open(n Node) *Builder {
	b.copyCheck()
	if len(b.stack) == 0 {
		return b.Root(n)
	}
	if b.err != nil {
		return b
	}
	if err := b.current().AddChild(n); err != nil {
		b.err = err
		return b
	}
	b.stack = append(b.stack, n)
	return b
}

// Add shall add the given nodes, in order, to the innermost open node.
// Add panics if there is no open node.
func (b *Builder) Add(n ...Node) *Builder {
	b.copyCheck()
	if len(b.stack) == 0 {
		panic("verovio.Builder.Add: no open node")
	}
	for _, child := range n {
		if b.err != nil {
			return b
		}
		b.err = b.current().AddChild(child)
	}
	return b
}

// Close shall close the innermost open node. The root is never closed; Close
// panics when only the root is open, unless the build already failed.
func (b *Builder) Close() *Builder {
	b.copyCheck()
	if b.err != nil {
		// the failed Open did not push
		return b
	}
	if len(b.stack) <= 1 {
		panic("verovio.Builder.Close: no open node below the root")
	}
	b.stack = b.stack[:len(b.stack)-1]
	return b
}

func (b *Builder) current() Node {
	return b.stack[len(b.stack)-1]
}

// Noescape hides a pointer from escape analysis.
// It is the identity function, but escape analysis does not think the
// output depends on the input.
// Noescape is inlined and currently compiles down to zero instructions.
// USE CAREFULLY!
// This was copied from the runtime; see issues 23382 and 7921 (github.com/golang/go).
//
//go:nosplit
//go:nocheckptr
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0) //nolint:govet,staticcheck,gosec // copied from the standard library
}

func (b *Builder) copyCheck() {
	if b.addr == nil {
		// This hack works around a failing of Go's escape analysis
		// that was causing b to escape and be heap-allocated.
		// See issue 23382 (github.com/golang/go).
		b.addr = (*Builder)(noescape(unsafe.Pointer(b)))
	} else if b.addr != b {
		panic("verovio: illegal use of non-zero Builder copied by value")
	}
}
