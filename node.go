package verovio

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

var (
	// ErrUnsupportedChild is returned when a node refuses a child of the given
	// class. Use errors.Is to test for it.
	ErrUnsupportedChild = errors.New("unsupported child")
	// ErrNotChild is returned when an operation names a node that is not a
	// direct child of the receiver.
	ErrNotChild = errors.New("not a child")
	// ErrAttached is returned when a node that already has a parent is added to
	// another one.
	ErrAttached = errors.New("node already attached")
	// ErrCycle is returned when a node is added below itself.
	ErrCycle = errors.New("node is an ancestor")
)

// UnlimitedDepth disables the depth bound of descendant lookups.
const UnlimitedDepth = -1

// IDGenerator returns a fresh identifier starting with the given class prefix.
// Nodes call it on construction and when a clone is reset.
//
// Replace it before building documents to obtain deterministic identifiers; it
// is not safe to replace while nodes are being built concurrently.
var IDGenerator = func(prefix string) string {
	return prefix + uuid.NewString()
}

// Node is an element of a document tree. Every Node embeds an Object, which
// implements the structural part of this interface; the element types
// implement Clone and override IsSupportedChild.
//
// Construct nodes with their New functions; the zero value of an element type
// is not attached to its Object and cannot hold children.
type Node interface {
	ClassID() ClassID
	ID() string
	Parent() Node
	Children() []Node
	ChildCount() int
	// IsSupportedChild reports whether child may be added to this node. It does
	// not modify the node.
	IsSupportedChild(child Node) bool
	AddChild(child Node) error
	InsertChild(child Node, idx int) error
	// Clone returns a deep copy of the node and its subtree. The copy keeps the
	// identifiers of the original and has no parent; see CloneReset.
	Clone() Node

	object() *Object
	cloneReset()
}

// Object holds the identity and the children of a Node.
//
// An Object owns its children; the parent link is a non-owning back reference
// maintained by the insertion and removal methods.
type Object struct {
	classID  ClassID
	prefix   string
	id       string
	parent   Node
	children []Node
	// self is the Node embedding this Object, used to dispatch to overridden
	// methods.
	self Node
}

func (o *Object) init(self Node, class ClassID) {
	o.self = self
	o.classID = class
	o.prefix = class.idPrefix()
	o.id = IDGenerator(o.prefix)
}

func (o *Object) object() *Object { return o }

// ClassID returns the class of the node.
func (o *Object) ClassID() ClassID { return o.classID }

// Is reports whether the node is of the given class.
func (o *Object) Is(class ClassID) bool { return o.classID == class }

// ID returns the identifier of the node.
func (o *Object) ID() string { return o.id }

// SetID replaces the identifier of the node.
func (o *Object) SetID(id string) { o.id = id }

// ResetID assigns a freshly generated identifier.
func (o *Object) ResetID() { o.id = IDGenerator(o.prefix) }

// Parent returns the node holding this one, or nil for a root.
func (o *Object) Parent() Node { return o.parent }

// Children returns the direct children in insertion order.
//
// Do not modify the returned slice.
func (o *Object) Children() []Node { return o.children }

// ChildCount returns the number of direct children.
func (o *Object) ChildCount() int { return len(o.children) }

// IsSupportedChild accepts no children; element types override it.
func (o *Object) IsSupportedChild(Node) bool { return false }

// AddChild appends child to the children of the node.
func (o *Object) AddChild(child Node) error {
	return o.self.InsertChild(child, len(o.children))
}

// InsertChild inserts child at position idx. The child must be supported by
// the node and must not already have a parent.
func (o *Object) InsertChild(child Node, idx int) error {
	if err := o.checkChild(child); err != nil {
		return err
	}
	if idx < 0 || idx > len(o.children) {
		return fmt.Errorf("insert %s into %s: index %d out of range", child.ClassID(), o.classID, idx)
	}
	o.children = slices.Insert(o.children, idx, child)
	child.object().parent = o.self
	o.invalidate()
	return nil
}

// RemoveChild detaches child from the node. The child and its subtree are
// left intact and may be added elsewhere.
func (o *Object) RemoveChild(child Node) error {
	idx := o.childIndex(child)
	if idx < 0 {
		return fmt.Errorf("remove %s from %s: %w", classOf(child), o.classID, ErrNotChild)
	}
	o.children = slices.Delete(o.children, idx, idx+1)
	child.object().parent = nil
	o.invalidate()
	return nil
}

// ReplaceChild puts replacement in the position of old, which is detached.
func (o *Object) ReplaceChild(old, replacement Node) error {
	idx := o.childIndex(old)
	if idx < 0 {
		return fmt.Errorf("replace %s in %s: %w", classOf(old), o.classID, ErrNotChild)
	}
	if err := o.checkChild(replacement); err != nil {
		return err
	}
	o.children[idx] = replacement
	old.object().parent = nil
	replacement.object().parent = o.self
	o.invalidate()
	return nil
}

func (o *Object) checkChild(child Node) error {
	if child == nil {
		return fmt.Errorf("add nil to %s: %w", o.classID, ErrUnsupportedChild)
	}
	for n := o.self; n != nil; n = n.Parent() {
		if n == child {
			return fmt.Errorf("add %s to %s: %w", child.ClassID(), o.classID, ErrCycle)
		}
	}
	if !o.self.IsSupportedChild(child) {
		return fmt.Errorf("add %s to %s: %w", child.ClassID(), o.classID, ErrUnsupportedChild)
	}
	if child.Parent() != nil {
		return fmt.Errorf("add %s to %s: %w", child.ClassID(), o.classID, ErrAttached)
	}
	return nil
}

func (o *Object) childIndex(child Node) int {
	return slices.IndexFunc(o.children, func(n Node) bool { return n == child })
}

// FindDescendantByType returns the first descendant of the given class in
// depth-first order, looking at most maxDepth levels down (1 means direct
// children only; UnlimitedDepth means no bound). It returns nil if there is no
// such descendant.
func (o *Object) FindDescendantByType(class ClassID, maxDepth int) Node {
	var found Node
	o.descend(maxDepth, func(n Node) bool {
		if n.ClassID() == class {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAllDescendantsByType returns every descendant of the given class in
// depth-first order, looking at most maxDepth levels down.
func (o *Object) FindAllDescendantsByType(class ClassID, maxDepth int) []Node {
	var found []Node
	o.descend(maxDepth, func(n Node) bool {
		if n.ClassID() == class {
			found = append(found, n)
		}
		return true
	})
	return found
}

// descend calls fn for the descendants of o in depth-first pre-order until fn
// returns false.
func (o *Object) descend(maxDepth int, fn func(Node) bool) bool {
	if maxDepth == 0 {
		return true
	}
	for _, child := range o.children {
		if !fn(child) {
			return false
		}
		if !child.object().descend(maxDepth-1, fn) {
			return false
		}
	}
	return true
}

// invalidate marks the object lists of this node and of all its ancestors as
// stale.
func (o *Object) invalidate() {
	for n := o.self; n != nil; n = n.Parent() {
		if owner, ok := n.(listOwner); ok {
			owner.objectList().Reset()
		}
	}
}

// clone copies the identity of o and clones its children under self.
func (o *Object) clone(self Node) Object {
	c := Object{
		classID: o.classID,
		prefix:  o.prefix,
		id:      o.id,
		self:    self,
	}
	if len(o.children) != 0 {
		c.children = make([]Node, len(o.children))
		for i, child := range o.children {
			cc := child.Clone()
			cc.object().parent = self
			c.children[i] = cc
		}
	}
	return c
}

func (o *Object) cloneReset() {
	o.ResetID()
}

// CloneReset returns an independent copy of n ready to be inserted in a tree:
// it has no parent, and it and all its descendants carry fresh identifiers and
// no computed drawing state.
func CloneReset(n Node) Node {
	c := n.Clone()
	resetTree(c)
	return c
}

func resetTree(n Node) {
	n.cloneReset()
	for _, child := range n.Children() {
		resetTree(child)
	}
}

// classOf returns the class of n, or ClassUnknown for a nil node.
func classOf(n Node) ClassID {
	if n == nil {
		return ClassUnknown
	}
	return n.ClassID()
}
