package verovio

// WalkAction tells Walk how to proceed after a Functor call.
type WalkAction int

const (
	// WalkContinue proceeds with the children of the node, then its siblings.
	WalkContinue WalkAction = iota
	// WalkSibling skips the children of the node and its VisitEnd call.
	WalkSibling
	// WalkStop ends the walk.
	WalkStop
)

func (a WalkAction) String() string {
	switch a {
	case WalkContinue:
		return "continue"
	case WalkSibling:
		return "sibling"
	case WalkStop:
		return "stop"
	default:
		return "WalkAction(?)"
	}
}

// A Functor defines the two steps Walk performs for each node it encounters:
// Visit before the children of the node are walked, and VisitEnd after all of
// them have completed their own VisitEnd.
//
// Per-class behaviour is usually dispatched from these methods with a type
// switch or an interface assertion on the node.
type Functor interface {
	Visit(node Node) WalkAction
	VisitEnd(node Node) WalkAction
}

// Walk traverses a tree in depth-first order: It starts by calling
// f.Visit(root). Unless that returns WalkSibling or WalkStop, Walk is invoked
// recursively for each child of the node, followed by a call of
// f.VisitEnd(root). It returns WalkStop if any call stopped the walk and
// WalkContinue otherwise.
//
// The walk is synchronous and holds no locks; the Functor may modify the nodes
// it visits but must not change the structure of the tree.
func Walk(f Functor, root Node) WalkAction {
	// Start by calling f.Visit(root).
	switch f.Visit(root) {
	case WalkStop:
		return WalkStop
	case WalkSibling:
		return WalkContinue
	}
	// Then traverse the children, depth-first.
	for _, child := range root.Children() {
		if Walk(f, child) == WalkStop {
			return WalkStop
		}
	}
	// Finally, call f.VisitEnd(root).
	if f.VisitEnd(root) == WalkStop {
		return WalkStop
	}
	return WalkContinue
}

type inspector func(node Node) bool

func (f inspector) Visit(node Node) WalkAction {
	if f(node) {
		return WalkContinue
	}
	return WalkSibling
}

func (f inspector) VisitEnd(Node) WalkAction { return WalkContinue }

// Inspect traverses a tree in depth-first order: It starts by calling f(root);
// the root must not be nil. If f returns true, Inspect invokes f recursively
// for each child of the node.
func Inspect(root Node, f func(node Node) bool) {
	Walk(inspector(f), root)
}

// PostOrder adapts a function to a Functor that only acts after the subtree of
// each node has been walked.
type PostOrder func(node Node) WalkAction

func (PostOrder) Visit(Node) WalkAction { return WalkContinue }

func (f PostOrder) VisitEnd(node Node) WalkAction { return f(node) }
