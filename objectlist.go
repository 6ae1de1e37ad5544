package verovio

// A FilterFunc decides whether a descendant belongs to an ObjectList. It is
// called once per descendant, in depth-first order, each time the list is
// rebuilt.
type FilterFunc func(n Node) bool

// ObjectList is a cached, filtered view over the descendants of the Node that
// owns it. The list keeps the depth-first order of the tree; descendants the
// filter rejects are left out, but their own descendants are still visited.
//
// The list is rebuilt lazily: structural changes anywhere below the owner (made
// through AddChild, InsertChild, RemoveChild or ReplaceChild) mark it stale,
// and the next call to List rebuilds it. Reset marks it stale explicitly, for
// callers that changed something the filter depends on.
//
// ObjectList is not safe for concurrent use.
type ObjectList struct {
	filter FilterFunc
	list   []Node
	valid  bool
}

// NewObjectList returns an empty, stale list of the descendants accepted by
// filter. A nil filter accepts every descendant.
func NewObjectList(filter FilterFunc) ObjectList {
	return ObjectList{filter: filter}
}

// Reset marks the list stale so that the next List call rebuilds it.
func (l *ObjectList) Reset() {
	l.valid = false
	l.list = nil
}

// List returns the filtered descendants of owner, rebuilding the cache if it
// is stale.
//
// Do not modify the returned slice.
func (l *ObjectList) List(owner Node) []Node {
	if !l.valid {
		l.rebuild(owner)
	}
	return l.list
}

func (l *ObjectList) rebuild(owner Node) {
	var list []Node
	owner.object().descend(UnlimitedDepth, func(n Node) bool {
		if l.filter == nil || l.filter(n) {
			list = append(list, n)
		}
		return true
	})
	l.list = list
	l.valid = true
}

// listOwner is implemented by nodes that own an ObjectList, so that structural
// changes below them can invalidate it.
type listOwner interface {
	objectList() *ObjectList
}

// ByClass returns a FilterFunc accepting descendants of the given class.
func ByClass(class ClassID) FilterFunc {
	return func(n Node) bool {
		return n.ClassID() == class
	}
}
