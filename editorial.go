package verovio

import "fmt"

// EditorialElement is editorial markup (app, choice, add, supplied, ...)
// wrapping other content. It accepts any child; whether the wrapped content is
// valid is up to the nodes around it.
type EditorialElement struct {
	Object
}

// NewEditorialElement returns an editorial element of the given class. It
// panics if class is not an editorial class.
func NewEditorialElement(class ClassID) *EditorialElement {
	if !class.IsEditorial() {
		panic(fmt.Sprintf("verovio: %s is not an editorial element", class))
	}
	e := &EditorialElement{}
	e.init(e, class)
	return e
}

// IsSupportedChild accepts any node.
func (e *EditorialElement) IsSupportedChild(child Node) bool {
	return child != nil
}

func (e *EditorialElement) Clone() Node {
	c := &EditorialElement{}
	c.Object = e.Object.clone(c)
	return c
}
