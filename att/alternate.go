/*
Package att provides the attribute value types carried by document nodes.

Most MEI data types map onto a single Go type, but a handful of them admit
several mutually exclusive representations: a font size may be a number, a named
term or a percentage. Those are modelled here as alternate data types. Each one
holds a discriminant (its Type) and at most one live payload.

Setting any alternative resets the value first, so no payload of a previously
selected alternative survives the mutation. Reading an alternative that is not
selected returns that alternative's unset sentinel; the Lookup variants of the
getters report whether the alternative is selected instead.

Two values are equal when their discriminants are equal and every alternative
reads the same. Compare values with Equal rather than ==.
*/
package att

import "fmt"

// Unset is the reserved sentinel of numeric payloads that have no natural
// out-of-range value.
const Unset = -0x7FFFFFFF

// alternate is the storage shared by the alternate data types: a discriminant
// and the single payload it selects.
type alternate[K ~int] struct {
	kind  K
	value any
}

func (a *alternate[K]) reset(kind K) {
	a.kind = kind
	a.value = nil
}

func (a *alternate[K]) set(kind K, v any) {
	a.reset(kind)
	a.value = v
}

// payload returns the stored value if kind is the selected alternative and
// holds a T; otherwise it returns unset and false.
func payload[T any, K ~int](a alternate[K], kind K, unset T) (T, bool) {
	if a.kind != kind {
		return unset, false
	}
	v, ok := a.value.(T)
	if !ok {
		// selected by Reset without a payload
		return unset, true
	}
	return v, true
}

func (a alternate[K]) String() string {
	if a.value == nil {
		return fmt.Sprintf("%v", a.kind)
	}
	return fmt.Sprintf("%v(%v)", a.kind, a.value)
}
