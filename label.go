package verovio

import (
	"strings"

	"github.com/withSang/verovio/att"
)

// Label is the name of a staff or a group printed before its first system
// (MEI label).
type Label struct {
	Object
}

// NewLabel returns a label holding the given text, or an empty label if text
// is empty.
func NewLabel(text string) *Label {
	l := &Label{}
	l.init(l, ClassLabel)
	if text != "" {
		mustAddChild(l, NewText(text))
	}
	return l
}

// IsSupportedChild accepts text and editorial elements.
func (l *Label) IsSupportedChild(child Node) bool {
	c := classOf(child)
	return c == ClassText || c.IsEditorial()
}

// Text returns the concatenated text of the label.
func (l *Label) Text() string { return textOf(l) }

func (l *Label) Clone() Node {
	c := &Label{}
	c.Object = l.Object.clone(c)
	return c
}

// LabelAbbr is the abbreviated name of a staff or a group printed before the
// following systems (MEI labelAbbr).
type LabelAbbr struct {
	Object
}

// NewLabelAbbr returns an abbreviated label holding the given text.
func NewLabelAbbr(text string) *LabelAbbr {
	l := &LabelAbbr{}
	l.init(l, ClassLabelAbbr)
	if text != "" {
		mustAddChild(l, NewText(text))
	}
	return l
}

// IsSupportedChild accepts text and editorial elements.
func (l *LabelAbbr) IsSupportedChild(child Node) bool {
	c := classOf(child)
	return c == ClassText || c.IsEditorial()
}

// Text returns the concatenated text of the abbreviated label.
func (l *LabelAbbr) Text() string { return textOf(l) }

func (l *LabelAbbr) Clone() Node {
	c := &LabelAbbr{}
	c.Object = l.Object.clone(c)
	return c
}

// Text is a run of character data.
type Text struct {
	Object

	Content  string
	FontSize att.FontSize
}

// NewText returns a text node with the given content.
func NewText(content string) *Text {
	t := &Text{Content: content}
	t.init(t, ClassText)
	return t
}

func (t *Text) Clone() Node {
	c := &Text{}
	*c = *t
	c.Object = t.Object.clone(c)
	return c
}

// mustAddChild adds child to parent and panics if parent refuses it.
func mustAddChild(parent, child Node) {
	if err := parent.AddChild(child); err != nil {
		panic("verovio: " + err.Error())
	}
}

// textOf concatenates the text descendants of n in document order.
func textOf(n Node) string {
	var b strings.Builder
	for _, t := range n.object().FindAllDescendantsByType(ClassText, UnlimitedDepth) {
		b.WriteString(t.(*Text).Content)
	}
	return b.String()
}
