package att

import "fmt"

// FontSizeTerm enumerates the named font sizes of MEI data.FONTSIZETERM.
type FontSizeTerm int

const (
	FontSizeTermNone FontSizeTerm = iota
	FontSizeTermXXSmall
	FontSizeTermXSmall
	FontSizeTermSmall
	FontSizeTermMedium
	FontSizeTermLarge
	FontSizeTermXLarge
	FontSizeTermXXLarge
	FontSizeTermSmaller
	FontSizeTermLarger
)

var fontSizeTermNames = [...]string{
	FontSizeTermNone:    "",
	FontSizeTermXXSmall: "xx-small",
	FontSizeTermXSmall:  "x-small",
	FontSizeTermSmall:   "small",
	FontSizeTermMedium:  "medium",
	FontSizeTermLarge:   "large",
	FontSizeTermXLarge:  "x-large",
	FontSizeTermXXLarge: "xx-large",
	FontSizeTermSmaller: "smaller",
	FontSizeTermLarger:  "larger",
}

func (t FontSizeTerm) String() string {
	return enumString("FontSizeTerm", int(t), fontSizeTermNames[:])
}

// LineWidthTerm enumerates the named line widths of MEI data.LINEWIDTHTERM.
type LineWidthTerm int

const (
	LineWidthTermNone LineWidthTerm = iota
	LineWidthTermNarrow
	LineWidthTermMedium
	LineWidthTermWide
)

var lineWidthTermNames = [...]string{
	LineWidthTermNone:   "",
	LineWidthTermNarrow: "narrow",
	LineWidthTermMedium: "medium",
	LineWidthTermWide:   "wide",
}

func (t LineWidthTerm) String() string {
	return enumString("LineWidthTerm", int(t), lineWidthTermNames[:])
}

// StaffRel locates an element relative to a staff (MEI data.STAFFREL).
type StaffRel int

const (
	StaffRelNone StaffRel = iota
	StaffRelAbove
	StaffRelBelow
	StaffRelBetween
	StaffRelWithin
)

var staffRelNames = [...]string{
	StaffRelNone:    "",
	StaffRelAbove:   "above",
	StaffRelBelow:   "below",
	StaffRelBetween: "between",
	StaffRelWithin:  "within",
}

func (r StaffRel) String() string { return enumString("StaffRel", int(r), staffRelNames[:]) }

// NonStaffPlace locates an element on the page outside of any staff (MEI
// data.NONSTAFFPLACE).
type NonStaffPlace int

const (
	NonStaffPlaceNone NonStaffPlace = iota
	NonStaffPlaceBotmar
	NonStaffPlaceEnd
	NonStaffPlaceInline
	NonStaffPlaceInspace
	NonStaffPlaceLeftmar
	NonStaffPlaceMirror
	NonStaffPlaceOpposite
	NonStaffPlaceOverleaf
	NonStaffPlaceRightmar
	NonStaffPlaceTopmar
)

var nonStaffPlaceNames = [...]string{
	NonStaffPlaceNone:     "",
	NonStaffPlaceBotmar:   "botmar",
	NonStaffPlaceEnd:      "end",
	NonStaffPlaceInline:   "inline",
	NonStaffPlaceInspace:  "inspace",
	NonStaffPlaceLeftmar:  "leftmar",
	NonStaffPlaceMirror:   "mirror",
	NonStaffPlaceOpposite: "opposite",
	NonStaffPlaceOverleaf: "overleaf",
	NonStaffPlaceRightmar: "rightmar",
	NonStaffPlaceTopmar:   "topmar",
}

func (p NonStaffPlace) String() string {
	return enumString("NonStaffPlace", int(p), nonStaffPlaceNames[:])
}

// StaffGroupingSym is the symbol drawn at the start of a staff group.
//
// StaffGroupingSymNone means no symbol was specified, whereas
// StaffGroupingSymNoSymbol is an explicit request for no symbol.
type StaffGroupingSym int

const (
	StaffGroupingSymNone StaffGroupingSym = iota
	StaffGroupingSymBrace
	StaffGroupingSymBracket
	StaffGroupingSymBracketsq
	StaffGroupingSymLine
	StaffGroupingSymNoSymbol
)

var staffGroupingSymNames = [...]string{
	StaffGroupingSymNone:      "",
	StaffGroupingSymBrace:     "brace",
	StaffGroupingSymBracket:   "bracket",
	StaffGroupingSymBracketsq: "bracketsq",
	StaffGroupingSymLine:      "line",
	StaffGroupingSymNoSymbol:  "none",
}

func (s StaffGroupingSym) String() string {
	return enumString("StaffGroupingSym", int(s), staffGroupingSymNames[:])
}

// Boolean is the tri-state MEI boolean: unset, true or false.
type Boolean int

const (
	BooleanNone Boolean = iota
	BooleanTrue
	BooleanFalse
)

var booleanNames = [...]string{
	BooleanNone:  "",
	BooleanTrue:  "true",
	BooleanFalse: "false",
}

func (b Boolean) String() string { return enumString("Boolean", int(b), booleanNames[:]) }

// VisibilityOptimization is the drawing visibility computed for staves and
// staff groups when empty staves are optimised away.
type VisibilityOptimization int

const (
	OptimizationNone VisibilityOptimization = iota
	OptimizationHidden
	OptimizationShow
)

var visibilityOptimizationNames = [...]string{
	OptimizationNone:   "none",
	OptimizationHidden: "hidden",
	OptimizationShow:   "show",
}

func (v VisibilityOptimization) String() string {
	return enumString("VisibilityOptimization", int(v), visibilityOptimizationNames[:])
}

// enumString returns the MEI token of v, falling back to a Go-syntax form for
// values outside the table.
func enumString(typ string, v int, names []string) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, v)
	}
	return names[v]
}
