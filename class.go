package verovio

import (
	"fmt"
	"strings"
)

// ClassID identifies the element type of a Node.
type ClassID int

const (
	ClassUnknown ClassID = iota
	ClassScoreDef
	ClassStaffGrp
	ClassStaffDef
	ClassGrpSym
	ClassInstrDef
	ClassLabel
	ClassLabelAbbr
	ClassText

	editorialStart
	ClassApp
	ClassLem
	ClassRdg
	ClassChoice
	ClassCorr
	ClassSic
	ClassOrig
	ClassReg
	ClassAdd
	ClassDel
	ClassSupplied
	ClassUnclear
	ClassAnnot
	editorialEnd
)

var classNames = map[ClassID]string{
	ClassUnknown:   "unknown",
	ClassScoreDef:  "scoreDef",
	ClassStaffGrp:  "staffGrp",
	ClassStaffDef:  "staffDef",
	ClassGrpSym:    "grpSym",
	ClassInstrDef:  "instrDef",
	ClassLabel:     "label",
	ClassLabelAbbr: "labelAbbr",
	ClassText:      "text",
	ClassApp:       "app",
	ClassLem:       "lem",
	ClassRdg:       "rdg",
	ClassChoice:    "choice",
	ClassCorr:      "corr",
	ClassSic:       "sic",
	ClassOrig:      "orig",
	ClassReg:       "reg",
	ClassAdd:       "add",
	ClassDel:       "del",
	ClassSupplied:  "supplied",
	ClassUnclear:   "unclear",
	ClassAnnot:     "annot",
}

// String returns the MEI element name of the class.
func (c ClassID) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ClassID(%d)", int(c))
}

// IsEditorial reports whether the class is an editorial markup element (app,
// choice, add, ...). Editorial elements may wrap any content.
func (c ClassID) IsEditorial() bool {
	return c > editorialStart && c < editorialEnd
}

// idPrefix returns the identifier prefix of nodes of the class.
func (c ClassID) idPrefix() string {
	if name, ok := classNames[c]; ok {
		return strings.ToLower(name) + "-"
	}
	return "object-"
}
