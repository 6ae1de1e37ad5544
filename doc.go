// Package verovio models the score definition of an engraved music score: the
// tree of staff groups and staff definitions, with their labels, instruments and
// grouping symbols, that tells a layout engine which staves a system has and
// how to bracket them.
//
// Every element of the tree is a Node embedding an Object. Objects own their
// children and keep a non-owning link to their parent; each element type
// decides which children it accepts (see Node.IsSupportedChild). Editorial
// markup (app, choice, supplied, ...) may wrap content anywhere in the tree.
//
// Algorithms run over the tree as Functors passed to Walk, which calls Visit on
// the way down and VisitEnd on the way back up. OptimizeScoreDef is such a pass:
// once the visibility of each staff has been computed from its content, it
// decides which staff groups to draw, hiding empty ones and keeping braced
// staves together.
//
// Attribute values whose MEI datatype admits alternative forms (a font size
// given as points, a term or a percentage) live in package att.
package verovio
