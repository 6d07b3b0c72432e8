package contour

import "fmt"

// Edge identifies one side of a cell.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// CaseCount is the number of corner classifications of a cell.
const CaseCount = 16

// caseEdges maps a case index to consecutive (start, end) edge pairs. The
// saddles 5 and 10 always emit both segments; the centre sample is not
// consulted.
var caseEdges = [CaseCount][]Edge{
	0:  nil,
	1:  {EdgeBottom, EdgeLeft},
	2:  {EdgeRight, EdgeBottom},
	3:  {EdgeRight, EdgeLeft},
	4:  {EdgeTop, EdgeRight},
	5:  {EdgeTop, EdgeLeft, EdgeRight, EdgeBottom},
	6:  {EdgeTop, EdgeBottom},
	7:  {EdgeTop, EdgeLeft},
	8:  {EdgeTop, EdgeLeft},
	9:  {EdgeTop, EdgeBottom},
	10: {EdgeTop, EdgeRight, EdgeBottom, EdgeLeft},
	11: {EdgeTop, EdgeRight},
	12: {EdgeRight, EdgeLeft},
	13: {EdgeRight, EdgeBottom},
	14: {EdgeBottom, EdgeLeft},
	15: nil,
}

// CaseIndex packs the thresholded corners into a 4-bit index. The weighting
// bottom-left=1, bottom-right=2, top-right=4, top-left=8 is what caseEdges is
// laid out against.
func CaseIndex(topLeft, topRight, bottomRight, bottomLeft bool) int {
	c := 0
	if bottomLeft {
		c |= 1
	}
	if bottomRight {
		c |= 2
	}
	if topRight {
		c |= 4
	}
	if topLeft {
		c |= 8
	}
	return c
}

// Edges returns the edge pairs crossed by the contour for case c. A case
// outside [0, 15] cannot be produced by CaseIndex and panics.
func Edges(c int) []Edge {
	if c < 0 || c >= CaseCount {
		panic(fmt.Sprintf("contour: impossible case index %d", c))
	}
	return caseEdges[c]
}
