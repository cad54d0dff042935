package core

import "fmt"

// GridCell is an axis-aligned rectangle of grid coordinates, inclusive on
// both corners. It is a value type: copying a GridCell copies the
// rectangle, never the nodes within it.
type GridCell struct {
	TopLeft     Corner
	BottomRight Corner
}

// NewGridCell builds a cell from its two corners. The caller must ensure
// TopLeft is above and left of BottomRight; callers constructing cells
// from split() or from a graph's bounding box already satisfy this.
func NewGridCell(topLeft, bottomRight Corner) GridCell {
	return GridCell{TopLeft: topLeft, BottomRight: bottomRight}
}

// SingleNodeCell returns the 1x1 cell covering exactly n.
func SingleNodeCell(n Node) GridCell {
	c := n.ToCorner()
	return GridCell{TopLeft: c, BottomRight: c}
}

// Width returns the number of columns spanned by the cell.
func (c GridCell) Width() int64 {
	return c.BottomRight.Col - c.TopLeft.Col + 1
}

// Height returns the number of rows spanned by the cell.
func (c GridCell) Height() int64 {
	return c.BottomRight.Row - c.TopLeft.Row + 1
}

// Size returns the total number of nodes in the cell.
func (c GridCell) Size() int64 {
	return c.Width() * c.Height()
}

// IsAtomic reports whether the cell covers exactly one node.
func (c GridCell) IsAtomic() bool {
	return c.Width() == 1 && c.Height() == 1
}

// IsSplittable reports whether the cell can be divided into four
// roughly equal quadrants: at least one of width/height must exceed 1.
// Quadrants need not come out equal-sized — Split uses floor division,
// so an odd width or height yields two narrower and two wider
// quadrants rather than failing. This is deliberately more permissive
// than a power-of-two quadtree: the WSPD builder recurses over
// whatever rectangle the input grid happens to have, and a cell with
// one dimension of 1 still yields two genuine quadrants plus two
// empty ones, which the builder's walkable-node check prunes.
func (c GridCell) IsSplittable() bool {
	return !c.IsAtomic()
}

// Split divides a cell of size > 1 into its four quadrants in the
// fixed order top-left, top-right, bottom-left, bottom-right. It
// panics on an atomic (single-node) cell; callers must check
// IsSplittable (equivalently, Size() > 1) first.
func (c GridCell) Split() [4]GridCell {
	if c.IsAtomic() {
		panic(fmt.Sprintf("core: cell %v is not splittable", c))
	}

	halfWidth := (c.BottomRight.Col - c.TopLeft.Col) / 2
	halfHeight := (c.BottomRight.Row - c.TopLeft.Row) / 2

	midCol := c.TopLeft.Col + halfWidth
	midRow := c.TopLeft.Row + halfHeight

	topLeft := GridCell{
		TopLeft:     c.TopLeft,
		BottomRight: Corner{Row: midRow, Col: midCol},
	}
	topRight := GridCell{
		TopLeft:     Corner{Row: c.TopLeft.Row, Col: midCol + 1},
		BottomRight: Corner{Row: midRow, Col: c.BottomRight.Col},
	}
	bottomLeft := GridCell{
		TopLeft:     Corner{Row: midRow + 1, Col: c.TopLeft.Col},
		BottomRight: Corner{Row: c.BottomRight.Row, Col: midCol},
	}
	bottomRight := GridCell{
		TopLeft:     Corner{Row: midRow + 1, Col: midCol + 1},
		BottomRight: c.BottomRight,
	}

	return [4]GridCell{topLeft, topRight, bottomLeft, bottomRight}
}

// Merge returns the bounding rectangle of four cells, the inverse of
// Split: used to reassemble a parent cell during recursion proofs and
// tests.
func Merge(cells [4]GridCell) GridCell {
	tl := cells[0].TopLeft
	br := cells[0].BottomRight
	for _, c := range cells[1:] {
		if c.TopLeft.Row < tl.Row {
			tl.Row = c.TopLeft.Row
		}
		if c.TopLeft.Col < tl.Col {
			tl.Col = c.TopLeft.Col
		}
		if c.BottomRight.Row > br.Row {
			br.Row = c.BottomRight.Row
		}
		if c.BottomRight.Col > br.Col {
			br.Col = c.BottomRight.Col
		}
	}
	return GridCell{TopLeft: tl, BottomRight: br}
}

// At returns the i-th node of the cell in row-major order, 0-indexed.
func (c GridCell) At(i int64) Node {
	w := c.Width()
	row := c.TopLeft.Row + i/w
	col := c.TopLeft.Col + i%w
	return Node{Row: int(row), Col: int(col)}
}

// Nodes returns every node in the cell in row-major order. Intended for
// small cells (tests, well-separation checks); large cells should iterate
// via At/Size instead of materializing the slice.
func (c GridCell) Nodes() []Node {
	nodes := make([]Node, 0, c.Size())
	for i := int64(0); i < c.Size(); i++ {
		nodes = append(nodes, c.At(i))
	}
	return nodes
}

// Contains reports whether a node's coordinates fall within the cell.
func (c GridCell) Contains(n Node) bool {
	corner := n.ToCorner()
	return corner.Row >= c.TopLeft.Row && corner.Row <= c.BottomRight.Row &&
		corner.Col >= c.TopLeft.Col && corner.Col <= c.BottomRight.Col
}

// IsSubsetOf reports whether c's rectangle is fully contained in other's.
func (c GridCell) IsSubsetOf(other GridCell) bool {
	return c.TopLeft.Row >= other.TopLeft.Row && c.TopLeft.Col >= other.TopLeft.Col &&
		c.BottomRight.Row <= other.BottomRight.Row && c.BottomRight.Col <= other.BottomRight.Col
}

// IsSupersetOf reports whether c's rectangle fully contains other's.
func (c GridCell) IsSupersetOf(other GridCell) bool {
	return other.IsSubsetOf(c)
}

// String renders the cell as "[(r0,c0)-(r1,c1)]" for logging and test
// failure messages.
func (c GridCell) String() string {
	return fmt.Sprintf("[(%d,%d)-(%d,%d)]", c.TopLeft.Row, c.TopLeft.Col, c.BottomRight.Row, c.BottomRight.Col)
}
