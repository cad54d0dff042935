package core

// Node is a coordinate of a walkable grid cell, addressed by row/column.
type Node struct {
	Row int
	Col int
}

// Corner is a coordinate on the grid's corner lattice, used by GridCell
// bounds and by Morton ordering. It shares Node's row/column layout but
// is kept distinct because cell math occasionally walks one step past
// the last walkable row/column.
type Corner struct {
	Row int64
	Col int64
}

// ToCorner widens a Node into a Corner.
func (n Node) ToCorner() Corner {
	return Corner{Row: int64(n.Row), Col: int64(n.Col)}
}

// ToNode narrows a Corner into a Node. Callers must only call this on
// corners known to be valid grid indices.
func (c Corner) ToNode() Node {
	return Node{Row: int(c.Row), Col: int(c.Col)}
}
