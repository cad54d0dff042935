package core

// spreadBits interleaves zeros between the low 16 bits of x, using the
// standard bit-spread masks and shift amounts for 32-bit Morton codes.
func spreadBits(x uint32) uint32 {
	x &= 0x0000FFFF
	x = (x | (x << 8)) & 0x00FF00FF
	x = (x | (x << 4)) & 0x0F0F0F0F
	x = (x | (x << 2)) & 0x33333333
	x = (x | (x << 1)) & 0x55555555
	return x
}

// Zscore computes the Morton (Z-order) code for a corner, interleaving the
// 16-bit column and row lanes so that axis-aligned rectangles map to
// contiguous ranges of the total order.
func Zscore(c Corner) uint32 {
	return spreadBits(uint32(c.Col)) | (spreadBits(uint32(c.Row)) << 1)
}

// ZscoreNode is a convenience wrapper for Node coordinates.
func ZscoreNode(n Node) uint32 {
	return Zscore(n.ToCorner())
}

// LessMorton orders two corners by their Morton code, giving the total
// order used for quadtree range contiguity.
func LessMorton(a, b Corner) bool {
	return Zscore(a) < Zscore(b)
}
