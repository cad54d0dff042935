package core

// Path is an ordered sequence of nodes from a source to a target, each
// consecutive pair being grid-adjacent under whatever neighbour
// calculator produced it.
type Path struct {
	Nodes []Node
}

// NewPath wraps a node slice as a Path.
func NewPath(nodes []Node) Path {
	return Path{Nodes: nodes}
}

// Source returns the first node of the path.
func (p Path) Source() Node {
	return p.Nodes[0]
}

// Target returns the last node of the path.
func (p Path) Target() Node {
	return p.Nodes[len(p.Nodes)-1]
}

// Length returns the number of nodes in the path.
func (p Path) Length() int {
	return len(p.Nodes)
}

// MiddleNode returns the node at index len/2, used as the separation
// center candidate when splitting a shortest path in two.
func (p Path) MiddleNode() Node {
	return p.Nodes[len(p.Nodes)/2]
}

// PushFront prepends a node to the path.
func (p *Path) PushFront(n Node) {
	p.Nodes = append([]Node{n}, p.Nodes...)
}

// PushBack appends a node to the path.
func (p *Path) PushBack(n Node) {
	p.Nodes = append(p.Nodes, n)
}

// Reverse returns a copy of the path with node order reversed.
func (p Path) Reverse() Path {
	out := make([]Node, len(p.Nodes))
	for i, n := range p.Nodes {
		out[len(out)-1-i] = n
	}
	return Path{Nodes: out}
}
