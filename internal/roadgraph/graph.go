package roadgraph

// Graph is an undirected weighted adjacency structure keyed by node id.
// Vertex and neighbour insertion order is kept so that traversal, and with it
// tie-breaking between equal-length paths, is deterministic.
//
// A Graph is only mutated while it is being built; after that it is read-only
// and safe for concurrent readers.
type Graph struct {
	order     []string
	index     map[string]int
	adj       map[string]map[string]float64
	neighbors map[string][]string
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index:     make(map[string]int),
		adj:       make(map[string]map[string]float64),
		neighbors: make(map[string][]string),
	}
}

// AddVertex adds id with an empty neighbour set. Returns false if the vertex
// already exists.
func (g *Graph) AddVertex(id string) bool {
	if _, ok := g.index[id]; ok {
		return false
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.adj[id] = make(map[string]float64)
	return true
}

// SetEdge stores weight w for from->to and to->from, creating vertices as
// needed. An existing edge between the pair is overwritten (last write wins)
// and replaced is true.
func (g *Graph) SetEdge(from, to string, w float64) (replaced bool) {
	g.AddVertex(from)
	g.AddVertex(to)

	_, replaced = g.adj[from][to]
	g.setArc(from, to, w)
	g.setArc(to, from, w)
	return replaced
}

func (g *Graph) setArc(from, to string, w float64) {
	if _, ok := g.adj[from][to]; !ok {
		g.neighbors[from] = append(g.neighbors[from], to)
	}
	g.adj[from][to] = w
}

// Has reports whether id is a vertex.
func (g *Graph) Has(id string) bool {
	if g == nil {
		return false
	}
	_, ok := g.index[id]
	return ok
}

// Weight returns the weight of the edge between from and to.
func (g *Graph) Weight(from, to string) (float64, bool) {
	if g == nil {
		return 0, false
	}
	w, ok := g.adj[from][to]
	return w, ok
}

// Neighbors returns the neighbours of id in insertion order. The returned
// slice must not be modified.
func (g *Graph) Neighbors(id string) []string {
	if g == nil {
		return nil
	}
	return g.neighbors[id]
}

// Vertices returns a copy of the vertex ids in insertion order.
func (g *Graph) Vertices() []string {
	if g == nil {
		return nil
	}
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.order)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	arcs := 0
	for _, nb := range g.adj {
		arcs += len(nb)
	}
	return arcs / 2
}

// Adjacency returns a copy of the node -> (neighbour -> weight) mapping.
func (g *Graph) Adjacency() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, g.Len())
	if g == nil {
		return out
	}
	for id, nb := range g.adj {
		m := make(map[string]float64, len(nb))
		for k, w := range nb {
			m[k] = w
		}
		out[id] = m
	}
	return out
}

func (g *Graph) position(id string) int {
	return g.index[id]
}
