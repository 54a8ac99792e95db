package tree

// Graph owns the live skill tree. Nodes are keyed by ID in an unordered
// map; connections are an ordered sequence addressed by position.
//
// Invariant: every connection's From and To identify a node present in
// Nodes. Removing a node removes its incident connections in the same
// operation, so a dangling edge is never observable.
type Graph struct {
	Nodes       map[int]*Node
	Connections []Connection

	// OnNodeRemoved, when set, is called once for each node removed from
	// the graph, after the node and its connections are gone. The shell
	// uses it to tear down the node's visual.
	OnNodeRemoved func(id int)
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{Nodes: make(map[int]*Node)}
}

// Node returns the node with the given ID, or nil.
func (g *Graph) Node(id int) *Node {
	return g.Nodes[id]
}

// Insert adds a node to the graph, replacing any node with the same ID.
func (g *Graph) Insert(n *Node) {
	g.Nodes[n.ID] = n
}

// Remove deletes the node with the given ID along with every connection
// referencing it. It reports whether the node existed; removing an absent
// ID is a no-op.
func (g *Graph) Remove(id int) bool {
	if _, ok := g.Nodes[id]; !ok {
		return false
	}

	kept := g.Connections[:0]
	for _, conn := range g.Connections {
		if conn.From != id && conn.To != id {
			kept = append(kept, conn)
		}
	}
	g.Connections = kept
	delete(g.Nodes, id)

	if g.OnNodeRemoved != nil {
		g.OnNodeRemoved(id)
	}
	return true
}

// Connect appends a connection from one node to another. Self-loops are
// rejected as a silent no-op. Duplicate edges are permitted.
func (g *Graph) Connect(from, to int, curve CurveType) bool {
	if from == to {
		return false
	}
	g.Connections = append(g.Connections, Connection{From: from, To: to, Curve: curve})
	return true
}

// RemoveConnection deletes the connection at the given position. It
// reports whether the index was in range.
func (g *Graph) RemoveConnection(index int) bool {
	if index < 0 || index >= len(g.Connections) {
		return false
	}
	g.Connections = append(g.Connections[:index], g.Connections[index+1:]...)
	return true
}

// Clear removes every node and connection, firing OnNodeRemoved for each
// node.
func (g *Graph) Clear() {
	g.Connections = nil
	for id := range g.Nodes {
		delete(g.Nodes, id)
		if g.OnNodeRemoved != nil {
			g.OnNodeRemoved(id)
		}
	}
}

// MaxID returns the largest node ID present, or -1 for an empty graph.
func (g *Graph) MaxID() int {
	max := -1
	for id := range g.Nodes {
		if id > max {
			max = id
		}
	}
	return max
}

// Clone creates a deep copy of the graph. The removal callback is not
// carried over.
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}

	clone := NewGraph()
	for id, n := range g.Nodes {
		copied := *n
		if n.Stats != nil {
			copied.Stats = make([]StatModifier, len(n.Stats))
			copy(copied.Stats, n.Stats)
		}
		clone.Nodes[id] = &copied
	}
	if g.Connections != nil {
		clone.Connections = make([]Connection, len(g.Connections))
		copy(clone.Connections, g.Connections)
	}
	return clone
}
