package editor

import (
	"fmt"

	"sked/geometry"
	"sked/tree"
)

// CreateNodeAt creates a node with default attributes at pos (snapped to
// the grid when snapping is on) and returns its id. Creation never fails.
func (e *Editor) CreateNodeAt(pos geometry.Vec2) int {
	id := e.nextID
	e.nextID++

	e.graph.Insert(&tree.Node{
		ID:          id,
		Name:        fmt.Sprintf("Node %d", id),
		Description: "Node description",
		ImageName:   "default_node.png",
		Position:    e.snapPos(pos),
		Type:        tree.NodeNormal,
	})
	e.markDirty()
	return id
}

// DeleteNode removes a node and, atomically with it, every connection
// touching it. Selection and connect state referring to the node are
// cleared. Deleting an absent id is a no-op.
func (e *Editor) DeleteNode(id int) {
	hadConnections := len(e.graph.Connections)
	if !e.graph.Remove(id) {
		return
	}

	if e.selectedNode == id {
		e.selectedNode = -1
	}
	if e.connectStart == id {
		e.connectStart = -1
	}
	// The cascade may have shifted connection positions under a
	// positional selection.
	if e.selectedConn >= 0 && len(e.graph.Connections) != hadConnections {
		e.selectedConn = -1
	}
	e.markDirty()
}

// DeleteSelected removes whichever of the selected node or selected
// connection is active.
func (e *Editor) DeleteSelected() {
	switch {
	case e.selectedNode >= 0:
		e.DeleteNode(e.selectedNode)
	case e.selectedConn >= 0:
		e.DeleteConnection(e.selectedConn)
	}
}

// MoveNode repositions a node (snapped when snapping is on).
func (e *Editor) MoveNode(id int, pos geometry.Vec2) {
	n := e.graph.Node(id)
	if n == nil {
		return
	}
	pos = e.snapPos(pos)
	if n.Position == pos {
		return
	}
	n.Position = pos
	e.markDirty()
}

// CreateConnection appends an edge between two existing nodes. Self-loops
// and references to absent nodes are rejected as no-ops.
func (e *Editor) CreateConnection(from, to int, curve tree.CurveType) bool {
	if e.graph.Node(from) == nil || e.graph.Node(to) == nil {
		return false
	}
	if !e.graph.Connect(from, to, curve) {
		return false
	}
	e.markDirty()
	return true
}

// DeleteConnection removes the connection at index. A selection pointing
// at the removed connection is cleared; one pointing past it is re-based
// so it keeps naming the same edge.
func (e *Editor) DeleteConnection(index int) bool {
	if !e.graph.RemoveConnection(index) {
		return false
	}
	if e.selectedConn == index {
		e.selectedConn = -1
	} else if e.selectedConn > index {
		e.selectedConn--
	}
	e.markDirty()
	return true
}

// SetConnectionCurve changes the curve of the connection at index.
func (e *Editor) SetConnectionCurve(index int, curve tree.CurveType) bool {
	if index < 0 || index >= len(e.graph.Connections) {
		return false
	}
	if e.graph.Connections[index].Curve == curve {
		return true
	}
	e.graph.Connections[index].Curve = curve
	e.markDirty()
	return true
}

// SetNodeName renames a node.
func (e *Editor) SetNodeName(id int, name string) {
	if n := e.graph.Node(id); n != nil && n.Name != name {
		n.Name = name
		e.markDirty()
	}
}

// SetNodeDescription updates a node's description.
func (e *Editor) SetNodeDescription(id int, desc string) {
	if n := e.graph.Node(id); n != nil && n.Description != desc {
		n.Description = desc
		e.markDirty()
	}
}

// SetNodeImage updates a node's image name.
func (e *Editor) SetNodeImage(id int, image string) {
	if n := e.graph.Node(id); n != nil && n.ImageName != image {
		n.ImageName = image
		e.markDirty()
	}
}

// SetNodeType changes a node's type. Unknown types are ignored.
func (e *Editor) SetNodeType(id int, t tree.NodeType) {
	if !t.Valid() {
		return
	}
	if n := e.graph.Node(id); n != nil && n.Type != t {
		n.Type = t
		e.markDirty()
	}
}

// AddStat appends a default stat modifier to a node and returns its
// index, or -1 if the node does not exist.
func (e *Editor) AddStat(id int) int {
	n := e.graph.Node(id)
	if n == nil {
		return -1
	}
	n.Stats = append(n.Stats, tree.StatModifier{
		Stat: "New Stat",
		Mod:  tree.ModFlat,
	})
	e.markDirty()
	return len(n.Stats) - 1
}

// RemoveStat deletes a node's stat modifier by position.
func (e *Editor) RemoveStat(id, index int) {
	n := e.graph.Node(id)
	if n == nil || index < 0 || index >= len(n.Stats) {
		return
	}
	n.Stats = append(n.Stats[:index], n.Stats[index+1:]...)
	e.markDirty()
}

// UpdateStat replaces a node's stat modifier by position.
func (e *Editor) UpdateStat(id, index int, stat tree.StatModifier) {
	n := e.graph.Node(id)
	if n == nil || index < 0 || index >= len(n.Stats) {
		return
	}
	if n.Stats[index] == stat {
		return
	}
	n.Stats[index] = stat
	e.markDirty()
}
