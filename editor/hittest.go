package editor

import (
	"sked/geometry"
	"sked/tree"
)

// NodeAt returns the first node within HitRadius of p in storage order,
// or -1. Storage is a map, so "first" is deliberately arbitrary: this is
// the cheap test the connect/create flow uses, where any node under the
// pointer will do.
func (e *Editor) NodeAt(p geometry.Vec2) int {
	for id, n := range e.graph.Nodes {
		if n.Position.Distance(p) < HitRadius {
			return id
		}
	}
	return -1
}

// ClosestNodeAt returns the node within HitRadius of p that is nearest to
// it, or -1. Selection uses this so overlapping nodes resolve
// predictably.
func (e *Editor) ClosestNodeAt(p geometry.Vec2) int {
	closest := -1
	closestDist := HitRadius
	for id, n := range e.graph.Nodes {
		if d := n.Position.Distance(p); d < closestDist {
			closestDist = d
			closest = id
		}
	}
	return closest
}

// ConnectionAt returns the index of the first connection in storage order
// within ConnectionHitRadius of p, or -1. Callers that want node priority
// must check for nodes first; SelectAt does.
func (e *Editor) ConnectionAt(p geometry.Vec2) int {
	for i := range e.graph.Connections {
		if e.connectionDistance(e.graph.Connections[i], p) < ConnectionHitRadius {
			return i
		}
	}
	return -1
}

// connectionDistance is the distance from p to the drawn shape of conn.
// Arcs that cannot be constructed, and edges with a missing endpoint,
// are unreachable.
func (e *Editor) connectionDistance(conn tree.Connection, p geometry.Vec2) float64 {
	from := e.graph.Node(conn.From)
	to := e.graph.Node(conn.To)
	if from == nil || to == nil {
		return geometry.MaxDistance
	}

	if conn.Curve.IsArc() {
		return geometry.PointArcDistance(p, from.Position, to.Position,
			conn.Curve.Radius, conn.Curve.Clockwise)
	}
	return geometry.PointSegmentDistance(p, from.Position, to.Position)
}

// SelectAt resolves the topmost element under p and selects it: nodes
// take priority over connections, and empty space clears the selection.
func (e *Editor) SelectAt(p geometry.Vec2) {
	if id := e.ClosestNodeAt(p); id >= 0 {
		e.SelectNode(id)
		return
	}
	if i := e.ConnectionAt(p); i >= 0 {
		e.SelectConnection(i)
		return
	}
	e.ClearSelection()
}

// SelectNode selects a node, clearing any connection selection. Absent
// ids clear the selection instead.
func (e *Editor) SelectNode(id int) {
	if e.graph.Node(id) == nil {
		e.ClearSelection()
		return
	}
	e.selectedNode = id
	e.selectedConn = -1
}

// SelectConnection selects a connection by index, clearing any node
// selection. Out-of-range indices clear the selection instead.
func (e *Editor) SelectConnection(index int) {
	if index < 0 || index >= len(e.graph.Connections) {
		e.ClearSelection()
		return
	}
	e.selectedConn = index
	e.selectedNode = -1
}

// ClearSelection deselects everything.
func (e *Editor) ClearSelection() {
	e.selectedNode = -1
	e.selectedConn = -1
}
