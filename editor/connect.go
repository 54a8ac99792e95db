package editor

import (
	"sked/geometry"
	"sked/tree"
)

// ConnectAt is the connect action (secondary click in the shell). It
// drives a two-click state machine:
//
//	idle, on a node        -> remember it as the connection source
//	idle, on empty space   -> create a node there
//	pending, on the source -> cancel
//	pending, on another    -> create source->target, back to idle
//	pending, empty space   -> cancel without creating anything
func (e *Editor) ConnectAt(p geometry.Vec2) {
	id := e.NodeAt(p)

	if id < 0 {
		if e.connectStart < 0 {
			e.CreateNodeAt(p)
			return
		}
		e.connectStart = -1
		return
	}

	if e.connectStart < 0 {
		e.connectStart = id
		return
	}

	if e.connectStart != id {
		e.CreateConnection(e.connectStart, id, tree.Straight())
	}
	e.connectStart = -1
}

// StartConnectFrom puts connect mode into pending with the given node as
// the source. Absent ids are ignored.
func (e *Editor) StartConnectFrom(id int) {
	if e.graph.Node(id) != nil {
		e.connectStart = id
	}
}

// CancelConnect drops any pending connection source.
func (e *Editor) CancelConnect() {
	e.connectStart = -1
}

// Connecting reports whether a connection source is pending.
func (e *Editor) Connecting() bool {
	return e.connectStart >= 0
}

// ConnectSource returns the pending connection source node, or -1.
func (e *Editor) ConnectSource() int {
	return e.connectStart
}
