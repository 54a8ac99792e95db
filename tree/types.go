// Package tree contains the skill tree data model: nodes with their
// attributes and stat modifiers, directed connections with straight or
// arc curves, and the Graph that owns them.
package tree

import "sked/geometry"

// NodeType classifies a node's role in the tree.
type NodeType string

// Node type constants.
const (
	NodeNormal   NodeType = "normal"
	NodeNotable  NodeType = "notable"
	NodeKeystone NodeType = "keystone"
	NodeStart    NodeType = "start"
)

// Valid reports whether t is one of the known node types.
func (t NodeType) Valid() bool {
	switch t {
	case NodeNormal, NodeNotable, NodeKeystone, NodeStart:
		return true
	}
	return false
}

// ModifierType determines how a stat modifier is applied.
type ModifierType string

// Modifier type constants.
const (
	ModFlat       ModifierType = "flat"
	ModPercentage ModifierType = "percentage"
)

// StatModifier is a single stat bonus granted by a node. Order within a
// node is display order only.
type StatModifier struct {
	Stat  string       `json:"stat_name"`
	Value float64      `json:"value"`
	Mod   ModifierType `json:"modifier_type"`
}

// Node represents a positioned, attributed vertex in the tree.
type Node struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ImageName   string         `json:"image_name"`
	Position    geometry.Vec2  `json:"position"`
	Type        NodeType       `json:"node_type"`
	Stats       []StatModifier `json:"stats,omitempty"`
}

// CurveKind names the shape of a connection.
type CurveKind string

// Curve kind constants. The empty kind is straight for backward
// compatibility with files written before curves existed.
const (
	CurveStraight CurveKind = "straight"
	CurveArc      CurveKind = "arc"
)

// CurveType describes how a connection is drawn: straight, or as a
// circular arc with a radius and rotational direction. The zero value is
// straight.
type CurveType struct {
	Kind      CurveKind `json:"kind,omitempty"`
	Radius    float64   `json:"radius,omitempty"`
	Clockwise bool      `json:"clockwise,omitempty"`
}

// Straight returns the straight curve type.
func Straight() CurveType {
	return CurveType{}
}

// Arc returns an arc curve type with the given radius and direction.
func Arc(radius float64, clockwise bool) CurveType {
	return CurveType{Kind: CurveArc, Radius: radius, Clockwise: clockwise}
}

// IsArc reports whether the curve is an arc.
func (c CurveType) IsArc() bool {
	return c.Kind == CurveArc
}

// Connection represents a directed edge between two nodes.
type Connection struct {
	From  int       `json:"from_id"`
	To    int       `json:"to_id"`
	Curve CurveType `json:"curve_type,omitzero"`
}
