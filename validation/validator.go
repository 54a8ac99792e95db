// Package validation checks skill tree save data for structural problems
// before it is edited or shipped: duplicate ids, dangling connection
// endpoints, self-loops, and arcs whose radius cannot span their chord.
package validation

import (
	"fmt"

	"sked/persist"
	"sked/tree"
)

// Severity classifies an issue. Errors make the file unusable as a skill
// tree; warnings degrade at runtime (an un-renderable arc falls back to a
// straight line) but load fine.
type Severity int

// Severity levels.
const (
	Warning Severity = iota
	Error
)

// String returns the severity label.
func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Issue is a single finding, located by node id or connection index.
type Issue struct {
	Severity Severity
	// Node is the offending node id, or -1 when the issue is about a
	// connection.
	Node int
	// Connection is the offending connection index, or -1 when the issue
	// is about a node.
	Connection int
	Message    string
}

// String formats the issue for display.
func (i Issue) String() string {
	switch {
	case i.Node >= 0:
		return fmt.Sprintf("%s: node %d: %s", i.Severity, i.Node, i.Message)
	case i.Connection >= 0:
		return fmt.Sprintf("%s: connection %d: %s", i.Severity, i.Connection, i.Message)
	default:
		return fmt.Sprintf("%s: %s", i.Severity, i.Message)
	}
}

// Validator validates save data. The zero value is ready to use.
type Validator struct {
	issues []Issue
}

// NewValidator creates a validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the save data and returns every issue found, nodes
// first, then connections in storage order.
func (v *Validator) Validate(data *persist.SaveData) []Issue {
	v.issues = nil

	seen := make(map[int]bool, len(data.Nodes))
	for i := range data.Nodes {
		n := &data.Nodes[i]
		if seen[n.ID] {
			v.nodeIssue(Error, n.ID, "duplicate node id")
		}
		seen[n.ID] = true
		if !n.Type.Valid() {
			v.nodeIssue(Error, n.ID, fmt.Sprintf("unknown node type %q", n.Type))
		}
	}

	if data.StartNodeID != nil && !seen[*data.StartNodeID] {
		v.issues = append(v.issues, Issue{
			Severity:   Error,
			Node:       -1,
			Connection: -1,
			Message:    fmt.Sprintf("start node %d does not exist", *data.StartNodeID),
		})
	}

	pos := make(map[int]tree.Node, len(data.Nodes))
	for _, n := range data.Nodes {
		pos[n.ID] = n
	}

	for i, c := range data.Connections {
		from, fromOK := pos[c.From]
		to, toOK := pos[c.To]
		if !fromOK {
			v.connIssue(Error, i, fmt.Sprintf("references missing node %d", c.From))
		}
		if !toOK {
			v.connIssue(Error, i, fmt.Sprintf("references missing node %d", c.To))
		}
		if c.From == c.To {
			v.connIssue(Error, i, "connects a node to itself")
		}
		if !c.Curve.IsArc() {
			continue
		}
		if c.Curve.Radius <= 0 {
			v.connIssue(Error, i, fmt.Sprintf("arc radius %g is not positive", c.Curve.Radius))
			continue
		}
		if fromOK && toOK {
			half := from.Position.Distance(to.Position) / 2
			if c.Curve.Radius < half {
				v.connIssue(Warning, i, fmt.Sprintf(
					"arc radius %g is smaller than half the chord (%g); drawn as a straight line",
					c.Curve.Radius, half))
			}
		}
	}

	return v.issues
}

func (v *Validator) nodeIssue(sev Severity, id int, msg string) {
	v.issues = append(v.issues, Issue{Severity: sev, Node: id, Connection: -1, Message: msg})
}

func (v *Validator) connIssue(sev Severity, index int, msg string) {
	v.issues = append(v.issues, Issue{Severity: sev, Node: -1, Connection: index, Message: msg})
}

// HasErrors reports whether any issue in the list is an Error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == Error {
			return true
		}
	}
	return false
}
