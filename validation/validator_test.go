package validation

import (
	"strings"
	"testing"

	"sked/geometry"
	"sked/persist"
	"sked/tree"
)

func node(id int, x, y float64) tree.Node {
	return tree.Node{
		ID:       id,
		Name:     "n",
		Position: geometry.Vec2{X: x, Y: y},
		Type:     tree.NodeNormal,
	}
}

func TestValidTreePasses(t *testing.T) {
	data := &persist.SaveData{
		Nodes: []tree.Node{node(0, 0, 0), node(1, 100, 0)},
		Connections: []tree.Connection{
			{From: 0, To: 1, Curve: tree.Arc(80, true)},
		},
	}

	issues := NewValidator().Validate(data)
	if len(issues) != 0 {
		t.Errorf("Expected no issues, got %v", issues)
	}
}

func TestDuplicateNodeID(t *testing.T) {
	data := &persist.SaveData{
		Nodes: []tree.Node{node(3, 0, 0), node(3, 100, 0)},
	}

	issues := NewValidator().Validate(data)
	if len(issues) != 1 || issues[0].Severity != Error || issues[0].Node != 3 {
		t.Fatalf("Expected one duplicate-id error for node 3, got %v", issues)
	}
	if !strings.Contains(issues[0].String(), "duplicate") {
		t.Errorf("Unexpected message: %s", issues[0])
	}
}

func TestDanglingConnection(t *testing.T) {
	data := &persist.SaveData{
		Nodes:       []tree.Node{node(0, 0, 0)},
		Connections: []tree.Connection{{From: 0, To: 9}},
	}

	issues := NewValidator().Validate(data)
	if len(issues) != 1 || issues[0].Connection != 0 {
		t.Fatalf("Expected one dangling-endpoint error, got %v", issues)
	}
	if !HasErrors(issues) {
		t.Error("Expected HasErrors to report true")
	}
}

func TestSelfLoop(t *testing.T) {
	data := &persist.SaveData{
		Nodes:       []tree.Node{node(0, 0, 0)},
		Connections: []tree.Connection{{From: 0, To: 0}},
	}

	issues := NewValidator().Validate(data)
	if len(issues) != 1 || issues[0].Severity != Error {
		t.Fatalf("Expected one self-loop error, got %v", issues)
	}
	if !strings.Contains(issues[0].Message, "itself") {
		t.Errorf("Unexpected message: %s", issues[0])
	}
}

func TestUnknownNodeType(t *testing.T) {
	n := node(0, 0, 0)
	n.Type = "legendary"
	data := &persist.SaveData{Nodes: []tree.Node{n}}

	issues := NewValidator().Validate(data)
	if len(issues) != 1 || issues[0].Node != 0 {
		t.Fatalf("Expected one unknown-type error, got %v", issues)
	}
}

func TestMissingStartNode(t *testing.T) {
	start := 5
	data := &persist.SaveData{
		Nodes:       []tree.Node{node(0, 0, 0)},
		StartNodeID: &start,
	}

	issues := NewValidator().Validate(data)
	if len(issues) != 1 || issues[0].Severity != Error {
		t.Fatalf("Expected one missing-start-node error, got %v", issues)
	}
}

func TestArcRadiusChecks(t *testing.T) {
	data := &persist.SaveData{
		Nodes: []tree.Node{node(0, 0, 0), node(1, 100, 0)},
		Connections: []tree.Connection{
			{From: 0, To: 1, Curve: tree.Arc(0, false)},
			{From: 0, To: 1, Curve: tree.Arc(40, false)},
			{From: 0, To: 1, Curve: tree.Arc(50, false)},
		},
	}

	issues := NewValidator().Validate(data)
	if len(issues) != 2 {
		t.Fatalf("Expected 2 issues, got %v", issues)
	}
	if issues[0].Severity != Error || issues[0].Connection != 0 {
		t.Errorf("Expected a non-positive-radius error first, got %s", issues[0])
	}
	// Radius below half the chord still loads, so it is only a warning.
	if issues[1].Severity != Warning || issues[1].Connection != 1 {
		t.Errorf("Expected a degraded-arc warning, got %s", issues[1])
	}
	if HasErrors(issues[1:]) {
		t.Error("Expected the warning alone to not count as an error")
	}
}
