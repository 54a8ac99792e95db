// Package persist reads and writes skill trees as indented JSON files
// with the .sktree extension. Marshal and Unmarshal are pure; the file
// helpers do nothing beyond the single read or write they name.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"sked/tree"
)

// Extension is the file extension of the persisted format.
const Extension = ".sktree"

// ErrEmptyPath is returned when a save or load is attempted with an empty
// path. It is rejected before any I/O happens.
var ErrEmptyPath = errors.New("path is empty")

// SaveData is the flat structure written to disk: the node records, the
// ordered connection list, and a reserved start node field.
type SaveData struct {
	Nodes       []tree.Node       `json:"nodes"`
	Connections []tree.Connection `json:"connections"`

	// StartNodeID is accepted on read for older files but otherwise
	// unused by the editor.
	StartNodeID *int `json:"start_node_id,omitempty"`
}

// Snapshot captures the graph into a SaveData. Nodes are ordered by ID so
// saved files are deterministic and diff cleanly.
func Snapshot(g *tree.Graph) SaveData {
	data := SaveData{
		Nodes:       make([]tree.Node, 0, len(g.Nodes)),
		Connections: make([]tree.Connection, len(g.Connections)),
	}
	for _, n := range g.Nodes {
		data.Nodes = append(data.Nodes, *n)
	}
	sort.Slice(data.Nodes, func(i, j int) bool {
		return data.Nodes[i].ID < data.Nodes[j].ID
	})
	copy(data.Connections, g.Connections)
	return data
}

// Graph rebuilds a live graph from the save data.
func (d SaveData) Graph() *tree.Graph {
	g := tree.NewGraph()
	for i := range d.Nodes {
		n := d.Nodes[i]
		g.Insert(&n)
	}
	g.Connections = make([]tree.Connection, len(d.Connections))
	copy(g.Connections, d.Connections)
	return g
}

// Marshal serializes the save data as indented JSON.
func Marshal(data SaveData) ([]byte, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Unmarshal parses a persisted document. The input is parsed completely
// before anything is returned, so a malformed file never leaves a caller
// holding partial state.
func Unmarshal(data []byte) (*SaveData, error) {
	var save SaveData
	if err := json.Unmarshal(data, &save); err != nil {
		return nil, fmt.Errorf("parse skill tree: %w", err)
	}
	return &save, nil
}

// SaveFile writes the save data to path. An empty path is rejected before
// any I/O is attempted.
func SaveFile(path string, data SaveData) error {
	if path == "" {
		return ErrEmptyPath
	}
	out, err := Marshal(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("save skill tree to %s: %w", path, err)
	}
	return nil
}

// LoadFile reads and parses the save file at path.
func LoadFile(path string) (*SaveData, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load skill tree from %s: %w", path, err)
	}
	return Unmarshal(data)
}

// EnsureExtension normalizes a user-supplied filename to the persisted
// format's extension, replacing any other extension.
func EnsureExtension(path string) string {
	if path == "" {
		return path
	}
	if strings.HasSuffix(path, Extension) {
		return path
	}
	// Replace an existing extension, but a leading dot is a hidden file
	// name, not an extension.
	if i := strings.LastIndexByte(path, '.'); i > strings.LastIndexByte(path, '/')+1 {
		path = path[:i]
	}
	return path + Extension
}

// ListTreeFiles returns the names of the .sktree files directly inside
// dir, sorted by name.
func ListTreeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list skill tree files in %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), Extension) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
