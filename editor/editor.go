// Package editor contains the interactive core of the skill tree editor:
// the document aggregate (graph, file path, dirty flag, id counter),
// selection and hit-testing, the two-click connect mode, and the workflow
// state machine that gates New/Save/Load behind unsaved-changes and
// overwrite decisions.
//
// The package is presentation-free. A shell translates raw input into the
// command methods here and draws whatever the accessors report; every
// state transition can be driven and asserted in tests without a screen.
package editor

import (
	"fmt"

	"sked/geometry"
	"sked/tree"
)

// Hit-testing thresholds in world units. Nodes select like discs;
// connections select like thin lines, so their threshold is tighter.
const (
	HitRadius           = 30.0
	ConnectionHitRadius = 10.0
)

// DefaultGridSize is the snapping grid pitch for a fresh editor.
const DefaultGridSize = 50.0

// Editor is the whole editing session: the live graph plus every piece of
// transient state the workflow needs. All fields are owned here and
// mutated only through methods, synchronously.
type Editor struct {
	graph  *tree.Graph
	path   string // current file path, "" when unsaved
	dirty  bool
	nextID int

	selectedNode int // node ID, -1 when none
	selectedConn int // connection index, -1 when none

	connectStart int // pending connect-mode source node, -1 when idle

	dialog          Dialog
	saveAsName      string
	conflictPath    string
	overwritePrompt bool
	files           []string
	pending         PendingAction
	trigger         PendingAction
	quitRequested   bool

	snapToGrid bool
	gridSize   float64

	dir string // directory used for bare filenames and the load list
	fs  FS

	status    string
	statusErr bool
}

// New creates an editor over the real filesystem, working in dir.
func New(dir string) *Editor {
	return NewWithFS(osFS{}, dir)
}

// NewWithFS creates an editor with an explicit filesystem, which is how
// the workflow tests run without touching disk.
func NewWithFS(fs FS, dir string) *Editor {
	return &Editor{
		graph:        tree.NewGraph(),
		selectedNode: -1,
		selectedConn: -1,
		connectStart: -1,
		snapToGrid:   true,
		gridSize:     DefaultGridSize,
		dir:          dir,
		fs:           fs,
	}
}

// Graph returns the live graph.
func (e *Editor) Graph() *tree.Graph {
	return e.graph
}

// Path returns the current file path, or "" when the document has never
// been saved.
func (e *Editor) Path() string {
	return e.path
}

// Dirty reports whether the document has unsaved mutations.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// NextID returns the id the next created node will receive.
func (e *Editor) NextID() int {
	return e.nextID
}

// SelectedNode returns the selected node's ID, or -1.
func (e *Editor) SelectedNode() int {
	return e.selectedNode
}

// SelectedConnection returns the selected connection's index, or -1.
func (e *Editor) SelectedConnection() int {
	return e.selectedConn
}

// SetGridSnap enables or disables snapping of created and moved nodes.
func (e *Editor) SetGridSnap(on bool) {
	e.snapToGrid = on
}

// GridSnap reports whether grid snapping is enabled.
func (e *Editor) GridSnap() bool {
	return e.snapToGrid
}

// SetGridSize sets the snapping grid pitch. Non-positive values are
// ignored.
func (e *Editor) SetGridSize(size float64) {
	if size > 0 {
		e.gridSize = size
	}
}

// GridSize returns the snapping grid pitch.
func (e *Editor) GridSize() float64 {
	return e.gridSize
}

// Status returns the most recent status message and whether it reports a
// failure.
func (e *Editor) Status() (string, bool) {
	return e.status, e.statusErr
}

// QuitRequested reports whether the session should end. It becomes true
// only through RequestQuit and its unsaved-changes dialog.
func (e *Editor) QuitRequested() bool {
	return e.quitRequested
}

// ReportError publishes a failure to the status line. The shell uses it
// for problems that happen outside editor commands, like a broken
// directory watch.
func (e *Editor) ReportError(format string, args ...interface{}) {
	e.setError(format, args...)
}

func (e *Editor) setStatus(format string, args ...interface{}) {
	e.status = fmt.Sprintf(format, args...)
	e.statusErr = false
}

func (e *Editor) setError(format string, args ...interface{}) {
	e.status = fmt.Sprintf(format, args...)
	e.statusErr = true
}

func (e *Editor) markDirty() {
	e.dirty = true
}

func (e *Editor) snapPos(pos geometry.Vec2) geometry.Vec2 {
	if !e.snapToGrid {
		return pos
	}
	return pos.Snap(e.gridSize)
}
