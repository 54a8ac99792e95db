package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"sked/editor"
	"sked/geometry"
	"sked/tree"
)

var (
	styleDefault  = tcell.StyleDefault
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEdge     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleDialog   = tcell.StyleDefault.Reverse(true)
)

// nodeGlyph picks the marker drawn at a node's position.
func nodeGlyph(t tree.NodeType) rune {
	switch t {
	case tree.NodeNotable:
		return '◆'
	case tree.NodeKeystone:
		return '★'
	case tree.NodeStart:
		return '◉'
	default:
		return '●'
	}
}

func (sh *Shell) draw() {
	sh.screen.Clear()

	sh.drawConnections()
	sh.drawNodes()
	sh.drawStatusBar()
	sh.drawDialog()

	sh.screen.Show()
}

func (sh *Shell) drawConnections() {
	g := sh.ed.Graph()
	for i, c := range g.Connections {
		from := g.Node(c.From)
		to := g.Node(c.To)
		if from == nil || to == nil {
			continue
		}

		style := styleEdge
		if i == sh.ed.SelectedConnection() {
			style = styleSelected
		}

		var points []geometry.Vec2
		if c.Curve.IsArc() {
			points = geometry.SampleArc(from.Position, to.Position,
				c.Curve.Radius, c.Curve.Clockwise, 0)
		} else {
			points = []geometry.Vec2{from.Position, to.Position}
		}
		for j := 1; j < len(points); j++ {
			sh.drawSegment(points[j-1], points[j], style)
		}
	}
}

// drawSegment rasterizes one world-space segment into cells.
func (sh *Shell) drawSegment(a, b geometry.Vec2, style tcell.Style) {
	x0, y0 := sh.worldToCell(a)
	x1, y1 := sh.worldToCell(b)

	dx, dy := x1-x0, y1-y0
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		sh.screen.SetContent(x0, y0, '·', nil, style)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		sh.screen.SetContent(x, y, '·', nil, style)
	}
}

func (sh *Shell) drawNodes() {
	g := sh.ed.Graph()
	for _, n := range g.Nodes {
		x, y := sh.worldToCell(n.Position)

		style := styleDefault
		switch {
		case n.ID == sh.ed.SelectedNode():
			style = styleSelected
		case n.ID == sh.ed.ConnectSource():
			style = styleSelected.Underline(true)
		}

		sh.screen.SetContent(x, y, nodeGlyph(n.Type), nil, style)
		sh.drawText(x+2, y, n.Name, style)
	}
}

func (sh *Shell) drawStatusBar() {
	w, h := sh.screen.Size()
	y := h - 1

	name := sh.ed.Path()
	if name == "" {
		name = "[untitled]"
	}
	marker := ""
	if sh.ed.Dirty() {
		marker = " *"
	}
	mode := ""
	if sh.ed.Connecting() {
		mode = "  connecting…"
	}

	left := fmt.Sprintf(" %s%s%s", name, marker, mode)
	msg, isErr := sh.ed.Status()

	for x := 0; x < w; x++ {
		sh.screen.SetContent(x, y, ' ', nil, styleDialog)
	}
	sh.drawText(0, y, left, styleDialog)
	if msg != "" {
		style := styleDialog
		if isErr {
			style = styleError.Reverse(true)
		}
		sh.drawText(w-len([]rune(msg))-1, y, msg, style)
	}
}

func (sh *Shell) drawDialog() {
	switch sh.ed.Dialog() {
	case editor.DialogSaveAs:
		lines := []string{"Save as:", "  " + sh.ed.SaveAsName() + "▏"}
		if path, prompting := sh.ed.OverwritePrompt(); prompting {
			lines = append(lines,
				"",
				fmt.Sprintf("%s already exists.", path),
				"[enter] overwrite   [esc] back")
		} else {
			lines = append(lines, "", "[enter] save   [esc] cancel")
		}
		sh.drawBox(lines)

	case editor.DialogLoad:
		files := sh.ed.AvailableFiles()
		lines := []string{"Open:"}
		if len(files) == 0 {
			lines = append(lines, "  (no tree files found)")
		}
		for i, f := range files {
			cursor := "  "
			if i == sh.loadCursor {
				cursor = "> "
			}
			lines = append(lines, cursor+f)
		}
		lines = append(lines, "", "[enter] open   [esc] cancel")
		sh.drawBox(lines)

	case editor.DialogUnsavedNew, editor.DialogUnsavedLoad, editor.DialogUnsavedQuit:
		sh.drawBox([]string{
			"Unsaved changes.",
			"",
			"[s]ave   [d]iscard   [c]ancel",
		})
	}
}

// drawBox renders lines centered on screen with a one-cell padded frame.
func (sh *Shell) drawBox(lines []string) {
	w, h := sh.screen.Size()

	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	width += 4
	height := len(lines) + 2
	x0 := (w - width) / 2
	y0 := (h - height) / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sh.screen.SetContent(x0+x, y0+y, ' ', nil, styleDialog)
		}
	}
	for i, l := range lines {
		sh.drawText(x0+2, y0+1+i, l, styleDialog)
	}
}

func (sh *Shell) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		sh.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
