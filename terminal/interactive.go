// Package terminal is the interactive shell: it owns the tcell screen,
// translates keys and mouse clicks into editor commands, and draws the
// tree, the status bar, and whatever dialog the editor wants shown.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"sked/editor"
	"sked/geometry"
)

// World units per terminal cell. Rows cover twice the distance of
// columns so circles come out roughly round on a 2:1 cell aspect.
const (
	cellWidth  = 10.0
	cellHeight = 20.0
)

// Shell drives one interactive session over a tcell screen.
type Shell struct {
	screen tcell.Screen
	ed     *editor.Editor

	// Viewport pan in world units; the top-left cell shows this point.
	panX, panY float64

	// Mouse drag state: the node being dragged, -1 when idle.
	dragNode int

	// Last seen mouse position in world coordinates; keyboard node
	// creation targets it.
	mouse     geometry.Vec2
	mouseSeen bool

	// Cursor into the load dialog's file list.
	loadCursor int
}

// Run opens the screen and blocks in the event loop until the user
// quits. The working directory is watched so an open load dialog stays
// current when files appear or disappear underneath it.
func Run(ed *editor.Editor, dir string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	sh := &Shell{screen: screen, ed: ed, dragNode: -1}
	sh.panX, sh.panY = -cellWidth*4, -cellHeight*2

	stop, err := watchDir(screen, dir)
	if err != nil {
		ed.ReportError("Watching %s failed: %v", dir, err)
	} else {
		defer stop()
	}

	sh.draw()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			break
		}
		sh.handle(ev)
		// A Save-As completed this pass may have parked a New, Load, or
		// Quit; it runs now, before the next input.
		ed.EndPass()
		if ed.QuitRequested() {
			break
		}
		sh.clampLoadCursor()
		sh.draw()
	}
	return nil
}

// handle dispatches one event. While a dialog is open it owns the
// keyboard completely; no graph edits can happen underneath it.
func (sh *Shell) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		sh.screen.Sync()
	case *filesChangedEvent:
		sh.ed.RefreshFiles()
	case *tcell.EventKey:
		if sh.ed.Dialog() != editor.DialogNone {
			sh.handleDialogKey(ev)
			return
		}
		sh.handleKey(ev)
	case *tcell.EventMouse:
		if sh.ed.Dialog() != editor.DialogNone {
			return
		}
		sh.handleMouse(ev)
	}
}

func (sh *Shell) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		sh.ed.RequestQuit()
	case tcell.KeyCtrlS:
		sh.ed.RequestSave()
	case tcell.KeyCtrlO:
		sh.loadCursor = 0
		sh.ed.RequestLoad()
	case tcell.KeyCtrlN:
		sh.ed.RequestNew()
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		sh.ed.DeleteSelected()
	case tcell.KeyEscape:
		sh.ed.CancelConnect()
		sh.ed.ClearSelection()
	case tcell.KeyLeft:
		sh.panX -= cellWidth * 4
	case tcell.KeyRight:
		sh.panX += cellWidth * 4
	case tcell.KeyUp:
		sh.panY -= cellHeight * 2
	case tcell.KeyDown:
		sh.panY += cellHeight * 2
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			sh.ed.RequestQuit()
		case 'n':
			sh.ed.CreateNodeAt(sh.cursorWorld())
		case 'd':
			sh.ed.DeleteSelected()
		case 'a':
			sh.ed.RequestSaveAs()
		case 'g':
			sh.ed.SetGridSnap(!sh.ed.GridSnap())
		case 'c':
			if id := sh.ed.SelectedNode(); id >= 0 {
				sh.ed.StartConnectFrom(id)
			}
		}
	}
}

// cursorWorld is where keyboard node creation lands: under the mouse, or
// at the viewport center before the mouse has moved.
func (sh *Shell) cursorWorld() geometry.Vec2 {
	if sh.mouseSeen {
		return sh.mouse
	}
	w, h := sh.screen.Size()
	return sh.cellToWorld(w/2, h/2)
}

func (sh *Shell) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	world := sh.cellToWorld(x, y)
	sh.mouse = world
	sh.mouseSeen = true

	switch {
	case ev.Buttons()&tcell.ButtonPrimary != 0:
		if sh.dragNode >= 0 {
			sh.ed.MoveNode(sh.dragNode, world)
			return
		}
		sh.ed.SelectAt(world)
		sh.dragNode = sh.ed.SelectedNode()
	case ev.Buttons()&tcell.ButtonSecondary != 0:
		sh.ed.ConnectAt(world)
	default:
		sh.dragNode = -1
	}
}

// handleDialogKey routes keys to the open dialog.
func (sh *Shell) handleDialogKey(ev *tcell.EventKey) {
	switch sh.ed.Dialog() {
	case editor.DialogSaveAs:
		sh.handleSaveAsKey(ev)
	case editor.DialogLoad:
		sh.handleLoadKey(ev)
	case editor.DialogUnsavedNew, editor.DialogUnsavedLoad, editor.DialogUnsavedQuit:
		sh.handleUnsavedKey(ev)
	}
}

func (sh *Shell) handleSaveAsKey(ev *tcell.EventKey) {
	if _, prompting := sh.ed.OverwritePrompt(); prompting {
		switch ev.Key() {
		case tcell.KeyEnter:
			sh.ed.ConfirmOverwrite()
		case tcell.KeyEscape:
			// Back to the name field; the conflict clears on edit.
			sh.ed.SetSaveAsName(sh.ed.SaveAsName())
		}
		return
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		sh.ed.ConfirmSaveAs()
	case tcell.KeyEscape:
		sh.ed.CancelSaveAs()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		name := sh.ed.SaveAsName()
		if name != "" {
			sh.ed.SetSaveAsName(name[:len(name)-1])
		}
	case tcell.KeyRune:
		sh.ed.SetSaveAsName(sh.ed.SaveAsName() + string(ev.Rune()))
	}
}

func (sh *Shell) handleLoadKey(ev *tcell.EventKey) {
	files := sh.ed.AvailableFiles()
	switch ev.Key() {
	case tcell.KeyEscape:
		sh.ed.CancelLoad()
	case tcell.KeyUp:
		if sh.loadCursor > 0 {
			sh.loadCursor--
		}
	case tcell.KeyDown:
		if sh.loadCursor < len(files)-1 {
			sh.loadCursor++
		}
	case tcell.KeyEnter:
		if sh.loadCursor < len(files) {
			sh.ed.ChooseLoadFile(files[sh.loadCursor])
		}
	}
}

func (sh *Shell) handleUnsavedKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		sh.ed.ChooseCancel()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 's', 'S':
			sh.ed.ChooseSave()
		case 'd', 'D':
			sh.ed.ChooseDiscard()
		case 'c', 'C':
			sh.ed.ChooseCancel()
		}
	}
}

// clampLoadCursor keeps the cursor valid after the file list changes
// underneath it.
func (sh *Shell) clampLoadCursor() {
	if n := len(sh.ed.AvailableFiles()); sh.loadCursor >= n {
		sh.loadCursor = n - 1
	}
	if sh.loadCursor < 0 {
		sh.loadCursor = 0
	}
}

func (sh *Shell) cellToWorld(x, y int) geometry.Vec2 {
	return geometry.Vec2{
		X: float64(x)*cellWidth + sh.panX,
		Y: float64(y)*cellHeight + sh.panY,
	}
}

func (sh *Shell) worldToCell(p geometry.Vec2) (int, int) {
	return int((p.X - sh.panX) / cellWidth), int((p.Y - sh.panY) / cellHeight)
}
