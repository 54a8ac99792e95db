package editor

import (
	"path/filepath"
	"strings"

	"sked/persist"
	"sked/tree"
)

// Dialog identifies which modal dialog, if any, the editor wants shown.
// While a dialog is open the shell routes input to it exclusively.
type Dialog int

// Dialog constants.
const (
	DialogNone        Dialog = iota
	DialogSaveAs             // filename entry, possibly with an overwrite prompt
	DialogLoad               // pick a file from the working directory
	DialogUnsavedNew         // save/discard/cancel before New
	DialogUnsavedLoad        // save/discard/cancel before Load
	DialogUnsavedQuit        // save/discard/cancel before quitting
)

// String returns the dialog name for display.
func (d Dialog) String() string {
	switch d {
	case DialogNone:
		return "none"
	case DialogSaveAs:
		return "save-as"
	case DialogLoad:
		return "load"
	case DialogUnsavedNew:
		return "unsaved-new"
	case DialogUnsavedLoad:
		return "unsaved-load"
	case DialogUnsavedQuit:
		return "unsaved-quit"
	default:
		return "unknown"
	}
}

// PendingAction is the single-slot continuation for a guarded action
// (New or Load) deferred behind a Save-As flow. The slot is drained
// exactly once per processing pass by EndPass.
type PendingAction int

// Pending action constants.
const (
	PendingNone PendingAction = iota
	PendingNew
	PendingShowLoad
	PendingQuit
)

// String returns the pending action name for display.
func (a PendingAction) String() string {
	switch a {
	case PendingNone:
		return "none"
	case PendingNew:
		return "new"
	case PendingShowLoad:
		return "show-load"
	case PendingQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Dialog returns the currently open dialog.
func (e *Editor) Dialog() Dialog {
	return e.dialog
}

// SaveAsName returns the Save-As filename buffer.
func (e *Editor) SaveAsName() string {
	return e.saveAsName
}

// OverwritePrompt reports whether the Save-As dialog is showing the
// overwrite confirmation, and for which path. While it is shown, plain
// Save is disabled.
func (e *Editor) OverwritePrompt() (string, bool) {
	return e.conflictPath, e.overwritePrompt
}

// AvailableFiles returns the load dialog's file list.
func (e *Editor) AvailableFiles() []string {
	return e.files
}

// Pending returns the deferred guarded action, if any.
func (e *Editor) Pending() PendingAction {
	return e.pending
}

// RequestNew starts a new, empty document. While the document is dirty
// the action is gated behind an unsaved-changes decision instead of
// running immediately.
func (e *Editor) RequestNew() {
	e.pending = PendingNone
	if e.dirty {
		e.dialog = DialogUnsavedNew
		return
	}
	e.performNew()
}

// RequestLoad opens the load dialog, gated behind an unsaved-changes
// decision while the document is dirty.
func (e *Editor) RequestLoad() {
	e.pending = PendingNone
	if e.dirty {
		e.dialog = DialogUnsavedLoad
		return
	}
	e.openLoadDialog()
}

// RequestQuit ends the session. Like New and Load, it is gated behind an
// unsaved-changes decision while the document is dirty; only a clean
// document quits immediately.
func (e *Editor) RequestQuit() {
	e.pending = PendingNone
	if e.dirty {
		e.dialog = DialogUnsavedQuit
		return
	}
	e.quitRequested = true
}

// RequestSave saves to the current path, or opens Save-As when the
// document has never been saved.
func (e *Editor) RequestSave() {
	if e.path == "" {
		e.openSaveAs(PendingNone)
		return
	}
	if err := e.saveTo(e.path); err != nil {
		e.setError("Save failed: %v", err)
		return
	}
	e.dirty = false
	e.setStatus("Saved %s", e.path)
}

// RequestSaveAs opens the Save-As dialog.
func (e *Editor) RequestSaveAs() {
	e.openSaveAs(PendingNone)
}

// ChooseSave resolves an unsaved-changes dialog by saving. With a known
// path the save happens synchronously and the guarded action proceeds;
// without one the Save-As flow opens and the guarded action is parked in
// the pending slot until Save-As completes.
func (e *Editor) ChooseSave() {
	action, ok := e.guardedAction()
	if !ok {
		return
	}

	if e.path == "" {
		e.openSaveAs(action)
		return
	}

	if err := e.saveTo(e.path); err != nil {
		// Reported, and the guarded action is abandoned; the document
		// stays dirty so the guard will fire again.
		e.setError("Save failed: %v", err)
		e.dialog = DialogNone
		return
	}
	e.dirty = false
	e.setStatus("Saved %s", e.path)
	e.dialog = DialogNone
	e.proceed(action)
}

// ChooseDiscard resolves an unsaved-changes dialog by dropping the
// unsaved work and proceeding with the guarded action.
func (e *Editor) ChooseDiscard() {
	action, ok := e.guardedAction()
	if !ok {
		return
	}
	e.dialog = DialogNone
	e.dirty = false
	e.proceed(action)
}

// ChooseCancel resolves an unsaved-changes dialog by aborting the
// guarded action entirely.
func (e *Editor) ChooseCancel() {
	if _, ok := e.guardedAction(); !ok {
		return
	}
	e.dialog = DialogNone
	e.pending = PendingNone
}

// guardedAction maps the open unsaved-changes dialog to the action it is
// guarding.
func (e *Editor) guardedAction() (PendingAction, bool) {
	switch e.dialog {
	case DialogUnsavedNew:
		return PendingNew, true
	case DialogUnsavedLoad:
		return PendingShowLoad, true
	case DialogUnsavedQuit:
		return PendingQuit, true
	}
	return PendingNone, false
}

// performNew resets the session to an empty, unsaved document. The id
// counter starts over; removal callbacks fire for every old node.
func (e *Editor) performNew() {
	e.graph.Clear()
	e.nextID = 0
	e.path = ""
	e.dirty = false
	e.ClearSelection()
	e.connectStart = -1
	e.setStatus("New skill tree")
}

// proceed executes a guarded action immediately.
func (e *Editor) proceed(action PendingAction) {
	switch action {
	case PendingNew:
		e.performNew()
	case PendingShowLoad:
		e.openLoadDialog()
	case PendingQuit:
		e.quitRequested = true
	}
}

// SetSaveAsName replaces the Save-As filename buffer. Editing the name
// clears any overwrite conflict, re-enabling plain Save.
func (e *Editor) SetSaveAsName(name string) {
	if e.dialog != DialogSaveAs {
		return
	}
	e.saveAsName = name
	e.overwritePrompt = false
	e.conflictPath = ""
}

// ConfirmSaveAs attempts the save with the current filename buffer. An
// empty name does nothing. If the normalized target already exists the
// overwrite prompt opens instead of writing; Save stays disabled until
// the conflict is resolved.
func (e *Editor) ConfirmSaveAs() {
	if e.dialog != DialogSaveAs || e.overwritePrompt {
		return
	}
	if e.saveAsName == "" {
		return
	}

	target := e.resolvePath(persist.EnsureExtension(e.saveAsName))
	if e.fs.Exists(target) {
		e.conflictPath = target
		e.overwritePrompt = true
		return
	}
	e.completeSaveAs(target)
}

// ConfirmOverwrite writes over the conflicting file.
func (e *Editor) ConfirmOverwrite() {
	if e.dialog != DialogSaveAs || !e.overwritePrompt || e.conflictPath == "" {
		return
	}
	e.completeSaveAs(e.conflictPath)
}

// CancelSaveAs closes the Save-As dialog, dropping its buffers, any
// conflict, and any deferred action waiting on it.
func (e *Editor) CancelSaveAs() {
	if e.dialog != DialogSaveAs {
		return
	}
	e.dialog = DialogNone
	e.saveAsName = ""
	e.conflictPath = ""
	e.overwritePrompt = false
	e.pending = PendingNone
}

// completeSaveAs writes the document to target and, on success, adopts
// it as the current path and schedules the deferred action (if any) for
// the next pass.
func (e *Editor) completeSaveAs(target string) {
	if err := e.saveTo(target); err != nil {
		e.setError("Save failed: %v", err)
		return
	}

	e.path = target
	e.dirty = false
	e.dialog = DialogNone
	e.saveAsName = ""
	e.conflictPath = ""
	e.overwritePrompt = false
	e.setStatus("Saved %s", target)

	e.trigger = e.pending
	e.pending = PendingNone
}

// openSaveAs opens the Save-As dialog with the filename buffer seeded
// from the current path, parking action in the pending slot. A guard
// arriving here while an earlier action is still parked overwrites it.
func (e *Editor) openSaveAs(action PendingAction) {
	e.dialog = DialogSaveAs
	e.overwritePrompt = false
	e.conflictPath = ""
	e.pending = action

	if e.path != "" {
		e.saveAsName = filepath.Base(e.path)
	} else {
		e.saveAsName = "untitled" + persist.Extension
	}
}

// openLoadDialog lists the working directory's tree files and opens the
// load dialog. A listing failure is reported and leaves the dialog
// closed.
func (e *Editor) openLoadDialog() {
	files, err := e.fs.ListTreeFiles(e.dir)
	if err != nil {
		e.setError("Cannot list %s: %v", e.dir, err)
		return
	}
	e.files = files
	e.dialog = DialogLoad
}

// RefreshFiles re-lists the load dialog's files. The shell calls this
// when the working directory changes underneath an open dialog.
func (e *Editor) RefreshFiles() {
	if e.dialog != DialogLoad {
		return
	}
	if files, err := e.fs.ListTreeFiles(e.dir); err == nil {
		e.files = files
	}
}

// ChooseLoadFile loads the named file from the load dialog. The file is
// parsed completely before the live document is touched; a failure is
// reported and leaves the document exactly as it was.
func (e *Editor) ChooseLoadFile(name string) {
	if e.dialog != DialogLoad {
		return
	}
	e.dialog = DialogNone
	e.files = nil

	target := e.resolvePath(name)
	raw, err := e.fs.ReadFile(target)
	if err != nil {
		e.setError("Load failed: %v", err)
		return
	}
	data, err := persist.Unmarshal(raw)
	if err != nil {
		e.setError("Load failed: %v", err)
		return
	}

	e.applyLoaded(data, target)
}

// Open replaces the document with already-parsed save data, adopting
// path as the current file. This is the startup path; interactive loads
// go through the load dialog.
func (e *Editor) Open(data *persist.SaveData, path string) {
	e.applyLoaded(data, path)
}

// CancelLoad closes the load dialog.
func (e *Editor) CancelLoad() {
	if e.dialog != DialogLoad {
		return
	}
	e.dialog = DialogNone
	e.files = nil
}

// applyLoaded replaces the document wholesale with parsed save data:
// clear, bulk insert, and restore the id counter to max(id)+1.
func (e *Editor) applyLoaded(data *persist.SaveData, path string) {
	e.graph.Clear()
	for i := range data.Nodes {
		n := data.Nodes[i]
		e.graph.Insert(&n)
	}
	e.graph.Connections = make([]tree.Connection, len(data.Connections))
	copy(e.graph.Connections, data.Connections)

	e.nextID = e.graph.MaxID() + 1
	e.path = path
	e.dirty = false
	e.ClearSelection()
	e.connectStart = -1
	e.setStatus("Loaded %s", path)
}

// EndPass drains the deferred-action slot. The shell calls this exactly
// once per processing pass, after all dialog interactions for the pass
// have been applied, so a Save-As completed this pass triggers its
// deferred New/Load before the next input is accepted.
func (e *Editor) EndPass() {
	action := e.trigger
	e.trigger = PendingNone
	e.proceed(action)
}

// saveTo snapshots the graph and writes it to path. An empty path is
// rejected before any I/O is attempted.
func (e *Editor) saveTo(path string) error {
	if path == "" {
		return persist.ErrEmptyPath
	}
	data, err := persist.Marshal(persist.Snapshot(e.graph))
	if err != nil {
		return err
	}
	return e.fs.WriteFile(path, data)
}

// resolvePath resolves a bare filename against the working directory;
// anything that already carries a path is used as-is.
func (e *Editor) resolvePath(name string) string {
	if filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	return filepath.Join(e.dir, name)
}
