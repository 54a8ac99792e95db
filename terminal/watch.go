package terminal

import (
	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

// filesChangedEvent is posted into the tcell event queue when the
// working directory changes, so the load dialog can re-list without
// polling.
type filesChangedEvent struct {
	tcell.EventTime
}

// watchDir watches dir and posts a filesChangedEvent for every create,
// remove, or rename in it. The returned func stops the watcher.
func watchDir(screen tcell.Screen, dir string) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				e := &filesChangedEvent{}
				e.SetEventNow()
				screen.PostEvent(e)
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
