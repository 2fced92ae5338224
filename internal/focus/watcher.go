package focus

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"focus-overlay/internal/window"
)

// Notices written for every focus change
const (
	NoticeGained = "Window gained focus"
	NoticeLost   = "Window lost focus"
)

// Watcher makes the window click-through while it is unfocused
type Watcher struct {
	win          window.Window
	notices      io.Writer
	log          *logrus.Entry
	clickThrough bool
}

// New creates a watcher for win. Notices go to notices, one line per
// focus event. With clickThrough false only the notices are written.
func New(win window.Window, notices io.Writer, log *logrus.Logger, clickThrough bool) *Watcher {
	return &Watcher{
		win:          win,
		notices:      notices,
		log:          log.WithField("component", "focus"),
		clickThrough: clickThrough,
	}
}

// Install registers the watcher with the window's event stream
func (w *Watcher) Install() {
	w.win.OnWindowEvent(w.Handle)
}

// Handle reacts to a single window event. Only focus changes are acted on.
func (w *Watcher) Handle(ev window.Event) {
	if ev.Kind != window.EventFocusChanged {
		return
	}

	// Best effort: a rejected toggle is logged and the next event tries again.
	if w.clickThrough {
		if err := w.win.SetIgnoreCursorEvents(!ev.Focused); err != nil {
			w.log.WithError(err).Debug("ignore cursor events not applied")
		}
	}

	notice := NoticeLost
	if ev.Focused {
		notice = NoticeGained
	}
	fmt.Fprintln(w.notices, notice)
}
