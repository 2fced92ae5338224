package window

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnsupported is returned when the platform has no click-through implementation
	ErrUnsupported = errors.New("click-through not supported on this platform")

	// ErrNotFound is returned when the native window cannot be located
	ErrNotFound = errors.New("native window not found")
)

// EventKind identifies the kind of a window event
type EventKind int

const (
	EventFocusChanged EventKind = iota
	EventResized
	EventMoved
)

func (k EventKind) String() string {
	switch k {
	case EventFocusChanged:
		return "focus-changed"
	case EventResized:
		return "resized"
	case EventMoved:
		return "moved"
	default:
		return "unknown"
	}
}

// Event is a single window notification. Focused is only meaningful for
// EventFocusChanged.
type Event struct {
	Kind    EventKind
	Focused bool
}

// Window is the part of the main window the application drives
type Window interface {
	// SetIgnoreCursorEvents makes the window pass pointer input through
	// to whatever is behind it when ignore is true.
	SetIgnoreCursorEvents(ignore bool) error

	// OnWindowEvent registers a listener that the host keeps for the
	// lifetime of the window.
	OnWindowEvent(listener func(Event))
}

// nativeHandle is the platform-specific half of the click-through toggle
type nativeHandle interface {
	SetClickThrough(enable bool) error
	Close() error
}
