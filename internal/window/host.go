package window

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Runtime event names emitted by the frontend
const (
	EventNameFocus  = "window:focus"
	EventNameBlur   = "window:blur"
	EventNameResize = "window:resize"
	EventNameMove   = "window:move"
)

var eventNames = []string{EventNameFocus, EventNameBlur, EventNameResize, EventNameMove}

type subscribeFunc func(ctx context.Context, name string, callback func(optionalData ...interface{})) func()

// Host is the main window as exposed by the Wails runtime
type Host struct {
	ctx   context.Context
	title string
	log   *logrus.Entry

	subscribe      subscribeFunc
	resolve        func(title string) (nativeHandle, error)
	show           func(ctx context.Context)
	setSize        func(ctx context.Context, width, height int)
	setAlwaysOnTop func(ctx context.Context, b bool)

	mu         sync.Mutex
	native     nativeHandle
	listeners  []func(Event)
	cancels    []func()
	subscribed bool
}

// NewHost binds to the main window of the runtime behind ctx. The title
// is used to locate the native window for click-through.
func NewHost(ctx context.Context, title string, log *logrus.Logger) (*Host, error) {
	if ctx == nil {
		return nil, errors.New("main window not available: nil runtime context")
	}
	if title == "" {
		return nil, errors.New("main window not available: empty title")
	}

	return &Host{
		ctx:       ctx,
		title:     title,
		log:       log.WithField("window", title),
		subscribe:      runtime.EventsOn,
		resolve:        resolveNative,
		show:           runtime.WindowShow,
		setSize:        runtime.WindowSetSize,
		setAlwaysOnTop: runtime.WindowSetAlwaysOnTop,
	}, nil
}

// OnWindowEvent registers listener. Runtime subscriptions are created on
// the first registration.
func (h *Host) OnWindowEvent(listener func(Event)) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.listeners = append(h.listeners, listener)
	if h.subscribed {
		return
	}
	h.subscribed = true

	for _, name := range eventNames {
		name := name
		cancel := h.subscribe(h.ctx, name, func(data ...interface{}) {
			h.dispatch(name)
		})
		h.cancels = append(h.cancels, cancel)
	}
}

func (h *Host) dispatch(name string) {
	ev, ok := decodeEvent(name)
	if !ok {
		return
	}

	h.mu.Lock()
	listeners := make([]func(Event), len(h.listeners))
	copy(listeners, h.listeners)
	h.mu.Unlock()

	h.log.WithField("event", ev.Kind).Trace("window event")
	for _, l := range listeners {
		l(ev)
	}
}

func decodeEvent(name string) (Event, bool) {
	switch name {
	case EventNameFocus:
		return Event{Kind: EventFocusChanged, Focused: true}, true
	case EventNameBlur:
		return Event{Kind: EventFocusChanged, Focused: false}, true
	case EventNameResize:
		return Event{Kind: EventResized}, true
	case EventNameMove:
		return Event{Kind: EventMoved}, true
	default:
		return Event{}, false
	}
}

// Attach locates the native window now instead of on the first toggle.
// The cause is ErrUnsupported when the platform has no click-through and
// ErrNotFound when the window is missing.
func (h *Host) Attach() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.resolveLocked()
}

func (h *Host) resolveLocked() error {
	if h.native != nil {
		return nil
	}

	native, err := h.resolve(h.title)
	if err != nil {
		return errors.Wrapf(err, "resolve window %q", h.title)
	}
	h.native = native
	return nil
}

// SetIgnoreCursorEvents toggles click-through on the native window,
// locating it on first use.
func (h *Host) SetIgnoreCursorEvents(ignore bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.resolveLocked(); err != nil {
		return err
	}

	if err := h.native.SetClickThrough(ignore); err != nil {
		return errors.Wrapf(err, "set ignore cursor events=%t", ignore)
	}
	return nil
}

// Show makes the window visible
func (h *Host) Show() {
	h.show(h.ctx)
}

// SetSize resizes the window
func (h *Host) SetSize(width, height int) {
	h.setSize(h.ctx, width, height)
}

// SetAlwaysOnTop keeps the window above others when onTop is true
func (h *Host) SetAlwaysOnTop(onTop bool) {
	h.setAlwaysOnTop(h.ctx, onTop)
}

// Close drops runtime subscriptions and releases the native handle
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, cancel := range h.cancels {
		if cancel != nil {
			cancel()
		}
	}
	h.cancels = nil
	h.listeners = nil
	h.subscribed = false

	if h.native == nil {
		return nil
	}
	err := h.native.Close()
	h.native = nil
	return err
}

var _ Window = (*Host)(nil)
