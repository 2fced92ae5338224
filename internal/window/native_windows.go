//go:build windows

package window

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// Windows constants for extended window styles
const (
	_GWL_EXSTYLE       int32 = -20
	_WS_EX_TRANSPARENT int32 = 0x00000020
	_WS_EX_LAYERED     int32 = 0x00080000
)

var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW    = user32.NewProc("FindWindowW")
	procGetWindowLongW = user32.NewProc("GetWindowLongW")
	procSetWindowLongW = user32.NewProc("SetWindowLongW")
)

type win32Window struct {
	hwnd uintptr
}

// resolveNative finds the top-level window by its title
func resolveNative(title string) (nativeHandle, error) {
	ptr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return nil, errors.Wrap(err, "encode window title")
	}

	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(ptr)))
	if hwnd == 0 {
		return nil, ErrNotFound
	}
	return &win32Window{hwnd: hwnd}, nil
}

// SetClickThrough toggles WS_EX_TRANSPARENT so mouse events pass through the window
func (w *win32Window) SetClickThrough(enable bool) error {
	idx := _GWL_EXSTYLE
	exStyle, _, _ := procGetWindowLongW.Call(w.hwnd, uintptr(idx))

	newStyle := int32(exStyle) | _WS_EX_LAYERED
	if enable {
		newStyle |= _WS_EX_TRANSPARENT
	} else {
		newStyle &^= _WS_EX_TRANSPARENT
	}

	// SetWindowLongW returns the previous value, which may itself be zero
	ret, _, callErr := procSetWindowLongW.Call(w.hwnd, uintptr(idx), uintptr(newStyle))
	if ret == 0 {
		if errno, ok := callErr.(windows.Errno); ok && errno != 0 {
			return errors.Wrap(errno, "SetWindowLongW")
		}
	}
	return nil
}

func (w *win32Window) Close() error {
	return nil
}
