//go:build !windows && !linux

package window

func resolveNative(title string) (nativeHandle, error) {
	return nil, ErrUnsupported
}
