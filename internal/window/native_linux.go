//go:build linux

package window

import (
	"os"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/shape"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"
)

// propertyLength is the number of 32-bit units read per property request
const propertyLength = 1 << 16

type x11Window struct {
	conn *xgb.Conn
	win  xproto.Window
}

// resolveNative locates this process's client window via _NET_CLIENT_LIST.
// Sessions without an X server or the SHAPE extension are unsupported.
func resolveNative(title string) (nativeHandle, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupported, "connect to X server: %v", err)
	}

	if err := shape.Init(conn); err != nil {
		conn.Close()
		return nil, errors.Wrapf(ErrUnsupported, "SHAPE extension: %v", err)
	}

	clients, err := listClients(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	id, ok := pickClient(clients, title, uint32(os.Getpid()))
	if !ok {
		conn.Close()
		return nil, ErrNotFound
	}

	return &x11Window{conn: conn, win: xproto.Window(id)}, nil
}

func listClients(conn *xgb.Conn) ([]clientInfo, error) {
	root := xproto.Setup(conn).DefaultScreen(conn).Root

	clientList, err := internAtom(conn, "_NET_CLIENT_LIST")
	if err != nil {
		return nil, errors.Wrap(ErrUnsupported, err.Error())
	}
	pidAtom, err := internAtom(conn, "_NET_WM_PID")
	if err != nil {
		return nil, errors.Wrap(ErrUnsupported, err.Error())
	}

	// Titles only break ties between windows of this process.
	nameAtom, nameErr := internAtom(conn, "_NET_WM_NAME")
	utf8Atom, utf8Err := internAtom(conn, "UTF8_STRING")
	withTitles := nameErr == nil && utf8Err == nil

	reply, err := xproto.GetProperty(conn, false, root, clientList, xproto.AtomWindow, 0, propertyLength).Reply()
	if err != nil {
		return nil, errors.Wrap(err, "read _NET_CLIENT_LIST")
	}

	var clients []clientInfo
	for i := 0; i+4 <= len(reply.Value); i += 4 {
		win := xproto.Window(xgb.Get32(reply.Value[i:]))
		info := clientInfo{id: uint32(win)}

		if p, err := xproto.GetProperty(conn, false, win, pidAtom, xproto.AtomCardinal, 0, 1).Reply(); err == nil && len(p.Value) >= 4 {
			info.pid = xgb.Get32(p.Value)
		}
		if withTitles {
			if n, err := xproto.GetProperty(conn, false, win, nameAtom, utf8Atom, 0, propertyLength).Reply(); err == nil {
				info.title = string(n.Value)
			}
		}
		clients = append(clients, info)
	}
	return clients, nil
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, true, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, errors.Wrapf(err, "intern atom %s", name)
	}
	if reply.Atom == xproto.AtomNone {
		return 0, errors.Errorf("atom %s not supported by window manager", name)
	}
	return reply.Atom, nil
}

// SetClickThrough sets an empty input shape, or restores the default one
func (w *x11Window) SetClickThrough(enable bool) error {
	if enable {
		err := shape.RectanglesChecked(w.conn, shape.SoSet, shape.SkInput,
			xproto.ClipOrderingUnsorted, w.win, 0, 0, nil).Check()
		return errors.Wrap(err, "clear input shape")
	}

	err := shape.MaskChecked(w.conn, shape.SoSet, shape.SkInput,
		w.win, 0, 0, xproto.PixmapNone).Check()
	return errors.Wrap(err, "reset input shape")
}

func (w *x11Window) Close() error {
	w.conn.Close()
	return nil
}
