package window

// clientInfo describes a top-level client window as reported by the
// window manager.
type clientInfo struct {
	id    uint32
	pid   uint32
	title string
}

// pickClient chooses the window owned by pid, preferring an exact title
// match when the process owns several.
func pickClient(clients []clientInfo, title string, pid uint32) (uint32, bool) {
	var fallback uint32
	found := false
	for _, c := range clients {
		if c.pid != pid {
			continue
		}
		if c.title == title {
			return c.id, true
		}
		if !found {
			fallback = c.id
			found = true
		}
	}
	return fallback, found
}
