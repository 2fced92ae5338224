package window

import "testing"

func TestPickClient(t *testing.T) {
	clients := []clientInfo{
		{id: 1, pid: 10, title: "Terminal"},
		{id: 2, pid: 42, title: "devtools"},
		{id: 3, pid: 42, title: "Focus Overlay"},
		{id: 4, pid: 99, title: "Focus Overlay"},
	}

	tests := []struct {
		name   string
		title  string
		pid    uint32
		wantID uint32
		wantOK bool
	}{
		{"exact title for own pid", "Focus Overlay", 42, 3, true},
		{"falls back to first own window", "Renamed", 42, 2, true},
		{"ignores other processes", "Focus Overlay", 7, 0, false},
	}

	untitled := []clientInfo{
		{id: 5, pid: 10},
		{id: 6, pid: 42},
	}
	if id, ok := pickClient(untitled, "Focus Overlay", 42); id != 6 || !ok {
		t.Errorf("pickClient without titles = (%d, %t); want (6, true)", id, ok)
	}

	for _, tc := range tests {
		id, ok := pickClient(clients, tc.title, tc.pid)
		if id != tc.wantID || ok != tc.wantOK {
			t.Errorf("%s: pickClient = (%d, %t); want (%d, %t)", tc.name, id, ok, tc.wantID, tc.wantOK)
		}
	}
}
