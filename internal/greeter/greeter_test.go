package greeter

import "testing"

func TestGreet(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"World", "Hello, World!"},
		{"", "Hello, !"},
		{"  padded  ", "Hello,   padded  !"},
		{"<b>&amp;</b>", "Hello, <b>&amp;</b>!"},
		{"%s %d", "Hello, %s %d!"},
		{"Zoë 世界", "Hello, Zoë 世界!"},
		{"line\nbreak", "Hello, line\nbreak!"},
	}

	for _, tc := range tests {
		got := Greet(tc.input)
		if got != tc.want {
			t.Errorf("Greet(%q) = %q; want %q", tc.input, got, tc.want)
		}
		if got != "Hello, "+tc.input+"!" {
			t.Errorf("Greet(%q) altered its input: %q", tc.input, got)
		}
	}
}
