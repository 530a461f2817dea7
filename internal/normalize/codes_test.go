package normalize

import "testing"

func TestCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"D0120", "D0120"},
		{" d0120 ", "D0120"},
		{"~grp~", "~GRP~"},
		{"D 0120", "D0120"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Code(tt.in); got != tt.want {
			t.Errorf("Code(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
