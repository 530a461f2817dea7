package normalize

import "testing"

func TestParseDate(t *testing.T) {
	valid := []string{
		"2025-03-10",
		"2025-03-10T00:00:00Z",
		"03/10/2025",
		"2025/03/10",
	}
	for _, s := range valid {
		d := ParseDate(s)
		if d == nil {
			t.Errorf("ParseDate(%q) = nil, want a date", s)
			continue
		}
		if d.Year() != 2025 || int(d.Month()) != 3 || d.Day() != 10 {
			t.Errorf("ParseDate(%q) = %v, want 2025-03-10", s, d)
		}
	}

	for _, s := range []string{"", "  ", "March tenth", "2025-13-45"} {
		if d := ParseDate(s); d != nil {
			t.Errorf("ParseDate(%q) = %v, want nil", s, d)
		}
	}
}
