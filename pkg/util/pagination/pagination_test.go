package pagination

import "testing"

func TestParsePage(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"1", 1},
		{"7", 7},
		{"2.5", 1},
	}
	for _, c := range cases {
		if got := ParsePage(c.raw); got != c.want {
			t.Errorf("ParsePage(%q) = %d, want %d", c.raw, got, c.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 15, 1},
		{1, 15, 1},
		{15, 15, 1},
		{16, 15, 2},
		{45, 15, 3},
		{46, 15, 4},
	}
	for _, c := range cases {
		if got := TotalPages(c.total, c.pageSize); got != c.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", c.total, c.pageSize, got, c.want)
		}
	}
}

func TestOffset(t *testing.T) {
	if got := Offset(1, 15); got != 0 {
		t.Errorf("Offset(1) = %d, want 0", got)
	}
	if got := Offset(3, 15); got != 30 {
		t.Errorf("Offset(3) = %d, want 30", got)
	}
}
