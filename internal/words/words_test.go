package words

import "testing"

func TestRoundUp(t *testing.T) {
	cases := []struct {
		bytes int
		want  uint32
	}{
		{0, 0},
		{1, 1},
		{4, 1},
		{5, 2},
		{8, 2},
		{9, 3},
	}
	for _, c := range cases {
		if got := RoundUp(c.bytes); got != c.want {
			t.Errorf("RoundUp(%d) = %d, want %d", c.bytes, got, c.want)
		}
	}
}

func TestRoundDown(t *testing.T) {
	cases := []struct {
		bytes int
		want  uint32
	}{
		{0, 0},
		{3, 0},
		{4, 1},
		{7, 1},
		{8, 2},
	}
	for _, c := range cases {
		if got := RoundDown(c.bytes); got != c.want {
			t.Errorf("RoundDown(%d) = %d, want %d", c.bytes, got, c.want)
		}
	}
}

func TestNIL(t *testing.T) {
	if NIL != 0xFFFFFFFF {
		t.Errorf("NIL = %#x, want 0xFFFFFFFF", NIL)
	}
}
