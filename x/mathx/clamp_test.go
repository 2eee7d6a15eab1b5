package mathx

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want int
	}{
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{7, 0, 10, 7},
		{7, 10, 0, 7}, // swapped bounds
		{20, 10, 0, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%d,%d,%d)=%d want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestInsideIsExclusive(t *testing.T) {
	if Inside(100, 100, 900) || Inside(900, 100, 900) {
		t.Fatal("bounds must be excluded")
	}
	if !Inside(101, 100, 900) || !Inside(899, 100, 900) {
		t.Fatal("interior values must be included")
	}
}

func TestMin(t *testing.T) {
	if Min[uint16](1023, 1500) != 1023 || Min(3, 9) != 3 {
		t.Fatal("min failed")
	}
}
