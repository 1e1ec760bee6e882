package floatutils

import "testing"

func TestClip(t *testing.T) {
	cases := []struct {
		value, min, max, want float64
	}{
		{-1, 0, 10, 0},
		{5, 0, 10, 5},
		{15, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clip(c.value, c.min, c.max); got != c.want {
			t.Errorf("Clip(%v,%v,%v) = %v, want %v", c.value, c.min, c.max, got, c.want)
		}
	}
}
