package core

import "testing"

func TestSpeedControl(t *testing.T) {
	s := SpeedControl{Min: 1, Max: 10}
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"clamp low", s.Clamp(-4), 1},
		{"clamp high", s.Clamp(42), 10},
		{"clamp inside", s.Clamp(5), 5},
		{"slower", s.Slower(5), 6},
		{"slower at max", s.Slower(10), 10},
		{"faster", s.Faster(5), 4},
		{"faster at min", s.Faster(1), 1},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}
