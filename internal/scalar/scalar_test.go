// SPDX-License-Identifier: Unlicense OR MIT

package scalar

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
		{7, 7, 7, 7},
	}
	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}

	if got := Clamp(uint8(200), 0, 100); got != 100 {
		t.Errorf("Clamp(uint8) = %d, want 100", got)
	}
}
