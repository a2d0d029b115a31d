package sim

import "testing"

func TestDirectionVectors(t *testing.T) {
	// Y grows downward, matching screen rows.
	cases := []struct {
		d    Direction
		want Cell
	}{
		{DirRight, Cell{X: 1, Y: 0}},
		{DirLeft, Cell{X: -1, Y: 0}},
		{DirUp, Cell{X: 0, Y: -1}},
		{DirDown, Cell{X: 0, Y: 1}},
	}
	for _, tc := range cases {
		dx, dy := tc.d.Vector()
		if dx != tc.want.X || dy != tc.want.Y {
			t.Errorf("%v vector = (%d,%d), want (%d,%d)", tc.d, dx, dy, tc.want.X, tc.want.Y)
		}
		if got := (Cell{X: 10, Y: 10}).Shift(tc.d); got != (Cell{X: 10 + tc.want.X, Y: 10 + tc.want.Y}) {
			t.Errorf("shift %v = %v", tc.d, got)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirRight: DirLeft,
		DirLeft:  DirRight,
		DirUp:    DirDown,
		DirDown:  DirUp,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v opposite = %v, want %v", d, got, want)
		}
	}
}

func TestCellDist(t *testing.T) {
	a := Cell{X: 0, Y: 0}
	b := Cell{X: 3, Y: 4}
	if got := a.Dist(b); got != 5 {
		t.Errorf("dist = %v, want 5", got)
	}
	if got := a.Dist2(b); got != 25 {
		t.Errorf("dist2 = %v, want 25", got)
	}
}
