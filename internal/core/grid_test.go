package core

import "testing"

func TestGridWrapsNegativeAndOverflowingCoordinates(t *testing.T) {
	g := NewGrid(5, 4)
	g.Set(-1, -1, true)
	if !g.Get(3, 4) {
		t.Fatal("Set(-1,-1) should address the bottom-right cell")
	}
	if !g.Get(7, 9) {
		t.Fatal("Get(7,9) should wrap onto (3,4)")
	}
	if !g.Get(-5, -11) {
		t.Fatal("Get(-5,-11) should wrap onto (3,4)")
	}
	if got := g.Population(); got != 1 {
		t.Fatalf("population = %d, want 1", got)
	}
}

func TestGridCopyFromAndEqual(t *testing.T) {
	a := NewGrid(6, 3)
	b := NewGrid(6, 3)
	a.Set(1, 2, true)
	a.Set(2, 5, true)

	if a.Equal(b) {
		t.Fatal("grids with different cells reported equal")
	}
	b.CopyFrom(a)
	if !a.Equal(b) {
		t.Fatal("CopyFrom did not reproduce every cell")
	}

	b.Set(0, 0, true)
	if a.Get(0, 0) {
		t.Fatal("CopyFrom must not alias the source buffer")
	}
}

func TestGridEqualRejectsDifferentSizes(t *testing.T) {
	if NewGrid(3, 3).Equal(NewGrid(3, 4)) {
		t.Fatal("grids of different size reported equal")
	}
}

func TestGridClone(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(2, 2, true)
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone differs from source")
	}
	g.Clear()
	if !c.Get(2, 2) {
		t.Fatal("clearing the source must not affect the clone")
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("size = %dx%d, want 1x1", g.W, g.H)
	}
}
