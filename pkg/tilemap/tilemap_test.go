package tilemap

import "testing"

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(42, 60, 60)
	b := Generate(42, 60, 60)
	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			t.Fatalf("tile %d differs between two generations with the same seed", i)
		}
	}
}

func TestGenerateSymmetric(t *testing.T) {
	m := Generate(7, 60, 40)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			mirror := m.Width - 1 - x
			if m.Get(x, y) != m.Get(mirror, y) {
				t.Fatalf("tile (%d,%d)=%v is not mirrored at (%d,%d)=%v", x, y, m.Get(x, y), mirror, y, m.Get(mirror, y))
			}
		}
	}
}

func TestGeneratePerimeterIsRock(t *testing.T) {
	m := Generate(99, 30, 30)
	for x := 0; x < m.Width; x++ {
		if m.Get(x, 0) != Rock || m.Get(x, m.Height-1) != Rock {
			t.Fatalf("perimeter at x=%d is not rock", x)
		}
	}
	for y := 0; y < m.Height; y++ {
		if m.Get(0, y) != Rock || m.Get(m.Width-1, y) != Rock {
			t.Fatalf("perimeter at y=%d is not rock", y)
		}
	}
}

func TestGenerateStartAndHiveSitesWalkable(t *testing.T) {
	m := Generate(123, 80, 80)
	for _, p := range m.StartPositions {
		if !m.IsWalkable(p.X, p.Y) {
			t.Fatalf("start position %+v is not walkable", p)
		}
	}
	for _, p := range m.HiveSitePositions {
		if !m.IsWalkable(p.X, p.Y) {
			t.Fatalf("hive site %+v is not walkable", p)
		}
	}
}

func TestGetOutOfBoundsIsRock(t *testing.T) {
	m := New(5, 5)
	if m.Get(-1, 0) != Rock || m.Get(5, 0) != Rock || m.Get(0, -1) != Rock || m.Get(0, 5) != Rock {
		t.Fatal("out-of-bounds reads must return Rock")
	}
}
