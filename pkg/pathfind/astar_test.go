package pathfind

import (
	"testing"

	"antcraft/pkg/tilemap"
)

func TestFindPathStraightLine(t *testing.T) {
	m := tilemap.New(10, 10)
	path := FindPath(m, 1, 1, 1, 5)
	if len(path) != 4 {
		t.Fatalf("expected a 4-step path, got %d: %+v", len(path), path)
	}
	if path[len(path)-1] != (Point{X: 1, Y: 5}) {
		t.Fatalf("path does not end at the goal: %+v", path)
	}
}

func TestFindPathSameTileReturnsNil(t *testing.T) {
	m := tilemap.New(10, 10)
	if path := FindPath(m, 3, 3, 3, 3); path != nil {
		t.Fatalf("expected nil for start==goal, got %+v", path)
	}
}

func TestFindPathNoCornerCutting(t *testing.T) {
	m := tilemap.New(5, 5)
	// Block a diagonal's two flanking cardinal tiles so cutting the
	// corner from (1,1) to (2,2) is illegal.
	setRock(m, 2, 1)
	setRock(m, 1, 2)
	path := FindPath(m, 1, 1, 2, 2)
	prev := Point{X: 1, Y: 1}
	for _, p := range path {
		dx, dy := p.X-prev.X, p.Y-prev.Y
		if dx != 0 && dy != 0 && (!m.IsWalkable(prev.X+dx, prev.Y) || !m.IsWalkable(prev.X, prev.Y+dy)) {
			// A diagonal step with a rock flank cuts the corner.
			t.Fatalf("path cuts a corner from %+v to %+v: %+v", prev, p, path)
		}
		prev = p
	}
	if len(path) < 2 {
		t.Fatalf("expected a path routed around the blocked corner, got %+v", path)
	}
}

func TestFindPathDeterministicTieBreak(t *testing.T) {
	m := tilemap.New(20, 20)
	var first []Point
	for i := 0; i < 5; i++ {
		p := FindPath(m, 0, 0, 10, 0)
		if first == nil {
			first = p
			continue
		}
		if len(p) != len(first) {
			t.Fatalf("path length varied across repeated runs: %d vs %d", len(p), len(first))
		}
		for j := range p {
			if p[j] != first[j] {
				t.Fatalf("path diverged at step %d: %+v vs %+v", j, p[j], first[j])
			}
		}
	}
}

func TestFindPathUnreachable(t *testing.T) {
	m := tilemap.New(5, 5)
	for y := 0; y < 5; y++ {
		setRock(m, 2, y)
	}
	if path := FindPath(m, 0, 0, 4, 4); path != nil {
		t.Fatalf("expected nil path across a solid wall, got %+v", path)
	}
}

func setRock(m *tilemap.TileMap, x, y int) {
	// TileMap has no exported mutator outside Generate; tests build the
	// grid directly via the exported field to set up blocked scenarios.
	m.Tiles[y*m.Width+x] = tilemap.Rock
}
