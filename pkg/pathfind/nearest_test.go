package pathfind

import (
	"testing"

	"antcraft/pkg/tilemap"
)

func TestNearestWalkableAlreadyWalkable(t *testing.T) {
	m := tilemap.New(10, 10)
	p, ok := NearestWalkable(m, 4, 4, 15)
	if !ok || p != (Point{X: 4, Y: 4}) {
		t.Fatalf("expected (4,4) unchanged, got %+v ok=%v", p, ok)
	}
}

func TestNearestWalkableFindsClosestRing(t *testing.T) {
	m := tilemap.New(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if !(x == 5 && y == 5) {
				m.Tiles[y*m.Width+x] = tilemap.Rock
			}
		}
	}
	p, ok := NearestWalkable(m, 3, 3, 15)
	if !ok || p != (Point{X: 5, Y: 5}) {
		t.Fatalf("expected only walkable tile (5,5), got %+v ok=%v", p, ok)
	}
}

func TestNearestWalkableGivesUpBeyondMaxLayers(t *testing.T) {
	m := tilemap.New(40, 40)
	for i := range m.Tiles {
		m.Tiles[i] = tilemap.Rock
	}
	if _, ok := NearestWalkable(m, 5, 5, 2); ok {
		t.Fatal("expected no walkable tile within 2 layers of an all-rock map")
	}
}
