package pathfind

import "antcraft/pkg/tilemap"

// NearestWalkable does a layer-by-layer BFS outward from (x, y) looking
// for the closest walkable tile, breaking ties by squared Euclidean
// distance from the original point, then lower y, then lower x — per
// spec.md §4.5's MOVE/HARVEST redirect rule. Returns ok=false if nothing
// walkable is found within maxLayers.
func NearestWalkable(m *tilemap.TileMap, x, y, maxLayers int) (Point, bool) {
	if m.IsWalkable(x, y) {
		return Point{X: x, Y: y}, true
	}

	type candidate struct {
		p      Point
		distSq int
	}
	var best *candidate

	consider := func(px, py int) {
		if !m.IsWalkable(px, py) {
			return
		}
		dx, dy := px-x, py-y
		distSq := dx*dx + dy*dy
		if best == nil ||
			distSq < best.distSq ||
			(distSq == best.distSq && py < best.p.Y) ||
			(distSq == best.distSq && py == best.p.Y && px < best.p.X) {
			best = &candidate{p: Point{X: px, Y: py}, distSq: distSq}
		}
	}

	for layer := 1; layer <= maxLayers; layer++ {
		// Walk the square ring of Chebyshev radius `layer` around (x, y).
		for dx := -layer; dx <= layer; dx++ {
			consider(x+dx, y-layer)
			consider(x+dx, y+layer)
		}
		for dy := -layer + 1; dy <= layer-1; dy++ {
			consider(x-layer, y+dy)
			consider(x+layer, y+dy)
		}
		if best != nil {
			return best.p, true
		}
	}

	return Point{}, false
}
