// Package pathfind implements deterministic A* over a tile grid.
//
// The priority queue is grounded in the teacher's nodeHeap
// (server/main.go's findPath), adapted from container/heap's float fCost
// ordering to the spec's integer (f, y, x) lexicographic tie-break, which
// is what keeps both lockstep peers computing byte-identical paths.
package pathfind

import (
	"container/heap"

	"antcraft/pkg/tilemap"
)

const (
	CardinalCost = 1000
	DiagonalCost = 1414
)

var neighbors = [8][3]int{
	{1, 0, CardinalCost},
	{-1, 0, CardinalCost},
	{0, 1, CardinalCost},
	{0, -1, CardinalCost},
	{1, 1, DiagonalCost},
	{1, -1, DiagonalCost},
	{-1, 1, DiagonalCost},
	{-1, -1, DiagonalCost},
}

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

func heuristic(x, y, gx, gy int) int {
	dx := abs(x - gx)
	dy := abs(y - gy)
	if dx > dy {
		return dy*DiagonalCost + (dx-dy)*CardinalCost
	}
	return dx*DiagonalCost + (dy-dx)*CardinalCost
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// openNode is one entry in the A* open set's priority queue. The queue
// orders by (f, y, x) ascending — MANDATORY per spec.md §4.2, since it is
// the only thing making ties resolve identically on both peers.
type openNode struct {
	f, y, x, g int
}

type openHeap []openNode

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.y != b.y {
		return a.y < b.y
	}
	return a.x < b.x
}
func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x any)   { *h = append(*h, x.(openNode)) }
func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	*h = old[:n-1]
	return node
}

type coord struct{ x, y int }

// FindPath returns the tile-by-tile route from (startX, startY) to
// (goalX, goalY), excluding the start and including the goal. An empty
// slice means "no path" or "already at the goal" — never nil vs. empty
// ambiguity; callers only ever check length.
func FindPath(m *tilemap.TileMap, startX, startY, goalX, goalY int) []Point {
	if startX == goalX && startY == goalY {
		return nil
	}
	if !m.IsWalkable(startX, startY) || !m.IsWalkable(goalX, goalY) {
		return nil
	}

	startH := heuristic(startX, startY, goalX, goalY)
	open := &openHeap{{f: startH, y: startY, x: startX, g: 0}}
	heap.Init(open)

	cameFrom := make(map[coord]coord)
	gCosts := map[coord]int{{startX, startY}: 0}

	for open.Len() > 0 {
		cur := heap.Pop(open).(openNode)

		if cur.x == goalX && cur.y == goalY {
			return reconstruct(cameFrom, coord{startX, startY}, coord{goalX, goalY})
		}

		curCoord := coord{cur.x, cur.y}
		if best, ok := gCosts[curCoord]; ok && cur.g > best {
			continue
		}

		for _, n := range neighbors {
			dx, dy, cost := n[0], n[1], n[2]
			nx, ny := cur.x+dx, cur.y+dy
			if !m.IsWalkable(nx, ny) {
				continue
			}
			// No corner-cutting: a diagonal step requires both cardinal
			// neighbors between start and end of the diagonal to be walkable.
			if dx != 0 && dy != 0 {
				if !m.IsWalkable(cur.x+dx, cur.y) || !m.IsWalkable(cur.x, cur.y+dy) {
					continue
				}
			}

			newG := cur.g + cost
			nc := coord{nx, ny}
			if best, ok := gCosts[nc]; !ok || newG < best {
				gCosts[nc] = newG
				cameFrom[nc] = curCoord
				h := heuristic(nx, ny, goalX, goalY)
				heap.Push(open, openNode{f: newG + h, y: ny, x: nx, g: newG})
			}
		}
	}

	return nil
}

func reconstruct(cameFrom map[coord]coord, start, goal coord) []Point {
	path := []Point{}
	cur := goal
	for cur != start {
		path = append(path, Point{X: cur.x, Y: cur.y})
		cur = cameFrom[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
