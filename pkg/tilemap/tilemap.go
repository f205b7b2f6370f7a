// Package tilemap implements the tile grid and the procedural map
// generator. Generation is grounded in tilemap.py's cellular-automaton
// algorithm; the passability checks and flat-array layout follow the
// teacher's MapData/isTilePassable shape in server/main.go, adapted from a
// sparse terrain map to the spec's dense DIRT/ROCK grid.
package tilemap

// TileType is one of the two terrain kinds the simulation knows about.
type TileType uint8

const (
	Dirt TileType = iota
	Rock
)

// TileMap is a width*height grid of tiles, stored row-major. It is
// immutable after generation (§3 Invariants).
type TileMap struct {
	Width, Height int
	Tiles         []TileType

	StartPositions    [2]Point
	HiveSitePositions [2]Point
}

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// New allocates an all-DIRT grid of the given size.
func New(width, height int) *TileMap {
	return &TileMap{
		Width:  width,
		Height: height,
		Tiles:  make([]TileType, width*height),
	}
}

// Get returns the tile at (x, y). Out-of-bounds reads return Rock.
func (m *TileMap) Get(x, y int) TileType {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return Rock
	}
	return m.Tiles[y*m.Width+x]
}

func (m *TileMap) set(x, y int, t TileType) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.Tiles[y*m.Width+x] = t
}

// IsWalkable reports whether a tile can be entered by a mobile entity.
func (m *TileMap) IsWalkable(x, y int) bool {
	return m.Get(x, y) == Dirt
}

// lcgNext advances a Numerical-Recipes LCG one step and returns the new
// state; both the map generator and the simulation's GameState.NextRandom
// use these exact constants so that two peers agree not just on the
// simulation's randomness but on generation too.
func lcgNext(state uint32) uint32 {
	return state*1664525 + 1013904223
}

// Generate builds a symmetric terrain grid from a seed: a pure function of
// (seed, width, height), per spec.md §4.1 and tilemap.py's generate_map.
func Generate(seed uint32, width, height int) *TileMap {
	m := New(width, height)
	rng := seed
	halfW := (width + 1) / 2

	// Step 1: random rock scatter on the left half.
	const rockPct = 45
	for y := 0; y < height; y++ {
		for x := 0; x < halfW; x++ {
			rng = lcgNext(rng)
			if rng%100 < rockPct {
				m.set(x, y, Rock)
			}
		}
	}

	// Step 2: four rounds of cellular-automaton smoothing, left half only.
	for round := 0; round < 4; round++ {
		next := make([]TileType, len(m.Tiles))
		copy(next, m.Tiles)
		for y := 0; y < height; y++ {
			for x := 0; x < halfW; x++ {
				rockNeighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx, ny := x+dx, y+dy
						if nx < 0 || nx >= width || ny < 0 || ny >= height {
							rockNeighbors++
						} else if m.Tiles[ny*width+nx] == Rock {
							rockNeighbors++
						}
					}
				}
				if rockNeighbors >= 5 {
					next[y*width+x] = Rock
				} else {
					next[y*width+x] = Dirt
				}
			}
		}
		m.Tiles = next
	}

	// Step 3: mirror left half to right half.
	for y := 0; y < height; y++ {
		for x := 0; x < halfW; x++ {
			m.Tiles[y*width+(width-1-x)] = m.Tiles[y*width+x]
		}
	}

	// Step 4: rock perimeter.
	for x := 0; x < width; x++ {
		m.set(x, 0, Rock)
		m.set(x, height-1, Rock)
	}
	for y := 0; y < height; y++ {
		m.set(0, y, Rock)
		m.set(width-1, y, Rock)
	}

	// Step 5: player start positions, cleared symmetrically.
	m.StartPositions = [2]Point{
		{X: width / 4, Y: height / 2},
		{X: width - 1 - width/4, Y: height / 2},
	}
	clearSymmetric(m, m.StartPositions[0].X, m.StartPositions[0].Y, 6)

	// Step 6: hive-site positions, cleared symmetrically.
	m.HiveSitePositions = [2]Point{
		{X: width / 2, Y: height / 4},
		{X: width / 2, Y: 3 * height / 4},
	}
	for _, site := range m.HiveSitePositions {
		clearSymmetric(m, site.X, site.Y, 3)
	}

	return m
}

func clearSymmetric(m *TileMap, cx, cy, radius int) {
	mirrorCx := m.Width - 1 - cx
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				m.set(cx+dx, cy+dy, Dirt)
				m.set(mirrorCx+dx, cy+dy, Dirt)
			}
		}
	}
}
