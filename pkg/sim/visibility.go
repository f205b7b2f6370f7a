package sim

// VisState is one tile's fog-of-war state for a single player. Grounded
// on spec.md §3's tri-state grid: UNEXPLORED/FOG/VISIBLE, with
// UNEXPLORED reachable only before a tile is ever seen.
type VisState uint8

const (
	Unexplored VisState = iota
	Fog
	Visible
)

// updateVisibility is tick pipeline step 15: every VISIBLE tile
// downgrades to FOG, then every tile within an owned sight-entity's
// radius upgrades to VISIBLE. A tile already FOG or VISIBLE never
// reverts to UNEXPLORED — grounded on visibility.py's
// compute_visibility and spec.md's transition rule.
func (gs *GameState) updateVisibility() {
	gs.recomputeVisibility()
}

func (gs *GameState) recomputeVisibility() {
	w, h := gs.Map.Width, gs.Map.Height
	for p := 0; p < 2; p++ {
		grid := gs.Visibility[p]
		for i, s := range grid {
			if s == Visible {
				grid[i] = Fog
			}
		}
		for _, e := range gs.Store.All() {
			if e.Owner != p || e.Sight <= 0 {
				continue
			}
			tx, ty := tileOf(gs.Cfg, e.X, e.Y)
			sight := e.Sight
			for dy := -sight; dy <= sight; dy++ {
				for dx := -sight; dx <= sight; dx++ {
					if dx*dx+dy*dy > sight*sight {
						continue
					}
					nx, ny := tx+dx, ty+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					grid[ny*w+nx] = Visible
				}
			}
		}
	}
}

// IsVisible reports whether tile (x, y) is currently VISIBLE to player
// p — previously-seen but currently-unlit FOG tiles return false.
func (gs *GameState) IsVisible(p, x, y int) bool {
	if x < 0 || x >= gs.Map.Width || y < 0 || y >= gs.Map.Height {
		return false
	}
	return gs.Visibility[p][y*gs.Map.Width+x] == Visible
}

// VisibilityState returns the full tri-state value of tile (x, y) for
// player p, for callers (the renderer, tests) that need to tell FOG
// apart from UNEXPLORED rather than just "currently visible or not".
func (gs *GameState) VisibilityState(p, x, y int) VisState {
	if x < 0 || x >= gs.Map.Width || y < 0 || y >= gs.Map.Height {
		return Unexplored
	}
	return gs.Visibility[p][y*gs.Map.Width+x]
}
