package sim

import "antcraft/pkg/entity"

// moveEntities is tick pipeline step 5: every Moving entity advances
// along its precomputed Path by its per-tick travel distance (milli-tiles
// per tick, already expressed per-tick by Speed), waypoint by waypoint.
// Grounded on tick.py's movement phase.
func (gs *GameState) moveEntities() {
	milli := gs.Cfg.MilliTilesPerTile
	for _, e := range gs.Store.All() {
		if e.State != entity.Moving || e.Speed == 0 {
			continue
		}
		remaining := e.Speed
		for remaining > 0 {
			var wx, wy int
			if len(e.Path) > 0 {
				wx, wy = e.Path[0].X*milli, e.Path[0].Y*milli
			} else {
				wx, wy = e.TargetX, e.TargetY
			}
			dx, dy := wx-e.X, wy-e.Y
			dist := isqrt(dx*dx + dy*dy)
			if dist == 0 {
				if len(e.Path) > 0 {
					e.Path = e.Path[1:]
					continue
				}
				break
			}
			if dist <= remaining {
				e.X, e.Y = wx, wy
				remaining -= dist
				if len(e.Path) > 0 {
					e.Path = e.Path[1:]
					continue
				}
				break
			}
			e.X += dx * remaining / dist
			e.Y += dy * remaining / dist
			remaining = 0
		}
		if !e.IsMoving() && len(e.Path) == 0 {
			e.State = entity.Idle
		}
	}
}

// isqrt is an integer square root (floor), used for movement distance so
// the tick pipeline never touches floating point.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
