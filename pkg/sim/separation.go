package sim

import "antcraft/pkg/entity"

// separate is tick pipeline step 6: units that end up overlapping after
// movement push apart. Every entity computes its push vector from a
// snapshot of positions taken before ANY pushes are applied, then all
// pushes apply together — a simultaneous-update rule, not a sequential
// one, so iteration order never affects the result. Grounded on
// combat.py's separation pass (units repel at close range the same way
// SEPARATION_RADIUS/SEPARATION_FORCE describe).
func (gs *GameState) separate() {
	all := gs.Store.All()
	type snap struct{ x, y int }
	before := make([]snap, len(all))
	mobile := make([]bool, len(all))
	for i, e := range all {
		before[i] = snap{e.X, e.Y}
		mobile[i] = e.Kind != entity.Hive && e.Kind != entity.HiveSite && e.Kind != entity.Corpse
	}

	radius := gs.Cfg.SeparationRadius
	radiusSq := radius * radius
	force := gs.Cfg.SeparationForce

	pushX := make([]int, len(all))
	pushY := make([]int, len(all))

	for i := range all {
		if !mobile[i] {
			continue
		}
		for j := range all {
			if i == j || !mobile[j] {
				continue
			}
			dx, dy := before[i].x-before[j].x, before[i].y-before[j].y
			distSq := dx*dx + dy*dy
			if distSq == 0 || distSq >= radiusSq {
				continue
			}
			dist := isqrt(distSq)
			if dist == 0 {
				continue
			}
			pushX[i] += dx * force / dist
			pushY[i] += dy * force / dist
		}
	}

	for i, e := range all {
		if !mobile[i] {
			continue
		}
		e.X += pushX[i]
		e.Y += pushY[i]
		clampToMap(gs, e)
	}
}

func clampToMap(gs *GameState, e *entity.Entity) {
	milli := gs.Cfg.MilliTilesPerTile
	maxX := gs.Map.Width*milli - 1
	maxY := gs.Map.Height*milli - 1
	if e.X < 0 {
		e.X = 0
	}
	if e.X > maxX {
		e.X = maxX
	}
	if e.Y < 0 {
		e.Y = 0
	}
	if e.Y > maxY {
		e.Y = maxY
	}
}
