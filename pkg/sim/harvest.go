package sim

import (
	"antcraft/pkg/entity"
	"antcraft/pkg/pathfind"
)

// harvest is tick pipeline step 7: a harvesting ant makes the full
// carry-and-deposit round trip — draw jelly from its target corpse into
// Carrying (capped by AntCarryCapacity), walk back to an owned hive once
// full or the corpse runs dry, and credit PlayerJelly only on arrival at
// the hive. Grounded on harvest.py's harvest_tick and its return-to-hive
// follow-up.
func (gs *GameState) harvest() {
	milli := gs.Cfg.MilliTilesPerTile
	harvestRangeSq := (gs.Cfg.HarvestRange * milli) * (gs.Cfg.HarvestRange * milli)

	for _, e := range gs.Store.All() {
		if e.Kind != entity.Ant || e.State != entity.Harvesting {
			continue
		}

		target := gs.Store.ByID(e.TargetEntity)
		hasJelly := target != nil && target.Kind == entity.Corpse && target.JellyValue > 0
		if e.Carrying >= gs.Cfg.AntCarryCapacity || (e.Carrying > 0 && !hasJelly) {
			gs.returnToHive(e)
			continue
		}

		if !hasJelly {
			e.State = entity.Idle
			e.TargetEntity = entity.None
			e.Path = nil
			continue
		}

		dx, dy := target.X-e.X, target.Y-e.Y
		if dx*dx+dy*dy > harvestRangeSq {
			gs.stepToward(e, target.X, target.Y)
			continue
		}

		e.Path = nil
		amount := distributeRate(gs.Cfg.HarvestRate, gs.Cfg.TickRate, gs.Tick)
		if room := gs.Cfg.AntCarryCapacity - e.Carrying; amount > room {
			amount = room
		}
		if amount > target.JellyValue {
			amount = target.JellyValue
		}
		target.JellyValue -= amount
		e.Carrying += amount
	}
}

// returnToHive walks a laden ant toward the nearest owned hive and
// deposits its full load into player_jelly on arrival. An ant that has
// no owned hive left simply holds its cargo.
func (gs *GameState) returnToHive(e *entity.Entity) {
	hive := gs.nearestOwnedHive(e)
	if hive == nil {
		return
	}

	milli := gs.Cfg.MilliTilesPerTile
	rangeSq := (gs.Cfg.HarvestRange * milli) * (gs.Cfg.HarvestRange * milli)
	dx, dy := hive.X-e.X, hive.Y-e.Y
	if dx*dx+dy*dy > rangeSq {
		gs.stepToward(e, hive.X, hive.Y)
		return
	}

	e.Path = nil
	gs.PlayerJelly[e.Owner] += e.Carrying
	e.Carrying = 0
}

func (gs *GameState) nearestOwnedHive(e *entity.Entity) *entity.Entity {
	var best *entity.Entity
	bestDistSq := 0
	for _, o := range gs.Store.All() {
		if o.Kind != entity.Hive || o.Owner != e.Owner || o.HP <= 0 {
			continue
		}
		dx, dy := o.X-e.X, o.Y-e.Y
		distSq := dx*dx + dy*dy
		if best == nil || distSq < bestDistSq {
			best, bestDistSq = o, distSq
		}
	}
	return best
}

// stepToward advances e one movement tick along a path toward the tile
// containing (destX, destY), recomputing the path whenever the current
// one no longer leads there. Harvesting ants bypass the generic Moving
// state machine (movement.go only drives State==Moving) so they resume
// harvesting or depositing the instant they arrive, instead of falling
// through to Idle like a plain move order would.
func (gs *GameState) stepToward(e *entity.Entity, destX, destY int) {
	milli := gs.Cfg.MilliTilesPerTile
	dgx, dgy := destX/milli, destY/milli

	if e.TargetX != dgx*milli || e.TargetY != dgy*milli || len(e.Path) == 0 {
		sx, sy := tileOf(gs.Cfg, e.X, e.Y)
		path := pathfind.FindPath(gs.Map, sx, sy, dgx, dgy)
		e.Path = convertPath(path)
		e.TargetX, e.TargetY = dgx*milli, dgy*milli
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
}
