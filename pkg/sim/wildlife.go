package sim

import (
	"antcraft/pkg/entity"
	"antcraft/pkg/pathfind"
)

// wildlifeAI is tick pipeline step 2: neutral fauna picks a target among
// nearby player units and moves toward it, or wanders if nothing is
// close. Grounded on wildlife.py's update_wildlife.
func (gs *GameState) wildlifeAI() {
	milli := gs.Cfg.MilliTilesPerTile
	all := gs.Store.All()
	for _, e := range all {
		if !isWildlife(e.Kind) {
			continue
		}
		sightSq := (e.Sight * milli) * (e.Sight * milli)
		var nearest *entity.Entity
		best := sightSq + 1
		for _, o := range all {
			if o.Owner != 0 && o.Owner != 1 {
				continue
			}
			dx, dy := o.X-e.X, o.Y-e.Y
			d := dx*dx + dy*dy
			if d <= sightSq && d < best {
				best, nearest = d, o
			}
		}
		if nearest != nil {
			e.TargetEntity = nearest.ID
			sx, sy := tileOf(gs.Cfg, e.X, e.Y)
			gx, gy := tileOf(gs.Cfg, nearest.X, nearest.Y)
			e.Path = convertPath(pathfind.FindPath(gs.Map, sx, sy, gx, gy))
			e.TargetX, e.TargetY = nearest.X, nearest.Y
			e.State = entity.Moving
		} else if e.State == entity.Idle {
			gs.wanderStep(e)
		}
	}
}

// wanderStep picks a small random walkable offset using the shared RNG,
// grounded on wildlife.py's idle-wander behavior.
func (gs *GameState) wanderStep(e *entity.Entity) {
	milli := gs.Cfg.MilliTilesPerTile
	tx, ty := tileOf(gs.Cfg, e.X, e.Y)
	dx := gs.NextRandom(3) - 1
	dy := gs.NextRandom(3) - 1
	nx, ny := tx+dx, ty+dy
	if !gs.Map.IsWalkable(nx, ny) {
		return
	}
	e.TargetX, e.TargetY = nx*milli, ny*milli
	e.Path = nil
	e.State = entity.Moving
}

// aggroRedirectCombat is tick pipeline step 3: attacking combatants whose
// current target is gone or at HP <= 0 reacquire the nearest enemy
// within sight/AggroRedirectDivisor. A target that is alive but out of
// range is kept.
func (gs *GameState) aggroRedirectCombat() {
	gs.aggroRedirect(func(e *entity.Entity) bool {
		return e.State == entity.Attacking
	})
}

// aggroRedirectHarvest is tick pipeline step 4: harvesting ants whose
// target corpse has fully decayed pick the nearest remaining corpse
// within the same reduced radius. An ant still carrying jelly is left
// alone so harvest can deliver its load.
func (gs *GameState) aggroRedirectHarvest() {
	milli := gs.Cfg.MilliTilesPerTile
	for _, e := range gs.Store.All() {
		if e.Kind != entity.Ant || e.State != entity.Harvesting || e.Carrying > 0 {
			continue
		}
		if gs.Store.ByID(e.TargetEntity) != nil {
			continue
		}
		radius := e.Sight * milli / gs.Cfg.AggroRedirectDivisor
		radiusSq := radius * radius
		var nearest *entity.Entity
		best := radiusSq + 1
		for _, o := range gs.Store.All() {
			if o.Kind != entity.Corpse {
				continue
			}
			dx, dy := o.X-e.X, o.Y-e.Y
			d := dx*dx + dy*dy
			if d <= radiusSq && d < best {
				best, nearest = d, o
			}
		}
		if nearest != nil {
			e.TargetEntity = nearest.ID
		} else {
			e.State = entity.Idle
		}
	}
}

func (gs *GameState) aggroRedirect(applies func(*entity.Entity) bool) {
	milli := gs.Cfg.MilliTilesPerTile
	for _, e := range gs.Store.All() {
		if !isCombatant(e.Kind) || !applies(e) {
			continue
		}
		target := gs.Store.ByID(e.TargetEntity)
		if target != nil && target.HP > 0 {
			continue
		}
		radius := e.Sight * milli / gs.Cfg.AggroRedirectDivisor
		radiusSq := radius * radius
		var nearest *entity.Entity
		best := radiusSq + 1
		for _, o := range gs.Store.All() {
			if o.Owner == e.Owner || o.Owner == entity.Neutral && !isWildlife(o.Kind) {
				continue
			}
			if o.HP <= 0 {
				continue
			}
			dx, dy := o.X-e.X, o.Y-e.Y
			d := dx*dx + dy*dy
			if d <= radiusSq && d < best {
				best, nearest = d, o
			}
		}
		if nearest != nil {
			e.TargetEntity = nearest.ID
		} else {
			e.State = entity.Idle
			e.TargetEntity = entity.None
		}
	}
}
