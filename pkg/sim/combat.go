package sim

import "antcraft/pkg/entity"

// combat is tick pipeline step 8. It first runs the auto-attack
// target-acquisition pass (every combatant picks the nearest in-range
// enemy, independent of any command), then deals damage for every
// entity that ends up Attacking. Decide-then-apply: every attack's
// damage is computed against the pre-combat HP snapshot, so two units
// trading blows in the same tick can both land a hit even though one
// would otherwise have already died — grounded on combat.py's
// _auto_attack and the two-phase resolve_combat that follows it.
func (gs *GameState) combat() {
	gs.acquireAttackTargets()

	milli := gs.Cfg.MilliTilesPerTile
	all := gs.Store.All()

	type hit struct {
		target *entity.Entity
		damage int
	}
	var hits []hit

	for _, e := range all {
		if !isCombatant(e.Kind) || e.State != entity.Attacking || e.Damage == 0 {
			continue
		}
		target := gs.Store.ByID(e.TargetEntity)
		if target == nil || target.HP <= 0 {
			continue
		}
		rangeMilli := e.AttackRange * milli
		dx, dy := target.X-e.X, target.Y-e.Y
		if dx*dx+dy*dy > rangeMilli*rangeMilli {
			continue
		}
		dmg := distributeRate(e.Damage, gs.Cfg.TickRate, gs.Tick)
		if dmg <= 0 {
			continue
		}
		hits = append(hits, hit{target: target, damage: dmg})
	}

	for _, h := range hits {
		h.target.HP -= h.damage
	}
}

// acquireAttackTargets is combat.py's _auto_attack: every entity with
// damage > 0 picks the nearest enemy within its attack_range each tick,
// ties broken by the smaller entity id, and switches to Attacking —
// overriding whatever command set its state, since auto-defense runs
// independent of commands. An attacker that finds nothing in range
// reverts Attacking -> Idle, but leaves any other state (Moving,
// Harvesting, Founding) alone.
func (gs *GameState) acquireAttackTargets() {
	milli := gs.Cfg.MilliTilesPerTile
	all := gs.Store.All()

	for _, e := range all {
		if !isCombatant(e.Kind) || e.Damage == 0 || e.HP <= 0 {
			continue
		}
		rangeMilli := e.AttackRange * milli
		rangeSq := rangeMilli * rangeMilli

		var nearest *entity.Entity
		bestDistSq := rangeSq + 1
		for _, o := range all {
			if o.HP <= 0 || o.ID == e.ID || !isEnemyOf(e, o) {
				continue
			}
			dx, dy := o.X-e.X, o.Y-e.Y
			distSq := dx*dx + dy*dy
			if distSq > rangeSq {
				continue
			}
			if distSq < bestDistSq || (distSq == bestDistSq && o.ID < nearest.ID) {
				bestDistSq, nearest = distSq, o
			}
		}

		if nearest != nil {
			e.TargetEntity = nearest.ID
			e.State = entity.Attacking
		} else if e.State == entity.Attacking {
			e.State = entity.Idle
			e.TargetEntity = entity.None
		}
	}
}

// isEnemyOf reports whether o is a valid combat target for e: the other
// player's units, or wildlife versus either player (wildlife never
// fights wildlife).
func isEnemyOf(e, o *entity.Entity) bool {
	eIsWildlife := isWildlife(e.Kind)
	oIsWildlife := isWildlife(o.Kind)
	if eIsWildlife && oIsWildlife {
		return false
	}
	if eIsWildlife {
		return o.Owner == 0 || o.Owner == 1
	}
	if oIsWildlife {
		return true
	}
	return o.Owner != e.Owner && (o.Owner == 0 || o.Owner == 1)
}
