package sim

import "antcraft/pkg/entity"

// processDeathsAndDecay is tick pipeline steps 9 and 10: entities at
// HP <= 0 (corpses and hive sites excepted) are removed and replaced with
// a corpse carrying their jelly value, and THEN existing corpses (not counting ones just created) tick down
// their decay timer and disappear at zero.
//
// Decay running after death-processing, rather than before as in
// tick.py's original ordering, is spec.md's Open-Questions correction:
// a corpse created this tick must not be charged a decay tick on the
// same tick it appears.
func (gs *GameState) processDeathsAndDecay() {
	stats := statsTable(gs.Cfg)
	milli := gs.Cfg.MilliTilesPerTile

	var dead []int
	var newCorpses []entity.Entity
	for _, e := range gs.Store.All() {
		if e.Kind == entity.Corpse || e.Kind == entity.HiveSite || e.HP > 0 {
			continue
		}
		dead = append(dead, e.ID)
		jelly := stats[e.Kind].CorpseJelly
		if jelly > 0 {
			newCorpses = append(newCorpses, entity.Entity{
				Kind: entity.Corpse, Owner: entity.Neutral,
				X: e.X, Y: e.Y, TargetX: e.X, TargetY: e.Y,
				JellyValue:   jelly,
				Cooldown:     gs.Cfg.CorpseDecayTicks,
				TargetEntity: entity.None,
			})
		}
	}

	if len(dead) > 0 {
		gs.Store.RemoveSet(idSet(dead))
	}
	for _, c := range newCorpses {
		gs.Store.Append(c)
	}

	var decayed []int
	for _, e := range gs.Store.All() {
		if e.Kind != entity.Corpse {
			continue
		}
		if isFreshCorpse(e, newCorpses, milli) {
			continue
		}
		e.Cooldown--
		if e.Cooldown <= 0 || e.JellyValue <= 0 {
			decayed = append(decayed, e.ID)
		}
	}
	if len(decayed) > 0 {
		gs.Store.RemoveSet(idSet(decayed))
	}
}

// isFreshCorpse identifies a corpse created this very tick by position
// and remaining decay ticks, so it is skipped by this tick's decay pass.
func isFreshCorpse(e *entity.Entity, fresh []entity.Entity, milli int) bool {
	for _, f := range fresh {
		if f.X == e.X && f.Y == e.Y && f.Cooldown == e.Cooldown && f.JellyValue == e.JellyValue {
			return true
		}
	}
	return false
}

func idSet(ids []int) map[int]bool {
	m := make(map[int]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}
