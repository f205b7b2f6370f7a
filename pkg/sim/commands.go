package sim

import (
	"antcraft/pkg/command"
	"antcraft/pkg/entity"
	"antcraft/pkg/pathfind"
)

// applyCommands is tick pipeline step 1 (spec.md §4.5). Commands arrive
// already in canonical (player, kind, tick) order; each command only
// ever touches entities owned by its issuing player, so there is no
// cross-player interference to order further.
func (gs *GameState) applyCommands(cmds []command.Command) {
	for _, c := range cmds {
		switch c.Kind {
		case command.Move:
			gs.applyMove(c)
		case command.Stop:
			gs.applyStop(c)
		case command.Harvest:
			gs.applyHarvest(c)
		case command.Attack:
			gs.applyAttack(c)
		case command.SpawnAnt:
			gs.applySpawnAnt(c)
		case command.MergeQueen:
			gs.applyMergeQueen(c)
		case command.FoundHive:
			gs.applyFoundHive(c)
		case command.MorphSpitter:
			gs.applyMorphSpitter(c)
		}
	}
}

func (gs *GameState) ownedMobile(c command.Command) []*entity.Entity {
	var out []*entity.Entity
	for _, id := range c.EntityIDs {
		e := gs.Store.ByID(id)
		if e == nil || e.Owner != c.Player {
			continue
		}
		if e.Kind == entity.Hive || e.Kind == entity.HiveSite || e.Kind == entity.Corpse {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (gs *GameState) applyMove(c command.Command) {
	milli := gs.Cfg.MilliTilesPerTile
	gx, gy := c.TargetX/milli, c.TargetY/milli
	if !gs.Map.IsWalkable(gx, gy) {
		if p, ok := pathfind.NearestWalkable(gs.Map, gx, gy, 15); ok {
			gx, gy = p.X, p.Y
		} else {
			return
		}
	}
	for _, e := range gs.ownedMobile(c) {
		sx, sy := tileOf(gs.Cfg, e.X, e.Y)
		path := pathfind.FindPath(gs.Map, sx, sy, gx, gy)
		e.Path = convertPath(path)
		e.TargetX, e.TargetY = gx*milli, gy*milli
		if len(path) == 0 {
			e.TargetX, e.TargetY = e.X, e.Y
		}
		e.State = entity.Moving
		e.TargetEntity = entity.None
	}
}

func convertPath(path []pathfind.Point) []entity.Point {
	if len(path) == 0 {
		return nil
	}
	out := make([]entity.Point, len(path))
	for i, p := range path {
		out[i] = entity.Point{X: p.X, Y: p.Y}
	}
	return out
}

func (gs *GameState) applyStop(c command.Command) {
	for _, e := range gs.ownedMobile(c) {
		e.Path = nil
		e.TargetX, e.TargetY = e.X, e.Y
		e.State = entity.Idle
		e.TargetEntity = entity.None
	}
}

func (gs *GameState) applyHarvest(c command.Command) {
	target := gs.Store.ByID(c.TargetEntity)
	if target == nil || target.Kind != entity.Corpse {
		return
	}
	for _, e := range gs.ownedMobile(c) {
		if e.Kind != entity.Ant {
			continue
		}
		e.TargetEntity = target.ID
		e.State = entity.Harvesting
	}
}

func (gs *GameState) applyAttack(c command.Command) {
	target := gs.Store.ByID(c.TargetEntity)
	if target == nil || target.Owner == c.Player {
		return
	}
	for _, e := range gs.ownedMobile(c) {
		if !isCombatant(e.Kind) {
			continue
		}
		e.TargetEntity = target.ID
		e.State = entity.Attacking
	}
}

// applySpawnAnt only deducts the cost and starts the cooldown — the ant
// itself is spawned later, in hiveSpawnCooldowns (tick pipeline step
// 12), once the cooldown reaches zero. Grounded on
// hive.py's handle_spawn_ant / _tick_spawn_cooldowns split.
func (gs *GameState) applySpawnAnt(c command.Command) {
	hive := gs.Store.ByID(c.TargetEntity)
	if hive == nil || hive.Kind != entity.Hive || hive.Owner != c.Player {
		return
	}
	if hive.Cooldown > 0 {
		return
	}
	if gs.PlayerJelly[c.Player] < gs.Cfg.AntSpawnCost {
		return
	}
	gs.PlayerJelly[c.Player] -= gs.Cfg.AntSpawnCost
	hive.Cooldown = gs.Cfg.AntSpawnCooldown
}

// applyMergeQueen targets a HIVE (c.TargetEntity), not a queen: the
// first QueenMergeCost owned ants (in id order) within merge_range of
// that hive are consumed to create a brand new queen at the hive's
// position. queen_merge_cost is a count of ants, never jelly. Grounded
// on hive.py's handle_merge_queen.
func (gs *GameState) applyMergeQueen(c command.Command) {
	hive := gs.Store.ByID(c.TargetEntity)
	if hive == nil || hive.Kind != entity.Hive || hive.Owner != c.Player {
		return
	}

	milli := gs.Cfg.MilliTilesPerTile
	rangeSq := (gs.Cfg.MergeRange * milli) * (gs.Cfg.MergeRange * milli)

	var nearby []*entity.Entity
	for _, id := range c.EntityIDs {
		e := gs.Store.ByID(id)
		if e == nil || e.Owner != c.Player || e.Kind != entity.Ant {
			continue
		}
		dx, dy := e.X-hive.X, e.Y-hive.Y
		if dx*dx+dy*dy <= rangeSq {
			nearby = append(nearby, e)
		}
	}
	if len(nearby) < gs.Cfg.QueenMergeCost {
		return
	}

	consumed := make(map[int]bool, gs.Cfg.QueenMergeCost)
	for _, a := range nearby[:gs.Cfg.QueenMergeCost] {
		consumed[a.ID] = true
	}
	gs.Store.RemoveSet(consumed)

	st := statsTable(gs.Cfg)[entity.Queen]
	gs.spawn(entity.Queen, c.Player, hive.X, hive.Y, st)
}

func (gs *GameState) applyFoundHive(c command.Command) {
	var queen *entity.Entity
	for _, id := range c.EntityIDs {
		e := gs.Store.ByID(id)
		if e != nil && e.Owner == c.Player && e.Kind == entity.Queen {
			queen = e
			break
		}
	}
	if queen == nil {
		return
	}
	site := gs.Store.ByID(c.TargetEntity)
	if site == nil || site.Kind != entity.HiveSite {
		return
	}
	milli := gs.Cfg.MilliTilesPerTile
	rangeSq := (gs.Cfg.FoundHiveRange * milli) * (gs.Cfg.FoundHiveRange * milli)
	dx, dy := queen.X-site.X, queen.Y-site.Y
	if dx*dx+dy*dy > rangeSq {
		return
	}
	queen.State = entity.Founding
	queen.TargetEntity = site.ID
}

// applyMorphSpitter requires the ant be near an owned hive (c.TargetEntity)
// within merge_range — grounded on hive.py's handle_morph_spitter.
func (gs *GameState) applyMorphSpitter(c command.Command) {
	hive := gs.Store.ByID(c.TargetEntity)
	if hive == nil || hive.Kind != entity.Hive || hive.Owner != c.Player {
		return
	}
	if gs.PlayerJelly[c.Player] < gs.Cfg.SpitterMorphCost {
		return
	}

	milli := gs.Cfg.MilliTilesPerTile
	rangeSq := (gs.Cfg.MergeRange * milli) * (gs.Cfg.MergeRange * milli)

	for _, e := range gs.ownedMobile(c) {
		if e.Kind != entity.Ant {
			continue
		}
		dx, dy := e.X-hive.X, e.Y-hive.Y
		if dx*dx+dy*dy > rangeSq {
			continue
		}
		gs.PlayerJelly[c.Player] -= gs.Cfg.SpitterMorphCost
		st := statsTable(gs.Cfg)[entity.Spitter]
		e.Kind = entity.Spitter
		e.HP = st.HP
		e.MaxHP = st.HP
		e.Damage = st.Damage
		e.Speed = st.Speed
		e.Sight = st.Sight
		e.AttackRange = st.AttackRange
		return
	}
}
