// Package sim implements the deterministic tick pipeline: the same
// ordered commands, applied to the same GameState, must produce the
// same state on every peer. Grounded on state.py's GameState and
// tick.py's run_tick, with the tick-ordering correction from spec.md's
// Open Questions (corpse decay runs after death processing, not before).
package sim

import (
	"antcraft/pkg/config"
	"antcraft/pkg/entity"
	"antcraft/pkg/tilemap"
)

// GameState is everything that must be identical on both peers after a
// given tick: the entity set, per-player jelly, the shared PRNG, and the
// visibility grids. The map itself is immutable and kept alongside it.
type GameState struct {
	Cfg *config.Config
	Map *tilemap.TileMap

	Store *entity.Store

	PlayerJelly [2]int

	RNG uint32

	Tick int

	// Visibility[p] is a Width*Height tri-state grid (VisState):
	// UNEXPLORED, FOG, or VISIBLE. VISIBLE tiles downgrade to FOG each
	// tick before owned sight radii light new ones back up — a tile
	// never reverts to UNEXPLORED once seen (§3 invariant 6).
	Visibility [2][]VisState

	GameOver bool
	Winner   int // entity.Neutral (-1) while undecided
}

// New builds the initial state for a match: generates the map from seed,
// places each player's queen and ants plus the two neutral hive sites,
// and seeds
// the RNG with the same value used for generation so both peers agree
// on every random draw from tick 0 onward.
func New(cfg *config.Config, seed uint32) *GameState {
	m := tilemap.Generate(seed, cfg.MapWidthTiles, cfg.MapHeightTiles)
	gs := &GameState{
		Cfg:         cfg,
		Map:         m,
		Store:       entity.NewStore(),
		PlayerJelly: [2]int{cfg.StartingJelly, cfg.StartingJelly},
		RNG:         seed,
		Winner:      entity.Neutral,
	}
	gs.Visibility[0] = make([]VisState, m.Width*m.Height)
	gs.Visibility[1] = make([]VisState, m.Width*m.Height)

	stats := statsTable(cfg)
	milli := cfg.MilliTilesPerTile
	for p := 0; p < 2; p++ {
		start := m.StartPositions[p]
		qx, qy := start.X*milli, start.Y*milli
		gs.spawn(entity.Queen, p, qx, qy, stats[entity.Queen])
		for i := 0; i < cfg.StartingAnts; i++ {
			ax := qx + (i%3-1)*milli
			ay := qy + (i/3-1)*milli
			gs.spawn(entity.Ant, p, ax, ay, stats[entity.Ant])
		}
	}
	for p := 0; p < 2; p++ {
		site := m.HiveSitePositions[p]
		e := entity.Entity{
			Kind: entity.HiveSite, Owner: entity.Neutral,
			X: site.X * milli, Y: site.Y * milli, TargetX: site.X * milli, TargetY: site.Y * milli,
		}
		gs.Store.Append(e)
	}

	gs.recomputeVisibility()
	return gs
}

func (gs *GameState) spawn(k entity.Kind, owner, x, y int, st kindStats) *entity.Entity {
	e := entity.Entity{
		Kind: k, Owner: owner,
		X: x, Y: y, TargetX: x, TargetY: y,
		Speed: st.Speed, HP: st.HP, MaxHP: st.HP,
		Damage: st.Damage, Sight: st.Sight, AttackRange: st.AttackRange,
		State: entity.Idle, TargetEntity: entity.None,
	}
	return gs.Store.Append(e)
}

// NextRandom draws the next value in [0, bound) from the shared LCG,
// advancing gs.RNG as a side effect. This is the ONLY source of
// randomness anywhere in the tick pipeline — grounded on state.py's
// GameState.next_random, using the identical Numerical-Recipes LCG the
// map generator uses.
func (gs *GameState) NextRandom(bound int) int {
	gs.RNG = gs.RNG*1664525 + 1013904223
	if bound <= 0 {
		return 0
	}
	return int(gs.RNG % uint32(bound))
}

func tileOf(cfg *config.Config, milliX, milliY int) (int, int) {
	return milliX / cfg.MilliTilesPerTile, milliY / cfg.MilliTilesPerTile
}
