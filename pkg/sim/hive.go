package sim

import "antcraft/pkg/entity"

// hivePassiveIncome is tick pipeline step 11: every live hive grants its
// owner a trickle of jelly, distributed with the shared rate-splitting
// rule. Grounded on hive.py's passive income tick.
func (gs *GameState) hivePassiveIncome() {
	for _, e := range gs.Store.All() {
		if e.Kind != entity.Hive || e.HP <= 0 {
			continue
		}
		gs.PlayerJelly[e.Owner] += distributeRate(gs.Cfg.HivePassiveIncome, gs.Cfg.TickRate, gs.Tick)
	}
}

// spawnRing is the eight tiles surrounding a hive, in the fixed
// clockwise-from-north order next_random(8) rotates into.
var spawnRing = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// hiveSpawnCooldowns is tick pipeline step 12: every hive's spawn
// cooldown (set by a SpawnAnt command) counts down, and the ant itself
// materializes the tick the cooldown reaches zero — on the first
// walkable tile of the eight surrounding the hive, scanned starting at
// a rotation drawn from next_random(8). Grounded on
// hive.py's _tick_spawn_cooldowns/_pick_spawn_pos.
func (gs *GameState) hiveSpawnCooldowns() {
	stats := statsTable(gs.Cfg)[entity.Ant]
	for _, e := range gs.Store.All() {
		if e.Kind != entity.Hive || e.Cooldown <= 0 {
			continue
		}
		e.Cooldown--
		if e.Cooldown == 0 {
			gs.spawnAntAroundHive(e, stats)
		}
	}
}

func (gs *GameState) spawnAntAroundHive(hive *entity.Entity, stats kindStats) {
	milli := gs.Cfg.MilliTilesPerTile
	tx, ty := tileOf(gs.Cfg, hive.X, hive.Y)
	start := gs.NextRandom(8)

	for i := 0; i < 8; i++ {
		off := spawnRing[(start+i)%8]
		nx, ny := tx+off[0], ty+off[1]
		if gs.Map.IsWalkable(nx, ny) {
			gs.spawn(entity.Ant, hive.Owner, nx*milli, ny*milli, stats)
			return
		}
	}
	// No walkable tile around the hive — the ant simply doesn't appear
	// this cycle; the cost was already spent when the command was issued.
}
