package sim

import "antcraft/pkg/entity"

// founding is tick pipeline step 13: a queen that entered the Founding
// state (via a FOUND_HIVE command, see commands.go) and is still within
// range of her target hive site converts the site into a new hive,
// consuming the queen. Grounded on hive.py's found_hive resolution.
func (gs *GameState) founding() {
	milli := gs.Cfg.MilliTilesPerTile
	rangeSq := (gs.Cfg.FoundHiveRange * milli) * (gs.Cfg.FoundHiveRange * milli)
	stats := statsTable(gs.Cfg)[entity.Hive]

	var consumed []int
	var newHives []entity.Entity
	for _, e := range gs.Store.All() {
		if e.Kind != entity.Queen || e.State != entity.Founding {
			continue
		}
		site := gs.Store.ByID(e.TargetEntity)
		if site == nil || site.Kind != entity.HiveSite {
			e.State = entity.Idle
			continue
		}
		dx, dy := e.X-site.X, e.Y-site.Y
		if dx*dx+dy*dy > rangeSq {
			continue
		}
		consumed = append(consumed, e.ID, site.ID)
		newHives = append(newHives, entity.Entity{
			Kind: entity.Hive, Owner: e.Owner,
			X: site.X, Y: site.Y, TargetX: site.X, TargetY: site.Y,
			HP: stats.HP, MaxHP: stats.HP, Sight: stats.Sight,
			State: entity.Idle, TargetEntity: entity.None,
		})
	}

	if len(consumed) > 0 {
		gs.Store.RemoveSet(idSet(consumed))
	}
	for _, h := range newHives {
		gs.Store.Append(h)
	}
}
