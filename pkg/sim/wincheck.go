package sim

import "antcraft/pkg/entity"

// checkWin is tick pipeline step 14: a player loses once they have
// neither a queen nor a hive left — no unit left that can ever found or
// rebuild one. Grounded on state.py's check_win_condition.
func (gs *GameState) checkWin() {
	if gs.GameOver {
		return
	}
	var alive [2]bool
	for _, e := range gs.Store.All() {
		if e.Owner != 0 && e.Owner != 1 {
			continue
		}
		if e.Kind == entity.Queen || e.Kind == entity.Hive {
			alive[e.Owner] = true
		}
	}
	switch {
	case !alive[0] && !alive[1]:
		gs.GameOver = true
		gs.Winner = entity.Neutral
	case !alive[0]:
		gs.GameOver = true
		gs.Winner = 1
	case !alive[1]:
		gs.GameOver = true
		gs.Winner = 0
	}
}
