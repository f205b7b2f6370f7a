package sim

import "antcraft/pkg/command"

// Advance runs one full simulation step against cmds, which must already be
// in canonical (player, kind, tick) order for this tick — see
// command.SortCanonical. The step order below is fixed and must never be
// reordered: it is the entire determinism contract between peers.
// Grounded on tick.py's run_tick, with the corpse-decay-after-deaths
// correction documented on processDeathsAndDecay.
func (gs *GameState) Advance(cmds []command.Command) {
	gs.applyCommands(cmds)
	gs.wildlifeAI()
	gs.aggroRedirectCombat()
	gs.aggroRedirectHarvest()
	gs.moveEntities()
	gs.separate()
	gs.harvest()
	gs.combat()
	gs.processDeathsAndDecay()
	gs.hivePassiveIncome()
	gs.hiveSpawnCooldowns()
	gs.founding()
	gs.checkWin()
	gs.updateVisibility()
	gs.Tick++
}
