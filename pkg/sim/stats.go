package sim

import (
	"antcraft/pkg/config"
	"antcraft/pkg/entity"
)

// kindStats is the per-kind dispatch table standing in for the class
// hierarchy the prototype used — every peer must derive identical
// behavior from identical data, which rules out virtual methods.
type kindStats struct {
	HP          int
	Damage      int
	Speed       int
	Sight       int
	AttackRange int
	CorpseJelly int
}

// statsTable builds the Kind -> stats lookup from a Config, grounded on
// the per-kind constant groups in config.py (ANT_*, QUEEN_*, ...).
func statsTable(cfg *config.Config) map[entity.Kind]kindStats {
	return map[entity.Kind]kindStats{
		entity.Ant: {
			HP: cfg.AntHP, Damage: cfg.AntDamage, Speed: cfg.AntSpeed,
			Sight: cfg.AntSight, AttackRange: cfg.AttackRange, CorpseJelly: cfg.AntCorpseJelly,
		},
		entity.Queen: {
			HP: cfg.QueenHP, Damage: 0, Speed: cfg.QueenSpeed,
			Sight: cfg.QueenSight, AttackRange: 0, CorpseJelly: 0,
		},
		entity.Hive: {
			HP: cfg.HiveHP, Damage: 0, Speed: 0,
			Sight: cfg.HiveSight, AttackRange: 0, CorpseJelly: 0,
		},
		entity.Aphid: {
			HP: cfg.AphidHP, Damage: cfg.AphidDamage, Speed: 0,
			Sight: 0, AttackRange: 0, CorpseJelly: cfg.AphidJelly,
		},
		entity.Beetle: {
			HP: cfg.BeetleHP, Damage: cfg.BeetleDamage, Speed: cfg.BeetleSpeed,
			Sight: cfg.WildlifeAggroRange, AttackRange: cfg.AttackRange, CorpseJelly: cfg.BeetleJelly,
		},
		entity.Mantis: {
			HP: cfg.MantisHP, Damage: cfg.MantisDamage, Speed: cfg.MantisSpeed,
			Sight: cfg.WildlifeAggroRange, AttackRange: cfg.AttackRange, CorpseJelly: cfg.MantisJelly,
		},
		entity.Spitter: {
			HP: cfg.SpitterHP, Damage: cfg.SpitterDamage, Speed: cfg.SpitterSpeed,
			Sight: cfg.SpitterSight, AttackRange: cfg.SpitterAttackRange, CorpseJelly: cfg.SpitterCorpseJelly,
		},
	}
}

// isWildlife reports whether a kind is neutral fauna that attacks by its
// own AI rather than player command.
func isWildlife(k entity.Kind) bool {
	return k == entity.Aphid || k == entity.Beetle || k == entity.Mantis
}

// isCombatant reports whether a kind participates in the auto-attack step.
func isCombatant(k entity.Kind) bool {
	switch k {
	case entity.Ant, entity.Spitter, entity.Beetle, entity.Mantis, entity.Hive:
		return true
	}
	return false
}
