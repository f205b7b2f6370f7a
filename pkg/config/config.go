// Package config holds the game's tunable balance constants.
//
// Values mirror config.py from the prototype: everything the simulation
// needs to run lives in one place, with compiled-in defaults that a TOML
// file can override. The simulation packages take a *Config explicitly —
// there is no package-level global, matching the "no global state" design
// note: the only place these numbers live is inside the GameState a peer
// owns.
package config

import (
	"fmt"

	"github.com/pelletier/go-toml"
)

// Config is the full set of balance constants for one match. All units
// are integers: milli-tiles, ticks, or plain counts. Never float64.
type Config struct {
	TickRate int `toml:"tick_rate"`

	MilliTilesPerTile int `toml:"milli_tiles_per_tile"`

	MapWidthTiles  int `toml:"map_width_tiles"`
	MapHeightTiles int `toml:"map_height_tiles"`

	AntHP            int `toml:"ant_hp"`
	AntDamage        int `toml:"ant_damage"`
	AntSpeed         int `toml:"ant_speed"`
	AntSpawnCost     int `toml:"ant_spawn_cost"`
	AntSpawnCooldown int `toml:"ant_spawn_cooldown"`
	AntCorpseJelly   int `toml:"ant_corpse_jelly"`
	AntSight         int `toml:"ant_sight"`
	AntCarryCapacity int `toml:"ant_carry_capacity"`

	QueenHP        int `toml:"queen_hp"`
	QueenSpeed     int `toml:"queen_speed"`
	QueenMergeCost int `toml:"queen_merge_cost"`
	QueenSight     int `toml:"queen_sight"`

	HiveHP            int `toml:"hive_hp"`
	HivePassiveIncome int `toml:"hive_passive_income"`
	HiveSight         int `toml:"hive_sight"`
	MergeRange        int `toml:"merge_range"`
	FoundHiveRange    int `toml:"found_hive_range"`

	AphidHP     int `toml:"aphid_hp"`
	AphidDamage int `toml:"aphid_damage"`
	AphidJelly  int `toml:"aphid_jelly"`

	BeetleHP     int `toml:"beetle_hp"`
	BeetleDamage int `toml:"beetle_damage"`
	BeetleJelly  int `toml:"beetle_jelly"`
	BeetleSpeed  int `toml:"beetle_speed"`

	MantisHP     int `toml:"mantis_hp"`
	MantisDamage int `toml:"mantis_damage"`
	MantisJelly  int `toml:"mantis_jelly"`
	MantisSpeed  int `toml:"mantis_speed"`

	WildlifeSpawnInterval int `toml:"wildlife_spawn_interval"`
	WildlifeHiveExclusion int `toml:"wildlife_hive_exclusion"`
	WildlifeMaxAphids     int `toml:"wildlife_max_aphids"`
	WildlifeMaxBeetles    int `toml:"wildlife_max_beetles"`
	WildlifeMaxMantis     int `toml:"wildlife_max_mantis"`
	WildlifeAggroRange    int `toml:"wildlife_aggro_range"`

	HarvestRange int `toml:"harvest_range"`
	HarvestRate  int `toml:"harvest_rate"`

	StartingJelly   int `toml:"starting_jelly"`
	StartingAnts    int `toml:"starting_ants"`
	CorpseDecayTicks int `toml:"corpse_decay_ticks"`

	AttackRange       int `toml:"attack_range"`
	SpitterAttackRange int `toml:"spitter_attack_range"`
	SeparationRadius  int `toml:"separation_radius"`
	SeparationForce   int `toml:"separation_force"`
	AggroRedirectDivisor int `toml:"aggro_redirect_divisor"`

	SpitterHP          int `toml:"spitter_hp"`
	SpitterDamage      int `toml:"spitter_damage"`
	SpitterSpeed       int `toml:"spitter_speed"`
	SpitterSight       int `toml:"spitter_sight"`
	SpitterCorpseJelly int `toml:"spitter_corpse_jelly"`
	SpitterMorphCost   int `toml:"spitter_morph_cost"`

	DefaultPort             int `toml:"default_port"`
	InputDelayTicks         int `toml:"input_delay_ticks"`
	HashCheckInterval       int `toml:"hash_check_interval"`
	NetTimeoutWarningMs     int `toml:"net_timeout_warning_ms"`
	NetTimeoutDisconnectMs  int `toml:"net_timeout_disconnect_ms"`
	SendRedundancy          int `toml:"send_redundancy"`
	ConnectRetryMs          int `toml:"connect_retry_ms"`
}

// Default returns the built-in balance table, mirroring config.py's values
// except for the Spitter stats, which config.py does not define.
func Default() *Config {
	return &Config{
		TickRate:          10,
		MilliTilesPerTile: 1000,

		MapWidthTiles:  100,
		MapHeightTiles: 100,

		AntHP:            20,
		AntDamage:        5,
		AntSpeed:         400,
		AntSpawnCost:     10,
		AntSpawnCooldown: 20,
		AntCorpseJelly:   5,
		AntSight:         12,
		AntCarryCapacity: 10,

		QueenHP:        50,
		QueenSpeed:     30,
		QueenMergeCost: 5,
		QueenSight:     7,

		HiveHP:            200,
		HivePassiveIncome: 2,
		HiveSight:         16,
		MergeRange:        3,
		FoundHiveRange:    1,

		AphidHP:     5,
		AphidDamage: 0,
		AphidJelly:  3,

		BeetleHP:     80,
		BeetleDamage: 8,
		BeetleJelly:  25,
		BeetleSpeed:  20,

		MantisHP:     200,
		MantisDamage: 20,
		MantisJelly:  80,
		MantisSpeed:  15,

		WildlifeSpawnInterval: 100,
		WildlifeHiveExclusion: 10,
		WildlifeMaxAphids:     20,
		WildlifeMaxBeetles:    5,
		WildlifeMaxMantis:     2,
		WildlifeAggroRange:    5,

		HarvestRange: 2,
		HarvestRate:  5,

		StartingJelly:    50,
		StartingAnts:     5,
		CorpseDecayTicks: 150,

		AttackRange:          1,
		SpitterAttackRange:   4,
		SeparationRadius:     600,
		SeparationForce:      80,
		AggroRedirectDivisor: 4,

		SpitterHP:          60,
		SpitterDamage:      6,
		SpitterSpeed:       300,
		SpitterSight:       10,
		SpitterCorpseJelly: 8,
		SpitterMorphCost:   15,

		DefaultPort:            23456,
		InputDelayTicks:        2,
		HashCheckInterval:      10,
		NetTimeoutWarningMs:    5000,
		NetTimeoutDisconnectMs: 30000,
		SendRedundancy:         3,
		ConnectRetryMs:         1000,
	}
}

// Load reads balance overrides from a TOML file on top of Default().
// Missing keys keep their default value; a missing or unreadable file is
// an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := tree.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return cfg, nil
}
