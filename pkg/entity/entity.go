// Package entity defines the entity record and the kind/state tags the
// tick pipeline dispatches on, grounded in state.py's Entity dataclass.
//
// Per spec.md §9's design note, behavior is dispatched by a tagged Kind
// field against per-kind tables (see pkg/sim/stats.go), not by a class
// hierarchy — every peer must compute identical behavior from identical
// data, which rules out virtual dispatch.
package entity

// Kind tags what an entity is.
type Kind uint8

const (
	Ant Kind = iota
	Queen
	Hive
	HiveSite
	Corpse
	Aphid
	Beetle
	Mantis
	Spitter
)

// State is the entity's current activity.
type State uint8

const (
	Idle State = iota
	Moving
	Attacking
	Harvesting
	Founding
)

// Neutral is the owner sentinel for wildlife, hive sites, and corpses.
const Neutral = -1

// None is the sentinel for "no target entity".
const None = -1

// Point is a milli-tile position.
type Point struct {
	X, Y int
}

// Entity is a single mutable simulation record. All positional fields are
// in milli-tiles (1 tile == 1000 milli-tiles).
type Entity struct {
	ID    int
	Kind  Kind
	Owner int

	X, Y             int
	TargetX, TargetY int
	Path             []Point

	Speed int
	HP    int
	MaxHP int

	Damage      int
	Sight       int
	AttackRange int

	State State

	Carrying   int
	JellyValue int

	TargetEntity int
	Cooldown     int
}

// IsMoving reports whether the entity has not yet reached its target —
// invariant 5: is_moving ⇔ (x,y) ≠ (target_x,target_y).
func (e *Entity) IsMoving() bool {
	return e.X != e.TargetX || e.Y != e.TargetY
}
