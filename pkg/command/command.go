// Package command defines the player-issued commands the tick pipeline
// consumes, grounded in commands.py's Command dataclass and sort_key.
//
// A command is a pure value: two commands with identical fields are the
// same command, which is what lets the wire layer deduplicate retried
// frames without tracking sequence numbers.
package command

import (
	"sort"

	"golang.org/x/exp/slices"
)

// Kind is one of the eight command types a player can issue. MorphSpitter
// has no counterpart in commands.py's CommandType enum as retrieved, but
// hive.py's handle_morph_spitter clearly expects a triggering command —
// it is added here per spec.md §4.4's authoritative list.
type Kind uint8

const (
	Move Kind = iota
	Stop
	Harvest
	SpawnAnt
	MergeQueen
	FoundHive
	Attack
	MorphSpitter
)

// None is the sentinel TargetEntity value meaning "no entity target".
const None = -1

// Command is one player action scheduled for execution on Tick.
type Command struct {
	Kind   Kind
	Player int
	Tick   int

	// EntityIDs is the set of entities this command applies to, always
	// stored sorted ascending so two equal commands compare equal
	// regardless of the order the caller built them in.
	EntityIDs []int

	TargetX, TargetY int
	TargetEntity     int
}

// New builds a Command with EntityIDs sorted and deduplicated, the form
// every other function in this package assumes.
func New(kind Kind, player, tick int, entityIDs []int, targetX, targetY, targetEntity int) Command {
	ids := append([]int(nil), entityIDs...)
	slices.Sort(ids)
	ids = dedupSorted(ids)
	return Command{
		Kind:         kind,
		Player:       player,
		Tick:         tick,
		EntityIDs:    ids,
		TargetX:      targetX,
		TargetY:      targetY,
		TargetEntity: targetEntity,
	}
}

func dedupSorted(ids []int) []int {
	if len(ids) < 2 {
		return ids
	}
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}

// Equal reports structural equality — the basis for wire-level
// deduplication of redundantly-sent frames.
func (c Command) Equal(o Command) bool {
	if c.Kind != o.Kind || c.Player != o.Player || c.Tick != o.Tick ||
		c.TargetX != o.TargetX || c.TargetY != o.TargetY || c.TargetEntity != o.TargetEntity {
		return false
	}
	if len(c.EntityIDs) != len(o.EntityIDs) {
		return false
	}
	for i, id := range c.EntityIDs {
		if o.EntityIDs[i] != id {
			return false
		}
	}
	return true
}

// Less implements the canonical (player, kind, tick) ordering commands
// must be sorted into before a tick executes them, per spec.md §4.4.
func Less(a, b Command) bool {
	if a.Player != b.Player {
		return a.Player < b.Player
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Tick < b.Tick
}

// SortCanonical sorts commands in place into the canonical tick-execution
// order. The sort is stable so commands that tie on (player, kind, tick)
// keep their original relative order — itself determined upstream by the
// deterministic merge of both peers' per-tick buffers.
func SortCanonical(cmds []Command) {
	sort.SliceStable(cmds, func(i, j int) bool {
		return Less(cmds[i], cmds[j])
	})
}
