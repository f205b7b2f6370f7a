// Package lockstep implements the two-buffer coordinator that keeps both
// peers advancing in the same ticks from the same commands: an
// input-delay publication schedule, a try-advance gate, and periodic
// hash-check bookkeeping. Grounded on spec.md §4.7 — the closest
// original-source analogue is commands.py's CommandQueue, which this
// generalizes from a single local queue into the two-sided buffer a
// peer-to-peer match needs.
package lockstep

import (
	"antcraft/pkg/command"
)

// Coordinator holds the per-tick command buffers for both the local
// player and the remote peer, plus the hash-check schedule.
type Coordinator struct {
	localPlayer int
	inputDelay  int
	hashEvery   int

	own  map[int][]command.Command
	peer map[int][]command.Command

	nextTickToAdvance int
	localTickCursor   int // next tick the local side will *schedule* commands for

	ownHashes  map[int][32]byte
	peerHashes map[int][32]byte
	Desynced   bool
	DesyncTick int
}

// New builds a coordinator for localPlayer (0 or 1), with the given
// input delay (ticks between "command issued" and "command takes
// effect") and hash-check interval.
func New(localPlayer, inputDelay, hashEvery int) *Coordinator {
	return &Coordinator{
		localPlayer:       localPlayer,
		inputDelay:        inputDelay,
		hashEvery:         hashEvery,
		own:               make(map[int][]command.Command),
		peer:              make(map[int][]command.Command),
		localTickCursor:   0,
		nextTickToAdvance: 0,
		ownHashes:         make(map[int][32]byte),
		peerHashes:        make(map[int][32]byte),
		DesyncTick:        -1,
	}
}

// QueueLocal schedules locally-issued commands for execution at the
// current local cursor tick plus the input delay, then advances the
// cursor. Called once per local "frame" even if cmds is empty — an
// empty publication still marks that tick as present, which is what
// lets the other peer's try-advance proceed.
func (c *Coordinator) QueueLocal(cmds []command.Command) (scheduledTick int) {
	tick := c.localTickCursor + c.inputDelay
	for i := range cmds {
		cmds[i].Tick = tick
		cmds[i].Player = c.localPlayer
	}
	c.own[tick] = cmds
	c.localTickCursor++
	return tick
}

// ReceivePeerCommands records the other player's published commands for
// a tick, as decoded off the wire.
func (c *Coordinator) ReceivePeerCommands(tick int, cmds []command.Command) {
	if _, exists := c.peer[tick]; exists {
		return
	}
	c.peer[tick] = cmds
}

// ReadyToAdvance reports whether both sides have published commands for
// the next tick in sequence, and if so returns the canonically-ordered
// merged command list for it.
func (c *Coordinator) ReadyToAdvance() ([]command.Command, bool) {
	tick := c.nextTickToAdvance
	ownCmds, ownOK := c.own[tick]
	peerCmds, peerOK := c.peer[tick]
	if !ownOK || !peerOK {
		return nil, false
	}
	merged := make([]command.Command, 0, len(ownCmds)+len(peerCmds))
	merged = append(merged, ownCmds...)
	merged = append(merged, peerCmds...)
	command.SortCanonical(merged)
	return merged, true
}

// Advanced must be called after the simulation actually executes the
// tick ReadyToAdvance returned, to move the coordinator's cursor
// forward and free the consumed buffers.
func (c *Coordinator) Advanced() {
	delete(c.own, c.nextTickToAdvance)
	delete(c.peer, c.nextTickToAdvance)
	c.nextTickToAdvance++
}

// DueForHashCheck reports whether tick is one this match publishes a
// hash for.
func (c *Coordinator) DueForHashCheck(tick int) bool {
	return c.hashEvery > 0 && tick%c.hashEvery == 0
}

// RecordOwnHash stores the local digest computed for tick, for later
// comparison once the peer's arrives.
func (c *Coordinator) RecordOwnHash(tick int, h [32]byte) {
	c.ownHashes[tick] = h
	c.compare(tick)
}

// RecordPeerHash stores the peer's digest for tick, as received over
// HASH_CHECK.
func (c *Coordinator) RecordPeerHash(tick int, h [32]byte) {
	c.peerHashes[tick] = h
	c.compare(tick)
}

func (c *Coordinator) compare(tick int) {
	own, ok1 := c.ownHashes[tick]
	peer, ok2 := c.peerHashes[tick]
	if !ok1 || !ok2 || c.Desynced {
		return
	}
	if own != peer {
		c.Desynced = true
		c.DesyncTick = tick
	}
}
