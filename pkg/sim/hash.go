package sim

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// Hash computes the canonical digest of the current state: tick, RNG,
// per-player jelly, entity count, then every entity's fixed-width
// fields in store order (which is insertion-id order — never resorted).
// Two peers with byte-identical GameState values produce byte-identical
// hashes; any divergence, however small, changes the digest. Grounded
// on state.py's compute_hash, using a 256-bit sponge in place of the
// original's hash function.
func (gs *GameState) Hash() [32]byte {
	h := sha3.New256()
	var buf [8]byte

	putU32 := func(v uint32) {
		binary.BigEndian.PutUint32(buf[:4], v)
		h.Write(buf[:4])
	}
	putI64 := func(v int) {
		binary.BigEndian.PutUint64(buf[:8], uint64(int64(v)))
		h.Write(buf[:8])
	}

	putI64(gs.Tick)
	putU32(gs.RNG)
	putI64(gs.PlayerJelly[0])
	putI64(gs.PlayerJelly[1])

	all := gs.Store.All()
	putI64(len(all))
	for _, e := range all {
		putI64(e.ID)
		h.Write([]byte{byte(e.Kind), byte(e.State)})
		putI64(e.Owner)
		putI64(e.X)
		putI64(e.Y)
		putI64(e.TargetX)
		putI64(e.TargetY)
		putI64(e.HP)
		putI64(e.MaxHP)
		putI64(e.Carrying)
		putI64(e.JellyValue)
		putI64(e.TargetEntity)
		putI64(e.Cooldown)
	}

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
