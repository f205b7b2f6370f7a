// Package render is the one place in this module allowed to use floating
// point: interpolating an entity's on-screen position between the last
// two simulated ticks for smooth display, strictly downstream of the
// simulation and never fed back into it. Per spec.md §6.4, nothing in
// here participates in hashing or wire encoding.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"antcraft/pkg/entity"
)

// Snapshot is a read-only copy of one entity's position at a tick
// boundary, taken for interpolation purposes only.
type Snapshot struct {
	X, Y float32
}

// FromEntity converts an entity's integer milli-tile position into the
// float32 space mathgl's vectors use.
func FromEntity(e *entity.Entity, milliTilesPerTile int) Snapshot {
	scale := float32(milliTilesPerTile)
	return Snapshot{X: float32(e.X) / scale, Y: float32(e.Y) / scale}
}

// Interpolate blends two tick-boundary snapshots by alpha in [0, 1],
// alpha=0 returning prev exactly and alpha=1 returning next exactly.
func Interpolate(prev, next Snapshot, alpha float32) mgl32.Vec2 {
	a := mgl32.Vec2{prev.X, prev.Y}
	b := mgl32.Vec2{next.X, next.Y}
	return a.Add(b.Sub(a).Mul(alpha))
}
