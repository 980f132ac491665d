// Package world holds the entities that live in a level: movable bodies with
// obstacle collision, the boundary obstacle set, and goal rectangles.
package world

import "chosenoffset.com/umbra/internal/geom"

// Hitbox radii: the minimum allowed distance between an entity's position
// and any obstacle segment.
const (
	DefaultHitboxRadius = 3.0
	PlayerHitboxRadius  = 10.0
	LightHitboxRadius   = 5.0
)

// Movement speeds in pixels per tick.
const (
	PlayerSpeed = 1.75
	LightSpeed  = 1.0
)

// Movable is an entity with a position that moves by direct per-tick
// displacement, clipped by a minimum distance to every obstacle.
type Movable struct {
	Pos          geom.Vec2
	Speed        float64
	HitboxRadius float64
}

// Move displaces the movable along dir, rescaled to exactly Speed pixels.
// The move is rejected wholesale (no sliding) if the new position would come
// closer than HitboxRadius to any obstacle segment. A zero direction leaves
// the position unchanged.
func (m *Movable) Move(dir geom.Vec2, obstacles []geom.Segment) {
	if dir.IsZero() {
		return
	}
	candidate := m.Pos.Add(dir.ScaleTo(m.Speed))
	for _, obs := range obstacles {
		if obs.Dist(candidate) < m.HitboxRadius {
			return
		}
	}
	m.Pos = candidate
}

// Player is the player-controlled entity.
type Player struct {
	Movable
}

// NewPlayer creates a player at the given position.
func NewPlayer(pos geom.Vec2) *Player {
	return &Player{Movable{Pos: pos, Speed: PlayerSpeed, HitboxRadius: PlayerHitboxRadius}}
}

// Light is a movable light source. Its visibility polygon is recomputed from
// scratch every frame and never stored here.
type Light struct {
	Movable
}

// NewLight creates a light source at the given position.
func NewLight(pos geom.Vec2) *Light {
	return &Light{Movable{Pos: pos, Speed: LightSpeed, HitboxRadius: LightHitboxRadius}}
}
