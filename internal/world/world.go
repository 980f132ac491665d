package world

import "chosenoffset.com/umbra/internal/geom"

// Bounds returns the four segments enclosing a width x height viewport.
// Both the visibility sweep and movement collision require these in the
// obstacle set; without them rays would never terminate.
func Bounds(width, height float64) []geom.Segment {
	topLeft := geom.V(0, 0)
	topRight := geom.V(width, 0)
	botLeft := geom.V(0, height)
	botRight := geom.V(width, height)
	return []geom.Segment{
		{A: botLeft, B: topLeft},
		{A: topLeft, B: topRight},
		{A: topRight, B: botRight},
		{A: botRight, B: botLeft},
	}
}

// Goal is a target rectangle that latches on permanently the first time the
// player's position enters it.
type Goal struct {
	Rect      geom.Rect
	Activated bool
}

// NewGoal creates an inactive goal covering the given rectangle.
func NewGoal(rect geom.Rect) *Goal {
	return &Goal{Rect: rect}
}

// Check latches the goal if p is inside its rectangle. Once activated a goal
// never deactivates, even after the player leaves.
func (g *Goal) Check(p geom.Vec2) {
	if g.Rect.Contains(p) {
		g.Activated = true
	}
}
