package game

import (
	"chosenoffset.com/umbra/internal/geom"
	"chosenoffset.com/umbra/internal/level"
	"chosenoffset.com/umbra/internal/render"
	"chosenoffset.com/umbra/internal/world"
)

// PlayScene composes the live entities of one level run: the player, the
// lights, the static obstacle set and the goals. Obstacles always include
// the four viewport boundary segments so visibility rays terminate and the
// player cannot leave the window.
type PlayScene struct {
	Width  float64
	Height float64

	Player *world.Player
	Lights []*world.Light
	// Walls are the level's own obstacle segments; Obstacles is Walls plus
	// the boundary segments and is what movement and visibility consult.
	Walls     []geom.Segment
	Obstacles []geom.Segment
	Goals     []*world.Goal

	completeSignaled bool
}

// NewPlayScene builds a scene from a validated level.
func NewPlayScene(lvl *level.Level) *PlayScene {
	s := &PlayScene{
		Width:  lvl.Width,
		Height: lvl.Height,
		Player: world.NewPlayer(lvl.PlayerSpawn),
		Walls:  lvl.Obstacles,
	}
	for _, pos := range lvl.Lights {
		s.Lights = append(s.Lights, world.NewLight(pos))
	}
	s.Obstacles = append(append([]geom.Segment{}, lvl.Obstacles...), world.Bounds(lvl.Width, lvl.Height)...)
	for _, rect := range lvl.Goals {
		s.Goals = append(s.Goals, world.NewGoal(rect))
	}
	return s
}

// Update advances the scene by one tick: moves the player (arrow keys) and
// the first light (WASD) against the obstacle set, then latches goals. It
// returns the scene-transition request for this frame.
func (s *PlayScene) Update(input render.InputManager) Transition {
	if input.IsKeyJustPressed(render.KeyEscape) {
		return TransitionToMenu
	}

	move := movementVector(input, render.KeyLeft, render.KeyRight, render.KeyUp, render.KeyDown)
	s.Player.Move(move, s.Obstacles)

	if len(s.Lights) > 0 {
		lightMove := movementVector(input, render.KeyA, render.KeyD, render.KeyW, render.KeyS)
		s.Lights[0].Move(lightMove, s.Obstacles)
	}

	for _, g := range s.Goals {
		g.Check(s.Player.Pos)
	}
	if !s.completeSignaled && s.allGoalsActive() {
		s.completeSignaled = true
		return TransitionLevelComplete
	}

	return TransitionNone
}

func (s *PlayScene) allGoalsActive() bool {
	if len(s.Goals) == 0 {
		return false
	}
	for _, g := range s.Goals {
		if !g.Activated {
			return false
		}
	}
	return true
}

// movementVector reads four held keys into a direction vector with -1/0/1
// components. The caller's Move rescales it, so the diagonal is not faster.
func movementVector(input render.InputManager, left, right, up, down render.Key) geom.Vec2 {
	var v geom.Vec2
	if input.IsKeyPressed(left) {
		v.X--
	}
	if input.IsKeyPressed(right) {
		v.X++
	}
	if input.IsKeyPressed(up) {
		v.Y--
	}
	if input.IsKeyPressed(down) {
		v.Y++
	}
	return v
}
