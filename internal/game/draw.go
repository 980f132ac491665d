package game

import (
	"image/color"

	"chosenoffset.com/umbra/internal/render"
	"chosenoffset.com/umbra/internal/shadows"
)

// visibilityReach seeds the nearest-hit search in the sweep; it only needs
// to exceed any in-window distance and is never emitted as a vertex.
const visibilityReach = 4500.0

// lightAlpha is the opacity of one light's polygon overlay.
const lightAlpha = 20.0 / 255.0

var (
	playBGColor       = color.RGBA{0, 20, 0, 255}
	obstacleColor     = color.RGBA{255, 255, 255, 255}
	lightColor        = color.RGBA{255, 255, 100, 255}
	lightPolyColor    = color.RGBA{255, 255, 150, 255}
	playerColor       = color.RGBA{255, 0, 0, 255}
	goalBGColor       = color.RGBA{0, 0, 0, 255}
	goalInactiveColor = color.RGBA{0, 150, 150, 255}
	goalActiveColor   = color.RGBA{0, 250, 150, 255}
)

const obstacleWidth = 3

// drawPlay renders the play scene: translucent visibility polygons first,
// then obstacles, goals, lights and the player on top.
func (g *Game) drawPlay(screen render.Image) {
	s := g.play
	screen.Fill(playBGColor)

	if g.lightOverlay == nil {
		g.lightOverlay = g.renderer.NewImage(int(s.Width), int(s.Height))
	}
	for _, light := range s.Lights {
		// The polygon is recomputed from the live light position every
		// frame; nothing is cached across frames.
		poly := shadows.ComputeVisibilityPolygon(light.Pos, s.Obstacles, visibilityReach)
		g.lightOverlay.Clear()
		g.renderer.FillPolygon(g.lightOverlay, poly, lightPolyColor)
		screen.DrawImage(g.lightOverlay, &render.DrawImageOptions{Alpha: lightAlpha})
	}

	for _, obs := range s.Walls {
		g.renderer.StrokeLine(screen, obs.A, obs.B, obstacleWidth, obstacleColor)
	}

	for _, goal := range s.Goals {
		clr := goalInactiveColor
		if goal.Activated {
			clr = goalActiveColor
		}
		g.renderer.FillRect(screen, goal.Rect, goalBGColor)
		g.renderer.StrokeRect(screen, goal.Rect, 5, clr)
	}

	for _, light := range s.Lights {
		g.renderer.FillCircle(screen, light.Pos, 5, lightColor)
	}

	g.renderer.StrokeCircle(screen, s.Player.Pos, 10, 5, playerColor)
}
