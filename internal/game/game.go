// Package game is the scene host: it owns the menu and play scenes, drives
// their per-frame updates, and applies at most one scene transition per
// frame.
package game

import (
	"chosenoffset.com/umbra/internal/level"
	"chosenoffset.com/umbra/internal/menu"
	"chosenoffset.com/umbra/internal/render"
)

// Game implements render.Game on top of the tagged scene set.
type Game struct {
	// LevelCompleteTransition is where TransitionLevelComplete leads. The
	// destination is host configuration, not scene behavior.
	LevelCompleteTransition Transition

	renderer render.Renderer
	input    render.InputManager
	engine   render.Engine

	lvl   *level.Level
	scene SceneID
	menu  *menu.MainMenu
	play  *PlayScene

	lightOverlay render.Image
}

// New creates the game for a loaded level. Play starts immediately; the menu
// is reachable with Escape.
func New(lvl *level.Level, r render.Renderer, input render.InputManager, engine render.Engine) *Game {
	return &Game{
		LevelCompleteTransition: TransitionToMenu,
		renderer:                r,
		input:                   input,
		engine:                  engine,
		lvl:                     lvl,
		scene:                   ScenePlay,
		menu:                    menu.NewMainMenu(int(lvl.Width), int(lvl.Height)),
		play:                    NewPlayScene(lvl),
	}
}

// Update advances the active scene one tick and applies its transition
// request.
func (g *Game) Update() error {
	switch g.scene {
	case SceneMenu:
		action, cursor := g.menu.Update(g.input)
		g.engine.SetCursorShape(cursor)
		return g.apply(transitionForAction(action))
	case ScenePlay:
		return g.apply(g.play.Update(g.input))
	}
	return nil
}

// transitionForAction maps menu actions onto scene transitions.
func transitionForAction(action menu.Action) Transition {
	switch action {
	case menu.ActionNewGame:
		return TransitionNewGame
	case menu.ActionContinue:
		return TransitionToGame
	case menu.ActionQuit:
		return TransitionQuit
	case menu.ActionSettings:
		// TODO: settings scene; the button is a placeholder for now.
		return TransitionNone
	}
	return TransitionNone
}

// apply executes a single transition request.
func (g *Game) apply(t Transition) error {
	switch t {
	case TransitionNewGame:
		g.play = NewPlayScene(g.lvl)
		g.scene = ScenePlay
		g.engine.SetCursorShape(render.CursorDefault)
	case TransitionToGame:
		if g.play == nil {
			g.play = NewPlayScene(g.lvl)
		}
		g.scene = ScenePlay
		g.engine.SetCursorShape(render.CursorDefault)
	case TransitionToMenu:
		g.scene = SceneMenu
	case TransitionQuit:
		return render.Termination
	case TransitionLevelComplete:
		if g.LevelCompleteTransition != TransitionLevelComplete {
			return g.apply(g.LevelCompleteTransition)
		}
	}
	return nil
}

// Draw renders the active scene.
func (g *Game) Draw(screen render.Image) {
	switch g.scene {
	case SceneMenu:
		g.menu.Draw(g.renderer, screen)
	case ScenePlay:
		g.drawPlay(screen)
	}
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.lvl.Width), int(g.lvl.Height)
}

// Scene returns the active scene tag.
func (g *Game) Scene() SceneID {
	return g.scene
}
