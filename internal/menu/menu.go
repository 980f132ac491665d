// Package menu implements the main menu scene. The button set is closed and
// dispatched by tag; menu updates return an explicit action plus the desired
// cursor shape instead of mutating global state.
package menu

import (
	"image/color"

	"chosenoffset.com/umbra/internal/geom"
	"chosenoffset.com/umbra/internal/render"
)

// Action is what the menu asks the scene host to do this frame.
type Action int

const (
	ActionNone Action = iota
	ActionNewGame
	ActionSettings
	ActionContinue
	ActionQuit
)

// ButtonID tags the fixed set of menu buttons.
type ButtonID int

const (
	ButtonNewGame ButtonID = iota
	ButtonSettings
	ButtonQuit
)

// Button layout and palette, matching the game's green-on-dark look.
const (
	buttonTop    = 300.0
	buttonHeight = 50.0
	buttonGap    = 20.0
	textSize     = 40.0
)

var (
	buttonBGColor      = color.RGBA{10, 30, 20, 255}
	buttonBGFocusColor = color.RGBA{15, 35, 25, 255}
	buttonTextColor    = color.RGBA{105, 255, 105, 255}
	backgroundColor    = color.RGBA{0, 10, 5, 255}
	titleColor         = color.RGBA{105, 255, 105, 255}
)

type button struct {
	id    ButtonID
	label string
	rect  geom.Rect
	focus bool
}

// MainMenu is the main menu scene.
type MainMenu struct {
	screenWidth  int
	screenHeight int
	buttons      []button
	lastPressed  bool
}

// NewMainMenu creates the menu for the given logical screen size.
func NewMainMenu(screenWidth, screenHeight int) *MainMenu {
	m := &MainMenu{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		buttons: []button{
			{id: ButtonNewGame, label: "New Game"},
			{id: ButtonSettings, label: "Settings"},
			{id: ButtonQuit, label: "Quit"},
		},
	}
	// Button column: 80% of the screen width, centered.
	width := 0.8 * float64(screenWidth)
	left := (float64(screenWidth) - width) / 2
	top := buttonTop
	for i := range m.buttons {
		m.buttons[i].rect = geom.NewRect(left, top, width, buttonHeight)
		top += buttonHeight + buttonGap
	}
	return m
}

// Update processes one frame of input. It returns the requested action and
// the cursor shape the host should apply.
func (m *MainMenu) Update(input render.InputManager) (Action, render.CursorShape) {
	mouseX, mouseY := input.CursorPosition()
	mouse := geom.V(float64(mouseX), float64(mouseY))

	cursor := render.CursorDefault
	for i := range m.buttons {
		m.buttons[i].focus = m.buttons[i].rect.Contains(mouse)
		if m.buttons[i].focus {
			cursor = render.CursorPointer
		}
	}

	// A click is the release edge of the left button, so pressing and
	// dragging off a button does not fire it.
	pressed := input.IsMouseButtonPressed(render.MouseButtonLeft)
	clicked := !pressed && m.lastPressed
	m.lastPressed = pressed

	if clicked {
		for _, b := range m.buttons {
			if !b.rect.Contains(mouse) {
				continue
			}
			switch b.id {
			case ButtonNewGame:
				return ActionNewGame, cursor
			case ButtonSettings:
				return ActionSettings, cursor
			case ButtonQuit:
				return ActionQuit, cursor
			}
		}
	}

	switch {
	case input.IsKeyJustPressed(render.KeyEscape):
		return ActionQuit, cursor
	case input.IsKeyJustPressed(render.KeyN):
		return ActionNewGame, cursor
	case input.IsKeyJustPressed(render.KeyC):
		return ActionContinue, cursor
	}

	return ActionNone, cursor
}

// Draw renders the menu.
func (m *MainMenu) Draw(r render.Renderer, screen render.Image) {
	screen.Fill(backgroundColor)

	titleW, _ := r.MeasureText("UMBRA", 96)
	r.DrawText(screen, "UMBRA", (m.screenWidth-titleW)/2, 80, 96, titleColor)

	for _, b := range m.buttons {
		bg := buttonBGColor
		if b.focus {
			bg = buttonBGFocusColor
		}
		r.FillRect(screen, b.rect, bg)

		textW, _ := r.MeasureText(b.label, textSize)
		textLeft := int(b.rect.X + (b.rect.W-float64(textW))/2)
		r.DrawText(screen, b.label, textLeft, int(b.rect.Y), textSize, buttonTextColor)
	}
}

// Focused reports whether the given button currently has hover focus.
func (m *MainMenu) Focused(id ButtonID) bool {
	for _, b := range m.buttons {
		if b.id == id {
			return b.focus
		}
	}
	return false
}

// ButtonRect returns the screen rectangle of the given button.
func (m *MainMenu) ButtonRect(id ButtonID) geom.Rect {
	for _, b := range m.buttons {
		if b.id == id {
			return b.rect
		}
	}
	return geom.Rect{}
}
