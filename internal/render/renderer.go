// Package render abstracts the underlying graphics engine behind small
// interfaces so scene and menu logic can be driven (and tested) without a
// window. The ebiten backend lives in render/ebiten.
package render

import (
	"errors"
	"image/color"

	"chosenoffset.com/umbra/internal/geom"
)

// Termination signals a clean shutdown when returned from Game.Update. The
// backend translates it into its own run-loop termination value.
var Termination = errors.New("render: game terminated")

// Renderer draws the primitive shapes the game is made of. All coordinates
// are in logical screen pixels.
type Renderer interface {
	NewImage(width, height int) Image

	StrokeLine(dst Image, a, b geom.Vec2, width float32, clr color.Color)
	FillCircle(dst Image, center geom.Vec2, radius float32, clr color.Color)
	StrokeCircle(dst Image, center geom.Vec2, radius, strokeWidth float32, clr color.Color)
	FillRect(dst Image, r geom.Rect, clr color.Color)
	StrokeRect(dst Image, r geom.Rect, strokeWidth float32, clr color.Color)
	FillPolygon(dst Image, points []geom.Vec2, clr color.Color)

	DrawText(dst Image, text string, x, y int, size float64, clr color.Color)
	MeasureText(text string, size float64) (width, height int)
}

// Image is a renderable surface.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
	Clear()

	// DrawImage composites src onto this image at the origin.
	DrawImage(src Image, opts *DrawImageOptions)

	Dispose()
}

// DrawImageOptions controls image compositing.
type DrawImageOptions struct {
	// Alpha scales the source alpha, 0 (invisible) to 1 (opaque). The
	// zero value means opaque.
	Alpha float64
}

// Key identifies a keyboard key the game cares about.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyN
	KeyC
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// CursorShape is the desired pointer shape, produced by menu updates and
// applied by the engine. It is explicit update output, never a hidden side
// effect of hover detection.
type CursorShape int

const (
	CursorDefault CursorShape = iota
	CursorPointer
)

// InputManager exposes the per-frame input snapshot.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	CursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
}

// Game is implemented by the top-level game and driven by the engine.
type Game interface {
	Update() error
	Draw(screen Image)
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and run loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetTPS(tps int)
	SetCursorShape(shape CursorShape)

	// RunGame blocks until the game ends or fails.
	RunGame(game Game) error
}
