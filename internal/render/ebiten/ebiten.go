// Package ebiten implements the render interfaces on top of ebiten/v2.
package ebiten

import (
	"bytes"
	"errors"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"chosenoffset.com/umbra/internal/geom"
	"chosenoffset.com/umbra/internal/render"
)

var fontSource *text.GoTextFaceSource

func init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load embedded font: %v", err)
	}
	fontSource = src
}

// Renderer implements render.Renderer using ebiten's vector and text
// packages.
type Renderer struct {
	whiteImg *ebiten.Image
}

// NewRenderer creates a new ebiten-based renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// NewImage creates a new offscreen image with the given dimensions.
func (r *Renderer) NewImage(width, height int) render.Image {
	return &Image{img: ebiten.NewImage(width, height)}
}

// StrokeLine draws a line from a to b.
func (r *Renderer) StrokeLine(dst render.Image, a, b geom.Vec2, width float32, clr color.Color) {
	img := dst.(*Image).img
	vector.StrokeLine(img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}

// FillCircle draws a filled circle.
func (r *Renderer) FillCircle(dst render.Image, center geom.Vec2, radius float32, clr color.Color) {
	img := dst.(*Image).img
	vector.DrawFilledCircle(img, float32(center.X), float32(center.Y), radius, clr, true)
}

// StrokeCircle draws a circle outline.
func (r *Renderer) StrokeCircle(dst render.Image, center geom.Vec2, radius, strokeWidth float32, clr color.Color) {
	img := dst.(*Image).img
	vector.StrokeCircle(img, float32(center.X), float32(center.Y), radius, strokeWidth, clr, true)
}

// FillRect draws a filled axis-aligned rectangle.
func (r *Renderer) FillRect(dst render.Image, rect geom.Rect, clr color.Color) {
	img := dst.(*Image).img
	vector.DrawFilledRect(img, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), clr, false)
}

// StrokeRect draws a rectangle outline.
func (r *Renderer) StrokeRect(dst render.Image, rect geom.Rect, strokeWidth float32, clr color.Color) {
	img := dst.(*Image).img
	vector.StrokeRect(img, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), strokeWidth, clr, false)
}

// FillPolygon fills a closed polygon. Anti-aliasing is disabled to avoid
// seam artifacts between the polygon and adjacent obstacle strokes.
func (r *Renderer) FillPolygon(dst render.Image, points []geom.Vec2, clr color.Color) {
	if len(points) < 3 {
		return
	}
	img := dst.(*Image).img

	path := vector.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for i := 1; i < len(points); i++ {
		path.LineTo(float32(points[i].X), float32(points[i].Y))
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)

	if r.whiteImg == nil {
		r.whiteImg = ebiten.NewImage(1, 1)
		r.whiteImg.Fill(color.White)
	}

	cr, cg, cb, ca := clr.RGBA()
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = float32(cr) / 0xffff
		vertices[i].ColorG = float32(cg) / 0xffff
		vertices[i].ColorB = float32(cb) / 0xffff
		vertices[i].ColorA = float32(ca) / 0xffff
	}

	img.DrawTriangles(vertices, indices, r.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: false})
}

// DrawText renders text at the given pixel position with the embedded font.
func (r *Renderer) DrawText(dst render.Image, str string, x, y int, size float64, clr color.Color) {
	img := dst.(*Image).img
	face := &text.GoTextFace{Source: fontSource, Size: size}
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(float64(x), float64(y))
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(img, str, face, opts)
}

// MeasureText returns the rendered size of str at the given font size.
func (r *Renderer) MeasureText(str string, size float64) (width, height int) {
	face := &text.GoTextFace{Source: fontSource, Size: size}
	w, h := text.Measure(str, face, 0)
	return int(w), int(h)
}

// Image wraps an ebiten.Image to implement render.Image.
type Image struct {
	img *ebiten.Image
}

// WrapImage wraps an existing ebiten.Image, typically the screen.
func WrapImage(img *ebiten.Image) render.Image {
	return &Image{img: img}
}

// Size returns the image dimensions in pixels.
func (i *Image) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill fills the entire image with the given color.
func (i *Image) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear resets the image to transparent.
func (i *Image) Clear() {
	i.img.Clear()
}

// DrawImage composites src at the origin, optionally alpha-scaled.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	srcImg := src.(*Image).img
	var ebitenOpts *ebiten.DrawImageOptions
	if opts != nil && opts.Alpha != 0 {
		ebitenOpts = &ebiten.DrawImageOptions{}
		ebitenOpts.ColorScale.ScaleAlpha(float32(opts.Alpha))
	}
	i.img.DrawImage(srcImg, ebitenOpts)
}

// Dispose releases the underlying image.
func (i *Image) Dispose() {
	i.img.Deallocate()
}

// InputManager implements render.InputManager using ebiten's input state.
type InputManager struct{}

// NewInputManager creates a new ebiten-based input manager.
func NewInputManager() *InputManager {
	return &InputManager{}
}

// IsKeyPressed reports whether key is currently held.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	return ebiten.IsKeyPressed(toEbitenKey(key))
}

// IsKeyJustPressed reports whether key went down this tick.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(toEbitenKey(key))
}

// CursorPosition returns the current cursor position in logical pixels.
func (m *InputManager) CursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// IsMouseButtonPressed reports whether the given button is currently held.
func (m *InputManager) IsMouseButtonPressed(button render.MouseButton) bool {
	switch button {
	case render.MouseButtonRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	default:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}
}

func toEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyW:
		return ebiten.KeyW
	case render.KeyA:
		return ebiten.KeyA
	case render.KeyS:
		return ebiten.KeyS
	case render.KeyD:
		return ebiten.KeyD
	case render.KeyN:
		return ebiten.KeyN
	case render.KeyC:
		return ebiten.KeyC
	case render.KeyUp:
		return ebiten.KeyArrowUp
	case render.KeyDown:
		return ebiten.KeyArrowDown
	case render.KeyLeft:
		return ebiten.KeyArrowLeft
	case render.KeyRight:
		return ebiten.KeyArrowRight
	case render.KeyEscape:
		return ebiten.KeyEscape
	default:
		return 0
	}
}

// Engine implements render.Engine using ebiten's run loop.
type Engine struct{}

// NewEngine creates a new ebiten-based engine.
func NewEngine() *Engine {
	return &Engine{}
}

// SetWindowSize sets the window size in pixels.
func (e *Engine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *Engine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetTPS sets the tick rate of the run loop.
func (e *Engine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// SetCursorShape applies the desired cursor shape.
func (e *Engine) SetCursorShape(shape render.CursorShape) {
	switch shape {
	case render.CursorPointer:
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// RunGame runs the game loop until the game terminates.
func (e *Engine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to the ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.Termination) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&Image{img: screen})
}

func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
