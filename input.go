package interlinked

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is one frame's worth of raw input, sampled by ReadFrame or
// constructed directly (synthetic input, tests). The Navigator and
// PlacementGate consume Frames and never poll hardware themselves.
type Frame struct {
	// CursorX and CursorY are the pointer position in screen pixels.
	CursorX, CursorY float64
	// ScreenW and ScreenH are the logical screen size in pixels.
	ScreenW, ScreenH float64

	// WheelY is the vertical scroll amount this frame.
	WheelY float64

	// AxisX and AxisY are the keyboard pan axes in [-1, 1].
	// Negative Y pans up (screen coordinates, Y down).
	AxisX, AxisY float64

	// DragHeld reports whether the camera-drag button is held.
	DragHeld bool

	// PrimaryHeld reports whether the primary (placement) button is held.
	// PrimaryPressed and PrimaryReleased are the down/up edges this frame.
	PrimaryHeld     bool
	PrimaryPressed  bool
	PrimaryReleased bool

	// PointerOverUI is the host UI layer's claim on the pointer.
	PointerOverUI bool
	// TextInputFocused suppresses keyboard panning while a text control has
	// focus.
	TextInputFocused bool
}

// CursorInside reports whether the cursor lies within the screen rectangle.
func (f Frame) CursorInside() bool {
	return f.CursorX >= 0 && f.CursorX <= f.ScreenW &&
		f.CursorY >= 0 && f.CursorY <= f.ScreenH
}

// ReadFrame polls ebiten for the current input state. prev is the previous
// frame's sample, used to derive press/release edges. PointerOverUI and
// TextInputFocused are host signals the poll cannot know; set them on the
// returned Frame before handing it to the Session.
func ReadFrame(prev Frame, screenW, screenH int) Frame {
	mx, my := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()

	primary := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	drag := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	axisX, axisY := readPanAxes()

	return Frame{
		CursorX:         float64(mx),
		CursorY:         float64(my),
		ScreenW:         float64(screenW),
		ScreenH:         float64(screenH),
		WheelY:          wheelY,
		AxisX:           axisX,
		AxisY:           axisY,
		DragHeld:        drag,
		PrimaryHeld:     primary,
		PrimaryPressed:  primary && !prev.PrimaryHeld,
		PrimaryReleased: !primary && prev.PrimaryHeld,
	}
}

// readPanAxes maps WASD and the arrow keys to pan axes.
func readPanAxes() (x, y float64) {
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		y += 1
	}
	return x, y
}

// HitCircle is a circular hit area in world coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}
