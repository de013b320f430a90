package interlinked

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// worldPlaneZ is the fixed Z coordinate of the viewport. The map is 2D; Z
// exists only so poses round-trip to hosts that store full 3D transforms.
const worldPlaneZ = -10.0

// NavigatorConfig holds the Navigator tunables. All fields are read at
// construction time and are not mutated mid-session. Zero values are
// replaced with defaults by NewNavigator.
type NavigatorConfig struct {
	// BasePanSpeed is the nominal pan speed in world units per second before
	// zoom scaling.
	BasePanSpeed float64
	// ZoomPanFactor scales pan speed by the current zoom level so panning
	// feels consistent in screen space: effective speed is
	// BasePanSpeed * zoom * ZoomPanFactor.
	ZoomPanFactor float64
	// MaxPanSpeed caps momentum velocity magnitude, world units per second.
	MaxPanSpeed float64

	// DisableMomentum turns off the velocity integrator. When set, keyboard
	// and edge pan displace the viewport directly with no coasting.
	DisableMomentum bool
	// MomentumAcceleration is the ease rate toward the frame's target
	// velocity, per second.
	MomentumAcceleration float64
	// MomentumDamping is the decay rate toward rest on frames with no pan
	// input, per second.
	MomentumDamping float64

	// EdgeScrollMargin is the pixel distance from a screen edge within which
	// the pointer triggers edge scrolling. Zero disables edge scrolling.
	EdgeScrollMargin float64

	// MinZoom and MaxZoom bound the orthographic half-height.
	MinZoom float64
	MaxZoom float64
	// ZoomSpeed scales wheel input into target-zoom change.
	ZoomSpeed float64
	// ZoomSmoothSpeed is the ease rate of the displayed zoom toward the
	// target zoom, per second.
	ZoomSmoothSpeed float64

	// FocusSmoothSpeed is the ease rate of focus-seek toward its target,
	// per second.
	FocusSmoothSpeed float64

	// BoundsEnabled clamps the viewport position to Bounds after all motion
	// each tick.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the position is clamped to when
	// BoundsEnabled is true. X and Y are clamped independently.
	Bounds Rect

	// StartPosition and StartZoom set the initial pose.
	StartPosition Vec2
	StartZoom     float64
}

// withDefaults returns cfg with zero-valued tunables replaced.
func (cfg NavigatorConfig) withDefaults() NavigatorConfig {
	if cfg.BasePanSpeed == 0 {
		cfg.BasePanSpeed = 1.0
	}
	if cfg.ZoomPanFactor == 0 {
		cfg.ZoomPanFactor = 1.0
	}
	if cfg.MaxPanSpeed == 0 {
		cfg.MaxPanSpeed = 60
	}
	if cfg.MomentumAcceleration == 0 {
		cfg.MomentumAcceleration = 12
	}
	if cfg.MomentumDamping == 0 {
		cfg.MomentumDamping = 8
	}
	if cfg.MinZoom == 0 {
		cfg.MinZoom = 3
	}
	if cfg.MaxZoom == 0 {
		cfg.MaxZoom = 30
	}
	if cfg.ZoomSpeed == 0 {
		cfg.ZoomSpeed = 1.0
	}
	if cfg.ZoomSmoothSpeed == 0 {
		cfg.ZoomSmoothSpeed = 10
	}
	if cfg.FocusSmoothSpeed == 0 {
		cfg.FocusSmoothSpeed = 6
	}
	if cfg.StartZoom == 0 {
		cfg.StartZoom = 10
	}
	return cfg
}

// scrollAnim holds active ScrollTo tweens for viewport X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Navigator is a physically damped 2D viewport controller: keyboard pan,
// edge scroll, drag pan with momentum, smoothed wheel zoom, bounds clamping,
// and a focus-seek mode that eases toward a target position.
//
// Navigator is advanced once per frame by Tick with real wall-clock dt;
// camera motion is real-time regardless of any simulation time scale. All
// inputs are best-effort samples, clamped or ignored rather than rejected.
type Navigator struct {
	cfg      NavigatorConfig
	momentum bool

	// Position is the world-space viewport position. Z is fixed to
	// worldPlaneZ.
	Position Vec3

	zoom       float64 // displayed orthographic half-height
	targetZoom float64 // value zoom eases toward

	velocity  Vec2 // pan momentum, world units per second
	targetVel Vec2 // this frame's momentum target
	hasTarget bool // whether targetVel was set this frame

	seeking     bool
	focusTarget Vec2

	scroll *scrollAnim

	// Drag delta tracking across frames.
	dragActive bool
	lastCursor Vec2
}

// NewNavigator creates a Navigator with defaults applied to cfg.
func NewNavigator(cfg NavigatorConfig) *Navigator {
	cfg = cfg.withDefaults()
	return &Navigator{
		cfg:        cfg,
		momentum:   !cfg.DisableMomentum,
		Position:   Vec3{X: cfg.StartPosition.X, Y: cfg.StartPosition.Y, Z: worldPlaneZ},
		zoom:       clamp(cfg.StartZoom, cfg.MinZoom, cfg.MaxZoom),
		targetZoom: clamp(cfg.StartZoom, cfg.MinZoom, cfg.MaxZoom),
	}
}

// Config returns the navigator's effective configuration (with defaults
// applied).
func (n *Navigator) Config() NavigatorConfig {
	return n.cfg
}

// Zoom returns the displayed orthographic half-height.
// Always within [MinZoom, MaxZoom].
func (n *Navigator) Zoom() float64 {
	return n.zoom
}

// TargetZoom returns the zoom value the displayed zoom is easing toward.
func (n *Navigator) TargetZoom() float64 {
	return n.targetZoom
}

// Velocity returns the current pan momentum in world units per second.
func (n *Navigator) Velocity() Vec2 {
	return n.velocity
}

// Seeking reports whether a smooth focus is in progress.
func (n *Navigator) Seeking() bool {
	return n.seeking
}

// FocusOn moves the viewport to the given world position. With smooth=true
// it enters focus-seek mode: momentum is zeroed and the position eases
// toward the target each tick until convergence. With smooth=false the
// position snaps immediately and any active seek, scroll, or momentum is
// canceled.
func (n *Navigator) FocusOn(pos Vec2, smooth bool) {
	n.scroll = nil
	n.velocity = Vec2{}
	if smooth {
		n.seeking = true
		n.focusTarget = pos
		return
	}
	n.seeking = false
	target := n.clampPoint(pos)
	n.Position.X = target.X
	n.Position.Y = target.Y
}

// ScrollTo animates the viewport to the given world position over duration
// seconds using the given easing function. An active focus-seek or drag
// cancels the animation.
func (n *Navigator) ScrollTo(pos Vec2, duration float32, easeFn ease.TweenFunc) {
	n.seeking = false
	n.velocity = Vec2{}
	n.scroll = &scrollAnim{
		tweenX: gween.New(float32(n.Position.X), float32(pos.X), duration, easeFn),
		tweenY: gween.New(float32(n.Position.Y), float32(pos.Y), duration, easeFn),
	}
}

// Tick advances pan, zoom, momentum, focus-seek, and bounds clamping by one
// frame. dt is wall-clock seconds since the previous tick.
func (n *Navigator) Tick(frame Frame, dt float64) {
	if dt <= 0 {
		return
	}

	n.hasTarget = false

	n.tickZoom(frame, dt)
	n.tickDirectionalPan(frame, dt)
	n.tickDrag(frame, dt)
	n.tickMomentum(dt)
	n.tickScroll(dt)
	n.tickFocus(dt)

	if n.cfg.BoundsEnabled {
		n.Position.X = clamp(n.Position.X, n.cfg.Bounds.X, n.cfg.Bounds.X+n.cfg.Bounds.Width)
		n.Position.Y = clamp(n.Position.Y, n.cfg.Bounds.Y, n.cfg.Bounds.Y+n.cfg.Bounds.Height)
	}

	// Convergence is tested against the clamped position so an out-of-bounds
	// focus target terminates at the boundary instead of seeking forever.
	if n.seeking {
		target := n.clampPoint(n.focusTarget)
		if n.Position.XY().DistSq(target) < restEpsilonSq {
			n.Position.X = target.X
			n.Position.Y = target.Y
			n.velocity = Vec2{}
			n.seeking = false
		}
	}
}

// tickZoom applies wheel input to the target zoom and eases the displayed
// zoom toward it. The ease runs every tick so it continues after the wheel
// stops.
func (n *Navigator) tickZoom(frame Frame, dt float64) {
	if frame.WheelY != 0 {
		// Change is proportional to the current target so zoom steps feel
		// uniform across the range.
		n.targetZoom += -frame.WheelY * n.cfg.ZoomSpeed * n.targetZoom * 0.2
		n.targetZoom = clamp(n.targetZoom, n.cfg.MinZoom, n.cfg.MaxZoom)
	}
	n.zoom += (n.targetZoom - n.zoom) * math.Min(1, n.cfg.ZoomSmoothSpeed*dt)
	n.zoom = clamp(n.zoom, n.cfg.MinZoom, n.cfg.MaxZoom)
}

// tickDirectionalPan combines keyboard axis input and screen-edge proximity
// into a single pan direction, normalizes it, and feeds it to panBy.
// Keyboard input is ignored while a text-input control holds focus; edge
// scrolling is disabled while the drag button is held.
func (n *Navigator) tickDirectionalPan(frame Frame, dt float64) {
	var dir Vec2
	if !frame.TextInputFocused {
		dir.X += frame.AxisX
		dir.Y += frame.AxisY
	}
	if n.cfg.EdgeScrollMargin > 0 && !frame.DragHeld {
		dir = dir.Add(n.edgeDirection(frame))
	}
	if dir.LenSq() < epsilon {
		return
	}
	speed := n.cfg.BasePanSpeed * n.zoom * n.cfg.ZoomPanFactor
	n.panBy(dir.Normalized(), speed, dt)
}

// edgeDirection returns the edge-scroll direction for the cursor position,
// or zero when the cursor is away from all edges or outside the screen.
func (n *Navigator) edgeDirection(frame Frame) Vec2 {
	if frame.ScreenW <= 0 || frame.ScreenH <= 0 {
		return Vec2{}
	}
	if frame.CursorX < 0 || frame.CursorX > frame.ScreenW ||
		frame.CursorY < 0 || frame.CursorY > frame.ScreenH {
		return Vec2{}
	}
	m := n.cfg.EdgeScrollMargin
	var dir Vec2
	if frame.CursorX <= m {
		dir.X -= 1
	} else if frame.CursorX >= frame.ScreenW-m {
		dir.X += 1
	}
	if frame.CursorY <= m {
		dir.Y -= 1
	} else if frame.CursorY >= frame.ScreenH-m {
		dir.Y += 1
	}
	return dir
}

// panBy applies a pan in the given unit direction at the given speed. With
// momentum enabled it sets the frame's velocity target for the integrator;
// otherwise it displaces the position directly.
func (n *Navigator) panBy(dir Vec2, speed, dt float64) {
	if n.momentum {
		n.targetVel = dir.Scale(speed).ClampLen(n.cfg.MaxPanSpeed)
		n.hasTarget = true
		return
	}
	n.Position.X += dir.X * speed * dt
	n.Position.Y += dir.Y * speed * dt
}

// tickDrag applies drag panning: the per-frame pointer delta is converted
// to world units and applied as a negative displacement, so dragging feels
// like grabbing the world. The same displacement seeds the momentum target
// so releasing the drag throws the viewport.
func (n *Navigator) tickDrag(frame Frame, dt float64) {
	cursor := Vec2{frame.CursorX, frame.CursorY}
	if !frame.DragHeld {
		n.dragActive = false
		return
	}
	if !n.dragActive {
		// First drag frame: record the anchor, no displacement yet.
		n.dragActive = true
		n.lastCursor = cursor
		return
	}

	// Dragging overrides any in-flight focus or scroll animation.
	n.seeking = false
	n.scroll = nil

	screenDelta := cursor.Sub(n.lastCursor)
	n.lastCursor = cursor
	if frame.ScreenH <= 0 {
		return
	}
	worldPerPixel := 2 * n.zoom / frame.ScreenH
	worldDelta := screenDelta.Scale(-worldPerPixel)

	n.Position.X += worldDelta.X
	n.Position.Y += worldDelta.Y

	if n.momentum {
		n.targetVel = worldDelta.Scale(1 / dt).ClampLen(n.cfg.MaxPanSpeed)
		n.hasTarget = true
		// Track the drag exactly while it lasts; easing in would lag the
		// pointer on release.
		n.velocity = n.targetVel
	}
}

// tickMomentum integrates pan momentum: the velocity eases toward the
// frame's target when one was set, decays toward rest otherwise, and snaps
// to zero below the rest threshold.
func (n *Navigator) tickMomentum(dt float64) {
	if !n.momentum {
		return
	}
	if n.hasTarget {
		blend := math.Min(1, n.cfg.MomentumAcceleration*dt)
		n.velocity.X += (n.targetVel.X - n.velocity.X) * blend
		n.velocity.Y += (n.targetVel.Y - n.velocity.Y) * blend
	} else {
		decay := math.Min(1, n.cfg.MomentumDamping*dt)
		n.velocity.X -= n.velocity.X * decay
		n.velocity.Y -= n.velocity.Y * decay
	}
	n.velocity = n.velocity.ClampLen(n.cfg.MaxPanSpeed)
	if n.velocity.LenSq() < restEpsilonSq {
		n.velocity = Vec2{}
		return
	}
	if n.dragActive {
		// tickDrag already displaced the viewport by the pointer delta this
		// frame; integrating the seeded throw velocity on top would move the
		// grabbed world point away from the cursor. The velocity only drives
		// the position once the drag is released.
		return
	}
	n.Position.X += n.velocity.X * dt
	n.Position.Y += n.velocity.Y * dt
}

// tickScroll advances an active ScrollTo animation.
func (n *Navigator) tickScroll(dt float64) {
	if n.scroll == nil {
		return
	}
	if !n.scroll.doneX {
		val, done := n.scroll.tweenX.Update(float32(dt))
		n.Position.X = float64(val)
		n.scroll.doneX = done
	}
	if !n.scroll.doneY {
		val, done := n.scroll.tweenY.Update(float32(dt))
		n.Position.Y = float64(val)
		n.scroll.doneY = done
	}
	if n.scroll.doneX && n.scroll.doneY {
		n.scroll = nil
	}
}

// tickFocus eases the position toward the focus target while seeking.
// Convergence (with exact snap) is checked in Tick after bounds clamping.
func (n *Navigator) tickFocus(dt float64) {
	if !n.seeking {
		return
	}
	blend := math.Min(1, n.cfg.FocusSmoothSpeed*dt)
	n.Position.X += (n.focusTarget.X - n.Position.X) * blend
	n.Position.Y += (n.focusTarget.Y - n.Position.Y) * blend
}

// clampPoint clamps p to the configured bounds, or returns it unchanged
// when bounds are disabled.
func (n *Navigator) clampPoint(p Vec2) Vec2 {
	if !n.cfg.BoundsEnabled {
		return p
	}
	return Vec2{
		X: clamp(p.X, n.cfg.Bounds.X, n.cfg.Bounds.X+n.cfg.Bounds.Width),
		Y: clamp(p.Y, n.cfg.Bounds.Y, n.cfg.Bounds.Y+n.cfg.Bounds.Height),
	}
}

// ScreenToWorld converts screen coordinates to world coordinates for the
// given screen size. One screen pixel spans 2*zoom/screenH world units.
func (n *Navigator) ScreenToWorld(sx, sy, screenW, screenH float64) Vec2 {
	if screenH <= 0 {
		return n.Position.XY()
	}
	worldPerPixel := 2 * n.zoom / screenH
	return Vec2{
		X: n.Position.X + (sx-screenW/2)*worldPerPixel,
		Y: n.Position.Y + (sy-screenH/2)*worldPerPixel,
	}
}

// WorldToScreen converts world coordinates to screen coordinates for the
// given screen size.
func (n *Navigator) WorldToScreen(w Vec2, screenW, screenH float64) (sx, sy float64) {
	if screenH <= 0 {
		return screenW / 2, screenH / 2
	}
	pixelsPerWorld := screenH / (2 * n.zoom)
	sx = screenW/2 + (w.X-n.Position.X)*pixelsPerWorld
	sy = screenH/2 + (w.Y-n.Position.Y)*pixelsPerWorld
	return
}
