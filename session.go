package interlinked

// ClockSnapshot is the flat persisted form of the simulated clock: elapsed
// epoch ticks and the current time scale. The clock service itself lives
// outside this package; the snapshot exists so hosts can round-trip it.
type ClockSnapshot struct {
	EpochTicks int64
	Scale      float64
}

// SessionConfig aggregates the configuration of every component a Session
// constructs.
type SessionConfig struct {
	Navigator NavigatorConfig
	Registry  RegistryConfig
	Gate      GateConfig
}

// syntheticPointerEvent is a single injected pointer sample in screen
// coordinates, consumed one per Update in place of the real primary button
// and cursor state.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// Session wires a Navigator, Registry, and PlacementGate together and
// drives them one frame at a time. Construction is explicit dependency
// injection: build one Session per map session and pass it around; there is
// no package-level state.
//
// Update order within a frame is fixed: gesture classification and any
// resulting registry mutation complete before the Navigator integrates, so
// a selection made this frame begins its camera ease this same frame.
type Session struct {
	nav  *Navigator
	reg  *Registry
	gate *PlacementGate

	prev   Frame
	inject []syntheticPointerEvent
	runner *ScriptRunner
}

// NewSession constructs the Navigator, Registry, and PlacementGate for one
// map session.
func NewSession(cfg SessionConfig) *Session {
	nav := NewNavigator(cfg.Navigator)
	reg := NewRegistry(nav, cfg.Registry)
	gate := NewPlacementGate(reg, nav, cfg.Gate)
	return &Session{nav: nav, reg: reg, gate: gate}
}

// Navigator returns the session's camera navigator.
func (s *Session) Navigator() *Navigator {
	return s.nav
}

// Registry returns the session's station registry.
func (s *Session) Registry() *Registry {
	return s.reg
}

// Gate returns the session's placement gate.
func (s *Session) Gate() *PlacementGate {
	return s.gate
}

// Update advances the whole map layer by one frame. dt is wall-clock
// seconds since the previous call. Primary-button edges are derived from
// the previous frame here, so callers only need to supply held state.
// Returns the gesture resolved this frame, if any.
func (s *Session) Update(frame Frame, dt float64) GestureKind {
	if s.runner != nil && !s.runner.done {
		s.runner.step(s)
	}
	if len(s.inject) > 0 {
		evt := s.inject[0]
		copy(s.inject, s.inject[1:])
		s.inject = s.inject[:len(s.inject)-1]
		frame.CursorX = evt.x
		frame.CursorY = evt.y
		frame.PrimaryHeld = evt.pressed
	}
	frame.PrimaryPressed = frame.PrimaryHeld && !s.prev.PrimaryHeld
	frame.PrimaryReleased = !frame.PrimaryHeld && s.prev.PrimaryHeld
	s.prev = frame

	// Gate before navigator: registry mutations (and the focus they
	// trigger) must land before this frame's camera integration.
	kind := s.gate.Update(frame)
	s.nav.Tick(frame, dt)
	return kind
}

// --- Synthetic input injection ---

// InjectPress queues a primary-button press at the given screen
// coordinates. The event is consumed on the next Update call.
func (s *Session) InjectPress(x, y float64) {
	s.inject = append(s.inject, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (s *Session) InjectMove(x, y float64) {
	s.inject = append(s.inject, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a primary-button release at the given screen
// coordinates.
func (s *Session) InjectRelease(x, y float64) {
	s.inject = append(s.inject, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Session) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves, and release at (toX, toY). The sequence consumes
// frames frames; the minimum is 2 (press + release).
func (s *Session) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// SetScriptRunner attaches a ScriptRunner whose steps are fed into the
// injection queue one per frame at the start of Update.
func (s *Session) SetScriptRunner(runner *ScriptRunner) {
	s.runner = runner
}
