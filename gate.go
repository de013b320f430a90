package interlinked

// GestureKind is the PlacementGate's classification of a completed
// pointer-down/up pair.
type GestureKind uint8

const (
	// GestureNone means no gesture resolved this frame.
	GestureNone GestureKind = iota
	// GestureUI means the gesture began or ended over the host UI layer.
	GestureUI
	// GestureSelection means the gesture was claimed by selection state: it
	// originated on a station, or a prior selection existed at pointer-down.
	GestureSelection
	// GestureBlocked means placement was armed but the release point was
	// occupied or violated minimum spacing.
	GestureBlocked
	// GesturePlaced means a new station was created at the release point.
	GesturePlaced
)

// String returns a short name for the gesture kind.
func (k GestureKind) String() string {
	switch k {
	case GestureNone:
		return "none"
	case GestureUI:
		return "ui"
	case GestureSelection:
		return "selection"
	case GestureBlocked:
		return "blocked"
	case GesturePlaced:
		return "placed"
	default:
		return "unknown"
	}
}

// GateConfig holds PlacementGate tunables.
type GateConfig struct {
	// MinStationSpacing is the minimum Euclidean distance between a
	// placement candidate and every existing station, world units. Zero
	// defaults to 1.0.
	MinStationSpacing float64
	// DefaultKind is the kind assigned to newly placed stations.
	DefaultKind StationKind
}

// gesture is the short-lived state of one pointer-down/up pair. A fresh
// value is allocated on every down edge so nothing leaks across gestures.
type gesture struct {
	overUI       bool // pointer-down landed on the host UI layer
	hadSelection bool // a selection existed before this gesture
	armed        bool // pointer-down on empty map with no prior selection
}

// PlacementGate is a per-frame gesture interpreter running ahead of the
// Registry: it decides whether a completed primary-button gesture selects a
// station, interacts with UI or an existing selection, or places a new
// station at the release point.
//
// Classification on pointer-down, highest priority first: over-UI, prior
// selection, station hit (which independently toggles selection), empty map
// (clears stale selection and arms placement). On pointer-up the release
// point is re-tested against UI, stations, and minimum spacing before a
// station is created: a drag that starts on empty map must not drop a
// station on whatever it ends over.
type PlacementGate struct {
	cfg GateConfig
	reg *Registry
	nav *Navigator

	active *gesture
}

// NewPlacementGate creates a gate over the given registry and navigator.
// Both are required; a nil registry is reported once and disables the gate.
func NewPlacementGate(reg *Registry, nav *Navigator, cfg GateConfig) *PlacementGate {
	if reg == nil {
		warnf("placement gate: no registry configured, gate disabled")
	}
	if nav == nil {
		warnf("placement gate: no navigator configured, gate disabled")
	}
	if cfg.MinStationSpacing == 0 {
		cfg.MinStationSpacing = 1.0
	}
	return &PlacementGate{cfg: cfg, reg: reg, nav: nav}
}

// Update advances the gate by one frame. It reacts only to the primary
// button's down and up edges; all other frames return GestureNone. The
// returned kind describes the gesture resolved on an up edge.
func (g *PlacementGate) Update(frame Frame) GestureKind {
	if g.reg == nil || g.nav == nil {
		return GestureNone
	}
	if frame.PrimaryPressed {
		g.pointerDown(frame)
		return GestureNone
	}
	if frame.PrimaryReleased {
		return g.pointerUp(frame)
	}
	return GestureNone
}

// pointerDown starts a gesture and classifies its origin.
func (g *PlacementGate) pointerDown(frame Frame) {
	ge := &gesture{
		overUI:       frame.PointerOverUI,
		hadSelection: g.reg.Selected() != nil,
	}
	g.active = ge

	if ge.overUI {
		return
	}

	world := g.nav.ScreenToWorld(frame.CursorX, frame.CursorY, frame.ScreenW, frame.ScreenH)

	// A station under the pointer claims the gesture independently of the
	// gate's own classification: selection toggles now, at down time, and
	// the registry flag suppresses placement at up time.
	if st := g.reg.StationAt(world); st != nil {
		g.reg.Select(st)
		g.reg.MarkGestureOnStation()
		return
	}

	if ge.hadSelection {
		// Dismiss/interact with the existing selection; never place.
		return
	}

	// Empty map, no selection: clear any stale selection state and arm
	// placement for the up edge.
	g.reg.ClearSelection()
	ge.armed = true
}

// pointerUp resolves the gesture started by the matching down edge.
func (g *PlacementGate) pointerUp(frame Frame) GestureKind {
	ge := g.active
	g.active = nil

	// Always consume the flag so it cannot leak into the next gesture.
	fromStation := g.reg.ConsumeGestureOnStation()

	if ge == nil {
		// Up edge with no tracked down (e.g. press predates this gate).
		return GestureNone
	}
	if ge.overUI {
		return GestureUI
	}
	if fromStation || ge.hadSelection {
		return GestureSelection
	}
	if !ge.armed {
		return GestureNone
	}

	// Re-test the release point: the pointer may have dragged somewhere
	// placement is not allowed.
	if frame.PointerOverUI {
		return GestureUI
	}
	world := g.nav.ScreenToWorld(frame.CursorX, frame.CursorY, frame.ScreenW, frame.ScreenH)
	if g.reg.StationAt(world) != nil {
		return GestureBlocked
	}
	if g.reg.ProximityConflict(world, g.cfg.MinStationSpacing) {
		return GestureBlocked
	}

	g.reg.Create(world, g.cfg.DefaultKind)
	return GesturePlaced
}
