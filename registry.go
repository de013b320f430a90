package interlinked

// EventKind identifies a registry event.
type EventKind uint8

const (
	// EventSelected fires on every selection change, including clears.
	EventSelected EventKind = iota
	// EventPlaced fires when a station is created.
	EventPlaced
	// EventDeleted fires after a station is removed.
	EventDeleted
)

// RegistryEvent carries registry lifecycle and selection data for external
// consumers (UI panels, ECS bridges).
type RegistryEvent struct {
	Kind EventKind
	// StationID is the affected station's ID, or 0 for a cleared selection.
	StationID int
	// Position is the affected station's world position.
	Position Vec2
}

// EventSink receives registry events. Set one on a Registry to forward
// events to an external store (see the ecs subpackage for a donburi-backed
// implementation).
type EventSink interface {
	EmitEvent(event RegistryEvent)
}

// --- Selection observer registry ---

type selectionHandler struct {
	id uint32
	fn func(*Station)
}

// CallbackHandle allows removing a registered selection observer.
type CallbackHandle struct {
	id  uint32
	reg *Registry
}

// Remove unregisters this observer so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.selectionHandlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = selectionHandler{}
			h.reg.selectionHandlers = s[:len(s)-1]
			return
		}
	}
}

// RegistryConfig holds Registry tunables.
type RegistryConfig struct {
	// HitRadius is the pointer hit-test radius around each station, world
	// units. Zero defaults to 0.4.
	HitRadius float64
}

// Registry owns the station collection and the single global selection.
// Stations are keyed by ID; selection is held as an ID, not a pointer, so
// deletion invalidates it naturally. Registry is the sole writer of every
// station's selected flag.
type Registry struct {
	cfg      RegistryConfig
	nav      *Navigator
	stations map[int]*Station
	nextID   int

	selectedID int // 0 = no selection

	// gestureOnStation is a one-frame flag set when a pointer-down is
	// consumed by a station's own hit-test; the PlacementGate reads and
	// clears it on pointer-up.
	gestureOnStation bool

	selectionHandlers []selectionHandler
	nextHandlerID     uint32

	sink EventSink
}

// NewRegistry creates a Registry that focuses nav on every selection
// change. A nil nav is reported once and focus-follow is disabled; all
// other operations work normally.
func NewRegistry(nav *Navigator, cfg RegistryConfig) *Registry {
	if nav == nil {
		warnf("registry: no navigator configured, focus-follow disabled")
	}
	if cfg.HitRadius == 0 {
		cfg.HitRadius = 0.4
	}
	return &Registry{
		cfg:      cfg,
		nav:      nav,
		stations: make(map[int]*Station),
		nextID:   1,
	}
}

// SetEventSink sets the optional event bridge.
func (r *Registry) SetEventSink(sink EventSink) {
	r.sink = sink
}

// OnSelectionChanged registers an observer invoked synchronously on every
// selection change with the new selection, or nil when cleared.
func (r *Registry) OnSelectionChanged(fn func(*Station)) CallbackHandle {
	r.nextHandlerID++
	id := r.nextHandlerID
	r.selectionHandlers = append(r.selectionHandlers, selectionHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r}
}

// Create assigns the next ID, constructs the station, inserts it, and
// returns it. Create never rejects a position; spacing is a gate-layer
// policy, not a registry invariant.
func (r *Registry) Create(pos Vec2, kind StationKind) *Station {
	st := newStation(r.nextID, pos, kind)
	r.nextID++
	r.stations[st.id] = st
	r.emit(RegistryEvent{Kind: EventPlaced, StationID: st.id, Position: st.pos})
	return st
}

// Select applies toggle semantics: selecting the current selection clears
// it; selecting a different station deselects the previous one. Any change
// focuses the navigator on the new selection and notifies observers.
// Selecting nil is equivalent to ClearSelection.
func (r *Registry) Select(st *Station) {
	if st == nil {
		r.ClearSelection()
		return
	}
	if r.stations[st.id] != st {
		return // not registered (or already deleted)
	}
	if st.id == r.selectedID {
		r.ClearSelection()
		return
	}
	if prev := r.Selected(); prev != nil {
		prev.selected = false
	}
	st.selected = true
	r.selectedID = st.id
	if r.nav != nil {
		r.nav.FocusOn(st.pos, true)
	}
	r.notifySelection(st)
}

// ClearSelection clears any selection. Observers are always notified, even
// when nothing was selected; callers that need to suppress redundant UI
// updates should check Selected first.
func (r *Registry) ClearSelection() {
	if prev := r.Selected(); prev != nil {
		prev.selected = false
	}
	r.selectedID = 0
	r.notifySelection(nil)
}

// Delete removes a station. If it is selected, the selection is cleared
// first so observers are notified before the station disappears from the
// collection. Deleting an unregistered or already-deleted station is a
// no-op.
func (r *Registry) Delete(st *Station) {
	if st == nil || r.stations[st.id] != st {
		return
	}
	if st.id == r.selectedID {
		r.ClearSelection()
	}
	delete(r.stations, st.id)
	r.emit(RegistryEvent{Kind: EventDeleted, StationID: st.id, Position: st.pos})
}

// Selected returns the currently selected station, or nil.
func (r *Registry) Selected() *Station {
	if r.selectedID == 0 {
		return nil
	}
	return r.stations[r.selectedID]
}

// Get returns the station with the given ID, or nil.
func (r *Registry) Get(id int) *Station {
	return r.stations[id]
}

// Len returns the number of live stations.
func (r *Registry) Len() int {
	return len(r.stations)
}

// Each calls fn for every live station. Iteration order is unspecified.
// fn must not create or delete stations.
func (r *Registry) Each(fn func(*Station)) {
	for _, st := range r.stations {
		fn(st)
	}
}

// ProximityConflict reports whether any live station lies within minSpacing
// (Euclidean) of pos. False on an empty registry.
func (r *Registry) ProximityConflict(pos Vec2, minSpacing float64) bool {
	limSq := minSpacing * minSpacing
	for _, st := range r.stations {
		if st.pos.DistSq(pos) <= limSq {
			return true
		}
	}
	return false
}

// StationAt returns the station whose hit circle contains the given world
// position, or nil. When hit circles overlap, the station closest to pos
// wins.
func (r *Registry) StationAt(pos Vec2) *Station {
	var best *Station
	bestSq := r.cfg.HitRadius * r.cfg.HitRadius
	for _, st := range r.stations {
		hit := HitCircle{CenterX: st.pos.X, CenterY: st.pos.Y, Radius: r.cfg.HitRadius}
		if !hit.Contains(pos.X, pos.Y) {
			continue
		}
		if dSq := st.pos.DistSq(pos); best == nil || dSq < bestSq {
			best = st
			bestSq = dSq
		}
	}
	return best
}

// MarkGestureOnStation records that the current pointer gesture originated
// on a station's own hit-test.
func (r *Registry) MarkGestureOnStation() {
	r.gestureOnStation = true
}

// ConsumeGestureOnStation reports and clears the gesture-on-station flag.
func (r *Registry) ConsumeGestureOnStation() bool {
	was := r.gestureOnStation
	r.gestureOnStation = false
	return was
}

// notifySelection invokes every observer and the event sink with the new
// selection (nil for a clear). Fires synchronously so dependent state (UI
// panel visibility) reflects the change before the frame continues.
func (r *Registry) notifySelection(st *Station) {
	// Iterate a snapshot: an observer may remove its own handle (or another)
	// mid-notification, which compacts the live slice under the loop.
	handlers := append([]selectionHandler(nil), r.selectionHandlers...)
	for _, h := range handlers {
		h.fn(st)
	}
	ev := RegistryEvent{Kind: EventSelected}
	if st != nil {
		ev.StationID = st.id
		ev.Position = st.pos
	}
	r.emit(ev)
}

func (r *Registry) emit(ev RegistryEvent) {
	if r.sink != nil {
		r.sink.EmitEvent(ev)
	}
}
