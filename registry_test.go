package interlinked

import (
	"testing"
)

func newTestRegistry() (*Registry, *Navigator) {
	nav := NewNavigator(NavigatorConfig{})
	return NewRegistry(nav, RegistryConfig{}), nav
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	reg, _ := newTestRegistry()

	a := reg.Create(Vec2{X: 0, Y: 0}, StationStop)
	b := reg.Create(Vec2{X: 5, Y: 0}, StationStop)
	if a.ID() != 1 || b.ID() != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", a.ID(), b.ID())
	}

	// IDs are never reused, even after deletion.
	reg.Delete(b)
	c := reg.Create(Vec2{X: 10, Y: 0}, StationStop)
	if c.ID() != 3 {
		t.Errorf("id after delete = %d, want 3", c.ID())
	}
}

func TestSelectToggleLaw(t *testing.T) {
	reg, _ := newTestRegistry()
	st := reg.Create(Vec2{}, StationStop)

	reg.Select(st)
	if reg.Selected() != st || !st.Selected() {
		t.Fatal("first select did not select the station")
	}
	reg.Select(st)
	if reg.Selected() != nil || st.Selected() {
		t.Error("selecting the selected station did not clear the selection")
	}
}

func TestSelectSwitchesSelection(t *testing.T) {
	reg, _ := newTestRegistry()
	a := reg.Create(Vec2{X: 0, Y: 0}, StationStop)
	b := reg.Create(Vec2{X: 5, Y: 0}, StationInterchange)

	reg.Select(a)
	reg.Select(b)
	if a.Selected() {
		t.Error("previous selection flag not cleared")
	}
	if !b.Selected() || reg.Selected() != b {
		t.Error("new station not selected")
	}
}

func TestSelectionExclusivity(t *testing.T) {
	reg, _ := newTestRegistry()

	var stations []*Station
	for i := 0; i < 5; i++ {
		stations = append(stations, reg.Create(Vec2{X: float64(i) * 10}, StationStop))
	}

	checkInvariant := func(op string) {
		t.Helper()
		count := 0
		reg.Each(func(st *Station) {
			if st.Selected() {
				count++
				if reg.Selected() != st {
					t.Fatalf("%s: flagged station %d is not the registry selection", op, st.ID())
				}
			}
		})
		if count > 1 {
			t.Fatalf("%s: %d stations flagged selected", op, count)
		}
		if count == 0 && reg.Selected() != nil {
			t.Fatalf("%s: registry selection set but no station flagged", op)
		}
	}

	ops := []func(){
		func() { reg.Select(stations[0]) },
		func() { reg.Select(stations[3]) },
		func() { reg.Select(stations[3]) }, // toggle off
		func() { reg.Select(stations[1]) },
		func() { reg.Delete(stations[1]) }, // delete the selection
		func() { reg.Select(stations[4]) },
		func() { reg.ClearSelection() },
		func() { reg.Select(stations[2]) },
		func() { reg.Delete(stations[0]) }, // delete a non-selected station
	}
	for i, op := range ops {
		op()
		checkInvariant("op " + string(rune('0'+i)))
	}
}

func TestClearSelectionAlwaysNotifies(t *testing.T) {
	reg, _ := newTestRegistry()

	var calls int
	var last *Station
	reg.OnSelectionChanged(func(st *Station) {
		calls++
		last = st
	})

	reg.ClearSelection() // nothing selected, still notifies
	if calls != 1 || last != nil {
		t.Errorf("calls = %d, last = %v; want 1 call with nil", calls, last)
	}
}

func TestSelectFocusesNavigator(t *testing.T) {
	reg, nav := newTestRegistry()
	st := reg.Create(Vec2{X: 42, Y: 17}, StationStop)

	reg.Select(st)
	if !nav.Seeking() {
		t.Fatal("selection did not start a focus-seek")
	}
	for i := 0; i < 2000 && nav.Seeking(); i++ {
		nav.Tick(idleFrame(), dt)
	}
	if nav.Position.X != 42 || nav.Position.Y != 17 {
		t.Errorf("focus converged at (%f, %f), want station position (42, 17)",
			nav.Position.X, nav.Position.Y)
	}
}

func TestNilNavigatorDisablesFocusFollow(t *testing.T) {
	reg := NewRegistry(nil, RegistryConfig{})
	st := reg.Create(Vec2{X: 1}, StationStop)
	reg.Select(st) // must not panic
	if reg.Selected() != st {
		t.Error("selection failed without a navigator")
	}
}

func TestDeleteSelectedNotifiesBeforeRemoval(t *testing.T) {
	reg, _ := newTestRegistry()
	st := reg.Create(Vec2{}, StationStop)
	reg.Select(st)

	var calls int
	var presentAtNotify bool
	reg.OnSelectionChanged(func(sel *Station) {
		calls++
		if sel != nil {
			t.Errorf("delete notification carried %v, want nil", sel)
		}
		presentAtNotify = reg.Get(st.ID()) != nil
	})

	reg.Delete(st)

	if calls != 1 {
		t.Errorf("delete emitted %d selection notifications, want exactly 1", calls)
	}
	if !presentAtNotify {
		t.Error("station already removed when observers were notified")
	}
	if reg.Get(st.ID()) != nil {
		t.Error("station still registered after delete")
	}
	if reg.Selected() != nil {
		t.Error("selection survived deletion")
	}
}

func TestDeleteUnregisteredIsNoOp(t *testing.T) {
	reg, _ := newTestRegistry()
	st := reg.Create(Vec2{}, StationStop)

	reg.Delete(st)
	reg.Delete(st) // already deleted
	reg.Delete(nil)
	if reg.Len() != 0 {
		t.Errorf("Len = %d, want 0", reg.Len())
	}
}

func TestSelectUnregisteredIsNoOp(t *testing.T) {
	reg, _ := newTestRegistry()
	st := reg.Create(Vec2{}, StationStop)
	reg.Delete(st)

	reg.Select(st)
	if reg.Selected() != nil {
		t.Error("selecting a deleted station changed the selection")
	}
}

func TestProximityConflict(t *testing.T) {
	reg, _ := newTestRegistry()

	if reg.ProximityConflict(Vec2{}, 100) {
		t.Error("conflict reported on an empty registry")
	}

	reg.Create(Vec2{X: 0, Y: 0}, StationStop)

	tests := []struct {
		name string
		pos  Vec2
		dist float64
		want bool
	}{
		{"well inside", Vec2{X: 0.5, Y: 0}, 1.0, true},
		{"exactly at spacing", Vec2{X: 1.0, Y: 0}, 1.0, true},
		{"just outside", Vec2{X: 1.001, Y: 0}, 1.0, false},
		{"far away", Vec2{X: 50, Y: 50}, 1.0, false},
		{"diagonal inside", Vec2{X: 0.6, Y: 0.6}, 1.0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.ProximityConflict(tt.pos, tt.dist); got != tt.want {
				t.Errorf("ProximityConflict(%+v, %v) = %v, want %v", tt.pos, tt.dist, got, tt.want)
			}
		})
	}
}

func TestStationAt(t *testing.T) {
	reg, _ := newTestRegistry() // default hit radius 0.4
	a := reg.Create(Vec2{X: 0, Y: 0}, StationStop)
	b := reg.Create(Vec2{X: 0.6, Y: 0}, StationStop)

	if got := reg.StationAt(Vec2{X: 0.1, Y: 0}); got != a {
		t.Errorf("StationAt near a = %v, want a", got)
	}
	if got := reg.StationAt(Vec2{X: 5, Y: 5}); got != nil {
		t.Errorf("StationAt empty space = %v, want nil", got)
	}
	// Overlapping hit circles: the closer station wins.
	if got := reg.StationAt(Vec2{X: 0.35, Y: 0}); got != b {
		t.Errorf("StationAt overlap = station %d, want %d", got.ID(), b.ID())
	}
}

func TestObserverRemove(t *testing.T) {
	reg, _ := newTestRegistry()
	st := reg.Create(Vec2{}, StationStop)

	var calls int
	handle := reg.OnSelectionChanged(func(*Station) { calls++ })

	reg.Select(st)
	handle.Remove()
	reg.ClearSelection()

	if calls != 1 {
		t.Errorf("calls = %d after Remove, want 1", calls)
	}
	handle.Remove() // double remove is a no-op
}

func TestObserverRemovesItselfDuringNotification(t *testing.T) {
	reg, _ := newTestRegistry()
	st := reg.Create(Vec2{}, StationStop)

	var oneShot, steady int
	var handle CallbackHandle
	handle = reg.OnSelectionChanged(func(*Station) {
		oneShot++
		handle.Remove()
	})
	reg.OnSelectionChanged(func(*Station) { steady++ })

	reg.Select(st) // must not panic; both observers fire this time
	reg.ClearSelection()

	if oneShot != 1 {
		t.Errorf("self-removing observer fired %d times, want 1", oneShot)
	}
	if steady != 2 {
		t.Errorf("remaining observer fired %d times, want 2", steady)
	}
}

func TestGestureFlagConsumedOnce(t *testing.T) {
	reg, _ := newTestRegistry()

	if reg.ConsumeGestureOnStation() {
		t.Error("flag set on a fresh registry")
	}
	reg.MarkGestureOnStation()
	if !reg.ConsumeGestureOnStation() {
		t.Error("flag not reported after mark")
	}
	if reg.ConsumeGestureOnStation() {
		t.Error("flag survived consumption")
	}
}

type recordingSink struct {
	events []RegistryEvent
}

func (s *recordingSink) EmitEvent(ev RegistryEvent) {
	s.events = append(s.events, ev)
}

func TestEventSinkReceivesLifecycle(t *testing.T) {
	reg, _ := newTestRegistry()
	sink := &recordingSink{}
	reg.SetEventSink(sink)

	st := reg.Create(Vec2{X: 3, Y: 4}, StationStop)
	reg.Select(st)
	reg.Delete(st)

	want := []EventKind{EventPlaced, EventSelected, EventSelected, EventDeleted}
	if len(sink.events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(sink.events), len(want), sink.events)
	}
	for i, k := range want {
		if sink.events[i].Kind != k {
			t.Errorf("event %d kind = %v, want %v", i, sink.events[i].Kind, k)
		}
	}
	if sink.events[0].StationID != st.ID() || sink.events[0].Position.X != 3 {
		t.Errorf("placed event = %+v", sink.events[0])
	}
}
