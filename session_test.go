package interlinked

import (
	"testing"
)

// baseFrame is the ambient input for session tests: 800x600 screen, cursor
// parked mid-screen.
func baseFrame() Frame {
	return Frame{CursorX: 400, CursorY: 300, ScreenW: 800, ScreenH: 600}
}

func newTestSession() *Session {
	return NewSession(SessionConfig{
		Gate: GateConfig{MinStationSpacing: 1.0},
	})
}

// run advances the session n frames with ambient input.
func run(s *Session, n int) {
	for i := 0; i < n; i++ {
		s.Update(baseFrame(), dt)
	}
}

func TestSessionWiresComponents(t *testing.T) {
	s := newTestSession()
	if s.Navigator() == nil || s.Registry() == nil || s.Gate() == nil {
		t.Fatal("session left a component unconstructed")
	}
}

func TestSelectionFocusBeginsSameFrame(t *testing.T) {
	s := newTestSession()
	st := s.Registry().Create(Vec2{X: 5, Y: 0}, StationStop)

	// Press directly on the station: the gate selects it and the navigator
	// must begin easing within this same Update.
	sx, sy := s.Navigator().WorldToScreen(st.Position(), 800, 600)
	frame := baseFrame()
	frame.CursorX, frame.CursorY = sx, sy
	frame.PrimaryHeld = true
	s.Update(frame, dt)

	if s.Registry().Selected() != st {
		t.Fatal("station not selected")
	}
	if !s.Navigator().Seeking() {
		t.Fatal("focus-seek not active after selecting frame")
	}
	if s.Navigator().Position.X <= 0 {
		t.Errorf("camera X = %f after selecting frame, want progress toward 5",
			s.Navigator().Position.X)
	}
}

func TestSessionDerivesButtonEdges(t *testing.T) {
	s := newTestSession()

	frame := baseFrame()
	frame.PrimaryHeld = true
	s.Update(frame, dt) // down edge
	s.Update(frame, dt) // held: no edge
	s.Update(frame, dt) // held: no edge
	frame.PrimaryHeld = false
	kind := s.Update(frame, dt) // up edge

	if kind != GesturePlaced {
		t.Fatalf("gesture = %v, want placed", kind)
	}
	if s.Registry().Len() != 1 {
		t.Errorf("Len = %d, want exactly 1 placement per gesture", s.Registry().Len())
	}
}

func TestInjectClickPlacesStation(t *testing.T) {
	s := newTestSession()

	s.InjectClick(430, 330)
	run(s, 2)

	if s.Registry().Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Registry().Len())
	}
	st := s.Registry().Get(1)
	if !approxEqual(st.Position().X, 1, 1e-9) || !approxEqual(st.Position().Y, 1, 1e-9) {
		t.Errorf("placed at %+v, want (1, 1)", st.Position())
	}
}

func TestInjectDragOffStation(t *testing.T) {
	s := newTestSession()
	st := s.Registry().Create(Vec2{X: 0, Y: 0}, StationStop)

	sx, sy := s.Navigator().WorldToScreen(st.Position(), 800, 600)
	s.InjectDrag(sx, sy, 700, 120, 6)
	run(s, 6)

	if s.Registry().Len() != 1 {
		t.Errorf("Len = %d, drag off a station must not place", s.Registry().Len())
	}
	if s.Registry().Selected() != st {
		t.Error("selection not on the originating station")
	}
}

func TestInjectEventsConsumedOnePerFrame(t *testing.T) {
	s := newTestSession()
	s.InjectClick(400, 300)
	s.InjectClick(500, 300)

	run(s, 1)
	if s.Registry().Len() != 0 {
		t.Fatal("placement resolved before the release event was consumed")
	}
	run(s, 3)
	if s.Registry().Len() != 2 {
		t.Errorf("Len = %d after both clicks, want 2", s.Registry().Len())
	}
}

func TestScriptRunnerEndToEnd(t *testing.T) {
	s := newTestSession()
	runner, err := LoadScript([]byte(`{
		"steps": [
			{"action": "click", "x": 400, "y": 300},
			{"action": "wait", "frames": 3},
			{"action": "click", "x": 520, "y": 300},
			{"action": "drag", "x": 520, "y": 300, "toX": 640, "toY": 300, "frames": 4}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScriptRunner(runner)

	run(s, 40)

	if !runner.Done() {
		t.Error("script not done after ample frames")
	}
	// Click 1 places at (0,0); click 2 places at (4,0); the drag starts on
	// station 2 (selecting it) and releases on empty map, placing nothing.
	if s.Registry().Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Registry().Len())
	}
	if sel := s.Registry().Selected(); sel == nil || sel.ID() != 2 {
		t.Errorf("Selected = %v, want station 2", sel)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"steps": [`},
		{"no steps", `{"steps": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestClockSnapshotZeroValue(t *testing.T) {
	var snap ClockSnapshot
	if snap.EpochTicks != 0 || snap.Scale != 0 {
		t.Errorf("zero snapshot = %+v", snap)
	}
}
