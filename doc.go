// Package interlinked is the interactive map layer of a 2D map-based
// simulation: a damped viewport controller, a station registry with
// exclusive selection, and a gesture gate that turns raw pointer input into
// selection or placement.
//
// # Quick start
//
// Create a [Session] and drive it once per frame from your game loop:
//
//	session := interlinked.NewSession(interlinked.SessionConfig{
//		Navigator: interlinked.NavigatorConfig{MinZoom: 3, MaxZoom: 30},
//		Gate:      interlinked.GateConfig{MinStationSpacing: 1.0},
//	})
//
//	// each frame:
//	frame = interlinked.ReadFrame(frame, screenW, screenH)
//	frame.PointerOverUI = myUI.HoversPointer()
//	session.Update(frame, dt)
//
// The Session enforces the per-frame ordering guarantee: gesture
// classification and registry mutations complete before the camera
// integrates, so a selection made this frame starts its camera ease this
// frame.
//
// # Components
//
// [Navigator] owns the viewport pose: keyboard pan, edge scroll, drag pan
// with throw momentum, smoothed wheel zoom, bounds clamping, and focus-seek.
// [Registry] owns the station collection and the single global selection,
// and focuses the navigator on every selection change. [PlacementGate]
// classifies each pointer-down/up pair (UI interaction, selection, blocked,
// or placement) and creates stations through the registry.
//
// All three are plain structs constructed with explicit configuration;
// there is no package-level state. None of the state machines touch
// hardware: input arrives as [Frame] samples, so everything is testable
// headlessly and synthetic gestures can be injected via
// [Session.InjectClick] and friends or a JSON [ScriptRunner].
//
// The ecs subpackage bridges [RegistryEvent] values into a Donburi world.
package interlinked
