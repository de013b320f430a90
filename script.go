package interlinked

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for an interaction script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected pointer gestures across frames for
// automated interaction testing. Attach to a Session via SetScriptRunner;
// one step is dispatched per Update until the script is exhausted.
//
// Supported actions: "press", "move", "release" (x, y), "click" (x, y),
// "drag" (x, y, toX, toY, frames), and "wait" (frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON interaction script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse interaction script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse interaction script: no steps")
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether all steps have been dispatched.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step dispatches the next script step into the session's injection queue.
// Called from Session.Update once per frame.
func (r *ScriptRunner) step(s *Session) {
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}
	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.X, st.Y, st.ToX, st.ToY, st.Frames)
	case "wait":
		r.waitCount = st.Frames
	default:
		warnf("script: unknown action %q (step %d)", st.Action, r.cursor-1)
	}
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
