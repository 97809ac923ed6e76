package pinchzoom

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var scriptJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	Pointer int     `json:"pointer,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	From    float64 `json:"from,omitempty"`
	To      float64 `json:"to,omitempty"`
	Delta   float64 `json:"delta,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// TraceEntry is the content state recorded by a "mark" step.
type TraceEntry struct {
	Label            string `json:"label"`
	Frame            int    `json:"frame"`
	Scale            Vec3   `json:"scale"`
	Pivot            Vec2   `json:"pivot"`
	AnchoredPosition Vec2   `json:"anchoredPosition"`
}

// ScriptRunner sequences injected gestures across frames for automated
// testing and tuning. Steps:
//
//	press/move/release  pointer, x, y
//	drag                pointer, fromX, fromY, toX, toY, frames
//	pinch               x, y (center), from, to (finger distance), frames
//	scroll              x, y, delta
//	wait                frames
//	mark                label (records a TraceEntry)
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	frame     int
	done      bool
	trace     []TraceEntry
}

// LoadScript parses a JSON gesture script and returns a runner for it.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := scriptJSON.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "release", "drag", "pinch", "scroll", "wait", "mark":
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Trace returns the entries recorded by "mark" steps so far.
func (r *ScriptRunner) Trace() []TraceEntry {
	return r.trace
}

// Run drives v with Replay until the script finishes and the inject queue
// drains, or maxFrames elapse. It returns the number of frames run.
func (r *ScriptRunner) Run(v *PinchView, dt float32, maxFrames int) int {
	n := 0
	for n < maxFrames && !(r.done && v.Input.InjectPending() == 0) {
		r.step(v)
		v.Replay(dt)
		r.frame++
		n++
	}
	return n
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(v *PinchView) {
	if r.done {
		return
	}
	in := v.Input
	// Wait for pending injections to drain before advancing.
	if in.InjectPending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}

	// Consecutive marks record the same frame.
	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++
		if st.Action != "mark" {
			r.exec(v, st)
			break
		}
		r.mark(v, st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) exec(v *PinchView, st scriptStep) {
	in := v.Input
	switch st.Action {
	case "press":
		in.InjectPress(st.Pointer, st.X, st.Y)
	case "move":
		in.InjectMove(st.Pointer, st.X, st.Y)
	case "release":
		in.InjectRelease(st.Pointer, st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		in.InjectPress(st.Pointer, st.FromX, st.FromY)
		steps := frames - 2
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps)
			in.InjectMove(st.Pointer, st.FromX+(st.ToX-st.FromX)*t, st.FromY+(st.ToY-st.FromY)*t)
		}
		in.InjectRelease(st.Pointer, st.ToX, st.ToY)
	case "pinch":
		in.InjectPinch(st.X, st.Y, st.From, st.To, st.Frames)
	case "scroll":
		in.InjectScroll(st.X, st.Y, st.Delta)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}

func (r *ScriptRunner) mark(v *PinchView, label string) {
	content := v.Engine.view.Content()
	r.trace = append(r.trace, TraceEntry{
		Label:            label,
		Frame:            r.frame,
		Scale:            content.Scale,
		Pivot:            content.Pivot,
		AnchoredPosition: content.AnchoredPosition,
	})
}
