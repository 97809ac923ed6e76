package pinchzoom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInjectDrag(t *testing.T) {
	rec := &inputRecorder{}
	in := NewInput(rec)

	in.InjectPress(0, 10, 10)
	in.InjectMove(0, 50, 10)
	in.InjectMove(0, 90, 10)
	in.InjectRelease(0, 90, 10)
	if in.InjectPending() != 4 {
		t.Fatalf("expected 4 queued frames, got %d", in.InjectPending())
	}

	// Frame 1: press only.
	in.processInjectedInput()
	if len(rec.log) != 0 {
		t.Fatalf("press frame produced events: %v", rec.log)
	}

	for in.processInjectedInput() {
	}
	want := []string{"begin:0", "drag:0", "drag:0", "end:0"}
	if diff := cmp.Diff(want, rec.log); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestInjectPinch(t *testing.T) {
	rec := &inputRecorder{}
	in := NewInput(rec)

	in.InjectPinch(100, 100, 50, 150, 4)
	if in.InjectPending() != 4 {
		t.Fatalf("expected 4 queued frames, got %d", in.InjectPending())
	}
	for in.ProcessInjected() {
	}

	want := []string{
		"begin:1", "drag:1", "begin:2", "drag:2", // spread to 100
		"drag:1", "drag:2", // spread to 150
		"end:1", "end:2",
	}
	if diff := cmp.Diff(want, rec.log); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	last := rec.events[len(rec.events)-1]
	if last.Position != (Vec2{175, 100}) {
		t.Errorf("final second finger = %v, want (175, 100)", last.Position)
	}
}

func TestInjectPinchMinimumFrames(t *testing.T) {
	in := NewInput(&inputRecorder{})
	in.InjectPinch(0, 0, 10, 20, 0)
	if got := in.InjectPending(); got != 2 {
		t.Errorf("pending = %d, want 2 (press and release)", got)
	}
}

func TestInjectScroll(t *testing.T) {
	rec := &inputRecorder{}
	in := NewInput(rec)
	in.InjectScroll(30, 40, 0.5)
	in.processInjectedInput()
	if want := []string{"scroll:0"}; !cmp.Equal(want, rec.log) {
		t.Fatalf("events = %v, want %v", rec.log, want)
	}
	if got := rec.events[0].ScrollDelta; got != (Vec2{0, 0.5}) {
		t.Errorf("ScrollDelta = %v, want (0, 0.5)", got)
	}
}

func TestInjectWait(t *testing.T) {
	rec := &inputRecorder{}
	in := NewInput(rec)
	in.InjectWait(3)
	for i := 0; i < 3; i++ {
		if !in.processInjectedInput() {
			t.Fatalf("frame %d: expected a queued empty frame", i)
		}
	}
	if in.processInjectedInput() {
		t.Error("queue should be empty")
	}
	if len(rec.log) != 0 {
		t.Errorf("wait frames produced events: %v", rec.log)
	}
}

func TestInjectEmptyQueue(t *testing.T) {
	in := NewInput(&inputRecorder{})
	if in.ProcessInjected() {
		t.Error("ProcessInjected = true on empty queue")
	}
}
