package profiling

import (
	"strings"
	"testing"
	"time"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	t.Cleanup(ResetFrame)

	stop := Track("renderer.Frame")
	time.Sleep(time.Millisecond)
	stop()
	Track("renderer.Frame")()

	snap := Snapshot()
	if snap["renderer.Frame"] < time.Millisecond {
		t.Errorf("tracked duration = %v, want at least 1ms", snap["renderer.Frame"])
	}
}

func TestResetFrame(t *testing.T) {
	record("a", time.Millisecond)
	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Errorf("Snapshot() after ResetFrame has %d entries, want 0", len(Snapshot()))
	}
}

func TestTopNOrdering(t *testing.T) {
	ResetFrame()
	t.Cleanup(ResetFrame)

	record("renderer.RenderScene", 2100*time.Microsecond)
	record("renderer.Frame", 4200*time.Microsecond)
	record("glfw.PollEvents", 3*time.Millisecond)
	record("tiny", 100*time.Microsecond)

	got := TopN(3)
	want := "renderer.Frame:4.2ms, glfw.PollEvents:3ms, renderer.RenderScene:2.1ms"
	if got != want {
		t.Errorf("TopN(3) = %q, want %q", got, want)
	}

	if all := Top(10); len(all) != 4 {
		t.Errorf("Top(10) returned %d entries, want 4", len(all))
	}
	if strings.Contains(TopN(0), ":") {
		t.Errorf("TopN(0) = %q, want empty", TopN(0))
	}
}
