package app

import (
	"testing"
	"time"
)

func TestFPSLimiterUncapped(t *testing.T) {
	f := &FPSLimiter{limit: func() int { return 0 }}

	start := time.Now()
	for i := 0; i < 100; i++ {
		f.Wait()
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("uncapped limiter waited %v", elapsed)
	}
	if !f.next.IsZero() {
		t.Error("uncapped limiter kept a schedule")
	}
}

func TestFPSLimiterPacesFrames(t *testing.T) {
	f := &FPSLimiter{limit: func() int { return 100 }}

	start := time.Now()
	for i := 0; i < 5; i++ {
		f.Wait()
	}
	// Five frames at 100 FPS take at least 50ms.
	if elapsed := time.Since(start); elapsed < 45*time.Millisecond {
		t.Errorf("5 frames at 100 FPS took %v, want >= 45ms", elapsed)
	}
}

func TestFPSLimiterResyncsAfterHitch(t *testing.T) {
	f := &FPSLimiter{limit: func() int { return 100 }}
	f.Wait()

	time.Sleep(50 * time.Millisecond)
	f.Wait()

	if ahead := time.Until(f.next); ahead <= 0 || ahead > 10*time.Millisecond {
		t.Errorf("next frame %v ahead after a hitch, want within one frame", ahead)
	}
}
