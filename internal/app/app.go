package app

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"litsphere/internal/config"
	"litsphere/internal/graphics"
	"litsphere/internal/graphics/renderer"
	"litsphere/internal/input"
	"litsphere/internal/logging"
	"litsphere/internal/profiling"
)

// App runs the viewer: it feeds window input to the renderer once per frame.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	renderer     *renderer.Renderer
	settings     config.Settings

	fpsLimiter *FPSLimiter

	// logProfile logs every frame's profile, not just slow ones.
	logProfile bool
	frames     int
}

// New wires an App to window. Call Init before Run.
func New(window *glfw.Window, im *input.InputManager, settings config.Settings) *App {
	return &App{
		window:       window,
		inputManager: im,
		settings:     settings,
		fpsLimiter:   NewFPSLimiter(),
		renderer: renderer.New(
			graphics.NewBackend(""),
			renderer.WithNotifier(NewAlertNotifier(os.Stderr)),
			renderer.WithSettings(settings),
		),
	}
}

// Init creates the scene for the window's framebuffer size. On failure
// everything created so far is released.
func (a *App) Init() error {
	width, height := a.window.GetFramebufferSize()
	if err := a.renderer.Initialize(width, height, a.window); err != nil {
		a.renderer.Shutdown()
		return fmt.Errorf("could not initialize renderer: %w", err)
	}
	a.inputManager.SetCallbacks(a.window)
	return nil
}

// Run renders frames until the window closes or a frame fails.
func (a *App) Run() error {
	start := time.Now()
	for !a.window.ShouldClose() {
		if err := a.tick(); err != nil {
			return err
		}
	}

	if secs := time.Since(start).Seconds(); secs > 0 {
		logging.Logger().Info("app: stopped", "frames", a.frames, "avg_fps", float64(a.frames)/secs)
	}
	return nil
}

func (a *App) tick() error {
	profiling.ResetFrame()
	startTick := time.Now()

	func() {
		defer profiling.Track("glfw.PollEvents")()
		glfw.PollEvents()
	}()

	if a.inputManager.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if a.inputManager.JustPressed(input.ActionToggleProfiling) {
		a.logProfile = !a.logProfile
		logging.Logger().Info("app: frame profiling", "enabled", a.logProfile)
	}

	zoom, rotateX, rotateY := a.inputManager.Deltas(a.settings.Input)
	if err := a.renderer.Frame(zoom, rotateX, rotateY); err != nil {
		return fmt.Errorf("frame %d: %w", a.frames, err)
	}
	a.frames++

	// Check if frame took too long
	processingDuration := time.Since(startTick)
	slow := time.Duration(a.settings.SlowFrameMillis) * time.Millisecond
	switch {
	case processingDuration > slow:
		logging.Logger().Warn("app: slow frame", "duration", processingDuration, "top", profiling.TopN(5))
	case a.logProfile:
		logging.Logger().Info("app: frame", "duration", processingDuration, "top", profiling.TopN(5))
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	a.fpsLimiter.Wait()
	return nil
}

// Dispose releases the scene. The window stays open.
func (a *App) Dispose() {
	a.renderer.Shutdown()
}
