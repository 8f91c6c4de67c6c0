package main

import (
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"litsphere/internal/app"
	"litsphere/internal/config"
	"litsphere/internal/input"
	"litsphere/internal/logging"
	"litsphere/internal/profiling"
)

const defaultConfigPath = "configs/litsphere.yaml"

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to the YAML settings file")
	debug := flag.Bool("debug", false, "enable debug logging")
	fps := flag.Int("fps", -1, "frame cap overriding the config file; 0 is uncapped")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := logging.Logger()

	// Runs on normal exit and on SIGINT/SIGTERM; only touches state that is
	// safe off the main thread.
	closer.Bind(func() {
		if top := profiling.TopN(5); top != "" {
			log.Debug("last frame profile", "top", top)
		}
	})
	defer closer.Close()

	settings, err := loadSettings(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}
	config.SetCurrent(settings)
	overrideFPSLimit(*fps)

	if err := run(settings); err != nil {
		log.Error("litsphere stopped", "err", err)
		closer.Fatalln(err)
	}
}

// loadSettings reads path; a missing file at the default location means
// built-in defaults.
func loadSettings(path string) (config.Settings, error) {
	s, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) && path == defaultConfigPath {
		logging.Logger().Info("no config file, using defaults", "path", path)
		return config.Default(), nil
	}
	return s, err
}

// overrideFPSLimit replaces the configured frame cap unless limit is negative.
func overrideFPSLimit(limit int) {
	if limit < 0 {
		return
	}
	config.SetFPSLimit(limit)
	logging.Logger().Info("frame cap overridden", "fps", config.GetFPSLimit())
}

func run(settings config.Settings) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := app.SetupWindow(settings.Screen)
	if err != nil {
		return err
	}
	defer window.Destroy()

	a := app.New(window, input.NewInputManager(), settings)
	if err := a.Init(); err != nil {
		return err
	}
	defer a.Dispose()

	return a.Run()
}
