//go:build !ebiten

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/ushitora-anqou/ddkit/config"
	"github.com/ushitora-anqou/ddkit/ddk"
	"github.com/ushitora-anqou/ddkit/dialog"
	"github.com/ushitora-anqou/ddkit/pad"
	"github.com/ushitora-anqou/ddkit/util"
	"github.com/ushitora-anqou/ddkit/window"
)

func init() {
	// SDL wants every video call on the main thread.
	runtime.LockOSThread()
}

func runSDL2(cfg *config.Config) error {
	// Initialize SDL
	if err := window.SDLInitialize(); err != nil {
		util.Fatal(err)
	}
	defer window.SDLFinalize()

	// Create a window
	wind, err := window.NewSDLWindow(cfg.Mode)
	if err != nil {
		util.Fatal(err)
	}
	wind.SetIcon(cfg.IconPath)

	frame := ddk.New(
		wind,
		cfg.Mode,
		pad.NewPad(cfg.PresetPath, cfg.Mute),
		ddk.WithPicker(dialog.New(cfg.Mode.Title, "*.sfx", "*.yaml")),
	)
	defer frame.Close()

	return frame.Run()
}

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := util.InitLogger(cfg.Trace); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer util.Sync()

	if cfg.CPUProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.CPUProfile), profile.NoShutdownHook).Stop()
	}

	if err := runSDL2(cfg); err != nil {
		util.Logger().Error("run failed", zap.Error(err))
	}
}
