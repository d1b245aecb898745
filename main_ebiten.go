//go:build ebiten

package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/ushitora-anqou/ddkit/config"
	"github.com/ushitora-anqou/ddkit/ddk"
	"github.com/ushitora-anqou/ddkit/dialog"
	"github.com/ushitora-anqou/ddkit/pad"
	"github.com/ushitora-anqou/ddkit/util"
	"github.com/ushitora-anqou/ddkit/window"
)

// Game lets ebiten drive the frame loop one Step per tick.
type Game struct {
	frame *ddk.Frame
	wind  *window.EbitenWindow
}

func NewGame(wind *window.EbitenWindow, frame *ddk.Frame) *Game {
	return &Game{frame, wind}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.wind.Layout(outsideWidth, outsideHeight)
}

func (g *Game) Update() error {
	if !g.frame.Step() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.wind.Draw(screen)
}

func runEbiten(cfg *config.Config) error {
	if err := window.EbitenInitialize(cfg.Mode); err != nil {
		util.Fatal(err)
	}

	wind, err := window.NewEbitenWindow(cfg.Mode)
	if err != nil {
		util.Fatal(err)
	}

	// ebiten paces the loop itself.
	frame := ddk.New(
		wind,
		cfg.Mode,
		pad.NewPad(cfg.PresetPath, cfg.Mute),
		ddk.WithPicker(dialog.New(cfg.Mode.Title, "*.sfx", "*.yaml")),
		ddk.WithoutPacing(),
	)
	defer frame.Close()

	if err := frame.Start(); err != nil {
		return err
	}
	return ebiten.RunGame(NewGame(wind, frame))
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

	if err := runEbiten(cfg); err != nil {
		util.Logger().Error("run failed", zap.Error(err))
	}
}
