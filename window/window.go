// Package window provides the backends a ddk.Frame draws through: SDL2 by
// default, ebiten with the ebiten build tag.
package window

import (
	"github.com/ushitora-anqou/ddkit/ddk"
	"github.com/ushitora-anqou/ddkit/util"
)

func checkMode(mode ddk.Mode) error {
	if err := mode.Validate(); err != nil {
		return ddk.NewSetupError("ddkSetMode", err)
	}
	util.Trace("set mode %dx%d %dbpp fullscreen=%v", mode.Width, mode.Height, mode.Depth, mode.Fullscreen)
	return nil
}
