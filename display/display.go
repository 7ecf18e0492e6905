// This file is part of VGABall.
//
// VGABall is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VGABall is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VGABall.  If not, see <https://www.gnu.org/licenses/>.

// Package display is an SDL implementation of the vga_ball register file,
// standing in for the FPGA's VGA pipeline when the program is run without
// real hardware. Writes to the coordinate registers move the ball in an SDL
// window; writes to the background registers repaint the fill behind it.
//
// The window starts in the hardware reset state: ball centred, background
// black.
package display

import (
	"math"

	"github.com/jetsetilly/vgaball/curated"
	"github.com/jetsetilly/vgaball/hardware/registers"
	"github.com/jetsetilly/vgaball/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// error patterns for the SDL display.
const (
	SetupFault = "sdl: %v"
	DrawFault  = "sdl: draw: %v"
)

// dimensions of the VGA frame and the ball drawn in it.
const (
	frameWidth  = 640
	frameHeight = 480
	ballRadius  = 16
)

// the ball is drawn in a fixed foreground colour, like the hardware's.
const (
	ballRed   = 0xf0
	ballGreen = 0xd0
	ballBlue  = 0x30
)

// Display is an on-screen register file.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// latched register values, indexed by word. the simulator's equivalent
	// of the hardware's register latches
	regs [registers.MapSize / 4]uint32
}

// NewDisplay creates the SDL window and paints the reset state. The scale
// argument multiplies the 640x480 frame for modern screens.
func NewDisplay(scale float32) (*Display, error) {
	scr := &Display{}

	// hardware reset state: ball centred, background black
	scr.regs[registers.XCoor/4] = 320
	scr.regs[registers.YCoor/4] = 240

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf(SetupFault, err)
	}

	var err error

	scr.window, err = sdl.CreateWindow("VGABall",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(frameWidth*scale), int32(frameHeight*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf(SetupFault, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf(SetupFault, err)
	}

	// everything drawn through the renderer is scaled
	if err := scr.renderer.SetScale(scale, scale); err != nil {
		return nil, curated.Errorf(SetupFault, err)
	}

	if err := scr.paint(); err != nil {
		return nil, err
	}

	logger.Log("sdl", "display simulator ready")

	return scr, nil
}

// WriteWord implements the registers.File interface.
//
// The frame is repainted on a write to the last register of each ordered
// write group (Y for a position, blue for a background) so that one command
// produces one repaint. This mimics the hardware closely enough: a display
// refresh can still sample a half-written group because the latches are
// updated register by register.
func (scr *Display) WriteWord(offset uint32, value uint32) error {
	if offset >= registers.MapSize || offset%4 != 0 {
		return curated.Errorf(DrawFault, "bad register offset")
	}

	scr.regs[offset/4] = value

	switch offset {
	case registers.YCoor, registers.BGBlue:
		return scr.paint()
	}

	return nil
}

// Close implements the registers.File interface.
func (scr *Display) Close() error {
	if scr.renderer != nil {
		scr.renderer.Destroy()
	}
	if scr.window != nil {
		scr.window.Destroy()
	}
	sdl.Quit()
	return nil
}

func (scr *Display) paint() error {
	// keep the window responsive. there is no event loop anywhere else
	sdl.PumpEvents()

	// background fill from the latched colour registers
	err := scr.renderer.SetDrawColor(
		uint8(scr.regs[registers.BGRed/4]),
		uint8(scr.regs[registers.BGGreen/4]),
		uint8(scr.regs[registers.BGBlue/4]),
		255)
	if err != nil {
		return curated.Errorf(DrawFault, err)
	}
	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf(DrawFault, err)
	}

	if err := scr.renderer.SetDrawColor(ballRed, ballGreen, ballBlue, 255); err != nil {
		return curated.Errorf(DrawFault, err)
	}

	// the ball is a filled circle drawn as horizontal spans. coordinates
	// outside the frame simply clip, the way the hardware truncates
	x := int32(scr.regs[registers.XCoor/4])
	y := int32(scr.regs[registers.YCoor/4])
	for dy := int32(-ballRadius); dy <= ballRadius; dy++ {
		dx := int32(math.Sqrt(float64(ballRadius*ballRadius - dy*dy)))
		if err := scr.renderer.DrawLine(x-dx, y+dy, x+dx, y+dy); err != nil {
			return curated.Errorf(DrawFault, err)
		}
	}

	scr.renderer.Present()

	return nil
}
