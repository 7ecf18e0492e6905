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

package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/vgaball/controller"
	"github.com/jetsetilly/vgaball/curated"
	"github.com/jetsetilly/vgaball/display"
	"github.com/jetsetilly/vgaball/hardware/ball"
	"github.com/jetsetilly/vgaball/hardware/registers"
	"github.com/jetsetilly/vgaball/input/rawterm"
	"github.com/jetsetilly/vgaball/logger"
	"github.com/jetsetilly/vgaball/modalflag"
	"github.com/jetsetilly/vgaball/statsview"
)

const usageHelp = `The RUN mode moves the ball one pixel per arrow key. The JUMP mode runs a
fixed-height jump (up arrow) or duck (down arrow) animation per keypress.

Without the -sim flag the register window is memory-mapped from the device
file given with -device, at the physical address given with -base. The
default base address is the lightweight HPS-to-FPGA bridge on the DE1-SoC.`

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "JUMP")

	echoLog := md.AddBool("log", false, "echo log entries to stderr")
	stats := md.AddBool("statsview", false, "run the stats server (requires the statsview build constraint)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		fmt.Fprintln(os.Stdout, usageHelp)
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(10)
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	switch md.Mode() {
	case "RUN":
		err = play(md, false)
	case "JUMP":
		err = play(md, true)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// play runs one of the two control loops over a freshly attached device.
// The returned error is fatal to the process.
func play(md *modalflag.Modes, jump bool) error {
	md.NewMode()

	sim := md.AddBool("sim", true, "simulate the display in an SDL window")
	scale := md.AddFloat64("scale", 1.0, "display simulator scaling")
	device := md.AddString("device", "/dev/mem", "device file with the register window")
	base := md.AddUint64("base", 0xff200000, "physical base address of the register window")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	// any failure from here to the start of the control loop is an attach
	// fault. the process must not attempt partial operation

	var regs registers.File
	if *sim {
		regs, err = display.NewDisplay(float32(*scale))
	} else {
		regs, err = registers.NewMemMap(*device, *base)
	}
	if err != nil {
		return curated.Errorf(ball.AttachFault, err)
	}

	bll, err := ball.Attach(regs)
	if err != nil {
		regs.Close()
		return err
	}
	defer bll.Detach()

	trm, err := rawterm.Open()
	if err != nil {
		return curated.Errorf(ball.AttachFault, err)
	}
	defer trm.Close()

	if jump {
		fmt.Println("up/down arrow keys to jump/duck the ball. press q to quit.")
		return controller.Jump(bll, trm)
	}

	fmt.Println("up/down arrow keys to move the ball. press q to quit.")
	return controller.Simple(bll, trm)
}
