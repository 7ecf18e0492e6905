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

package ball

import (
	"github.com/jetsetilly/vgaball/curated"
	"github.com/jetsetilly/vgaball/hardware/registers"
	"github.com/jetsetilly/vgaball/logger"
)

// error patterns for the driver core.
const (
	// the register file is unreachable or an I/O call failed. the offending
	// command's effect has not been applied to the mirror.
	IoFault = "vga_ball: register file: %v"

	// the command number is not one of the command set. this is a contract
	// violation between controller and driver and should never occur in
	// correct operation.
	InvalidCommand = "vga_ball: invalid command %#08x"

	// the payload does not have the fixed size the command requires.
	InvalidPayload = "vga_ball: invalid payload: %d bytes (wanted %d)"

	// device setup failed. fatal; the process should not attempt partial
	// operation.
	AttachFault = "vga_ball: attach: %v"
)

// default device state written/assumed at attach time.
var (
	// DefaultBackground is written to the background registers at attach
	// time. Beige, like the lab hardware comes up with.
	DefaultBackground = Color{Red: 0xf9, Green: 0xe4, Blue: 0xb7}

	// ResetPosition is the ball position after hardware reset. It is not
	// written at attach time; the mirror is seeded with it on the assumption
	// that the hardware is in its reset state.
	ResetPosition = Position{X: 320, Y: 240}
)

// Ball is the driver core for the vga_ball peripheral.
//
// The background and position fields are the driver-side mirror of device
// state. The mirror is updated only after every register write for a command
// has succeeded, so it always equals the last value successfully written.
type Ball struct {
	regs registers.File

	background Color
	position   Position
}

// Attach creates a driver core over the given register file, writes the
// default background and seeds the position mirror with the hardware reset
// value.
func Attach(regs registers.File) (*Ball, error) {
	bll := &Ball{
		regs:     regs,
		position: ResetPosition,
	}

	if err := bll.WriteBackground(DefaultBackground); err != nil {
		return nil, curated.Errorf(AttachFault, err)
	}

	logger.Log("vga_ball", "device attached")

	return bll, nil
}

// Detach releases the register file. The registers are left as they are.
func (bll *Ball) Detach() error {
	logger.Log("vga_ball", "device detached")
	return bll.regs.Close()
}

// WriteBackground writes the background colour to the hardware and mirrors
// it. Channel registers are written red, green, blue, in that order.
func (bll *Ball) WriteBackground(col Color) error {
	if err := bll.regs.WriteWord(registers.BGRed, uint32(col.Red)); err != nil {
		return curated.Errorf(IoFault, err)
	}
	if err := bll.regs.WriteWord(registers.BGGreen, uint32(col.Green)); err != nil {
		return curated.Errorf(IoFault, err)
	}
	if err := bll.regs.WriteWord(registers.BGBlue, uint32(col.Blue)); err != nil {
		return curated.Errorf(IoFault, err)
	}

	bll.background = col

	return nil
}

// ReadBackground returns the mirrored background colour. The hardware is not
// read.
func (bll *Ball) ReadBackground() Color {
	return bll.background
}

// WritePos writes the ball position to the hardware and mirrors it. The X
// register is written before the Y register, matching the hardware contract.
func (bll *Ball) WritePos(pos Position) error {
	if err := bll.regs.WriteWord(registers.XCoor, uint32(pos.X)); err != nil {
		return curated.Errorf(IoFault, err)
	}
	if err := bll.regs.WriteWord(registers.YCoor, uint32(pos.Y)); err != nil {
		return curated.Errorf(IoFault, err)
	}

	bll.position = pos

	return nil
}

// ReadPos returns the mirrored ball position. The hardware is not read.
func (bll *Ball) ReadPos() Position {
	return bll.position
}

// Command dispatches an opaque command number with its fixed-size payload.
// WRITE commands consume arg and return nil; READ commands ignore arg and
// return the payload. This is the request/response channel the userspace
// side of the boundary uses.
func (bll *Ball) Command(cmd uint32, arg []byte) ([]byte, error) {
	switch cmd {
	case CmdWriteBackground:
		col, err := UnmarshalColor(arg)
		if err != nil {
			return nil, err
		}
		return nil, bll.WriteBackground(col)

	case CmdReadBackground:
		return bll.ReadBackground().Marshal(), nil

	case CmdWritePos:
		pos, err := UnmarshalPosition(arg)
		if err != nil {
			return nil, err
		}
		return nil, bll.WritePos(pos)

	case CmdReadPos:
		return bll.ReadPos().Marshal(), nil
	}

	// a command number outside the command set means the two sides of the
	// boundary disagree about the contract
	logger.Logf("vga_ball", "invalid command %#08x", cmd)
	return nil, curated.Errorf(InvalidCommand, cmd)
}
