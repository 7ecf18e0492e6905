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
	"encoding/binary"

	"github.com/jetsetilly/vgaball/curated"
)

// Color is the background fill behind the ball. One 8-bit value per channel.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// Position is the ball position in display pixel space. The visible frame is
// 640x480; the hardware truncates coordinates outside it.
type Position struct {
	X int32
	Y int32
}

// payload sizes in bytes. Color is three channel bytes, Position is two
// little-endian 32-bit words.
const (
	ColorSize    = 3
	PositionSize = 8
)

// command numbers follow the linux ioctl encoding so that the codes agree
// with what the kernel boundary would produce. from asm-generic/ioctl.h.
const (
	iocWrite = 1
	iocRead  = 2

	iocNrBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNrShift   = 0
	iocTypeShift = iocNrShift + iocNrBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits
)

func ioc(dir, typ, nr, size uint32) uint32 {
	return dir<<iocDirShift | typ<<iocTypeShift | nr<<iocNrShift | size<<iocSizeShift
}

func iow(typ, nr, size uint32) uint32 {
	return ioc(iocWrite, typ, nr, size)
}

func iowr(typ, nr, size uint32) uint32 {
	return ioc(iocRead|iocWrite, typ, nr, size)
}

// the ioctl magic number for the vga_ball peripheral.
const cmdMagic = 'q'

// The command set. Each command is paired with a fixed-size payload; the
// WRITE commands consume one, the READ commands produce one.
var (
	CmdWriteBackground = iow(cmdMagic, 1, ColorSize)
	CmdReadBackground  = iowr(cmdMagic, 2, ColorSize)
	CmdWritePos        = iow(cmdMagic, 3, PositionSize)
	CmdReadPos         = iowr(cmdMagic, 4, PositionSize)
)

// Marshal returns the wire form of the Color: one byte per channel, red
// first.
func (col Color) Marshal() []byte {
	return []byte{col.Red, col.Green, col.Blue}
}

// UnmarshalColor decodes the wire form of a Color.
func UnmarshalColor(arg []byte) (Color, error) {
	if len(arg) != ColorSize {
		return Color{}, curated.Errorf(InvalidPayload, len(arg), ColorSize)
	}
	return Color{Red: arg[0], Green: arg[1], Blue: arg[2]}, nil
}

// Marshal returns the wire form of the Position: X then Y, each a
// little-endian 32-bit word.
func (pos Position) Marshal() []byte {
	arg := make([]byte, PositionSize)
	binary.LittleEndian.PutUint32(arg[0:], uint32(pos.X))
	binary.LittleEndian.PutUint32(arg[4:], uint32(pos.Y))
	return arg
}

// UnmarshalPosition decodes the wire form of a Position.
func UnmarshalPosition(arg []byte) (Position, error) {
	if len(arg) != PositionSize {
		return Position{}, curated.Errorf(InvalidPayload, len(arg), PositionSize)
	}
	return Position{
		X: int32(binary.LittleEndian.Uint32(arg[0:])),
		Y: int32(binary.LittleEndian.Uint32(arg[4:])),
	}, nil
}
