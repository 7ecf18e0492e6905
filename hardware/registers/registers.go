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

// Package registers defines the register file of the vga_ball peripheral.
//
// The peripheral exposes five 32-bit registers at fixed byte offsets from
// its base address. Writing the coordinate registers moves the ball on the
// next display refresh. Writing the background registers changes the fill
// colour behind it. The registers cannot be read back; the driver keeps its
// own mirror of what was last written (see the ball package).
//
// The File interface abstracts the register window so that the driver core
// is indifferent to whether it is talking to memory-mapped hardware, the
// SDL simulator in the display package, or a fake in a test.
package registers

// Register offsets from the peripheral's base address. Each register is a
// little-endian 32-bit word.
const (
	XCoor   = 0x00
	YCoor   = 0x04
	BGRed   = 0x08
	BGGreen = 0x0c
	BGBlue  = 0x10
)

// MapSize is the size of the register window in bytes.
const MapSize = 0x20

// File is a writable register file at the fixed vga_ball byte offsets.
//
// Implementations are not required to tolerate offsets outside the register
// window or unaligned offsets; they should fail rather than write.
type File interface {
	// WriteWord writes a 32-bit word to the register at the given byte
	// offset. The write is observable externally (it drives the display).
	WriteWord(offset uint32, value uint32) error

	// Close releases the register window. No register reset is performed.
	Close() error
}
