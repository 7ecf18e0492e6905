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

// Package ball is the driver core for the vga_ball peripheral. It owns the
// register file and the authoritative mirror of device state: the last
// background colour and ball position successfully written. The hardware is
// never read back; read operations return the mirror verbatim.
//
// The driver can be used through the typed functions (WriteBackground(),
// WritePos(), etc.) or through the Command() function, which dispatches on
// the same opaque command numbers and fixed-size payloads that the kernel
// ioctl boundary uses. The two sides of that boundary are compiled
// independently so the numbering and payload layout in commands.go is the
// contract; it must not change without changing it everywhere.
//
// Register write ordering is part of the hardware contract: X before Y for a
// position, red before green before blue for a background. The display
// refresh may sample the registers mid-update; the driver makes no attempt
// to hide that.
//
// The driver assumes a single controller process and a single thread of
// access. There is no locking.
package ball
