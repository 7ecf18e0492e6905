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

// Package logger is the central log for the project. There is only one log
// and it can be accessed through the package level functions.
//
// Log entries are tagged with the sub-system they originate from ("vga_ball",
// "rawterm", "sdl", etc.) and are kept in memory. The contents of the log can
// be written out with the Write() and Tail() functions, or echoed to an
// io.Writer as they arrive with SetEcho(). Repeated entries are collapsed
// into a single entry with a repeat count, which matters when a control loop
// is logging a recurring register fault at frame rate.
package logger
