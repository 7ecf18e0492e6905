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

// Package rawterm supplies the raw input bytes the input package decodes.
// It is a wrapper for "github.com/pkg/term/termios", putting the terminal
// into non-canonical, no-echo mode and restoring the saved attributes on
// Close().
//
// Reads are non-blocking at the terminal level; waiting is done with
// poll(2) so a caller can choose between an indefinite wait and a fixed
// timeout per read.
package rawterm

import (
	"os"
	"time"

	"github.com/jetsetilly/vgaball/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// error patterns for the raw terminal.
const (
	SetupFault = "rawterm: %v"
	ReadFault  = "rawterm: read: %v"
)

// the read buffer is the same size the original userspace tool used. an
// arrow key produces three bytes so eight is plenty per poll cycle.
const readBufferSize = 8

// Terminal is a source of raw input bytes.
type Terminal struct {
	input *os.File

	// terminal attributes at Open() time, restored on Close()
	canAttr unix.Termios
}

// Open puts the process's standard input into raw mode.
func Open() (*Terminal, error) {
	trm := &Terminal{input: os.Stdin}

	if err := termios.Tcgetattr(trm.input.Fd(), &trm.canAttr); err != nil {
		return nil, curated.Errorf(SetupFault, err)
	}

	// turn off canonical mode and echo. reads return immediately with
	// whatever is pending (VMIN and VTIME both zero); waiting is the
	// responsibility of the Read() function
	rawAttr := trm.canAttr
	rawAttr.Lflag &^= unix.ICANON | unix.ECHO
	rawAttr.Cc[unix.VMIN] = 0
	rawAttr.Cc[unix.VTIME] = 0

	if err := termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &rawAttr); err != nil {
		return nil, curated.Errorf(SetupFault, err)
	}

	return trm, nil
}

// Close restores the terminal attributes saved by Open().
func (trm *Terminal) Close() error {
	if err := termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &trm.canAttr); err != nil {
		return curated.Errorf(SetupFault, err)
	}
	return nil
}

// Read waits for input and returns the available bytes, up to the size of
// the read buffer. A negative timeout waits indefinitely; a zero timeout
// returns whatever is pending without waiting at all.
//
// A nil buffer without an error means the wait timed out or was
// interrupted.
func (trm *Terminal) Read(timeout time.Duration) ([]byte, error) {
	fds := []unix.PollFd{{
		Fd:     int32(trm.input.Fd()),
		Events: unix.POLLIN,
	}}

	ms := -1
	if timeout >= 0 {
		ms = int(timeout / time.Millisecond)
	}

	n, err := unix.Poll(fds, ms)
	if err != nil {
		// a signal arriving during the poll is not an error
		if err == unix.EINTR {
			return nil, nil
		}
		return nil, curated.Errorf(ReadFault, err)
	}
	if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
		return nil, nil
	}

	buf := make([]byte, readBufferSize)
	n, err = trm.input.Read(buf)
	if err != nil {
		return nil, curated.Errorf(ReadFault, err)
	}

	return buf[:n], nil
}
