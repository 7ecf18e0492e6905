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

// Package input decodes the raw byte stream from the terminal into the
// discrete events the control loops act on.
//
// The recognised tokens are the three-byte cursor sequences ESC [ A (up)
// and ESC [ B (down), and the single bytes q and Q (quit). Everything else
// is ignored.
package input

// Event is a discrete logical input event decoded from the raw byte stream.
type Event int

// List of logical input events.
const (
	NoEvent Event = iota
	ArrowUp
	ArrowDown
	Quit
)

func (ev Event) String() string {
	switch ev {
	case ArrowUp:
		return "up"
	case ArrowDown:
		return "down"
	case Quit:
		return "quit"
	}
	return "none"
}

// list of byte values recognised by the decoder.
const (
	keyEsc     = 0x1b
	escCursor  = '[' // 0x5b
	cursorUp   = 'A' // 0x41
	cursorDown = 'B' // 0x42
)

// Decode a buffer of raw terminal bytes into the events it contains, in
// order. Decode is pure: the same buffer always yields the same events.
//
// A quit byte stops decoding immediately; any bytes after it in the buffer
// are not processed.
//
// A cursor sequence is only recognised when all three of its bytes are in
// the same buffer. An ESC arriving at the end of a buffer, with the rest of
// its sequence in the next read, is dropped rather than carried over. A
// known limitation: the read buffer is large enough that a split sequence
// requires input faster than a keyboard produces it.
func Decode(buf []byte) []Event {
	events := make([]Event, 0, len(buf))

	for i := 0; i < len(buf); i++ {
		switch buf[i] {
		case keyEsc:
			if i+2 < len(buf) && buf[i+1] == escCursor {
				switch buf[i+2] {
				case cursorUp:
					events = append(events, ArrowUp)
				case cursorDown:
					events = append(events, ArrowDown)
				}

				// sequence consumed whether it selected an event or not
				i += 2
			}

		case 'q', 'Q':
			return append(events, Quit)
		}
	}

	return events
}
