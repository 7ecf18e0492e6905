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

package input_test

import (
	"testing"

	"github.com/jetsetilly/vgaball/input"
	"github.com/jetsetilly/vgaball/test"
)

func equateEvents(t *testing.T, buf []byte, expected []input.Event) {
	t.Helper()

	events := input.Decode(buf)
	test.Equate(t, len(events), len(expected))
	for i := range events {
		if i < len(expected) && events[i] != expected[i] {
			t.Errorf("event %d is %s (wanted %s)", i, events[i], expected[i])
		}
	}
}

func TestCursorSequences(t *testing.T) {
	equateEvents(t, []byte{0x1b, 0x5b, 0x41}, []input.Event{input.ArrowUp})
	equateEvents(t, []byte{0x1b, 0x5b, 0x42}, []input.Event{input.ArrowDown})

	// an unrecognised third byte consumes the sequence without an event
	equateEvents(t, []byte{0x1b, 0x5b, 0x58}, []input.Event{})

	// consecutive sequences in one buffer
	equateEvents(t, []byte{0x1b, 0x5b, 0x41, 0x1b, 0x5b, 0x42},
		[]input.Event{input.ArrowUp, input.ArrowDown})
}

func TestQuit(t *testing.T) {
	equateEvents(t, []byte{'q'}, []input.Event{input.Quit})
	equateEvents(t, []byte{'Q'}, []input.Event{input.Quit})

	// decoding stops at the quit byte. the cursor sequence after it is
	// never seen
	equateEvents(t, []byte{'q', 0x1b, 0x5b, 0x41}, []input.Event{input.Quit})
}

func TestIgnoredBytes(t *testing.T) {
	equateEvents(t, []byte{}, []input.Event{})
	equateEvents(t, []byte{'x', 'y', 'z'}, []input.Event{})

	// ignorable bytes around a recognised sequence
	equateEvents(t, []byte{'x', 0x1b, 0x5b, 0x41, 'y'}, []input.Event{input.ArrowUp})
}

func TestSplitSequence(t *testing.T) {
	// an ESC without the rest of its sequence in the same buffer is dropped
	equateEvents(t, []byte{0x1b}, []input.Event{})
	equateEvents(t, []byte{0x1b, 0x5b}, []input.Event{})

	// an ESC followed by something other than '[' is dropped and the
	// following bytes are decoded on their own terms
	equateEvents(t, []byte{0x1b, 'x', 'y'}, []input.Event{})
	equateEvents(t, []byte{0x1b, 'x', 'q'}, []input.Event{input.Quit})
}
