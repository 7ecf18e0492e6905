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

package ball_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/vgaball/curated"
	"github.com/jetsetilly/vgaball/hardware/ball"
	"github.com/jetsetilly/vgaball/hardware/registers"
	"github.com/jetsetilly/vgaball/test"
)

// regWrite is one recorded WriteWord() call.
type regWrite struct {
	offset uint32
	value  uint32
}

// recorder implements registers.File, recording every write in order. if
// failAfter is non-negative, writes beyond that count fail.
type recorder struct {
	writes    []regWrite
	failAfter int
	closed    bool
}

func newRecorder() *recorder {
	return &recorder{failAfter: -1}
}

func (rec *recorder) WriteWord(offset uint32, value uint32) error {
	if rec.failAfter >= 0 && len(rec.writes) >= rec.failAfter {
		return errors.New("register file unreachable")
	}
	rec.writes = append(rec.writes, regWrite{offset: offset, value: value})
	return nil
}

func (rec *recorder) Close() error {
	rec.closed = true
	return nil
}

// attach discarding the writes made by the attach procedure itself. most
// tests are only interested in what happens afterwards.
func attach(t *testing.T, rec *recorder) *ball.Ball {
	t.Helper()

	bll, err := ball.Attach(rec)
	test.ExpectedSuccess(t, err)
	rec.writes = rec.writes[:0]

	return bll
}

func TestAttachDefaults(t *testing.T) {
	rec := newRecorder()
	bll, err := ball.Attach(rec)
	test.ExpectedSuccess(t, err)

	// attach writes the default background, red green blue in that order
	test.Equate(t, len(rec.writes), 3)
	test.Equate(t, rec.writes[0].offset, registers.BGRed)
	test.Equate(t, rec.writes[0].value, 0xf9)
	test.Equate(t, rec.writes[1].offset, registers.BGGreen)
	test.Equate(t, rec.writes[1].value, 0xe4)
	test.Equate(t, rec.writes[2].offset, registers.BGBlue)
	test.Equate(t, rec.writes[2].value, 0xb7)

	// position mirror is seeded with the hardware reset value without any
	// position registers being written
	pos := bll.ReadPos()
	test.Equate(t, pos.X, 320)
	test.Equate(t, pos.Y, 240)

	test.ExpectedSuccess(t, bll.Detach())
	test.Equate(t, rec.closed, true)
}

func TestAttachFault(t *testing.T) {
	rec := newRecorder()
	rec.failAfter = 0

	_, err := ball.Attach(rec)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, ball.AttachFault), true)
	test.Equate(t, curated.Has(err, ball.IoFault), true)
}

func TestBackgroundMirror(t *testing.T) {
	rec := newRecorder()
	bll := attach(t, rec)

	for _, col := range []ball.Color{
		{Red: 0x00, Green: 0x00, Blue: 0x00},
		{Red: 0xff, Green: 0xff, Blue: 0xff},
		{Red: 0x12, Green: 0x34, Blue: 0x56},
	} {
		test.ExpectedSuccess(t, bll.WriteBackground(col))
		if bll.ReadBackground() != col {
			t.Errorf("background mirror does not equal last written value")
		}

		// reading twice with no intervening write returns the same value
		if bll.ReadBackground() != bll.ReadBackground() {
			t.Errorf("background read is not idempotent")
		}
	}
}

func TestBackgroundWriteOrder(t *testing.T) {
	rec := newRecorder()
	bll := attach(t, rec)

	test.ExpectedSuccess(t, bll.WriteBackground(ball.Color{Red: 1, Green: 2, Blue: 3}))

	test.Equate(t, len(rec.writes), 3)
	test.Equate(t, rec.writes[0].offset, registers.BGRed)
	test.Equate(t, rec.writes[0].value, 1)
	test.Equate(t, rec.writes[1].offset, registers.BGGreen)
	test.Equate(t, rec.writes[1].value, 2)
	test.Equate(t, rec.writes[2].offset, registers.BGBlue)
	test.Equate(t, rec.writes[2].value, 3)
}

func TestPositionMirror(t *testing.T) {
	rec := newRecorder()
	bll := attach(t, rec)

	for _, pos := range []ball.Position{
		{X: 0, Y: 0},
		{X: 10, Y: 240},
		{X: 639, Y: 479},
		{X: -5, Y: 500},
	} {
		test.ExpectedSuccess(t, bll.WritePos(pos))
		if bll.ReadPos() != pos {
			t.Errorf("position mirror does not equal last written value")
		}
	}
}

func TestPositionWriteOrder(t *testing.T) {
	rec := newRecorder()
	bll := attach(t, rec)

	test.ExpectedSuccess(t, bll.WritePos(ball.Position{X: 100, Y: 200}))

	// X is written before Y
	test.Equate(t, len(rec.writes), 2)
	test.Equate(t, rec.writes[0].offset, registers.XCoor)
	test.Equate(t, rec.writes[0].value, 100)
	test.Equate(t, rec.writes[1].offset, registers.YCoor)
	test.Equate(t, rec.writes[1].value, 200)
}

func TestFailedWriteLeavesMirror(t *testing.T) {
	rec := newRecorder()
	bll := attach(t, rec)

	test.ExpectedSuccess(t, bll.WritePos(ball.Position{X: 10, Y: 240}))

	// X write succeeds, Y write fails
	rec.failAfter = len(rec.writes) + 1

	err := bll.WritePos(ball.Position{X: 99, Y: 99})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, ball.IoFault), true)

	// the mirror still holds the last successfully written value
	pos := bll.ReadPos()
	test.Equate(t, pos.X, 10)
	test.Equate(t, pos.Y, 240)
}

func TestCommandDispatch(t *testing.T) {
	rec := newRecorder()
	bll := attach(t, rec)

	// write position through the command channel
	pos := ball.Position{X: 10, Y: 100}
	ret, err := bll.Command(ball.CmdWritePos, pos.Marshal())
	test.ExpectedSuccess(t, err)
	if ret != nil {
		t.Errorf("WRITE command returned a payload")
	}

	// read it back through the command channel
	ret, err = bll.Command(ball.CmdReadPos, nil)
	test.ExpectedSuccess(t, err)
	back, err := ball.UnmarshalPosition(ret)
	test.ExpectedSuccess(t, err)
	if back != pos {
		t.Errorf("position did not round-trip through the command channel")
	}

	// same for background
	col := ball.Color{Red: 0x20, Green: 0x40, Blue: 0x60}
	_, err = bll.Command(ball.CmdWriteBackground, col.Marshal())
	test.ExpectedSuccess(t, err)

	ret, err = bll.Command(ball.CmdReadBackground, nil)
	test.ExpectedSuccess(t, err)
	backCol, err := ball.UnmarshalColor(ret)
	test.ExpectedSuccess(t, err)
	if backCol != col {
		t.Errorf("colour did not round-trip through the command channel")
	}
}

func TestInvalidCommand(t *testing.T) {
	rec := newRecorder()
	bll := attach(t, rec)

	_, err := bll.Command(0xdeadbeef, nil)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, ball.InvalidCommand), true)
}

func TestInvalidPayload(t *testing.T) {
	rec := newRecorder()
	bll := attach(t, rec)

	_, err := bll.Command(ball.CmdWritePos, []byte{0x01, 0x02})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, ball.InvalidPayload), true)

	// nothing reached the register file
	test.Equate(t, len(rec.writes), 0)
}
