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

package animation_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/vgaball/animation"
	"github.com/jetsetilly/vgaball/hardware/ball"
	"github.com/jetsetilly/vgaball/test"
)

// posWriter implements animation.Writer, recording every position written.
type posWriter struct {
	positions []ball.Position
}

func (w *posWriter) WritePos(pos ball.Position) error {
	w.positions = append(w.positions, pos)
	return nil
}

func TestProfile(t *testing.T) {
	base := ball.Position{X: 10, Y: 304}
	ses := animation.NewSession(base, 272, time.Second)

	// at the start of the session the ball is at base
	pos := ses.At(0)
	test.Equate(t, pos.Y, 304)
	test.Equate(t, pos.X, 10)

	// at the midpoint the ball is at (or within truncation distance of)
	// the target
	pos = ses.At(500 * time.Millisecond)
	if pos.Y < 271 || pos.Y > 273 {
		t.Errorf("midpoint Y is %d (wanted 272 +/-1)", pos.Y)
	}

	// a quarter of the way is half way to the target
	pos = ses.At(250 * time.Millisecond)
	if pos.Y < 287 || pos.Y > 289 {
		t.Errorf("quarter-point Y is %d (wanted 288 +/-1)", pos.Y)
	}

	// on and after the deadline the ball is at base exactly, regardless of
	// truncation on the way
	test.Equate(t, ses.At(time.Second).Y, 304)
	test.Equate(t, ses.At(2*time.Second).Y, 304)
}

func TestProfileDownward(t *testing.T) {
	// a duck interpolates in the other direction
	ses := animation.NewSession(ball.Position{X: 10, Y: 240}, 272, time.Second)

	pos := ses.At(500 * time.Millisecond)
	if pos.Y < 271 || pos.Y > 273 {
		t.Errorf("midpoint Y is %d (wanted 272 +/-1)", pos.Y)
	}
	test.Equate(t, ses.At(time.Second).Y, 240)
}

func TestRun(t *testing.T) {
	base := ball.Position{X: 10, Y: 304}
	ses := animation.NewSession(base, 272, 100*time.Millisecond)

	w := &posWriter{}
	animation.Run(ses, w)

	if len(w.positions) < 3 {
		t.Fatalf("only %d samples written", len(w.positions))
	}

	// first and final samples are the base position exactly
	test.Equate(t, w.positions[0].Y, 304)
	test.Equate(t, w.positions[len(w.positions)-1].Y, 304)

	// the ball moved toward the target at some point
	moved := false
	for _, pos := range w.positions {
		test.Equate(t, pos.X, 10)
		if pos.Y < 304 {
			moved = true
		}
	}
	test.Equate(t, moved, true)

	// the session is spent. further calls return the base position and
	// false
	pos, more := ses.Next()
	test.Equate(t, more, false)
	test.Equate(t, pos.Y, 304)
}
