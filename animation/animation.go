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

// Package animation produces the position samples for a jump or a duck: a
// triangular motion profile that takes the ball from its base position to a
// target Y and back again over a fixed duration.
//
// A Session is a lazy, finite, non-restartable sequence of samples paced at
// the display frame rate. The caller decides how to consume it: the Run()
// function drains a session into the driver in one blocking call, which is
// the behaviour the jump control loop wants, but a caller could equally
// interleave other work between calls to Next().
package animation

import (
	"time"

	"github.com/jetsetilly/vgaball/hardware/ball"
	"github.com/jetsetilly/vgaball/logger"
)

// FrameInterval paces the samples returned by Next(). One frame at 60Hz.
const FrameInterval = time.Second / 60

// Writer is the position-write surface of the driver core.
type Writer interface {
	WritePos(ball.Position) error
}

// Session is a single jump or duck in flight. Create with NewSession();
// a spent session cannot be restarted.
type Session struct {
	base     ball.Position
	targetY  int32
	duration time.Duration

	start   time.Time
	started bool
	spent   bool
}

// NewSession prepares a jump/duck from the base position to the target Y
// and back, over the given duration. The session clock does not start until
// the first call to Next().
func NewSession(base ball.Position, targetY int32, duration time.Duration) *Session {
	return &Session{
		base:     base,
		targetY:  targetY,
		duration: duration,
	}
}

// At returns the ball position at the given time into the session. The
// profile is triangular: linear interpolation of Y from base to target over
// the first half of the duration and back to base over the second half,
// truncated to integer. X is pinned to the base position throughout.
//
// At is pure; it does not advance the session.
func (ses *Session) At(elapsed time.Duration) ball.Position {
	pos := ses.base
	half := ses.duration / 2

	switch {
	case elapsed < half:
		progress := float64(elapsed) / float64(half)
		pos.Y = ses.base.Y + int32(float64(ses.targetY-ses.base.Y)*progress)

	case elapsed < ses.duration:
		progress := float64(elapsed-half) / float64(half)
		pos.Y = ses.targetY + int32(float64(ses.base.Y-ses.targetY)*progress)

	default:
		// interpolation rounding never leaks out of the session. the ball
		// always ends exactly where it started
		pos.Y = ses.base.Y
	}

	return pos
}

// Next returns the next sample in the sequence. The first call starts the
// session clock and returns the base position immediately; every later call
// sleeps for one frame interval before sampling the clock.
//
// The second return value is false once the session duration has elapsed.
// The sample returned alongside it is still valid: it is the final sample
// and is always the base position exactly.
func (ses *Session) Next() (ball.Position, bool) {
	if ses.spent {
		return ses.base, false
	}

	if !ses.started {
		ses.started = true
		ses.start = time.Now()
		return ses.base, true
	}

	time.Sleep(FrameInterval)

	elapsed := time.Since(ses.start)
	if elapsed >= ses.duration {
		ses.spent = true
		return ses.base, false
	}

	return ses.At(elapsed), true
}

// Run drains the session into the driver, blocking until the duration has
// elapsed. Every sample is written, including the final return to the base
// position. A failed write is logged and the session carries on; the next
// frame will move the ball to where it should be.
func Run(ses *Session, drv Writer) {
	for {
		pos, more := ses.Next()
		if err := drv.WritePos(pos); err != nil {
			logger.Log("animation", err.Error())
		}
		if !more {
			return
		}
	}
}
