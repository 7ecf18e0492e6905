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

// Package controller wires the input decoder to the driver core. There are
// two control policies:
//
// Simple() moves the ball one pixel per arrow event, clamped to the visible
// frame. It waits indefinitely for input.
//
// Jump() runs a fixed-height jump or duck animation per arrow event. An
// animation blocks the loop for its full duration; input arriving while one
// is in flight is read afterwards (so the input channel does not back up)
// but is not decoded into further movement. Only a quit byte in that
// backlog is honoured. There is no queuing of missed inputs.
//
// Both loops treat a failed position write as best-effort: the fault is
// logged and the loop continues. A failed read from the input source is
// fatal to the loop.
package controller

import (
	"time"

	"github.com/jetsetilly/vgaball/animation"
	"github.com/jetsetilly/vgaball/hardware/ball"
	"github.com/jetsetilly/vgaball/input"
	"github.com/jetsetilly/vgaball/logger"
)

// bounds of the visible frame, enforced by the simple control loop.
const (
	topEdge    = 0
	bottomEdge = 479
)

// the simple loop keeps the ball in a fixed column near the left edge,
// starting at the vertical centre of the frame.
const (
	simpleX      = 10
	simpleStartY = 240
)

// jump/duck parameters for the animated loop.
const (
	jumpHeight   = 32
	jumpDuration = time.Second

	// the animated loop polls with a short timeout rather than waiting
	// indefinitely, so it periodically returns to the top of the loop
	pollInterval = 100 * time.Millisecond
)

// Driver is the command surface of the driver core used by the control
// loops.
type Driver interface {
	WritePos(ball.Position) error
	ReadPos() ball.Position
}

// Source yields raw input bytes. The timeout semantics are those of the
// rawterm package: negative waits indefinitely, zero returns only what is
// already pending.
type Source interface {
	Read(timeout time.Duration) ([]byte, error)
}

// writePos logs a failed write rather than propagating it. The ball stays
// where it was; the next write will move it to where it should be.
func writePos(drv Driver, pos ball.Position) {
	if err := drv.WritePos(pos); err != nil {
		logger.Log("controller", err.Error())
	}
}

// Simple runs the one-pixel-per-keypress control loop until a quit event or
// a read failure.
func Simple(drv Driver, src Source) error {
	pos := ball.Position{X: simpleX, Y: simpleStartY}
	writePos(drv, pos)

	for {
		buf, err := src.Read(-1)
		if err != nil {
			return err
		}

		for _, ev := range input.Decode(buf) {
			switch ev {
			case input.ArrowUp:
				if pos.Y > topEdge {
					pos.Y--
				}
				writePos(drv, pos)

			case input.ArrowDown:
				if pos.Y < bottomEdge {
					pos.Y++
				}
				writePos(drv, pos)

			case input.Quit:
				logger.Log("controller", "quit")
				return nil
			}
		}
	}
}

// Jump runs the animated control loop until a quit event or a read failure.
// The base position is whatever the driver mirror holds on entry, which is
// the hardware reset position unless something has moved the ball already.
func Jump(drv Driver, src Source) error {
	base := drv.ReadPos()
	writePos(drv, base)

	for {
		buf, err := src.Read(pollInterval)
		if err != nil {
			return err
		}

		events := input.Decode(buf)
		for i := 0; i < len(events); i++ {
			switch events[i] {
			case input.ArrowUp, input.ArrowDown:
				targetY := base.Y - jumpHeight
				if events[i] == input.ArrowDown {
					targetY = base.Y + jumpHeight
				}

				quit := animate(drv, src, base, targetY)

				// events decoded alongside the trigger count as input that
				// arrived mid-session: discarded, except for quit
				for _, ev := range events[i+1:] {
					quit = quit || ev == input.Quit
				}
				if quit {
					logger.Log("controller", "quit")
					return nil
				}
				i = len(events)

			case input.Quit:
				logger.Log("controller", "quit")
				return nil
			}
		}
	}
}

// animate blocks for the full session. input that arrived during the
// session is drained without being decoded into movement; the returned flag
// says whether a quit byte was seen in the backlog.
func animate(drv Driver, src Source, base ball.Position, targetY int32) bool {
	ses := animation.NewSession(base, targetY, jumpDuration)
	animation.Run(ses, drv)

	quit := false
	for {
		buf, err := src.Read(0)
		if err != nil || len(buf) == 0 {
			return quit
		}
		for _, b := range buf {
			if b == 'q' || b == 'Q' {
				quit = true
			}
		}
	}
}
