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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// Errorf() function with a specific pattern. Packages that want their errors
// to be identifiable in this way should export their patterns as constants.
// For example, the ball package exports the IoFault pattern for errors that
// originate in the register file:
//
//	err := bll.WritePos(pos)
//	if curated.Is(err, ball.IoFault) {
//		logger.Log("controller", err.Error())
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. Use it when an error may have been wrapped by an
// intervening call to Errorf():
//
//	err := ball.Attach(regs)
//	if curated.Has(err, ball.IoFault) {
//		// attach failed because of the register file, not for some
//		// other reason
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. Errors that are not curated are unexpected by
// definition and should be treated as such.
//
// The Error() function implementation for curated errors normalises the error
// chain, removing duplicate adjacent parts. Parts are the sub-strings
// separated by ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan). The practical advantage is that wrapping an error on
// the way up the call chain never produces messages like:
//
//	error: error: register file unreachable
package curated
