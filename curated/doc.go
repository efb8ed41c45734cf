// This file is part of Pokeycore.
//
// Pokeycore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pokeycore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pokeycore.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function. Unlike fmt.Errorf() the formatting is deferred until the
// Error() function is called. The pattern string is retained so that the error
// can be identified later, without resorting to string comparisons of the
// formatted message.
//
// Patterns should be declared as exported constants in the package that
// raises them. For example, the pitch package declares:
//
//	const OutOfRange = "pitch: note index out of range: %d"
//
// and callers can check for that specific condition with:
//
//	if curated.Is(err, pitch.OutOfRange) {
//		...
//	}
//
// The Has() function checks the entire chain of curated errors (errors that
// have been passed as values to other curated errors) for the pattern.
//
// When printed, adjacent duplicate message parts are removed. This means a
// chain of errors with the same prefix, as commonly happens when an error is
// wrapped by a function in the same package, reads cleanly:
//
//	e := curated.Errorf("startup: %v", curated.Errorf("startup: bad divisor"))
//	fmt.Println(e)
//
// prints "startup: bad divisor" and not "startup: startup: bad divisor".
package curated
