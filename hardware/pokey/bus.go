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

package pokey

// Bus is the interface to the POKEY write registers. POKEY writes cannot fail
// so there is no error return.
type Bus interface {
	Write(reg Register, data uint8)
}

// Waiter is implemented by buses that can wait for a number of scanlines to
// pass. Waiting is optional and is tested for with a type assertion.
type Waiter interface {
	WaitScanlines(n int)
}
