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

// Package digest creates a hash of the output of the simulated POKEY. Two
// simulations that produce the same output will have the same digest, making
// it useful for regression testing of the chip simulation and of the order of
// register writes.
//
// The digest is chained. When the internal buffer is full the buffer is
// hashed and the hash becomes the start of the next buffer.
package digest
