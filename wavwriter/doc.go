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

// Package wavwriter allows writing of audio data from the simulated POKEY to
// disk as a WAV file. Note that audio data is buffered in memory in its
// entirity, and written to disk when EndMixing() is called. It is therefore
// only suitable for short recordings, such as auditioning an instrument
// across the range of the pitch table.
package wavwriter
