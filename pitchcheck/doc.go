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

// Package pitchcheck measures the frequency of a tone in a WAV or MP3
// recording and compares it with the frequency expected for an AUDF value.
// It is used to check the pitch table against recordings of real hardware,
// or against recordings of the simulated chip made by the wavwriter package.
//
// The measurement counts rising zero crossings, with the crossing point
// interpolated between samples. This is only accurate for recordings of a
// single steady tone.
package pitchcheck
