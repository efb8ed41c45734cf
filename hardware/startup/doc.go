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

// Package startup brings the POKEY from its undefined power-on state to a
// known, silent state with the configured interrupts enabled.
//
// The order in which the registers are written by Initialise() is important
// and is part of the package's contract:
//
//  1. IRQEN is cleared so no interrupt can fire while the chip is in an
//     intermediate state
//  2. SKCTL is put into initialisation mode. The polynomial counters and the
//     clock prescalers are held in reset
//  3. every AUDCx register is written with pokey.AUDCSilent
//  4. every AUDFx register is written with the default divisor
//  5. the playback State is reset
//  6. AUDCTL is written
//  7. SKCTL is put into normal mode
//  8. an optional settle delay
//  9. IRQEN is written with the configured interrupt mask
//
// Writing zero to an AUDCx register does not silence a voice. The zero value
// selects a noise distortion and the chip will produce hiss. The only value
// used for silence is pokey.AUDCSilent.
//
// None of the register writes can fail. Configuration values should be
// checked with Config.Validate() before Initialise() is called.
package startup
