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

// Package pokey defines the register interface to the POKEY sound chip and
// contains a simulation of the chip's audio circuitry.
//
// The Bus interface is the only way the rest of pokeycore writes to the chip.
// Real hardware, the simulated Pokey type and the Recorder type all implement
// it. The Recorder is used to check the order in which registers are written,
// which matters a great deal when bringing the chip out of reset.
//
// The AUDC type gives names to the values written to the AUDCx registers.
// AUDCSilent (volume-only mode, volume zero) is the only correct way of
// silencing a voice. The all-zero value, AUDCNoiseZero, looks like silence but
// selects the 5-bit/17-bit polynomial noise distortion.
//
// Information about the POKEY is taken from chapter 5 of the Altirra Hardware
// Reference Manual:
//
// https://www.virtualdub.org/downloads/Altirra%20Hardware%20Reference%20Manual.pdf
//
// References to this document in comments are abbreviated to 'Altirra
// Reference'.
package pokey
