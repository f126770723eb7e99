// This file is part of sa1hybridizer.
//
// sa1hybridizer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sa1hybridizer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sa1hybridizer.  If not, see <https://www.gnu.org/licenses/>.

// Package convert rewrites the hardcoded addresses in 65816 assembly source so
// that the source assembles correctly for both a LoROM cartridge and an SA-1
// cartridge.
//
// Each line is split into segments by Tokenize(). Comments and data
// directives are never changed. Words in normal segments are searched for
// address literals, which are evaluated and then classified by the area of
// memory they fall in. For example:
//
//	LDA $7EC900    ->  LDA $7EC900&$00FFFF|!map16_lo_by
//	LDA $0050      ->  LDA $0050|!dp
//	STA $14C8,x    ->  STA !14C8,x
//	JSL $018000    ->  JSL $018000|!bank
//
// Everything that is not a rewritten literal is copied to the output exactly,
// including white space and line endings.
//
// Addresses in the BWRAM areas and the individually remapped addresses depend
// on defines that are not part of the common tool define libraries. A file
// that uses any of them has the text of MacroBlock placed at the start of the
// output.
//
// Every conversion, and every literal that could not be converted, is
// recorded in the log of the FileState for the file.
package convert
