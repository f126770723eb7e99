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

// Package memorymap describes the areas of the SNES address space that need
// different treatment when LoROM code is made to run on an SA-1 cartridge.
//
// The SA-1 moves direct page to $3000 and general RAM to $6000. ROM is mapped
// without the $80 bank mirror and the work RAM tables used for map16 data and
// the save memory are moved into BWRAM. Each area has the name of the
// assembler define that selects the correct base for the cartridge being
// assembled, see the Macro() function.
//
// The areas are held in the Regions table, which is never written to. The
// Summary() function gives a printable version of the table.
package memorymap
