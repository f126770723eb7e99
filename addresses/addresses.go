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

// Package addresses lists the individual addresses that are converted to a
// define rather than by the area of memory they are in.
//
// The special addresses are the sprite tables that the common tool define
// libraries (Pixi, GPS and UberASM Tool) already provide a define for. The
// define is named after the address, for example !14C8.
//
// The remapped addresses are two tables that the SA-1 moves into BWRAM
// individually. They need the BWRAM macro block in the converted file.
package addresses

import (
	"fmt"
	"slices"
)

// Special is the list of addresses that have a define in the common tool
// define libraries. Sorted by address.
var Special []uint32

// the special addresses in the order they are grouped in the define
// libraries
var special = [...]uint32{
	// vanilla sprite tables in direct page
	0x9e, 0xaa, 0xb6, 0xc2, 0xd8, 0xe4,

	// vanilla sprite tables in general RAM
	0x14c8, 0x14d4, 0x14e0, 0x14ec, 0x14f8, 0x1504, 0x1510, 0x151c,
	0x1528, 0x1534, 0x1540, 0x154c, 0x1558, 0x1564, 0x1570, 0x157c,
	0x1588, 0x1594, 0x15a0, 0x15ac, 0x15b8, 0x15c4, 0x15d0, 0x15dc,
	0x15ea, 0x15f6, 0x1602, 0x160e, 0x161a, 0x1626, 0x1632, 0x163e,
	0x164a, 0x1656, 0x1662, 0x166e, 0x167a, 0x1686, 0x186c, 0x187b,
	0x190f, 0x1938, 0x1fd6, 0x1fe2,

	// custom sprite tables
	0x7fab10, 0x7fab1c, 0x7fab28, 0x7fab34, 0x7fab40, 0x7fab4c,
	0x7fab58, 0x7fab64, 0x7fab9e, 0x7fac00, 0x7fac08, 0x7fac10,
	0x7faf00,
}

// Remapped lists the addresses that are moved individually into BWRAM. The
// value is the address on the SA-1.
var Remapped = map[uint32]uint32{
	0x7f9a7b: 0x418800,
	0x700800: 0x41a000,
}

// MaxSprites is the number of sprite slots on a LoROM cartridge. Defines with
// this value are likely to be a count of sprite slots.
const MaxSprites = 0x0c

// MaxSpritesSA1 is the number of sprite slots on an SA-1 cartridge.
const MaxSpritesSA1 = 0x16

func init() {
	Special = slices.Clone(special[:])
	slices.Sort(Special)
}

// IsSpecial returns true if the address is in the Special list.
func IsSpecial(address uint32) bool {
	_, ok := slices.BinarySearch(Special, address)
	return ok
}

// IsRemapped returns true if the address is in the Remapped list.
func IsRemapped(address uint32) bool {
	_, ok := Remapped[address]
	return ok
}

// Define returns the name of the define for a special or remapped address,
// including the leading exclamation mark.
func Define(address uint32) string {
	return fmt.Sprintf("!%X", address)
}
