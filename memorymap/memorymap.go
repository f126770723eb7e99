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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case DirectPage:
		return "Direct Page"
	case GeneralRAM:
		return "General RAM"
	case ROM:
		return "ROM"
	case WRAMMirror:
		return "WRAM Mirror"
	case Map16Low:
		return "Map16 Low Byte"
	case Map16High:
		return "Map16 High Byte"
	case SaveMem:
		return "Save Memory"
	}

	return "undefined"
}

// Macro returns the name of the assembler define used to make an address in
// the area valid under both memory maps. Returns the empty string for the
// Undefined area.
func (a Area) Macro() string {
	switch a {
	case DirectPage:
		return "dp"
	case GeneralRAM:
		return "addr"
	case ROM:
		return "bank"
	case WRAMMirror:
		return "bankA"
	case Map16Low:
		return "map16_lo_by"
	case Map16High:
		return "map16_hi_by"
	case SaveMem:
		return "save_mem"
	}

	return ""
}

// IsBWRAM returns true if the area is moved into BWRAM on the SA-1.
func (a Area) IsBWRAM() bool {
	return a == Map16Low || a == Map16High || a == SaveMem
}

// The different memory areas
const (
	Undefined Area = iota
	DirectPage
	GeneralRAM
	ROM
	WRAMMirror
	Map16Low
	Map16High
	SaveMem
)

// The origin and memory top for each area of memory.
const (
	OriginDirectPage = uint32(0x000000)
	MemtopDirectPage = uint32(0x0000ff)
	OriginGeneralRAM = uint32(0x000100)
	MemtopGeneralRAM = uint32(0x001fff)
	OriginROM        = uint32(0x000000)
	MemtopROM        = uint32(0x0fffff)
	OriginWRAMMirror = uint32(0x7e0000)
	MemtopWRAMMirror = uint32(0x7e1fff)
	OriginMap16Low   = uint32(0x7ec800)
	MemtopMap16Low   = uint32(0x7effff)
	OriginMap16High  = uint32(0x7fc800)
	MemtopMap16High  = uint32(0x7fffff)
	OriginSaveMem    = uint32(0x700000)
	MemtopSaveMem    = uint32(0x7007ff)
)

// Memtop is the top most address of the 24 bit address space.
const Memtop = uint32(0xffffff)

// WRAMBank is the bank of the work RAM mirror. Addresses shorter than six
// digits are placed in this bank when checking for BWRAM areas.
const WRAMBank = uint32(0x7e0000)

// the FastROM mirror of the ROM banks
const (
	mirrorDigit = uint32(0x800000)
	mirrorMask  = uint32(0xf00000)
)

// Region is an entry in the Regions table.
type Region struct {
	Area   Area
	Origin uint32
	Memtop uint32

	// the number of digits an address must be written with to be in the
	// region. zero if the region applies to an address of any width
	Width int
}

// Contains returns true if the address, written with the number of digits,
// is in the region.
func (r Region) Contains(address uint32, width int) bool {
	if r.Width != 0 && r.Width != width {
		return false
	}
	return address >= r.Origin && address <= r.Memtop
}

// Regions is the table of memory areas in the order they should be checked.
// The BWRAM areas are tested against six digit addresses. Shorter addresses
// should be placed in the WRAM bank with BWRAMAddress() before testing.
var Regions = [...]Region{
	{Area: Map16Low, Origin: OriginMap16Low, Memtop: MemtopMap16Low, Width: 6},
	{Area: Map16High, Origin: OriginMap16High, Memtop: MemtopMap16High, Width: 6},
	{Area: SaveMem, Origin: OriginSaveMem, Memtop: MemtopSaveMem, Width: 6},
	{Area: ROM, Origin: OriginROM, Memtop: MemtopROM, Width: 6},
	{Area: WRAMMirror, Origin: OriginWRAMMirror, Memtop: MemtopWRAMMirror, Width: 6},
	{Area: GeneralRAM, Origin: OriginGeneralRAM, Memtop: MemtopGeneralRAM, Width: 4},
	{Area: DirectPage, Origin: OriginDirectPage, Memtop: MemtopDirectPage, Width: 4},
}

// Unmirror moves a six digit address in the FastROM mirror (banks $80 to
// $8F) to the equivalent address in banks $00 to $0F. Other addresses are
// returned unchanged.
func Unmirror(address uint32, width int) uint32 {
	if width == 6 && address&mirrorMask == mirrorDigit {
		return address &^ mirrorDigit
	}
	return address
}

// BWRAMAddress returns the address that should be tested for the BWRAM
// areas. Addresses of fewer than six digits are placed in the WRAM bank.
func BWRAMAddress(address uint32, width int) uint32 {
	if width == 6 {
		return address
	}
	return WRAMBank | (address & 0xffff)
}

// BWRAMArea returns the BWRAM area the address is in. The address should be
// one that has been returned by BWRAMAddress(). Undefined is returned if the
// address is not in a BWRAM area.
func BWRAMArea(address uint32) Area {
	for _, r := range Regions {
		if r.Area.IsBWRAM() && r.Contains(address, 6) {
			return r.Area
		}
	}
	return Undefined
}

// MapAddress returns the area that an address, written with the number of
// digits, falls in. A two digit address is never in an area because it is
// valid under both memory maps. The BWRAM areas are included.
func MapAddress(address uint32, width int) Area {
	if a := BWRAMArea(BWRAMAddress(address, width)); a != Undefined {
		return a
	}
	for _, r := range Regions {
		if !r.Area.IsBWRAM() && r.Contains(address, width) {
			return r.Area
		}
	}
	return Undefined
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint32, width int, area Area) bool {
	return MapAddress(address, width) == area
}
