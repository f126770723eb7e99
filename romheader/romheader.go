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

// Package romheader reads the cartridge header of a LoROM image. It is used to
// check whether a ROM has been converted to the SA-1 memory map, which is the
// same test the converted source makes when it is assembled:
//
//	if read1($00FFD5) == $23
package romheader

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/alttpo/snes"
	"github.com/alttpo/snes/mapping/lorom"
	"github.com/sa1tools/sa1hybridizer/archivefs"
	"github.com/sa1tools/sa1hybridizer/curated"
)

// Sentinal error patterns. Use with curated.Is() and curated.Has().
const (
	HeaderError = "romheader: %v"
	ShortROM    = "romheader: ROM is too short (%d bytes)"
)

// HeaderAddress is the bus address of the cartridge header.
const HeaderAddress = uint32(0x00ffb0)

// the size of the header starting from HeaderAddress
const headerLen = 0x50

// copier devices add a header of their own to the start of the image. the size
// of an image with a copier header is 512 bytes more than a multiple of 1024
const copierHeaderLen = 512

// the map mode values. bit 4 of the map mode is the FastROM bit
const (
	fastROMBit = 0x10
	mapLoROM   = 0x20
	mapHiROM   = 0x21
	mapSA1     = 0x23
)

// Info is the part of the cartridge header that matters for conversion.
type Info struct {
	MapMode uint8

	// the map mode byte without the FastROM bit is the SA-1 value
	SA1 bool

	FastROM bool

	// the image had a copier header which was skipped
	CopierHeader bool

	Region string
}

// Mapper returns a description of the memory map from the map mode.
func (inf Info) Mapper() string {
	switch inf.MapMode &^ fastROMBit {
	case mapLoROM:
		return "LoROM"
	case mapHiROM:
		return "HiROM"
	case mapSA1:
		return "SA-1"
	}
	return "unknown"
}

func (inf Info) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("map mode: $%02X (%s)\n", inf.MapMode, inf.Mapper()))
	if inf.FastROM {
		s.WriteString("speed: FastROM\n")
	} else {
		s.WriteString("speed: SlowROM\n")
	}
	s.WriteString(fmt.Sprintf("region: %s\n", inf.Region))
	if inf.CopierHeader {
		s.WriteString("copier header: yes\n")
	}
	if inf.SA1 {
		s.WriteString("SA-1: yes\n")
	} else {
		s.WriteString("SA-1: no\n")
	}
	return s.String()
}

// Parse the header of the ROM image.
func Parse(rom []byte) (Info, error) {
	var inf Info

	if len(rom)%1024 == copierHeaderLen {
		rom = rom[copierHeaderLen:]
		inf.CopierHeader = true
	}

	off, err := lorom.BusAddressToPak(HeaderAddress)
	if err != nil {
		return Info{}, curated.Errorf(HeaderError, err)
	}

	if uint32(len(rom)) < off+headerLen {
		return Info{}, curated.Errorf(ShortROM, len(rom))
	}

	var h snes.Header
	err = h.ReadHeader(bytes.NewReader(rom[off : off+headerLen]))
	if err != nil {
		return Info{}, curated.Errorf(HeaderError, err)
	}

	inf.MapMode = h.MapMode
	inf.SA1 = h.MapMode&^fastROMBit == mapSA1
	inf.FastROM = h.MapMode&fastROMBit != 0

	switch h.DestinationCode {
	case snes.RegionJapan:
		inf.Region = "Japan"
	case snes.RegionNorthAmerica:
		inf.Region = "North America"
	default:
		inf.Region = fmt.Sprintf("%v", h.DestinationCode)
	}

	return inf, nil
}

// Read the ROM image in the named file and parse the header. The filename can
// be a path through a zip archive.
func Read(filename string) (Info, error) {
	r, _, err := archivefs.Open(filename)
	if err != nil {
		return Info{}, curated.Errorf(HeaderError, err)
	}

	rom, err := io.ReadAll(r)
	if err != nil {
		return Info{}, curated.Errorf(HeaderError, err)
	}

	return Parse(rom)
}
