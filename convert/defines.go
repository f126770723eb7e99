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

package convert

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/sa1tools/sa1hybridizer/addresses"
	"github.com/sa1tools/sa1hybridizer/memorymap"
)

// a line that defines a named constant. for example:
//
//	!slots = $0C ; number of sprite slots
var definePattern = regexp.MustCompile(`^\s*!([A-Za-z_]\w*)\s*=\s*(\$[0-9A-Fa-f]+|[0-9]+)\s*(;.*)?$`)

// Define is a named constant definition found in a line of source.
type Define struct {
	Name  string
	Value uint32

	// number of hex digits the value was written with. zero if the value was
	// written in decimal
	Width int

	Line int
}

// ParseDefine returns the define in the line. Returns false if the line is not
// a define.
func ParseDefine(line string) (Define, bool) {
	m := definePattern.FindStringSubmatch(line)
	if m == nil {
		return Define{}, false
	}

	d := Define{Name: m[1]}

	var v uint64
	var err error
	if m[2][0] == '$' {
		v, err = strconv.ParseUint(m[2][1:], 16, 32)
		d.Width = len(m[2]) - 1
	} else {
		v, err = strconv.ParseUint(m[2], 10, 32)
	}
	if err != nil || v > maxAddress {
		return Define{}, false
	}
	d.Value = uint32(v)

	return d, true
}

// Advise returns the advisory messages for a define. The lines argument is the
// whole of the file and is used to find later uses of the define with an index
// register. Returns nil if the define needs no advice.
func (d Define) Advise(lines []string) []string {
	switch {
	case d.Value == addresses.MaxSprites:
		return []string{
			fmt.Sprintf("line %d: define !%s has the value $%02X, which is the number of sprite slots.", d.Line, d.Name, d.Value),
			fmt.Sprintf("line %d: if it is used as a sprite count then it should be defined as:", d.Line),
			"    if !sa1",
			fmt.Sprintf("        !%s = $%02X", d.Name, addresses.MaxSpritesSA1),
			"    else",
			fmt.Sprintf("        !%s = $%02X", d.Name, addresses.MaxSprites),
			"    endif",
		}

	case addresses.IsSpecial(d.Value):
		adv := []string{
			fmt.Sprintf("line %d: define !%s has the value $%X, which is a sprite table address. it was not converted automatically", d.Line, d.Name, d.Value),
			fmt.Sprintf("line %d: usually the correct conversion is !%s = %s", d.Line, d.Name, addresses.Define(d.Value)),
		}
		if n := d.indexedUse(lines); n > 0 {
			adv = append(adv, fmt.Sprintf("line %d: !%s is used with an index register", n, d.Name))
		}
		return adv

	case d.Value >= memorymap.OriginGeneralRAM && d.Value <= memorymap.MemtopGeneralRAM:
		return []string{
			fmt.Sprintf("line %d: define !%s has the value $%04X, which may need |!%s if it is used as an address", d.Line, d.Name, d.Value, memorymap.GeneralRAM.Macro()),
		}
	}

	return nil
}

// indexedUse returns the line number of the first line after the define that
// uses the define with an index register. Returns zero if there is no such
// line.
func (d Define) indexedUse(lines []string) int {
	use := regexp.MustCompile(`!` + regexp.QuoteMeta(d.Name) + `\s*,\s*[xXyY]\b`)
	for i := d.Line; i < len(lines); i++ {
		if use.MatchString(lines[i]) {
			return i + 1
		}
	}
	return 0
}
