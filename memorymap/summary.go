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

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in the
// Regions table, in the order they are checked. Useful for reference.
func Summary() string {
	s := strings.Builder{}
	for _, r := range Regions {
		s.WriteString(fmt.Sprintf("%06x -> %06x\t%d digits\t%s (!%s)\n",
			r.Origin, r.Memtop, r.Width, r.Area, r.Area.Macro()))
	}
	return s.String()
}
