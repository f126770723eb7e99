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

package archivefs

import (
	"path/filepath"
	"slices"
	"strings"
)

// ArchiveExtensions lists the file extensions that are recognised as archives.
// Upper case.
var ArchiveExtensions = [...]string{".ZIP"}

// HasArchiveExt returns true if the filename has one of the archive
// extensions.
func HasArchiveExt(s string) bool {
	return slices.Contains(ArchiveExtensions[:], strings.ToUpper(filepath.Ext(s)))
}

// TrimArchiveExt removes the archive extension from the filename. The
// filename is returned unchanged if it has no archive extension.
func TrimArchiveExt(s string) string {
	if HasArchiveExt(s) {
		return strings.TrimSuffix(s, filepath.Ext(s))
	}
	return s
}
