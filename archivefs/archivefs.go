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

// Package archivefs treats zip archives as directories. A path can pass
// through an archive file, for example "patches.zip/sprites/boss.asm", and be
// opened as though it were on the real filesystem.
//
// Archives of assembly files are unpacked with Extract() and the assembly
// files found with Collect().
package archivefs

import "io"

// Open is a convenience function that sets a Path and returns the contents of
// the file it points to. The size of the data is also returned.
func Open(filename string) (io.ReadSeeker, int, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, 0, err
	}
	defer afs.Close()
	return afs.Open()
}
