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

// Package textfile reads and writes text files in the encoding they were
// written with. Assembly source for the SNES is often written in a legacy
// Japanese encoding and the conversion must be written back in the same
// encoding.
//
// Text that is valid UTF-8 is always read as UTF-8. Otherwise the encoding is
// guessed and if the guess is not confident the text is read as Shift_JIS.
package textfile
