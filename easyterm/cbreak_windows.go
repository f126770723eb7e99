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

//go:build windows

package easyterm

import (
	"os"

	"golang.org/x/term"
)

// termios is not available on windows so the console is put into raw mode
// instead. the effect for a single key press is the same.
func cbreak(input *os.File) (func(), error) {
	state, err := term.MakeRaw(int(input.Fd()))
	if err != nil {
		return nil, err
	}
	return func() {
		_ = term.Restore(int(input.Fd()), state)
	}, nil
}
