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

//go:build !windows

package easyterm

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// cbreak puts the terminal into cbreak mode. the returned function puts the
// terminal back into the mode it was in.
func cbreak(input *os.File) (func(), error) {
	var canAttr unix.Termios
	if err := termios.Tcgetattr(input.Fd(), &canAttr); err != nil {
		return nil, err
	}

	cbreakAttr := canAttr
	termios.Cfmakecbreak(&cbreakAttr)
	if err := termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &cbreakAttr); err != nil {
		return nil, err
	}

	return func() {
		_ = termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &canAttr)
	}, nil
}
