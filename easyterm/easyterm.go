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

// Package easyterm wraps the termios functions of "github.com/pkg/term/termios"
// and the terminal test of "golang.org/x/term" in functions with friendlier
// names. It is used to hold the console open at the end of a conversion run
// until the user presses a key.
package easyterm

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if the file is connected to an interactive
// terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Pause prints the prompt and waits for a single key press on the input file.
// If the input is not a terminal then Pause returns immediately without
// printing anything.
func Pause(input *os.File, output io.Writer, prompt string) error {
	if !IsTerminal(input) {
		return nil
	}

	fmt.Fprint(output, prompt)

	restore, err := cbreak(input)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	defer restore()

	b := make([]byte, 1)
	_, err = input.Read(b)
	fmt.Fprintln(output)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	return nil
}
