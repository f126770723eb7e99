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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments. Non-flag arguments are retrieved with RemainingArgs() or GetArg()
// once parsing is complete:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CONVERT", "DEFINES", "REGIONS")
//	_, _ = md.Parse()
//
// A mode is a command line argument that puts the program into a different
// mode of operation, each with its own set of flags. The first sub-mode given
// to AddSubModes() is the default and is selected when the first non-flag
// argument is not a sub-mode name. Sub-mode comparisons are case insensitive.
//
// After the mode is known, NewMode() starts a new set of flags for it:
//
//	switch md.Mode() {
//	case "CONVERT":
//		md.NewMode()
//		silence := md.AddBool("silence", false, "do not write a log file")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseHelp:
//			return nil
//		case modalflag.ParseError:
//			return err
//		}
//		return convert(md.RemainingArgs(), *silence)
//	}
//
// Requesting help with -help prints the flags and sub-modes of the current
// mode to the Output writer. Parse() then returns ParseHelp and the caller
// should stop without printing anything else.
package modalflag
