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
	"path/filepath"
	"strings"

	"github.com/sa1tools/sa1hybridizer/curated"
	"github.com/sa1tools/sa1hybridizer/logger"
	"github.com/sa1tools/sa1hybridizer/textfile"
)

// OutputSuffix is added to the name of a converted file, before the
// extension.
const OutputSuffix = "_sa1"

// Options control the output of a conversion.
type Options struct {
	// add a line that includes the file named by DefinesFilename to the start
	// of the output
	Defines bool
}

// FileState is the result of converting a file.
type FileState struct {
	Name string

	// number of literals that were rewritten
	Conversions int

	// the output needs the defines in MacroBlock
	MacroBlock bool

	// one or more lines need to be checked by hand
	ManualReview bool

	// the diagnostic records for the file
	Log *logger.Logger
}

// NewFileState is the preferred method of initialisation for the FileState
// type.
func NewFileState(name string) *FileState {
	fs := &FileState{
		Name: name,
		Log:  logger.NewLogger(0),
	}

	// every conversion has a record of its own
	fs.Log.SetCollapse(false)

	return fs
}

// OutputName returns the name of the file that the conversion of filename is
// written to.
func OutputName(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + OutputSuffix + ext
}

// IsOutputName returns true if the filename looks like the output of a
// conversion.
func IsOutputName(filename string) bool {
	ext := filepath.Ext(filename)
	return strings.HasSuffix(strings.ToLower(strings.TrimSuffix(filename, ext)), OutputSuffix)
}

// ConvertLines converts every line in the list. The lines should not include
// their line terminators. The returned lines do not include the include line
// or the macro block, the FileState says whether the macro block is needed.
func ConvertLines(name string, lines []string) (*FileState, []string, error) {
	fs := NewFileState(name)
	out, err := fs.convertLines(lines)
	return fs, out, err
}

func (fs *FileState) convertLines(lines []string) ([]string, error) {
	out := make([]string, len(lines))
	for i, l := range lines {
		var err error
		out[i], err = fs.convertLine(i+1, l, lines)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// splitLines splits text into lines and their terminators. The terminator of
// the last line is empty if the text does not end with a line terminator.
func splitLines(text string) ([]string, []string) {
	var lines, eols []string
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i == -1 {
			lines = append(lines, text)
			eols = append(eols, "")
			break
		}
		if i > 0 && text[i-1] == '\r' {
			lines = append(lines, text[:i-1])
			eols = append(eols, "\r\n")
		} else {
			lines = append(lines, text[:i])
			eols = append(eols, "\n")
		}
		text = text[i+1:]
	}
	return lines, eols
}

// Convert the text of a file. Line terminators are preserved. The include
// line and the macro block use the terminator of the first line of the file.
func Convert(name string, text string, opts Options) (*FileState, string, error) {
	fs := NewFileState(name)
	out, err := fs.convert(text, opts)
	return fs, out, err
}

func (fs *FileState) convert(text string, opts Options) (string, error) {
	fs.Log.Log(logger.Allow, "Processing", fs.Name)

	lines, eols := splitLines(text)

	conv, err := fs.convertLines(lines)
	if err != nil {
		return "", err
	}

	eol := "\n"
	if len(eols) > 0 && eols[0] != "" {
		eol = eols[0]
	}

	var s strings.Builder
	if opts.Defines {
		s.WriteString(includeDefines)
		s.WriteString(eol)
	}
	if fs.MacroBlock {
		s.WriteString(strings.ReplaceAll(MacroBlock, "\n", eol))
	}
	for i := range conv {
		s.WriteString(conv[i])
		s.WriteString(eols[i])
	}

	fs.Log.Log(logger.Allow, "Processed", fs.Name)
	fs.Log.Logf(logger.Allow, "Total conversions", "%d", fs.Conversions)

	return s.String(), nil
}

// File converts the file at path and writes the result to the file named by
// OutputName(). The output is written in the same text encoding as the input.
//
// The returned FileState is never nil, even if an error is returned.
func File(path string, opts Options) (*FileState, error) {
	fs := NewFileState(path)

	text, enc, err := textfile.Read(path)
	if err != nil {
		if curated.Is(err, textfile.DecodeError) {
			return fs, curated.Errorf(EncodingError, err)
		}
		return fs, err
	}

	if enc.Guessed() {
		fs.Log.Logf(logger.Allow, "Encoding", "guessed %s", enc)
	}

	out, err := fs.convert(text, opts)
	if err != nil {
		return fs, err
	}

	err = textfile.Write(OutputName(path), out, enc)
	if err != nil {
		if curated.Is(err, textfile.EncodeError) {
			return fs, curated.Errorf(EncodingError, err)
		}
		return fs, err
	}

	return fs, nil
}
