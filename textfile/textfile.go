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

package textfile

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"

	"github.com/sa1tools/sa1hybridizer/archivefs"
	"github.com/sa1tools/sa1hybridizer/curated"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
)

// Sentinal error patterns. Use with curated.Is() and curated.Has().
const (
	DecodeError = "textfile: cannot decode: %v"
	EncodeError = "textfile: cannot encode: %v"
)

// MinConfidence is the lowest confidence, from 0 to 100, that the detected
// encoding is accepted with. Below this the text is assumed to be Shift_JIS.
const MinConfidence = 50

// Encoding is the text encoding of a file.
type Encoding struct {
	Name string

	// nil for UTF-8
	enc encoding.Encoding

	// the encoding was detected and not certain
	guessed bool
}

// UTF8 is the encoding used when the text is valid UTF-8.
var UTF8 = Encoding{Name: "utf-8"}

// ShiftJIS is the encoding used when detection is not confident.
var ShiftJIS = Encoding{Name: "Shift_JIS", enc: japanese.ShiftJIS}

func (e Encoding) String() string {
	return e.Name
}

// Guessed returns true if the encoding was detected rather than known.
func (e Encoding) Guessed() bool {
	return e.guessed
}

// lookup returns the encoding for a charset name.
func lookup(name string) (encoding.Encoding, bool) {
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, true
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, true
	}
	return nil, false
}

// Detect the encoding of the data.
func Detect(data []byte) Encoding {
	if utf8.Valid(data) {
		return UTF8
	}

	det := chardet.NewTextDetector()
	res, err := det.DetectBest(data)
	if err == nil && res.Confidence >= MinConfidence {
		if enc, ok := lookup(res.Charset); ok {
			return Encoding{Name: res.Charset, enc: enc, guessed: true}
		}
	}

	e := ShiftJIS
	e.guessed = true
	return e
}

// Decode the data into a string. The encoding is detected with Detect().
func Decode(data []byte) (string, Encoding, error) {
	e := Detect(data)
	if e.enc == nil {
		return string(data), e, nil
	}

	s, err := e.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", e, curated.Errorf(DecodeError, err)
	}

	// bytes that are not valid in the encoding are replaced
	if bytes.ContainsRune(s, utf8.RuneError) {
		return "", e, curated.Errorf(DecodeError, "invalid "+e.Name)
	}

	return string(s), e, nil
}

// Encode the text in the encoding.
func Encode(text string, e Encoding) ([]byte, error) {
	if e.enc == nil {
		return []byte(text), nil
	}

	b, err := e.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, curated.Errorf(EncodeError, err)
	}
	return b, nil
}

// Read the named file and decode it. The filename can be a path through a zip
// archive.
func Read(filename string) (string, Encoding, error) {
	r, _, err := archivefs.Open(filename)
	if err != nil {
		return "", UTF8, curated.Errorf("textfile: %v", err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", UTF8, curated.Errorf("textfile: %v", err)
	}

	return Decode(data)
}

// Write the text to the named file in the encoding.
func Write(filename string, text string, e Encoding) error {
	b, err := Encode(text, e)
	if err != nil {
		return err
	}

	err = os.WriteFile(filename, b, 0644)
	if err != nil {
		return curated.Errorf("textfile: %v", err)
	}

	return nil
}
