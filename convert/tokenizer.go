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
	"strings"
)

// SegmentKind identifies the lexical mode of a Segment.
type SegmentKind int

// List of valid SegmentKind values.
const (
	SegWhitespace SegmentKind = iota
	SegNormal
	SegComment
	SegData
)

func (k SegmentKind) String() string {
	switch k {
	case SegWhitespace:
		return "whitespace"
	case SegNormal:
		return "normal"
	case SegComment:
		return "comment"
	case SegData:
		return "data"
	}
	return "unknown"
}

// Segment is a contiguous part of a line. The segments returned by
// Tokenize() cover the line with no gaps.
type Segment struct {
	Kind SegmentKind
	Text string
}

const commentMarker = ';'

// data directives store raw bytes. nothing following them on the line is an
// address
var dataDirectives = [...]string{"db", "dw", "dl", "dd"}

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t'
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isDataDirective returns true if the word begins with a data directive. The
// directive must not be the start of a longer name, so "db" and "db.b" are
// directives but "dbuffer" is not.
func isDataDirective(word string) bool {
	w := strings.ToLower(word)
	for _, d := range dataDirectives {
		if strings.HasPrefix(w, d) && (len(w) == len(d) || !isIdentChar(w[len(d)])) {
			return true
		}
	}
	return false
}

// Tokenize splits a line into segments. The line should not include the line
// terminator.
//
// The line is split into words on spaces and tabs, the separators becoming
// whitespace segments. A word that starts with a comment marker or a data
// directive turns the rest of the line into a single comment or data segment.
// A word that contains a comment marker is split at the marker.
func Tokenize(line string) []Segment {
	// blank lines and lines that are entirely a comment
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		if line == "" {
			return nil
		}
		return []Segment{{Kind: SegWhitespace, Text: line}}
	}
	if trimmed[0] == commentMarker {
		return []Segment{{Kind: SegComment, Text: line}}
	}

	var segs []Segment

	i := 0
	for i < len(line) {
		// run of separators
		if isSeparator(line[i]) {
			j := i
			for j < len(line) && isSeparator(line[j]) {
				j++
			}
			segs = append(segs, Segment{Kind: SegWhitespace, Text: line[i:j]})
			i = j
			continue
		}

		// word
		j := i
		for j < len(line) && !isSeparator(line[j]) {
			j++
		}
		word := line[i:j]

		if word[0] == commentMarker {
			return append(segs, Segment{Kind: SegComment, Text: line[i:]})
		}

		if isDataDirective(word) {
			return append(segs, Segment{Kind: SegData, Text: line[i:]})
		}

		if c := strings.IndexByte(word, commentMarker); c > 0 {
			segs = append(segs, Segment{Kind: SegNormal, Text: word[:c]})
			return append(segs, Segment{Kind: SegComment, Text: line[i+c:]})
		}

		segs = append(segs, Segment{Kind: SegNormal, Text: word})
		i = j
	}

	return segs
}
