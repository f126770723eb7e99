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

package convert_test

import (
	"strings"
	"testing"

	"github.com/sa1tools/sa1hybridizer/convert"
	"github.com/sa1tools/sa1hybridizer/test"
)

func segments(segs []convert.Segment) string {
	var s strings.Builder
	for _, g := range segs {
		s.WriteString(g.Kind.String())
		s.WriteString("[")
		s.WriteString(g.Text)
		s.WriteString("]")
	}
	return s.String()
}

func TestTokenize(t *testing.T) {
	test.ExpectEquality(t, len(convert.Tokenize("")), 0)
	test.ExpectEquality(t, segments(convert.Tokenize(" \t ")), "whitespace[ \t ]")
	test.ExpectEquality(t, segments(convert.Tokenize("  ; LDA $7EC900")), "comment[  ; LDA $7EC900]")

	test.ExpectEquality(t, segments(convert.Tokenize("  LDA $00 ; hi there")),
		"whitespace[  ]normal[LDA]whitespace[ ]normal[$00]whitespace[ ]comment[; hi there]")

	test.ExpectEquality(t, segments(convert.Tokenize("LDA\t\t$00,x")),
		"normal[LDA]whitespace[\t\t]normal[$00,x]")

	test.ExpectEquality(t, segments(convert.Tokenize("LDA $00;note $7EC900")),
		"normal[LDA]whitespace[ ]normal[$00]comment[;note $7EC900]")

	test.ExpectEquality(t, segments(convert.Tokenize("table: db $01, $7EC900 ; bytes")),
		"normal[table:]whitespace[ ]data[db $01, $7EC900 ; bytes]")

	test.ExpectEquality(t, segments(convert.Tokenize("DW.w $1234")), "data[DW.w $1234]")
	test.ExpectEquality(t, segments(convert.Tokenize("dbuffer $10")), "normal[dbuffer]whitespace[ ]normal[$10]")
}

func TestTokenizeCoversLine(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"LDA $00",
		"\tSTA.w $14C8,x\t; store",
		"  dl $018000, $028000  ",
		"label:   JML [$0000]   ",
		"LDA $00;;;",
	}

	for _, l := range lines {
		var s strings.Builder
		for _, g := range convert.Tokenize(l) {
			test.ExpectInequality(t, g.Text, "", l)
			s.WriteString(g.Text)
		}
		test.ExpectEquality(t, s.String(), l)
	}
}
