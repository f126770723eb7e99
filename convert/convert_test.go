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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sa1tools/sa1hybridizer/convert"
	"github.com/sa1tools/sa1hybridizer/curated"
	"github.com/sa1tools/sa1hybridizer/test"
	"github.com/sa1tools/sa1hybridizer/textfile"
)

// log returns the log of the file as a string
func log(fs *convert.FileState) string {
	w := &test.CompareWriter{}
	fs.Log.Write(w)
	return w.String()
}

// convertLine converts a single line and returns the output line
func convertLine(t *testing.T, line string) (*convert.FileState, string) {
	t.Helper()
	fs, out, err := convert.ConvertLines("test.asm", []string{line})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(out), 1)
	return fs, out[0]
}

func TestScenarios(t *testing.T) {
	// BWRAM address
	fs, out, err := convert.Convert("test.asm", "LDA $7EC900", convert.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out, convert.MacroBlock+"LDA $7EC900&$00FFFF|!map16_lo_by")
	test.ExpectEquality(t, fs.Conversions, 1)
	test.ExpectSuccess(t, fs.MacroBlock)

	// direct page
	fs, out, err = convert.Convert("test.asm", "LDA $0050", convert.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out, "LDA $0050|!dp")
	test.ExpectEquality(t, fs.Conversions, 1)
	test.ExpectFailure(t, fs.MacroBlock)

	// two digit direct page is unchanged
	fs, out, err = convert.Convert("test.asm", "STA $00,x", convert.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out, "STA $00,x")
	test.ExpectEquality(t, fs.Conversions, 0)

	// comment
	fs, out, err = convert.Convert("test.asm", "; LDA $7EC900", convert.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out, "; LDA $7EC900")
	test.ExpectEquality(t, fs.Conversions, 0)
	test.ExpectFailure(t, fs.MacroBlock)

	// data directive
	fs, out, err = convert.Convert("test.asm", "db $7EC900", convert.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out, "db $7EC900")
	test.ExpectEquality(t, fs.Conversions, 0)
	test.ExpectFailure(t, fs.MacroBlock)

	// out of range
	fs, out, err = convert.Convert("test.asm", "LDA $FFFFFF", convert.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out, "LDA $FFFFFF")
	test.ExpectEquality(t, fs.Conversions, 0)
	test.ExpectSuccess(t, fs.ManualReview)
	test.ExpectSuccess(t, strings.Contains(log(fs), "Warning: address $FFFFFF at line 1 couldn't be converted!\n"))
}

func TestLines(t *testing.T) {
	var tests = []struct {
		in  string
		out string
	}{
		{"JSL $018000", "JSL $018000|!bank"},
		{"JSL $818000", "JSL $018000|!bank"},
		{"STA $14C8,x", "STA !14C8,x"},
		{"LDA $009E,x", "LDA !9E|!dp,x"},
		{"LDA $9E", "LDA !9E"},
		{"LDA $7E0010", "LDA ($7E0010&$FFFF)|!bankA"},
		{"LDA $7E14C8", "LDA !14C8"},
		{"LDA $7F9A7B,x", "LDA !7F9A7B,x"},
		{"STA $700800", "STA !700800"},
		{"LDA $700010", "LDA $700010&$00FFFF|!save_mem"},
		{"LDA $C800", "LDA $7EC800&$00FFFF|!map16_lo_by"},
		{"LDA $1234", "LDA $1234|!addr"},
		{"lda.w $1234,y", "lda.w $1234|!addr,y"},
		{"LDA ($10),y", "LDA ($10),y"},
		{"LDA [$00],y", "LDA [$00],y"},
		{"JML [$0000]", "JML [$0000|!dp]"},
		{"LDA $10+$0100", "LDA $0110|!addr"},
		{"LDA $0100+label", "LDA $0100|!addr+label"},
		{"LDA label+$10", "LDA label+$10"},
		{"\tLDA\t$0050", "\tLDA\t$0050|!dp"},
		{"  LDA $0050  ", "  LDA $0050|!dp  "},
		{"LDA $0050,y ; $7EC900", "LDA $0050|!dp,y ; $7EC900"},
		{"LDA $0050;comment", "LDA $0050|!dp;comment"},
		{"PEA $1234", "PEA $1234"},
		{"pea.w $1234", "pea.w $1234"},
		{"PEI ($50)", "PEI ($50)"},
		{"PEA $1234 : LDA $1234", "PEA $1234 : LDA $1234|!addr"},
		{"PEI label : LDA $0050", "PEI label : LDA $0050|!dp"},
		{"PEA label : PEA $1234", "PEA label : PEA $1234"},
		{"LDA $123", "LDA $0123|!addr"},
		{"JSL $12345", "JSL $012345|!bank"},
		{"LDA $1000*$1000*$1000*$1000*$1000*$1000", "LDA $1000|!addr*$1000|!addr*$1000|!addr*$1000|!addr*$1000|!addr*$1000|!addr"},
		{"LDA #$1234", "LDA #$1234"},
		{"LDA.b #$7EC900", "LDA.b #$7EC900"},
		{"LDA $0050|!dp", "LDA $0050|!dp"},
		{"LDA $7EC900&$00FFFF|!map16_lo_by", "LDA $7EC900&$00FFFF|!map16_lo_by"},
		{"LDA ($7E0010&$FFFF)|!bankA", "LDA ($7E0010&$FFFF)|!bankA"},
		{"LDA !14C8,x", "LDA !14C8,x"},
	}

	for _, tt := range tests {
		_, out := convertLine(t, tt.in)
		test.ExpectEquality(t, out, tt.out, tt.in)
	}
}

func TestNotice(t *testing.T) {
	fs, out := convertLine(t, "LDA $ZZ")
	test.ExpectEquality(t, out, "LDA $ZZ")
	test.ExpectEquality(t, fs.Conversions, 0)
	test.ExpectSuccess(t, strings.Contains(log(fs), "Notice: line 1: literal: cannot parse $ZZ\n"))
}

func TestHybridLog(t *testing.T) {
	fs, _ := convertLine(t, "LDA $0050|!dp")
	test.ExpectEquality(t, fs.Conversions, 0)
	test.ExpectEquality(t, log(fs), "Hybrid: line 1: $0050|!dp was already hybrid\n")
}

func TestConversionLog(t *testing.T) {
	fs, _, err := convert.Convert("patch.asm", "LDA $0050\nLDA $10+$0100\n", convert.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, log(fs),
		"Processing: patch.asm\n"+
			"Conversion: line 1: $0050 -> $0050|!dp\n"+
			"Conversion: line 2: $10+$0100 -> $0110|!addr\n"+
			"Processed: patch.asm\n"+
			"Total conversions: 2\n")
}

func TestConversionLogRepeats(t *testing.T) {
	fs, out := convertLine(t, "LDA $0050 : STA $0050")
	test.ExpectEquality(t, out, "LDA $0050|!dp : STA $0050|!dp")
	test.ExpectEquality(t, fs.Conversions, 2)
	test.ExpectEquality(t, log(fs),
		"Conversion: line 1: $0050 -> $0050|!dp\n"+
			"Conversion: line 1: $0050 -> $0050|!dp\n")
}

func TestPassthroughIdempotence(t *testing.T) {
	lines := []string{
		"",
		"    ",
		"\t\t",
		"; LDA $7EC900",
		"   ;STA $0050,x",
		"\t; JSL $018000 ; twice",
	}

	for _, l := range lines {
		fs, out := convertLine(t, l)
		test.ExpectEquality(t, out, l)
		test.ExpectEquality(t, fs.Conversions, 0)
		test.ExpectEquality(t, fs.Log.Len(), 0)
	}
}

func TestHybridNoop(t *testing.T) {
	lines := []string{
		"LDA $7EC900",
		"LDA $7FC800,x",
		"STA $700010",
		"LDA $0050",
		"LDA $009E,x",
		"STA $14C8,y",
		"JSL $818000",
		"LDA $7E0010",
		"LDA $1234",
		"LDA $0100+label",
		"LDA $7F9A7B",
	}

	fs, once, err := convert.ConvertLines("test.asm", lines)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fs.Conversions, len(lines))

	fs, twice, err := convert.ConvertLines("test.asm", once)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fs.Conversions, 0)
	test.ExpectFailure(t, fs.MacroBlock)
	test.DemandEquality(t, len(twice), len(once))
	for i := range once {
		test.ExpectEquality(t, twice[i], once[i])
	}
}

func TestMacroBlockFlag(t *testing.T) {
	lines := []string{"LDA $0050", "JSL $018000", "STA $14C8,x", "LDA $FFFFFF"}
	fs, _, err := convert.ConvertLines("test.asm", lines)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, fs.MacroBlock)

	for _, l := range []string{"LDA $7EC900", "LDA $7FFFFF", "LDA $7007FF", "LDA $7F9A7B", "LDA $700800", "LDA $D000"} {
		fs, _, err = convert.ConvertLines("test.asm", append(lines, l))
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, fs.MacroBlock, l)
	}

	// the macro block is written once
	_, out, err := convert.Convert("test.asm", "LDA $7EC900\nLDA $7FC800\n", convert.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Count(out, "endmacro"), 1)
	test.ExpectSuccess(t, strings.HasPrefix(out, convert.MacroBlock))
}

func TestLineEndings(t *testing.T) {
	_, out, err := convert.Convert("test.asm", "LDA $0050\r\nLDA $7EC900\r\n", convert.Options{Defines: true})
	test.DemandSuccess(t, err)

	expected := "incsrc conv_defines.asm\r\n" +
		strings.ReplaceAll(convert.MacroBlock, "\n", "\r\n") +
		"LDA $0050|!dp\r\n" +
		"LDA $7EC900&$00FFFF|!map16_lo_by\r\n"
	test.ExpectEquality(t, out, expected)

	_, out, err = convert.Convert("test.asm", "LDA $0050\n\n; end", convert.Options{Defines: true})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out, "incsrc conv_defines.asm\nLDA $0050|!dp\n\n; end")

	_, out, err = convert.Convert("test.asm", "", convert.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out, "")
}

func TestOutputName(t *testing.T) {
	test.ExpectEquality(t, convert.OutputName("patch.asm"), "patch_sa1.asm")
	test.ExpectEquality(t, convert.OutputName(filepath.Join("dir", "x.ASM")), filepath.Join("dir", "x_sa1.ASM"))
	test.ExpectSuccess(t, convert.IsOutputName("patch_sa1.asm"))
	test.ExpectSuccess(t, convert.IsOutputName("PATCH_SA1.ASM"))
	test.ExpectFailure(t, convert.IsOutputName("patch.asm"))
	test.ExpectFailure(t, convert.IsOutputName("sa1.asm"))
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "patch.asm")
	err := os.WriteFile(fn, []byte("main:\n\tLDA $0050\n\tJSL $018000\n\tRTL\n"), 0o644)
	test.DemandSuccess(t, err)

	fs, err := convert.File(fn, convert.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fs.Conversions, 2)

	b, err := os.ReadFile(filepath.Join(dir, "patch_sa1.asm"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "main:\n\tLDA $0050|!dp\n\tJSL $018000|!bank\n\tRTL\n")

	fs, err = convert.File(filepath.Join(dir, "missing.asm"), convert.Options{})
	test.ExpectFailure(t, err)
	test.ExpectInequality(t, fs, nil)
}

func TestFileUndecodable(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "garbage.asm")
	err := os.WriteFile(fn, []byte("\xfd\xfe\xff\x80\xa0\xfd"), 0o644)
	test.DemandSuccess(t, err)

	fs, err := convert.File(fn, convert.Options{})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, convert.EncodingError))
	test.ExpectSuccess(t, curated.Has(err, textfile.DecodeError))
	test.ExpectInequality(t, fs, nil)
	test.ExpectEquality(t, fs.Conversions, 0)

	// no output is written
	_, err = os.Stat(convert.OutputName(fn))
	test.ExpectSuccess(t, os.IsNotExist(err))
}
