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

	"github.com/sa1tools/sa1hybridizer/curated"
	"github.com/sa1tools/sa1hybridizer/logger"
)

// reassembly keeps the input and the output of a line as it is built. the
// input is compared to the original line once the line is complete
type reassembly struct {
	in  strings.Builder
	out strings.Builder
}

func (r *reassembly) keep(s string) {
	r.in.WriteString(s)
	r.out.WriteString(s)
}

func (r *reassembly) replace(orig string, s string) {
	r.in.WriteString(orig)
	r.out.WriteString(s)
}

// convertLine converts a single line. The num argument is the line number of
// the line and lines is the whole of the file.
func (fs *FileState) convertLine(num int, line string, lines []string) (string, error) {
	if d, ok := ParseDefine(line); ok {
		d.Line = num
		if adv := d.Advise(lines); adv != nil {
			for _, a := range adv {
				fs.Log.Log(logger.Allow, "Advisory", a)
			}
			fs.ManualReview = true
			return line, nil
		}
	}

	var r reassembly
	var ctx context

	for _, seg := range Tokenize(line) {
		if seg.Kind != SegNormal {
			r.keep(seg.Text)
			continue
		}

		sc := ctx.scanWord(seg.Text)
		if sc.hybrid != "" {
			fs.Log.Logf(logger.Allow, "Hybrid", "line %d: %s was already hybrid", num, sc.hybrid)
		}

		for _, t := range sc.tokens {
			if t.kind != tokAddress {
				r.keep(t.text)
				continue
			}

			if t.err != nil {
				fs.Log.Logf(logger.Allow, "Notice", "line %d: %v", num, curated.Errorf(LiteralParseError, t.text))
				r.keep(t.text)
				continue
			}

			t.lit.Line = num
			res := Classify(t.lit)
			r.replace(t.text, res.Text)

			if res.Converted {
				fs.Conversions++
				fs.Log.Logf(logger.Allow, "Conversion", "line %d: %s -> %s", num, t.text, res.Text)
			}
			if res.MacroBlock {
				fs.MacroBlock = true
			}
			if res.ManualReview {
				fs.ManualReview = true
				fs.Log.Logf(logger.Allow, "Warning", "address %s at line %d couldn't be converted!", t.lit.Normalised(), num)
			}
		}
	}

	if r.in.String() != line {
		return "", curated.Errorf(StructuralAnomaly, num, line)
	}

	return r.out.String(), nil
}
