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
	"fmt"

	"github.com/sa1tools/sa1hybridizer/addresses"
	"github.com/sa1tools/sa1hybridizer/memorymap"
)

// Literal is an address literal found in a line of source.
type Literal struct {
	Value uint32

	// number of hex digits. one of 2, 4 or 6
	Width int

	// the text of the literal as it appears in the source
	Text string

	// the index register the literal is used with. zero if the literal is not
	// indexed, otherwise 'x' or 'y'
	Register byte

	StackPush bool
	Immediate bool
	Hybrid    bool

	// line number of the literal. the first line is line 1
	Line int
}

// Normalised returns the literal formatted with the upper case hex digits of
// its width.
func (l Literal) Normalised() string {
	return fmt.Sprintf("$%0*X", l.Width, l.Value)
}

func (l Literal) String() string {
	return l.Text
}

// Result is the outcome of classifying a Literal.
type Result struct {
	// the text that replaces the literal in the output
	Text string

	// the literal was rewritten
	Converted bool

	// the rewritten text depends on the defines in MacroBlock
	MacroBlock bool

	// the literal looks like an address but could not be converted
	ManualReview bool

	// the area the literal was found to be in. Undefined if the literal was
	// not in any area
	Area memorymap.Area

	// name of the rule that matched
	Rule string
}

// a classification rule. the match function is given the literal, the
// unmirrored address and the address to test for BWRAM areas
type rule struct {
	name    string
	match   func(lit Literal, v uint32, b uint32) bool
	rewrite func(lit Literal, v uint32, b uint32) Result
}

// the rules are checked in order and the first match wins
var rules = [...]rule{
	{
		name: "passthrough",
		match: func(lit Literal, _ uint32, _ uint32) bool {
			return lit.Hybrid || lit.StackPush || lit.Immediate
		},
		rewrite: func(lit Literal, _ uint32, _ uint32) Result {
			return Result{Text: lit.Text}
		},
	},
	{
		name: "bwram",
		match: func(_ Literal, _ uint32, b uint32) bool {
			return memorymap.BWRAMArea(b) != memorymap.Undefined
		},
		rewrite: func(_ Literal, _ uint32, b uint32) Result {
			a := memorymap.BWRAMArea(b)
			return Result{
				Text:       fmt.Sprintf("$%06X&$00FFFF|!%s", b, a.Macro()),
				Converted:  true,
				MacroBlock: true,
				Area:       a,
			}
		},
	},
	{
		name: "remapped",
		match: func(_ Literal, _ uint32, b uint32) bool {
			return addresses.IsRemapped(b)
		},
		rewrite: func(_ Literal, _ uint32, b uint32) Result {
			return Result{
				Text:       addresses.Define(b),
				Converted:  true,
				MacroBlock: true,
				Area:       memorymap.MapAddress(b, 6),
			}
		},
	},
	{
		name: "special",
		match: func(_ Literal, v uint32, _ uint32) bool {
			return addresses.IsSpecial(v)
		},
		rewrite: func(lit Literal, v uint32, _ uint32) Result {
			s := addresses.Define(v)

			// an indexed four digit address in the direct page must keep the
			// absolute addressing mode
			if lit.Width == 4 && v>>8 == 0 && lit.Register != 0 {
				s = fmt.Sprintf("%s|!%s", s, memorymap.DirectPage.Macro())
			}
			return Result{
				Text:      s,
				Converted: true,
				Area:      memorymap.MapAddress(v, lit.Width),
			}
		},
	},
	{
		name: "rom",
		match: func(lit Literal, v uint32, _ uint32) bool {
			return lit.Width == 6 && v >= memorymap.OriginROM && v <= memorymap.MemtopROM
		},
		rewrite: func(_ Literal, v uint32, _ uint32) Result {
			return Result{
				Text:      fmt.Sprintf("$%06X|!%s", v, memorymap.ROM.Macro()),
				Converted: true,
				Area:      memorymap.ROM,
			}
		},
	},
	{
		name: "wram mirror",
		match: func(lit Literal, v uint32, _ uint32) bool {
			return lit.Width == 6 && v >= memorymap.OriginWRAMMirror && v <= memorymap.MemtopWRAMMirror
		},
		rewrite: func(_ Literal, v uint32, _ uint32) Result {
			if addresses.IsSpecial(v & 0xffff) {
				return Result{
					Text:      addresses.Define(v & 0xffff),
					Converted: true,
					Area:      memorymap.WRAMMirror,
				}
			}
			return Result{
				Text:      fmt.Sprintf("($%06X&$FFFF)|!%s", v, memorymap.WRAMMirror.Macro()),
				Converted: true,
				Area:      memorymap.WRAMMirror,
			}
		},
	},
	{
		name: "direct page byte",
		match: func(lit Literal, _ uint32, _ uint32) bool {
			return lit.Width == 2
		},
		rewrite: func(lit Literal, _ uint32, _ uint32) Result {
			return Result{Text: lit.Text}
		},
	},
	{
		name: "general ram",
		match: func(lit Literal, v uint32, _ uint32) bool {
			return lit.Width == 4 && v >= memorymap.OriginGeneralRAM && v <= memorymap.MemtopGeneralRAM
		},
		rewrite: func(_ Literal, v uint32, _ uint32) Result {
			return Result{
				Text:      fmt.Sprintf("$%04X|!%s", v, memorymap.GeneralRAM.Macro()),
				Converted: true,
				Area:      memorymap.GeneralRAM,
			}
		},
	},
	{
		name: "direct page",
		match: func(lit Literal, v uint32, _ uint32) bool {
			return lit.Width == 4 && v <= memorymap.MemtopDirectPage
		},
		rewrite: func(_ Literal, v uint32, _ uint32) Result {
			return Result{
				Text:      fmt.Sprintf("$%04X|!%s", v, memorymap.DirectPage.Macro()),
				Converted: true,
				Area:      memorymap.DirectPage,
			}
		},
	},
}

// Classify decides how a literal should be rewritten. The FastROM mirror is
// folded into banks $00 to $0F before the rules are checked. A literal that
// matches no rule is returned unchanged and marked for manual review.
func Classify(lit Literal) Result {
	v := memorymap.Unmirror(lit.Value, lit.Width)
	b := memorymap.BWRAMAddress(v, lit.Width)

	for _, r := range rules {
		if r.match(lit, v, b) {
			res := r.rewrite(lit, v, b)
			res.Rule = r.name
			return res
		}
	}

	return Result{
		Text:         lit.Text,
		ManualReview: true,
		Rule:         "unclassified",
	}
}
