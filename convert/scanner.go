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
	"regexp"
	"strings"
)

// a literal that has already been made hybrid. for example:
//
//	$0050|!dp
//	$7EC900&$00FFFF|!map16_lo_by
//	($7E0010&$FFFF)|!bankA
var hybridPattern = regexp.MustCompile(`\$[0-9A-Fa-f]{1,6}(?:&\$[0-9A-Fa-f]{1,6}\)?)?\|![A-Za-z_]\w*`)

// a word that might contain an address literal
var candidatePattern = regexp.MustCompile(`\$[^, \n()\[\]]{1,6}`)

const immediateMarker = '#'

// the characters that separate the parts of an operand
const operandDelimiters = "[]() ,"

// the arithmetic operators that can appear in an operand
const operatorChars = "+-^*~<>|&"

// instructions that push a literal onto the stack. the operand of these
// instructions is never an address that needs converting
var stackPush = [...]string{"pea", "pei"}

type tokenKind int

const (
	tokOther tokenKind = iota
	tokComma
	tokAddress
)

// token is part of a normal segment. an address token that could not be
// parsed has a non-nil err and its text is passed through unchanged
type token struct {
	kind tokenKind
	text string

	// index of the delimited part the token was found in
	index int

	lit Literal
	err error
}

// context is the state carried between the words of a line
type context struct {
	// the previous word was a stack push instruction
	stackPush bool
}

// scan is the result of scanning a word
type scan struct {
	tokens []token

	// the part of the word that is already hybrid. empty if the word is not
	// hybrid
	hybrid string
}

func isStackPush(word string) bool {
	w := strings.ToLower(word)
	if i := strings.IndexByte(w, '.'); i > 0 {
		switch w[i:] {
		case ".b", ".w", ".l":
			w = w[:i]
		default:
			return false
		}
	}
	for _, s := range stackPush {
		if w == s {
			return true
		}
	}
	return false
}

// passthrough returns a scan that copies the word unchanged
func passthrough(word string) scan {
	return scan{tokens: []token{{kind: tokOther, text: word}}}
}

// scanWord splits a word from a normal segment into tokens, taking into
// account the context of the word in the line.
func (ctx *context) scanWord(word string) scan {
	if h := hybridPattern.FindString(word); h != "" {
		ctx.stackPush = false
		s := passthrough(word)
		s.tokens[0].lit = Literal{Text: word, Hybrid: true}
		s.hybrid = h
		return s
	}

	if isStackPush(word) {
		ctx.stackPush = true
		return passthrough(word)
	}

	// the guard only covers the word following the stack push instruction
	pushed := ctx.stackPush
	ctx.stackPush = false

	if !candidatePattern.MatchString(word) {
		return passthrough(word)
	}

	if pushed {
		return passthrough(word)
	}

	if strings.IndexByte(word, immediateMarker) != -1 {
		return passthrough(word)
	}

	return scan{tokens: splitOperand(word)}
}

// splitKeep splits s after and before every character in chars. the
// characters are kept as parts of their own and empty parts are dropped.
func splitKeep(s string, chars string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(chars, s[i]) != -1 {
			if i > start {
				parts = append(parts, s[start:i])
			}
			parts = append(parts, s[i:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}

// splitOperand splits the word into tokens and parses the address literals.
// the register that an address literal is indexed with is found by looking
// ahead for a comma token followed by the register name.
func splitOperand(word string) []token {
	var tokens []token

	for i, p := range splitKeep(word, operandDelimiters) {
		switch {
		case p[0] == '$':
			v, w, err := Evaluate(p)
			if err == nil {
				tokens = append(tokens, token{
					kind:  tokAddress,
					text:  p,
					index: i,
					lit:   Literal{Value: v, Width: w, Text: p},
				})
				continue
			}

			// evaluation has failed so treat each operand of the expression
			// as a separate literal
			for _, q := range splitKeep(p, operatorChars) {
				if q[0] != '$' {
					tokens = append(tokens, token{kind: tokOther, text: q, index: i})
					continue
				}
				v, w, err := ParseHex(q)
				tokens = append(tokens, token{
					kind:  tokAddress,
					text:  q,
					index: i,
					lit:   Literal{Value: v, Width: w, Text: q},
					err:   err,
				})
			}

		case p == ",":
			tokens = append(tokens, token{kind: tokComma, text: p, index: i})

		default:
			tokens = append(tokens, token{kind: tokOther, text: p, index: i})
		}
	}

	for i := range tokens {
		if tokens[i].kind != tokAddress || i+2 >= len(tokens) {
			continue
		}
		if tokens[i+1].kind != tokComma {
			continue
		}
		switch r := strings.ToLower(tokens[i+2].text); r {
		case "x", "y":
			tokens[i].lit.Register = r[0]
		}
	}

	return tokens
}
