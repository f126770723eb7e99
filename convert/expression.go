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
	"errors"
	"fmt"
)

// the largest number of hex digits in an address literal
const maxDigits = 6

// the largest value an address literal can have
const maxAddress = 0xffffff

var errSyntax = errors.New("syntax error")

// the state of an expression being evaluated. the width is the largest number
// of digits seen in a hex operand
type evaluation struct {
	s     string
	width int
	err   error
}

// Evaluate the arithmetic expression in s. Hex operands are written with a
// leading dollar sign and decimal operands with no prefix. The operators are,
// from lowest to highest precedence:
//
//	|  ^  &  << >>  + -  *  unary - ~
//
// Parentheses group subexpressions. The whole of s must be consumed.
//
// The returned width is the number of hex digits the result should be written
// with: the number of digits of the widest hex operand, rounded up to an even
// number and widened if the value needs more digits.
func Evaluate(s string) (uint32, int, error) {
	e := &evaluation{s: s}
	v, idx := e.or(0)
	if e.err != nil {
		return 0, 0, e.err
	}
	if idx != len(s) {
		return 0, 0, fmt.Errorf("%w: unexpected %q", errSyntax, s[idx:])
	}
	if e.width == 0 {
		return 0, 0, fmt.Errorf("%w: no hex operand", errSyntax)
	}
	if v < 0 || v > maxAddress {
		return 0, 0, fmt.Errorf("value out of range: %d", v)
	}
	return uint32(v), fitWidth(uint32(v), e.width), nil
}

// fitWidth rounds the number of digits up to an even number and widens it
// until the value fits.
func fitWidth(v uint32, digits int) int {
	w := digits + digits%2
	for w < maxDigits && v>>(w*4) != 0 {
		w += 2
	}
	return min(w, maxDigits)
}

// inRange sets the error if an intermediate result is outside the range of an
// address. small negative values are allowed
func (e *evaluation) inRange(x int64) int64 {
	if e.err == nil && (x > maxAddress || x < -maxAddress-1) {
		e.err = fmt.Errorf("value out of range: %s", e.s)
	}
	return x
}

func (e *evaluation) peek(idx int) byte {
	if idx < len(e.s) {
		return e.s[idx]
	}
	return 0
}

func (e *evaluation) fail(idx int) {
	if e.err != nil {
		return
	}
	if idx >= len(e.s) {
		e.err = fmt.Errorf("%w: unexpected end", errSyntax)
	} else {
		e.err = fmt.Errorf("%w: unexpected %q", errSyntax, e.s[idx:])
	}
}

func (e *evaluation) or(idx int) (int64, int) {
	x, idx := e.xor(idx)
	for e.err == nil && e.peek(idx) == '|' {
		var t int64
		t, idx = e.xor(idx + 1)
		x |= t
	}
	return x, idx
}

func (e *evaluation) xor(idx int) (int64, int) {
	x, idx := e.and(idx)
	for e.err == nil && e.peek(idx) == '^' {
		var t int64
		t, idx = e.and(idx + 1)
		x ^= t
	}
	return x, idx
}

func (e *evaluation) and(idx int) (int64, int) {
	x, idx := e.shift(idx)
	for e.err == nil && e.peek(idx) == '&' {
		var t int64
		t, idx = e.shift(idx + 1)
		x &= t
	}
	return x, idx
}

func (e *evaluation) shift(idx int) (int64, int) {
	x, idx := e.sum(idx)
	for e.err == nil {
		c := e.peek(idx)
		if (c != '<' && c != '>') || e.peek(idx+1) != c {
			break
		}
		var t int64
		t, idx = e.sum(idx + 2)
		if t < 0 || t > 63 {
			e.err = fmt.Errorf("shift out of range: %d", t)
			break
		}
		if c == '<' {
			if x != 0 && t >= maxDigits*4 {
				e.inRange(maxAddress + 1)
				break
			}
			x = e.inRange(x << t)
		} else {
			x >>= t
		}
	}
	return x, idx
}

func (e *evaluation) sum(idx int) (int64, int) {
	x, idx := e.product(idx)
	for e.err == nil {
		var t int64
		switch e.peek(idx) {
		case '+':
			t, idx = e.product(idx + 1)
			x = e.inRange(x + t)
		case '-':
			t, idx = e.product(idx + 1)
			x = e.inRange(x - t)
		default:
			return x, idx
		}
	}
	return x, idx
}

func (e *evaluation) product(idx int) (int64, int) {
	x, idx := e.unary(idx)
	for e.err == nil && e.peek(idx) == '*' {
		var t int64
		t, idx = e.unary(idx + 1)
		x = e.inRange(x * t)
	}
	return x, idx
}

func (e *evaluation) unary(idx int) (int64, int) {
	switch e.peek(idx) {
	case '-':
		x, idx := e.unary(idx + 1)
		return -x, idx
	case '~':
		x, idx := e.unary(idx + 1)
		return ^x, idx
	}
	return e.primary(idx)
}

func (e *evaluation) primary(idx int) (int64, int) {
	c := e.peek(idx)

	switch {
	case c == '(':
		x, idx := e.or(idx + 1)
		if e.err != nil {
			return 0, idx
		}
		if e.peek(idx) != ')' {
			e.fail(idx)
			return 0, idx
		}
		return x, idx + 1

	case c == '$':
		idx++
		start := idx
		var x int64
		for idx < len(e.s) {
			d, ok := hexDigit(e.s[idx])
			if !ok {
				break
			}
			x = x<<4 | int64(d)
			idx++
		}
		n := idx - start
		if n == 0 || n > maxDigits {
			e.fail(start)
			return 0, idx
		}
		e.width = max(e.width, n)
		return x, idx

	case c >= '0' && c <= '9':
		var x int64
		for idx < len(e.s) && e.s[idx] >= '0' && e.s[idx] <= '9' {
			x = x*10 + int64(e.s[idx]-'0')
			if x > maxAddress {
				e.err = fmt.Errorf("value out of range: %s", e.s)
				return 0, idx
			}
			idx++
		}
		return x, idx
	}

	e.fail(idx)
	return 0, idx
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

// ParseHex parses a single hex literal with a leading dollar sign and one to
// six digits. The width is the number of digits, rounded up to an even number.
func ParseHex(s string) (uint32, int, error) {
	if len(s) < 2 || s[0] != '$' || len(s) > maxDigits+1 {
		return 0, 0, fmt.Errorf("%w: not a hex literal: %q", errSyntax, s)
	}
	var v uint32
	for i := 1; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, 0, fmt.Errorf("%w: not a hex literal: %q", errSyntax, s)
		}
		v = v<<4 | d
	}
	return v, fitWidth(v, len(s)-1), nil
}
