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

package logger_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/sa1tools/sa1hybridizer/logger"
	"github.com/sa1tools/sa1hybridizer/test"
)

// test logger and the use of the Tail() function
func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(0)
	w := &strings.Builder{}

	log.Log(logger.Allow, "Hybrid", "$0050|!dp")
	log.Log(logger.Allow, "Hybrid", "$0050|!dp")
	log.Log(logger.Allow, "Hybrid", "$0050|!dp")
	log.Log(logger.Allow, "Hybrid", "$1234|!addr")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "Hybrid: $0050|!dp (repeat x3)\nHybrid: $1234|!addr\n")
	test.ExpectEquality(t, log.Len(), 2)
}

func TestNoCollapse(t *testing.T) {
	log := logger.NewLogger(0)
	log.SetCollapse(false)
	w := &strings.Builder{}

	log.Log(logger.Allow, "Conversion", "line 1: $0050 -> $0050|!dp")
	log.Log(logger.Allow, "Conversion", "line 1: $0050 -> $0050|!dp")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "Conversion: line 1: $0050 -> $0050|!dp\nConversion: line 1: $0050 -> $0050|!dp\n")
	test.ExpectEquality(t, log.Len(), 2)

	// collapsing again only affects new entries
	log.SetCollapse(true)
	log.Log(logger.Allow, "Conversion", "line 1: $0050 -> $0050|!dp")
	test.ExpectEquality(t, log.Len(), 2)
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "a")
	log.Log(logger.Allow, "tag", "b")
	log.Log(logger.Allow, "tag", "c")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: b\ntag: c\n")
}

// test permissions by randomising whether logging is allowed or not. there's no
// need to do the randomisation but it's as good a demonstration as anything
// else I can think of
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}

	log.Clear()
	w.Reset()
	log.Log(logger.Verbosity(false), "tag", "silent")
	log.Log(logger.Verbosity(true), "tag", "verbose")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: verbose\n")
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	log.Clear()
	w.Reset()

	// test "wrapping" of errors using the %v verb
	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: test error\n")
}

// the Log() function explicitly handles Stringer types
type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", stringerTest{})
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: stringer test\n")
}

// for explicitly unsupported types, the Log() function will log the detail
// argument using the %v verb from the fmt package
func TestIntLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 100\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	echo := &test.CompareWriter{}

	log.Log(logger.Allow, "before", "not echoed")
	log.SetEcho(echo, true)
	log.Log(logger.Allow, "Processing file", "patch.asm:")
	test.ExpectEquality(t, echo.String(), "Processing file: patch.asm:\n")

	// a repeated entry has already been echoed once
	log.Log(logger.Allow, "Processing file", "patch.asm:")
	test.ExpectEquality(t, echo.String(), "Processing file: patch.asm:\n")

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "after", "not echoed")
	test.ExpectEquality(t, echo.String(), "Processing file: patch.asm:\n")
}

func TestBorrowLog(t *testing.T) {
	log := logger.NewLogger(100)
	log.Log(logger.Allow, "Conversion", "$0050 -> $0050|!dp")

	var tags []string
	log.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			tags = append(tags, e.Tag)
		}
	})
	test.DemandEquality(t, len(tags), 1)
	test.ExpectEquality(t, tags[0], "Conversion")
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)

	n, err := c.Write([]byte("single line\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 12)
	test.ExpectEquality(t, w.String(), "single line\n")

	w.Reset()
	_, err = c.Write([]byte("first\nsecond\n"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "first\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "second\n"))
	test.ExpectInequality(t, w.String(), "first\nsecond\n")
}
