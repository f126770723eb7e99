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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sa1tools/sa1hybridizer/convert"
	"github.com/sa1tools/sa1hybridizer/memorymap"
	"github.com/sa1tools/sa1hybridizer/test"
	"github.com/sa1tools/sa1hybridizer/version"
)

func testEnvironment() (environment, *test.CompareWriter) {
	w := &test.CompareWriter{}
	return environment{input: os.Stdin, output: w}, w
}

func TestVersionMode(t *testing.T) {
	env, w := testEnvironment()
	test.ExpectEquality(t, launch(env, []string{"VERSION"}), 0)
	test.ExpectEquality(t, w.String(), version.String()+"\n")

	env, w = testEnvironment()
	test.ExpectEquality(t, launch(env, []string{"version", "-nosuchflag"}), 20)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in VERSION mode"))
}

func TestRegionsMode(t *testing.T) {
	env, w := testEnvironment()
	test.ExpectEquality(t, launch(env, []string{"REGIONS"}), 0)
	test.ExpectEquality(t, w.String(), memorymap.Summary())
}

func TestDefinesMode(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "defs.asm")

	env, _ := testEnvironment()
	test.DemandEquality(t, launch(env, []string{"DEFINES", "-output", fn}), 0)

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), convert.DefinesFile)
}

func TestHeaderMode(t *testing.T) {
	env, w := testEnvironment()
	test.ExpectEquality(t, launch(env, []string{"HEADER"}), 20)
	test.ExpectSuccess(t, w.Contains("ROM file required"))
}

func TestConvertMode(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "patch.asm")
	logFile := filepath.Join(dir, "results.log")

	err := os.WriteFile(fn, []byte("LDA $0050\nLDA $FFFFFF\n"), 0o644)
	test.DemandSuccess(t, err)

	env, w := testEnvironment()
	test.DemandEquality(t, launch(env, []string{"-pause=false", "-log", logFile, fn}), 0)
	test.ExpectSuccess(t, w.Contains("Total processed files 1, errored files 0\n"))
	test.ExpectSuccess(t, w.Contains("* some addresses need manual review (see log)\n"))

	b, err := os.ReadFile(convert.OutputName(fn))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "LDA $0050|!dp\nLDA $FFFFFF\n")

	b, err = os.ReadFile(logFile)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "Conversion: line 1: $0050 -> $0050|!dp\n"))
	test.ExpectSuccess(t, strings.Contains(string(b), "Warning: address $FFFFFF at line 2 couldn't be converted!\n"))
}

func TestConvertModeSilence(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "patch.asm")
	logFile := filepath.Join(dir, "results.log")

	err := os.WriteFile(fn, []byte("LDA $0050\n"), 0o644)
	test.DemandSuccess(t, err)

	env, w := testEnvironment()
	test.DemandEquality(t, launch(env, []string{"CONVERT", "-silence", "-pause=false", "-log", logFile, fn}), 0)
	test.ExpectFailure(t, w.Contains("Processing"))

	_, err = os.Stat(logFile)
	test.ExpectFailure(t, err)
}

func TestPrompt(t *testing.T) {
	w := &test.CompareWriter{}
	fn, err := prompt(strings.NewReader("  patch.asm \n"), w)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fn, "patch.asm")
	test.ExpectSuccess(t, w.Contains("Insert the name of the file"))

	_, err = prompt(strings.NewReader(""), w)
	test.ExpectFailure(t, err)
}
