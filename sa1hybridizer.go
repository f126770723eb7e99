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
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/sa1tools/sa1hybridizer/batch"
	"github.com/sa1tools/sa1hybridizer/convert"
	"github.com/sa1tools/sa1hybridizer/easyterm"
	"github.com/sa1tools/sa1hybridizer/logger"
	"github.com/sa1tools/sa1hybridizer/memorymap"
	"github.com/sa1tools/sa1hybridizer/modalflag"
	"github.com/sa1tools/sa1hybridizer/romheader"
	"github.com/sa1tools/sa1hybridizer/statsview"
	"github.com/sa1tools/sa1hybridizer/version"
)

const defaultLogFile = "results.log"

const convertHelp = `The converted file assumes the standard defines of Pixi, GPS and UberASM Tool.
If that is not the case, use the -defines flag and include the file written by
the DEFINES mode with the converted file.

A zip archive can also be converted. It is extracted next to the archive and
every .asm file found inside it is converted. Since the log is very verbose,
using -silence is recommended when converting archives.`

// environment is the input and output used by the modes
type environment struct {
	input  *os.File
	output io.Writer
}

func main() {
	env := environment{
		input:  os.Stdin,
		output: os.Stdout,
	}
	os.Exit(launch(env, os.Args[1:]))
}

// launch the mode selected by the arguments. returns the exit value for the
// program
func launch(env environment, args []string) int {
	md := &modalflag.Modes{Output: env.output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("CONVERT", "DEFINES", "REGIONS", "HEADER", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(env.output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "CONVERT":
		err = convertFiles(md, env)

	case "DEFINES":
		err = definesFile(md, env)

	case "REGIONS":
		err = regions(md, env)

	case "HEADER":
		err = header(md, env)

	case "VERSION":
		err = showVersion(md, env)
	}

	if err != nil {
		fmt.Fprintf(env.output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// prompt asks for the name of the file to convert
func prompt(input io.Reader, output io.Writer) (string, error) {
	fmt.Fprintln(output, "Insert the name of the file you wish to convert:")

	s := bufio.NewScanner(input)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no filename given")
	}

	filename := strings.TrimSpace(s.Text())
	if filename == "" {
		return "", fmt.Errorf("no filename given")
	}

	return filename, nil
}

func convertFiles(md *modalflag.Modes, env environment) error {
	md.NewMode()
	md.AdditionalHelp(convertHelp)

	defines := md.AddBool("defines", false, fmt.Sprintf("add 'incsrc %s' to the top of every converted file", convert.DefinesFilename))
	silence := md.AddBool("silence", false, "no log file and no progress messages")
	logFile := md.AddString("log", defaultLogFile, "file to write the conversion details to")
	workers := md.AddInt("workers", runtime.NumCPU(), "number of files to convert at the same time")
	pause := md.AddBool("pause", true, "wait for a key press before exiting")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, "run stats server during conversion")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
		filename, err = prompt(env.input, env.output)
		if err != nil {
			return err
		}
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	verbosity := logger.Verbosity(!*silence)
	logger.SetEcho(env.output, false)
	defer logger.SetEcho(nil, false)

	if stats != nil && *stats {
		stop := statsview.Launch(env.output)
		defer stop()
	}

	sink := io.Discard
	if !*silence {
		f, err := os.Create(*logFile)
		if err != nil {
			return err
		}
		defer f.Close()
		sink = f
	}

	files, err := batch.Files(filename)
	if err != nil {
		return err
	}

	results, summary := batch.Run(files, sink, batch.Options{
		Convert:   convert.Options{Defines: *defines},
		Workers:   *workers,
		Verbosity: verbosity,
	})

	// a single file that fails is always reported
	if len(results) == 1 && results[0].Err != nil && *silence {
		fmt.Fprintf(env.output, "File %s errored: %v\n", results[0].Filename, results[0].Err)
	}

	logger.NewColorizer(env.output).Write([]byte(summary.String()))

	if *pause {
		msg := "Conversion details in log file"
		if *silence {
			msg = "Silence mode was used"
		}
		return easyterm.Pause(env.input, env.output, fmt.Sprintf("%s\nPress any key to exit\n", msg))
	}

	return nil
}

func definesFile(md *modalflag.Modes, env environment) error {
	md.NewMode()

	output := md.AddString("output", convert.DefinesFilename, "name of the defines file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	err = os.WriteFile(*output, []byte(convert.DefinesFile), 0o644)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.output, "defines written to %s\n", *output)

	return nil
}

func regions(md *modalflag.Modes, env environment) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprint(env.output, memorymap.Summary())

	return nil
}

func header(md *modalflag.Modes, env environment) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		inf, err := romheader.Read(md.GetArg(0))
		if err != nil {
			return err
		}
		fmt.Fprint(env.output, inf.String())
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func showVersion(md *modalflag.Modes, env environment) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(env.output, version.String())

	return nil
}
