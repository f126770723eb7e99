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

// Package batch converts many assembly files at once. The files can be given
// as a directory or as a zip archive, which is extracted next to the archive
// before conversion.
//
// Files are converted concurrently. The log of each file is written to the
// diagnostics sink when the file is finished, so the records of different
// files never interleave.
package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sa1tools/sa1hybridizer/archivefs"
	"github.com/sa1tools/sa1hybridizer/convert"
	"github.com/sa1tools/sa1hybridizer/curated"
	"github.com/sa1tools/sa1hybridizer/logger"
	"golang.org/x/sync/errgroup"
)

// Sentinal error patterns. Use with curated.Is() and curated.Has().
const (
	FileError = "batch: %s: %v"
)

// SourceExtension is the extension of the files that are converted. The
// comparison is not case sensitive.
const SourceExtension = ".asm"

// Options for a batch conversion.
type Options struct {
	Convert convert.Options

	// maximum number of files converted at the same time. a value of zero or
	// less means there is no limit
	Workers int

	// controls the messages sent to the central logger. logger.Allow is used
	// if the value is nil
	Verbosity logger.Permission
}

// Result of converting a single file in the batch.
type Result struct {
	Filename string
	State    *convert.FileState
	Err      error
}

// Summary of a batch conversion.
type Summary struct {
	// number of files converted without error
	Processed int

	// number of files that could not be converted
	Errored int

	// total number of conversions in every file
	Conversions int

	// at least one file needs to be checked by hand
	ManualReview bool
}

func (s Summary) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total processed files %d, errored files %d\n", s.Processed, s.Errored))
	if s.ManualReview {
		b.WriteString("* some addresses need manual review (see log)\n")
	}
	return b.String()
}

func isSource(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), SourceExtension) && !convert.IsOutputName(filename)
}

// Files returns the list of files to convert for the path. An archive is
// extracted into a directory with the same name as the archive, without the
// extension, and the directory is searched in the same way as a directory
// path. Any other path is treated as a single file.
//
// Files that are the output of an earlier conversion are not included.
func Files(path string) ([]string, error) {
	if archivefs.HasArchiveExt(path) {
		dest := archivefs.TrimArchiveExt(path)
		_, err := archivefs.Extract(path, dest)
		if err != nil {
			return nil, curated.Errorf("batch: %v", err)
		}
		path = dest
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, curated.Errorf("batch: %v", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := archivefs.Collect(path, isSource)
	if err != nil {
		return nil, curated.Errorf("batch: %v", err)
	}

	return files, nil
}

// Run converts the list of files. The log of every file is written to the
// sink in turn, followed by an error line if the file could not be converted.
//
// An error in one file does not stop the conversion of the other files. The
// results are in the same order as the list of files.
func Run(files []string, sink io.Writer, opts Options) ([]Result, Summary) {
	perm := opts.Verbosity
	if perm == nil {
		perm = logger.Allow
	}

	results := make([]Result, len(files))

	var crit sync.Mutex
	flush := func(r Result) {
		crit.Lock()
		defer crit.Unlock()

		r.State.Log.Write(sink)
		if r.Err != nil {
			io.WriteString(sink, fmt.Sprintf("File %s errored: %v\n\n\n", r.Filename, r.Err))
			logger.Logf(perm, "Errored", "%s: %v", r.Filename, r.Err)
		} else {
			io.WriteString(sink, "\n\n")
			logger.Logf(perm, "Processed", "%s: %d conversions", r.Filename, r.State.Conversions)
		}
	}

	var g errgroup.Group
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i, fn := range files {
		g.Go(func() error {
			logger.Log(perm, "Processing", fn)

			fs, err := convert.File(fn, opts.Convert)
			if err != nil {
				err = curated.Errorf(FileError, fn, err)
			}

			results[i] = Result{Filename: fn, State: fs, Err: err}
			flush(results[i])

			// errors are recorded in the result
			return nil
		})
	}

	_ = g.Wait()

	var s Summary
	for _, r := range results {
		if r.Err != nil {
			s.Errored++
			continue
		}
		s.Processed++
		s.Conversions += r.State.Conversions
		s.ManualReview = s.ManualReview || r.State.ManualReview
	}

	return results, s
}
