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

package archivefs

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Extract the contents of the archive into the destination directory. The
// directory is created if necessary. Returns the list of files that were
// written.
//
// Entries that would be written outside of the destination directory are an
// error and nothing more is extracted.
func Extract(archive string, dest string) ([]string, error) {
	zf, err := zip.OpenReader(archive)
	if err != nil {
		return nil, fmt.Errorf("archivefs: extract: %w", err)
	}
	defer zf.Close()

	dest = filepath.Clean(dest)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, fmt.Errorf("archivefs: extract: %w", err)
	}

	var files []string

	for _, f := range zf.File {
		target := filepath.Join(dest, filepath.FromSlash(f.Name))
		if target != dest && !strings.HasPrefix(target, dest+string(filepath.Separator)) {
			return files, fmt.Errorf("archivefs: extract: illegal path in archive: %s", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return files, fmt.Errorf("archivefs: extract: %w", err)
			}
			continue
		}

		if err := extractFile(f, target); err != nil {
			return files, fmt.Errorf("archivefs: extract: %w", err)
		}
		files = append(files, target)
	}

	return files, nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(target)
	if err != nil {
		return err
	}

	_, err = io.Copy(w, r)
	if err != nil {
		w.Close()
		return err
	}

	return w.Close()
}

// Collect walks the directory tree below root and returns every regular file
// for which the keep function returns true. Files are returned in lexical
// order.
func Collect(root string, keep func(filename string) bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && keep(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("archivefs: collect: %w", err)
	}

	return files, nil
}
