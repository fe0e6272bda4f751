/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package asm

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SourceExt is the only extension accepted for source files.
const SourceExt = ".c8asm"

// LoadSource checks that sourceFile names a readable .c8asm file
// and returns its lines.
func LoadSource(sourceFile string) ([]string, error) {
	lines, _, err := loadSource(sourceFile)
	return lines, err
}

// loadSource also returns the text after the last newline.
func loadSource(sourceFile string) ([]string, string, error) {
	info, err := os.Stat(sourceFile)
	if err != nil || info.IsDir() {
		return nil, "", newError(FileNotExist, sourceFile,
			"cannot find %s; either it is deleted or does not exist", sourceFile)
	}
	if filepath.Ext(sourceFile) != SourceExt {
		return nil, "", newError(WrongFormat, sourceFile,
			"%s is of wrong format, expecting %s file", sourceFile, SourceExt)
	}
	f, err := os.Open(sourceFile)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return readSource(bufio.NewReader(f))
}

// ReadLines returns every newline terminated line of r. Text after the
// last newline is not a line. Carriage returns ending a line are dropped
// but blank lines are kept; they are not valid statements.
func ReadLines(r io.Reader) ([]string, error) {
	lines, _, err := readSource(r)
	return lines, err
}

func readSource(r io.Reader) ([]string, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}
	split := strings.Split(string(data), "\n")
	lines := split[:len(split)-1]
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, split[len(split)-1], nil
}
