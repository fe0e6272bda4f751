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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// BinaryExt is appended to the output name of a binary image.
const BinaryExt = ".c8x"

const BYTES_PER_LINE = 16

// Mode selects how a built image is written.
type Mode int

const (
	ModeBinary Mode = iota // raw bytes to NAME.c8x
	ModeStdout             // decimal byte list
	ModeListing            // table of line, address, opcode and source
	ModeHex                // hex dump at load addresses
)

var modeNames = []string{"binary", "stdout", "listing", "hex"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode maps a mode name to a Mode.
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, newError(ModeNotExist, name,
		"mode %s is not defined, expected %s", name, strings.Join(modeNames, ", "))
}

// WriteTo renders image to w in one of the console modes. The
// listing mode needs the source and goes through WriteListing.
func WriteTo(w io.Writer, mode Mode, image []byte) error {
	switch mode {
	case ModeStdout:
		return writeByteList(w, image)
	case ModeHex:
		return dumpBytes(w, image)
	}
	return newError(ModeNotExist, mode.String(), "mode %s cannot be written to a console", mode)
}

// The byte list looks like [0, 224, 0, 238].
func writeByteList(w io.Writer, image []byte) error {
	var b strings.Builder
	b.WriteString("[")
	for i, v := range image {
		if i != 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteString("]\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func dumpBytes(w io.Writer, image []byte) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ADDR   DATA\n")
	for m := 0; m < len(image); m += BYTES_PER_LINE {
		fmt.Fprintf(bw, "0x%04X", LoadBase+m)
		for n := m; n < m+BYTES_PER_LINE && n < len(image); n++ {
			fmt.Fprintf(bw, " %02X", image[n])
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// WriteBinary writes image to name with the .c8x extension added unless
// it is already there. It returns the name of the file written.
func WriteBinary(name string, image []byte) (string, error) {
	if !strings.HasSuffix(name, BinaryExt) {
		name += BinaryExt
	}
	f, err := os.Create(name)
	if err != nil {
		return "", err
	}
	bw := bufio.NewWriter(f)
	if _, err := bw.Write(image); err != nil {
		f.Close()
		return "", err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return "", err
	}
	return name, f.Close()
}

// WriteListing writes a table pairing each source line with its opcode.
// lines and image must come from the same successful Build.
func WriteListing(w io.Writer, lines []string, image []byte) error {
	if 2*len(lines) != len(image) {
		return fmt.Errorf("listing: %d lines but %d bytes", len(lines), len(image))
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"LINE", "ADDR", "OPCODE", "SOURCE"})
	for n, line := range lines {
		op := newOpcode(image[2*n], image[2*n+1])
		tw.AppendRow(table.Row{n + 1, fmt.Sprintf("0x%04X", LoadBase+2*n), op.String(), line})
	}
	tw.Render()
	return nil
}
