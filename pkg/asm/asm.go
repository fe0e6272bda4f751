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

// Package asm is the SLIP-8 assembler for the CHIP-8 virtual machine.
//
// Each source line holds exactly one statement, a mnemonic followed by
// operands separated by single spaces, and becomes exactly one two byte
// opcode. There are no labels, symbols or directives, so a single pass
// over the lines is the whole job. Addresses are written in hex in the
// source, as are all other numbers.
//
// Encode is a pure function of one line. Build runs it over a program
// and stops at the first line that fails, discarding the bytes produced
// before the failure.
package asm

// Encode one source statement into an opcode.
func Encode(line string) (Opcode, error) {
	mnemonic, operands := splitStatement(line)
	r, ok := instructionSet.lookup(mnemonic)
	if !ok {
		return 0, newError(UnknownInstruction, mnemonic, "%q", mnemonic)
	}
	return r.encode(operands)
}

// Build encodes every line in order and returns the concatenated image.
// An encoding failure is returned as a *BuildError holding the 1-based
// line number; no bytes are returned with it.
func Build(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		return nil, newError(EmptyProgram, "", "nothing to assemble")
	}
	image := make([]byte, 0, 2*len(lines))
	for n, line := range lines {
		op, err := Encode(line)
		if err != nil {
			return nil, &BuildError{Line: n + 1, Err: err}
		}
		image = append(image, op.High(), op.Low())
	}
	return image, nil
}

// Program is a source file and the image built from it.
type Program struct {
	Source string
	Lines  []string
	Image  []byte

	// Text after the last newline of the source. It is not assembled.
	Unterminated string
}

// Assemble loads the named source file and builds it.
func Assemble(sourceFile string) (*Program, error) {
	lines, rest, err := loadSource(sourceFile)
	if err != nil {
		return nil, err
	}
	image, err := Build(lines)
	if err != nil {
		return nil, err
	}
	return &Program{Source: sourceFile, Lines: lines, Image: image, Unterminated: rest}, nil
}
