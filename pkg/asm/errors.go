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
	"errors"
	"fmt"
)

// Kind tags every failure the assembler can report. A Kind is itself an
// error so callers can write errors.Is(err, asm.WrongValue).
type Kind int

const (
	UnknownInstruction Kind = iota + 1
	NotEnoughValue
	NotMemoryLocation
	WrongRegister
	WrongValue
	EmptyProgram

	// Raised by the collaborators around the build, never by Encode.
	FileNotExist
	WrongFormat
	ModeNotExist
)

var kindToString = map[Kind]string{
	UnknownInstruction: "unknown instruction",
	NotEnoughValue:     "not enough values",
	NotMemoryLocation:  "not a memory location",
	WrongRegister:      "wrong register",
	WrongValue:         "wrong value",
	EmptyProgram:       "no instructions",
	FileNotExist:       "file does not exist",
	WrongFormat:        "wrong file format",
	ModeNotExist:       "mode does not exist",
}

func (k Kind) String() string {
	if s, ok := kindToString[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) Error() string {
	return k.String()
}

// Error is a classified failure. Token is the offending source token, if
// there is one.
type Error struct {
	Kind  Kind
	Token string
	Msg   string
}

func newError(kind Kind, token string, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Token: token, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is matches a bare Kind, so the tag survives any amount of wrapping.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// BuildError annotates an encoder failure with the 1-based source line
// at which the build stopped. The wrapped error is not reinterpreted.
type BuildError struct {
	Line int
	Err  error
}

func (b *BuildError) Error() string {
	return fmt.Sprintf("line %d: %s", b.Line, b.Err)
}

func (b *BuildError) Unwrap() error {
	return b.Err
}

// KindOf returns the tag carried by err, or zero if it carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return 0
}
