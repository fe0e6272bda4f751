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
	"strconv"
	"strings"
)

// Only lower case letters may lead an address or a number. The
// upper case letters are taken by V, I, DT, ST, K, F and B.
const hexDigits = "0123456789abcdef"

// Special register operands.
const (
	opI      = "I"
	opDT     = "DT"
	opST     = "ST"
	opK      = "K"
	opF      = "F"
	opB      = "B"
	opMemAtI = "[I]"
)

// Split a statement into its mnemonic and operands. Operands are
// separated by single spaces; a comma ending an operand is dropped
// so "ld V3, 1f" and "ld V3 1f" are the same statement.
func splitStatement(line string) (string, []string) {
	words := strings.Split(line, " ")
	operands := words[1:]
	for i, op := range operands {
		operands[i] = strings.TrimSuffix(op, ",")
	}
	return words[0], operands
}

// Whether op is in the register family. It may still fail to parse.
func isRegister(op string) bool {
	return strings.HasPrefix(op, "V")
}

// Whether op starts like a number or an address.
func isHexLead(op string) bool {
	return len(op) > 0 && strings.IndexByte(hexDigits, op[0]) >= 0
}

// We must get a general register, V0 through VF.
func mustGetRegister(mnemonic string, op string) (byte, error) {
	if len(op) != 2 || !isRegister(op) {
		return 0, newError(WrongValue, op, "%s: expected register, found %q", mnemonic, op)
	}
	n, err := strconv.ParseUint(op[1:], 16, 4)
	if err != nil {
		return 0, newError(WrongValue, op, "%s: %q is not a register", mnemonic, op)
	}
	return byte(n), nil
}

// We must get an 8-bit immediate written in hex with a lower case
// lead, where the operand could also have been DT, K or [I].
func mustGetByte(mnemonic string, op string) (byte, error) {
	if !isHexLead(op) {
		return 0, newError(WrongValue, op, "%s: expected number, found %q", mnemonic, op)
	}
	return mustGetHexByte(mnemonic, op)
}

// We must get an 8-bit immediate written in hex of either case.
func mustGetHexByte(mnemonic string, op string) (byte, error) {
	n, err := strconv.ParseUint(op, 16, 8)
	if err != nil {
		return 0, newError(WrongValue, op, "%s: %q is not a byte", mnemonic, op)
	}
	return byte(n), nil
}

// We must get a single hex digit of either case.
func mustGetNibble(mnemonic string, op string) (byte, error) {
	if len(op) != 1 {
		return 0, newError(WrongValue, op, "%s: expected one hex digit, found %q", mnemonic, op)
	}
	n, err := strconv.ParseUint(op, 16, 4)
	if err != nil {
		return 0, newError(WrongValue, op, "%s: expected one hex digit, found %q", mnemonic, op)
	}
	return byte(n), nil
}

// We must get a 12-bit address. The leading digit becomes the low nibble
// of the high byte and whatever follows it must parse as the low byte.
// The token is not parsed as a whole, so "2a0" and "2A0" are both a
// valid address but "A20" is not.
func mustGetAddress(mnemonic string, op string) (byte, byte, error) {
	if !isHexLead(op) {
		return 0, 0, newError(NotMemoryLocation, op, "%s: %q is not a memory location", mnemonic, op)
	}
	high := byte(strings.IndexByte(hexDigits, op[0]))
	low, err := strconv.ParseUint(op[1:], 16, 8)
	if err != nil {
		return 0, 0, newError(NotMemoryLocation, op, "%s: %q is not a memory location", mnemonic, op)
	}
	return high, byte(low), nil
}
