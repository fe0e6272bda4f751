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

import "fmt"

// The machine loads an image at this address. Nothing in the
// assembler depends on it except the address column of listings.
const LoadBase = 0x200

// Highest address plus one.
const MemorySize = 0x1000

// Opcode is one encoded CHIP-8 instruction. It is always written
// high byte first.
type Opcode uint16

func newOpcode(high, low byte) Opcode {
	return Opcode(high)<<8 | Opcode(low)
}

func (op Opcode) High() byte { return byte(op >> 8) }
func (op Opcode) Low() byte  { return byte(op) }

func (op Opcode) Bytes() [2]byte {
	return [2]byte{op.High(), op.Low()}
}

func (op Opcode) String() string {
	return fmt.Sprintf("%04X", uint16(op))
}

// -----------------
// Instruction rules
// -----------------

type encodeFunc func(mnemonic string, operands []string) (Opcode, error)

type rule struct {
	rName   string     // mnemonic
	rNargs  int        // fewest operands accepted
	rNeeds  string     // what is missing when there are fewer
	rEncode encodeFunc // packs the operands
}

func newRule(rName string, rNargs int, rNeeds string, rEncode encodeFunc) *rule {
	return &rule{rName, rNargs, rNeeds, rEncode}
}

func (r *rule) encode(operands []string) (Opcode, error) {
	if len(operands) < r.rNargs {
		return 0, newError(NotEnoughValue, r.rName, "%s: %s", r.rName, r.rNeeds)
	}
	return r.rEncode(r.rName, operands)
}

// ------------------
// Instruction table
// ------------------

type ruleTable map[string]*rule

func (rt ruleTable) lookup(mnemonic string) (*rule, bool) {
	r, ok := rt[mnemonic]
	return r, ok
}
