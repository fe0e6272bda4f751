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

// Encoders for each mnemonic. Each one is handed the operands that
// followed the mnemonic, already checked against the rule's minimum
// count. Operands beyond the ones a form uses are ignored.

// An encoder for mnemonics without operands.
func fixed(high, low byte) encodeFunc {
	return func(mnemonic string, operands []string) (Opcode, error) {
		return newOpcode(high, low), nil
	}
}

// An encoder for the 0x8xyN and 0x9xy0 register pair instructions.
func registerPair(op byte, low byte) encodeFunc {
	return func(mnemonic string, operands []string) (Opcode, error) {
		x, err := mustGetRegister(mnemonic, operands[0])
		if err != nil {
			return 0, err
		}
		y, err := mustGetRegister(mnemonic, operands[1])
		if err != nil {
			return 0, err
		}
		return newOpcode(op<<4|x, y<<4|low), nil
	}
}

// An encoder for the 0xEx9E and 0xExA1 key instructions.
func keyTest(low byte) encodeFunc {
	return func(mnemonic string, operands []string) (Opcode, error) {
		x, err := mustGetRegister(mnemonic, operands[0])
		if err != nil {
			return 0, err
		}
		return newOpcode(0xE0|x, low), nil
	}
}

func encodeAddress(mnemonic string, op byte, operand string) (Opcode, error) {
	high, low, err := mustGetAddress(mnemonic, operand)
	if err != nil {
		return 0, err
	}
	return newOpcode(op<<4|high, low), nil
}

// jp addr is 0x1nnn. jp V0 addr is 0xBnnn.
func encodeJp(mnemonic string, operands []string) (Opcode, error) {
	if len(operands) == 1 {
		return encodeAddress(mnemonic, 0x1, operands[0])
	}
	if operands[0] != "V0" {
		return 0, newError(WrongRegister, operands[0], "%s: can't offset by %s, only by V0", mnemonic, operands[0])
	}
	return encodeAddress(mnemonic, 0xB, operands[1])
}

func encodeCall(mnemonic string, operands []string) (Opcode, error) {
	return encodeAddress(mnemonic, 0x2, operands[0])
}

// se Vx byte is 0x3xkk. se Vx Vy is 0x5xy0.
func encodeSe(mnemonic string, operands []string) (Opcode, error) {
	x, err := mustGetRegister(mnemonic, operands[0])
	if err != nil {
		return 0, err
	}
	second := operands[1]
	switch {
	case isRegister(second):
		y, err := mustGetRegister(mnemonic, second)
		if err != nil {
			return 0, err
		}
		return newOpcode(0x50|x, y<<4), nil
	case isHexLead(second):
		kk, err := mustGetByte(mnemonic, second)
		if err != nil {
			return 0, err
		}
		return newOpcode(0x30|x, kk), nil
	}
	return 0, newError(WrongValue, second, "%s: requires a register or a number, found %q", mnemonic, second)
}

// Low bytes of ld Vx <special>, all with a high byte of 0xFx.
var loadIntoRegister = map[string]byte{
	opDT:     0x07,
	opK:      0x0A,
	opMemAtI: 0x65,
}

// Low bytes of ld <special> Vx, all with a high byte of 0xFx.
var loadFromRegister = map[string]byte{
	opDT:     0x15,
	opST:     0x18,
	opF:      0x29,
	opB:      0x33,
	opMemAtI: 0x55,
}

// ld has eleven forms keyed on the first operand and then the second.
func encodeLd(mnemonic string, operands []string) (Opcode, error) {
	first, second := operands[0], operands[1]

	if isRegister(first) {
		x, err := mustGetRegister(mnemonic, first)
		if err != nil {
			return 0, err
		}
		if low, ok := loadIntoRegister[second]; ok {
			return newOpcode(0xF0|x, low), nil
		}
		switch {
		case isRegister(second):
			y, err := mustGetRegister(mnemonic, second)
			if err != nil {
				return 0, err
			}
			return newOpcode(0x80|x, y<<4), nil
		case isHexLead(second):
			kk, err := mustGetByte(mnemonic, second)
			if err != nil {
				return 0, err
			}
			return newOpcode(0x60|x, kk), nil
		}
		return 0, newError(WrongValue, second, "%s: requires a register, DT, K, [I] or a number, found %q", mnemonic, second)
	}

	if first == opI {
		return encodeAddress(mnemonic, 0xA, second)
	}

	if low, ok := loadFromRegister[first]; ok {
		x, err := mustGetRegister(mnemonic, second)
		if err != nil {
			return 0, err
		}
		return newOpcode(0xF0|x, low), nil
	}

	return 0, newError(WrongValue, first, "%s: expected V, I, DT, ST, F, B or [I], found %q", mnemonic, first)
}

// add Vx byte is 0x7xkk, add Vx Vy is 0x8xy4 and add I Vx is 0xFx1E.
func encodeAdd(mnemonic string, operands []string) (Opcode, error) {
	first, second := operands[0], operands[1]

	if first == opI {
		x, err := mustGetRegister(mnemonic, second)
		if err != nil {
			return 0, err
		}
		return newOpcode(0xF0|x, 0x1E), nil
	}

	if !isRegister(first) {
		return 0, newError(WrongValue, first, "%s: expected V or I, found %q", mnemonic, first)
	}
	x, err := mustGetRegister(mnemonic, first)
	if err != nil {
		return 0, err
	}
	if isRegister(second) {
		y, err := mustGetRegister(mnemonic, second)
		if err != nil {
			return 0, err
		}
		return newOpcode(0x80|x, y<<4|0x4), nil
	}
	kk, err := mustGetHexByte(mnemonic, second)
	if err != nil {
		return 0, err
	}
	return newOpcode(0x70|x, kk), nil
}

func encodeRnd(mnemonic string, operands []string) (Opcode, error) {
	x, err := mustGetRegister(mnemonic, operands[0])
	if err != nil {
		return 0, err
	}
	kk, err := mustGetHexByte(mnemonic, operands[1])
	if err != nil {
		return 0, err
	}
	return newOpcode(0xC0|x, kk), nil
}

func encodeDrw(mnemonic string, operands []string) (Opcode, error) {
	x, err := mustGetRegister(mnemonic, operands[0])
	if err != nil {
		return 0, err
	}
	y, err := mustGetRegister(mnemonic, operands[1])
	if err != nil {
		return 0, err
	}
	n, err := mustGetNibble(mnemonic, operands[2])
	if err != nil {
		return 0, err
	}
	return newOpcode(0xD0|x, y<<4|n), nil
}

// The instruction set, in the order the machine's manual lists it.
var mnemonics = []string{
	"nop", "cls", "ret", "jp", "call", "se", "ld", "add", "or", "and",
	"xor", "sub", "shr", "subn", "shl", "sne", "rnd", "drw", "skp", "sknp",
}

var instructionSet = ruleTable{
	"nop":  newRule("nop", 0, "", fixed(0x00, 0x00)),
	"cls":  newRule("cls", 0, "", fixed(0x00, 0xE0)),
	"ret":  newRule("ret", 0, "", fixed(0x00, 0xEE)),
	"jp":   newRule("jp", 1, "requires a memory location, or V0 and a memory location", encodeJp),
	"call": newRule("call", 1, "requires a memory location", encodeCall),
	"se":   newRule("se", 2, "requires a register and a register or a number", encodeSe),
	"ld":   newRule("ld", 2, "requires 2 more values", encodeLd),
	"add":  newRule("add", 2, "requires a register and a number or register", encodeAdd),
	"or":   newRule("or", 2, "requires two registers", registerPair(0x8, 0x1)),
	"and":  newRule("and", 2, "requires two registers", registerPair(0x8, 0x2)),
	"xor":  newRule("xor", 2, "requires two registers", registerPair(0x8, 0x3)),
	"sub":  newRule("sub", 2, "requires two registers", registerPair(0x8, 0x5)),
	"shr":  newRule("shr", 2, "requires two registers", registerPair(0x8, 0x6)),
	"subn": newRule("subn", 2, "requires two registers", registerPair(0x8, 0x7)),
	"shl":  newRule("shl", 2, "requires two registers", registerPair(0x8, 0xE)),
	"sne":  newRule("sne", 2, "requires two registers", registerPair(0x9, 0x0)),
	"rnd":  newRule("rnd", 2, "requires a register and a number", encodeRnd),
	"drw":  newRule("drw", 3, "requires two registers and a nibble", encodeDrw),
	"skp":  newRule("skp", 1, "requires a register", keyTest(0x9E)),
	"sknp": newRule("sknp", 1, "requires a register", keyTest(0xA1)),
}

// Mnemonics returns the recognized mnemonics in manual order.
func Mnemonics() []string {
	return append([]string(nil), mnemonics...)
}
