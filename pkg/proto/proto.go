// Copyright (c) Jeff Berkowitz 2021, 2022. All rights reserved.

// Package proto defines the byte protocol spoken between the host and
// the board that loads and runs CHIP-8 images.
//
// Every command is one command byte followed by a fixed number of argument
// bytes. The board answers a complete fixed part with Ack(cmd), followed
// by a fixed response when the command has one. A write page command is
// followed by the counted bytes named in its last fixed byte; those are
// neither acked nor nak'd.
package proto

const ProtocolVersion = 1

const (
	CmdSync      = 0xF0 // no args; ack only
	CmdGetVer    = 0xF1 // no args; ack then one version byte
	CmdSetAddr   = 0xF2 // AH AL; ack
	CmdWritePage = 0xF3 // count; ack; then count bytes
	CmdRun       = 0xF4 // no args; ack, board jumps to the load base
)

// Largest count a single write page command can carry.
const MaxPage = 255

// Ack returns the byte the board sends to accept cmd.
func Ack(cmd byte) byte {
	return ^cmd
}

// FixedArgs returns the number of fixed argument bytes that follow cmd,
// or -1 for a byte that is not a command.
func FixedArgs(cmd byte) int {
	switch cmd {
	case CmdSync, CmdGetVer, CmdRun:
		return 0
	case CmdSetAddr:
		return 2
	case CmdWritePage:
		return 1
	}
	return -1
}
