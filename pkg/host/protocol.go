// Copyright (c) Jeff Berkowitz 2021, 2022. All rights reserved.

package host

// Command level framing of the board protocol.

import (
	"fmt"
	"log"

	sp "github.com/gmofishsauce/slip8/pkg/proto"
)

type UnexpectedResponseError struct {
	Command  byte
	Response byte
}

func (u *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("command 0x%X: unexpected response 0x%X", u.Command, u.Response)
}

// Do a command, returning error if no ack or bad ack.
// Only for commands with no arguments and no return.
func (s *session) doCommand(cmd byte) error {
	_, err := s.doFixedCommand([]byte{cmd}, 0)
	return err
}

func (s *session) getAck(cmd byte) error {
	b, err := s.link.ReadFor(s.opts.ResponseDelay)
	if err != nil {
		return err
	}
	if b != sp.Ack(cmd) {
		return &UnexpectedResponseError{cmd, b}
	}
	return nil
}

// Send the fixed part of a command, which may be the entire command, wait
// for the ack and then read the expected number of fixed response bytes.
// If the board does not ack, no response bytes are read. If the ack is
// seen but the response is cut short, the error is returned with the part
// of the response that arrived.
func (s *session) doFixedCommand(fixed []byte, expected int) ([]byte, error) {
	var response []byte

	if len(fixed) < 1 || len(fixed)-1 != sp.FixedArgs(fixed[0]) {
		return response, fmt.Errorf("invalid fixed command % X", fixed)
	}
	if expected < 0 || expected > 8 {
		return response, fmt.Errorf("invalid fixed response expected")
	}
	if debug {
		log.Printf("doFixedCommand: sending % X\n", fixed)
	}
	if err := s.link.Write(fixed); err != nil {
		return response, err
	}
	if err := s.getAck(fixed[0]); err != nil {
		return response, err
	}

	for i := 0; i < expected; i++ {
		b, err := s.link.ReadFor(s.opts.ResponseDelay)
		if err != nil {
			return response, err
		}
		response = append(response, b)
	}
	return response, nil
}

// Send a counted set of bytes. The count must be in the last byte of the
// fixed slice and the counted slice must be exactly that long. Counted
// bytes are not acked, so only the fixed part can fail at the board.
func (s *session) doCountedSend(fixed []byte, counted []byte) error {
	count := fixed[len(fixed)-1]
	if len(counted) != int(count) {
		return fmt.Errorf("counted send: have %d bytes, count is %d", len(counted), count)
	}
	if _, err := s.doFixedCommand(fixed, 0); err != nil {
		return err
	}
	if debug {
		log.Printf("doCountedSend(): sending %d\n", len(counted))
	}
	return s.link.Write(counted)
}
