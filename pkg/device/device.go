// Copyright (c) Jeff Berkowitz 2021, 2022. All rights reserved.

// Package device provides a synchronous byte I/O link to the board that
// loads and runs CHIP-8 images over a USB serial port. Opening a USB
// serial port raises DTR, which resets most boards, so Open waits for
// the reset to finish before returning.
//
// The serial port object is not safe for concurrent use, so a Device
// does everything from the calling goroutine and relies on the read
// timeout of go.bug.st/serial rather than a reader goroutine.
package device

import (
	"fmt"
	"log"
	"time"

	"go.bug.st/serial"
)

var debug bool = false

func SetDebug(setting bool) {
	debug = setting
}

type Device struct {
	name string
	port serial.Port
}

type NoResponseError time.Duration

func (nre NoResponseError) Error() string {
	return fmt.Sprintf("read from device: no response after %v", time.Duration(nre))
}

// Open the named serial device at 8N1 and wait resetDelay for the board.
func Open(name string, baudRate int, resetDelay time.Duration) (*Device, error) {
	mode := &serial.Mode{BaudRate: baudRate, DataBits: 8, Parity: serial.NoParity, StopBits: serial.OneStopBit}
	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	if resetDelay > 0 {
		log.Printf("serial port %s is open - delaying %v for reset\n", name, resetDelay)
		time.Sleep(resetDelay)
	}
	return newDevice(name, port), nil
}

func newDevice(name string, port serial.Port) *Device {
	return &Device{name: name, port: port}
}

func (d *Device) Name() string {
	return d.name
}

// Read until a byte is received or the timeout expires.
func (d *Device) ReadFor(timeout time.Duration) (byte, error) {
	b := make([]byte, 1)
	var n int
	var err error

	if err = d.port.SetReadTimeout(timeout); err != nil {
		return 0, err
	}
	for {
		n, err = d.port.Read(b)
		if !isRetryableSyscallError(err) {
			break
		}
	}
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, NoResponseError(timeout)
	}
	if debug {
		log.Printf("ReadFor: 0x%02X\n", b[0])
	}
	return b[0], nil
}

// Write all of toWrite. Short writes are continued.
func (d *Device) Write(toWrite []byte) error {
	if debug {
		log.Printf("Write: % X\n", toWrite)
	}
	for len(toWrite) > 0 {
		n, err := d.port.Write(toWrite)
		if isRetryableSyscallError(err) {
			continue
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("write to %s consumed 0 bytes", d.name)
		}
		toWrite = toWrite[n:]
	}
	return nil
}

func (d *Device) Close() error {
	if d.port == nil {
		return fmt.Errorf("internal error: close(): port not open")
	}
	if err := d.port.Close(); err != nil {
		log.Printf("close serial port: %s", err)
		return err
	}
	log.Println("serial port closed")
	d.port = nil
	return nil
}
