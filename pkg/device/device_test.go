// Copyright (c) Jeff Berkowitz 2021, 2022. All rights reserved.

package device

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bug.st/serial"
)

// fakePort answers reads from a script and records writes. Methods
// of serial.Port that a Device never calls are left to the embedded
// nil interface.
type fakePort struct {
	serial.Port
	toRead   []byte
	written  []byte
	maxWrite int
	timeout  time.Duration
	closed   bool
}

func (p *fakePort) SetReadTimeout(t time.Duration) error {
	p.timeout = t
	return nil
}

func (p *fakePort) Read(b []byte) (int, error) {
	if len(p.toRead) == 0 {
		return 0, nil
	}
	n := copy(b, p.toRead)
	p.toRead = p.toRead[n:]
	return n, nil
}

func (p *fakePort) Write(b []byte) (int, error) {
	n := len(b)
	if p.maxWrite > 0 && n > p.maxWrite {
		n = p.maxWrite
	}
	p.written = append(p.written, b[:n]...)
	return n, nil
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func TestReadFor(t *testing.T) {
	port := &fakePort{toRead: []byte{0x0F, 0x01}}
	d := newDevice(t.Name(), port)

	b, err := d.ReadFor(10 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, byte(0x0F), b)
	assert.Equal(t, 10*time.Millisecond, port.timeout)

	b, err = d.ReadFor(time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), b)
}

func TestReadForTimeout(t *testing.T) {
	d := newDevice(t.Name(), &fakePort{})
	_, err := d.ReadFor(5 * time.Millisecond)
	var nre NoResponseError
	require.True(t, errors.As(err, &nre))
	assert.Equal(t, 5*time.Millisecond, time.Duration(nre))
	assert.Contains(t, err.Error(), "no response after 5ms")
}

func TestWriteContinuesShortWrites(t *testing.T) {
	port := &fakePort{maxWrite: 2}
	d := newDevice(t.Name(), port)
	require.NoError(t, d.Write([]byte{1, 2, 3, 4, 5}))
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, port.written)
}

func TestClose(t *testing.T) {
	port := &fakePort{}
	d := newDevice(t.Name(), port)
	require.NoError(t, d.Close())
	assert.True(t, port.closed)
	assert.Error(t, d.Close())
}

func TestRetryable(t *testing.T) {
	assert.False(t, isRetryableSyscallError(nil))
	assert.False(t, isRetryableSyscallError(errors.New("other")))
}
