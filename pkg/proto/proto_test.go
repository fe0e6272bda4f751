// Copyright (c) Jeff Berkowitz 2021, 2022. All rights reserved.

package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAck(t *testing.T) {
	assert.Equal(t, byte(0x0F), Ack(CmdSync))
	assert.Equal(t, byte(0x0C), Ack(CmdWritePage))
	for _, cmd := range []byte{CmdSync, CmdGetVer, CmdSetAddr, CmdWritePage, CmdRun} {
		assert.NotEqual(t, cmd, Ack(cmd))
	}
}

func TestFixedArgs(t *testing.T) {
	assert.Equal(t, 0, FixedArgs(CmdSync))
	assert.Equal(t, 2, FixedArgs(CmdSetAddr))
	assert.Equal(t, 1, FixedArgs(CmdWritePage))
	assert.Equal(t, -1, FixedArgs(0x12))
}
