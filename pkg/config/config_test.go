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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	path := filepath.Join(t.TempDir(), "slip8.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadNoDefaultFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestLoadOverlay(t *testing.T) {
	path := writeConfig(t, `
device: /dev/ttyUSB0
baud: 57600
response_delay: 20ms
reset_delay: 0s
load_base: 0x600
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Device)
	assert.Equal(t, 57600, cfg.Baud)
	assert.Equal(t, 20*time.Millisecond, cfg.ResponseDelay)
	assert.Equal(t, uint16(0x600), cfg.LoadBase)
	assert.Equal(t, time.Duration(0), cfg.ResetDelay)
	// untouched keys keep their defaults
	assert.Equal(t, Default().ChunkSize, cfg.ChunkSize)
	assert.Equal(t, Default().SyncTries, cfg.SyncTries)
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "baud: [1, 2\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	bad := []func(c *Config){
		func(c *Config) { c.Device = "" },
		func(c *Config) { c.Baud = 0 },
		func(c *Config) { c.SyncTries = 0 },
		func(c *Config) { c.ResetDelay = -time.Second },
		func(c *Config) { c.ChunkSize = 0 },
		func(c *Config) { c.ChunkSize = 256 },
		func(c *Config) { c.LoadBase = 0x201 },
		func(c *Config) { c.LoadBase = 0x1000 },
	}
	for i, change := range bad {
		cfg := Default()
		change(&cfg)
		assert.Error(t, cfg.Validate(), "case %d", i)
	}
}
