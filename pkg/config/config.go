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

// Package config holds the settings for talking to the board that runs
// CHIP-8 images. They come from built-in defaults, then an optional YAML
// file, then command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no --config is given, if it exists.
const DefaultFile = "slip8.yaml"

const maxImageEnd = 0x1000

type Config struct {
	Device        string        `yaml:"device"`
	Baud          int           `yaml:"baud"`
	ResetDelay    time.Duration `yaml:"reset_delay"`
	ResponseDelay time.Duration `yaml:"response_delay"`
	SyncTries     int           `yaml:"sync_tries"`
	RetryDelay    time.Duration `yaml:"retry_delay"`
	LoadBase      uint16        `yaml:"load_base"`
	ChunkSize     int           `yaml:"chunk_size"`
}

// Note: a baud rate change requires reflashing the board firmware.
func Default() Config {
	return Config{
		Device:        "/dev/cu.usbserial-AQ0169PT",
		Baud:          115200,
		ResetDelay:    3 * time.Second,
		ResponseDelay: 50 * time.Millisecond,
		SyncTries:     3,
		RetryDelay:    1 * time.Second,
		LoadBase:      0x200,
		ChunkSize:     64,
	}
}

// Load returns the defaults overlaid with the YAML file at path. If path
// is empty, DefaultFile is tried and may be absent.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Device == "" {
		return fmt.Errorf("config: no serial device")
	}
	if c.Baud <= 0 {
		return fmt.Errorf("config: illegal baud rate %d", c.Baud)
	}
	if c.ResetDelay < 0 || c.ResponseDelay < 0 || c.RetryDelay < 0 {
		return fmt.Errorf("config: delays may not be negative")
	}
	if c.SyncTries < 1 {
		return fmt.Errorf("config: sync_tries must be at least 1")
	}
	if c.ChunkSize < 1 || c.ChunkSize > 255 {
		return fmt.Errorf("config: chunk_size %d must be in 1..255", c.ChunkSize)
	}
	if c.LoadBase&1 != 0 || c.LoadBase >= maxImageEnd {
		return fmt.Errorf("config: illegal load_base 0x%X", c.LoadBase)
	}
	return nil
}
