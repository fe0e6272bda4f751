// Copyright (c) Jeff Berkowitz 2021, 2022. All rights reserved.

// Package host uploads CHIP-8 images to a board on a serial line. The
// byte protocol is defined in package proto.
package host

// About calls to time.Sleep(): sleeps occur only between failed sync
// attempts during connection setup. There are no delays in the upload.

import (
	"fmt"
	"log"
	"time"

	"github.com/gmofishsauce/slip8/pkg/config"
	sp "github.com/gmofishsauce/slip8/pkg/proto"
)

var debug = false

func SetDebug(setting bool) {
	debug = setting
}

// End of the CHIP-8 address space.
const memoryEnd = 0x1000

// Link is a synchronous byte link to the board. *device.Device is one.
type Link interface {
	ReadFor(timeout time.Duration) (byte, error)
	Write(b []byte) error
}

type Options struct {
	LoadBase      uint16
	ChunkSize     int
	ResponseDelay time.Duration
	SyncTries     int
	RetryDelay    time.Duration
	Run           bool // start the image once it is loaded
}

func OptionsFrom(cfg config.Config, run bool) Options {
	return Options{
		LoadBase:      cfg.LoadBase,
		ChunkSize:     cfg.ChunkSize,
		ResponseDelay: cfg.ResponseDelay,
		SyncTries:     cfg.SyncTries,
		RetryDelay:    cfg.RetryDelay,
		Run:           run,
	}
}

type session struct {
	link Link
	opts Options
}

// Upload synchronizes with the board, checks the protocol version and
// writes image to memory starting at the load base.
func Upload(link Link, image []byte, opts Options) error {
	if len(image) == 0 {
		return fmt.Errorf("upload: empty image")
	}
	if end := int(opts.LoadBase) + len(image); end > memoryEnd {
		return fmt.Errorf("upload: image of %d bytes at 0x%03X ends past 0x%03X",
			len(image), opts.LoadBase, memoryEnd)
	}
	if opts.ChunkSize < 1 || opts.ChunkSize > sp.MaxPage {
		return fmt.Errorf("upload: chunk size %d must be in 1..%d", opts.ChunkSize, sp.MaxPage)
	}
	if opts.SyncTries < 1 {
		opts.SyncTries = 1
	}

	s := &session{link: link, opts: opts}
	if err := s.establishConnection(); err != nil {
		return err
	}
	if err := s.download(image); err != nil {
		return err
	}
	if opts.Run {
		log.Println("starting image")
		return s.doCommand(sp.CmdRun)
	}
	return nil
}

func (s *session) establishConnection() error {
	if err := s.getSyncResponse(); err != nil {
		return err
	}
	if err := s.checkProtocolVersion(); err != nil {
		return err
	}
	if debug {
		log.Println("protocol version OK")
	}
	return nil
}

// Slowly send some syncs until we see one sync ack. If one is seen,
// return success after trying to consume any delayed acks.
func (s *session) getSyncResponse() error {
	nSent := 0
	for i := 0; i < s.opts.SyncTries; i++ {
		err := s.doCommand(sp.CmdSync)
		nSent++
		if err == nil {
			for nSent--; nSent > 0; nSent-- {
				s.link.ReadFor(s.opts.ResponseDelay)
			}
			return nil
		}
		log.Printf("sync command failed: %s\n", err)
		if i+1 < s.opts.SyncTries {
			time.Sleep(s.opts.RetryDelay)
		}
	}
	return fmt.Errorf("failed to synchronize after %d tries", s.opts.SyncTries)
}

type VersionError struct {
	Host  byte
	Board byte
}

func (v *VersionError) Error() string {
	return fmt.Sprintf("protocol version mismatch: host 0x%02X, board 0x%02X", v.Host, v.Board)
}

func (s *session) checkProtocolVersion() error {
	b, err := s.doFixedCommand([]byte{sp.CmdGetVer}, 1)
	if err != nil {
		return err
	}
	if b[0] != sp.ProtocolVersion {
		return &VersionError{sp.ProtocolVersion, b[0]}
	}
	return nil
}

// Write the image one page at a time, each preceded by its address.
func (s *session) download(image []byte) error {
	log.Printf("uploading %d bytes at 0x%03X\n", len(image), s.opts.LoadBase)
	for off := 0; off < len(image); off += s.opts.ChunkSize {
		end := off + s.opts.ChunkSize
		if end > len(image) {
			end = len(image)
		}
		addr := int(s.opts.LoadBase) + off
		if _, err := s.doFixedCommand([]byte{sp.CmdSetAddr, byte(addr >> 8), byte(addr)}, 0); err != nil {
			return fmt.Errorf("set address 0x%03X: %w", addr, err)
		}
		if err := s.doCountedSend([]byte{sp.CmdWritePage, byte(end - off)}, image[off:end]); err != nil {
			return fmt.Errorf("write page at 0x%03X: %w", addr, err)
		}
	}
	log.Println("upload complete")
	return nil
}
