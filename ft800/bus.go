// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft800

import (
	"fmt"

	"periph.io/x/conn/v3"
)

// Bus is the transaction layer between the driver and the chip.
//
// Addresses are 24 bit chip internal addresses. Read fills p, so the access
// width is len(p). Multi byte values are little endian.
type Bus interface {
	Read(addr uint32, p []byte) error
	Write(addr uint32, p []byte) error
	HostCommand(c HostCommand) error
}

// HostCommand is a power or clock command sent outside the memory space.
type HostCommand uint8

// Host commands.
const (
	Active  HostCommand = 0x00
	Standby HostCommand = 0x41
	Sleep   HostCommand = 0x42
	PwrDown HostCommand = 0x50
	ClkExt  HostCommand = 0x44
	ClkInt  HostCommand = 0x48
	Clk48M  HostCommand = 0x62
	Clk36M  HostCommand = 0x61
	CoreRst HostCommand = 0x68
)

func (h HostCommand) String() string {
	switch h {
	case Active:
		return "ACTIVE"
	case Standby:
		return "STANDBY"
	case Sleep:
		return "SLEEP"
	case PwrDown:
		return "PWRDOWN"
	case ClkExt:
		return "CLKEXT"
	case ClkInt:
		return "CLKINT"
	case Clk48M:
		return "CLK48M"
	case Clk36M:
		return "CLK36M"
	case CoreRst:
		return "CORERST"
	}
	return fmt.Sprintf("HostCommand(%#02x)", uint8(h))
}

const (
	readTransaction  = 0x00
	writeTransaction = 0x80
	headerSize       = 3
)

// spiBus frames memory transactions for the FT800 SPI slave.
//
// A read is the 3 byte address header, one dummy byte, then the data clocked
// out by the chip. It is sent as a single full duplex transfer so chip select
// stays asserted.
type spiBus struct {
	c         conn.Conn
	maxTxSize int
}

func newSPIBus(c conn.Conn) *spiBus {
	maxTxSize := 0
	if limits, ok := c.(conn.Limits); ok {
		maxTxSize = limits.MaxTxSize()
	}
	if maxTxSize == 0 {
		maxTxSize = 4096
	}
	return &spiBus{c: c, maxTxSize: maxTxSize}
}

func (s *spiBus) String() string {
	return s.c.String()
}

func header(addr uint32, kind byte) [headerSize]byte {
	return [headerSize]byte{
		byte(addr>>16)&0x3F | kind,
		byte(addr >> 8),
		byte(addr),
	}
}

func (s *spiBus) Read(addr uint32, p []byte) error {
	if len(p) == 0 {
		return nil
	}
	const lead = headerSize + 1
	if len(p)+lead > s.maxTxSize {
		// Split so every transfer fits; each chunk restarts at its own address.
		chunk := s.maxTxSize - lead
		for off := 0; off < len(p); off += chunk {
			end := off + chunk
			if end > len(p) {
				end = len(p)
			}
			if err := s.Read(addr+uint32(off), p[off:end]); err != nil {
				return err
			}
		}
		return nil
	}
	w := make([]byte, lead+len(p))
	h := header(addr, readTransaction)
	copy(w, h[:])
	r := make([]byte, len(w))
	if err := s.c.Tx(w, r); err != nil {
		return err
	}
	copy(p, r[lead:])
	return nil
}

func (s *spiBus) Write(addr uint32, p []byte) error {
	chunk := s.maxTxSize - headerSize
	for off := 0; off < len(p); off += chunk {
		end := off + chunk
		if end > len(p) {
			end = len(p)
		}
		h := header(addr+uint32(off), writeTransaction)
		w := make([]byte, 0, headerSize+end-off)
		w = append(w, h[:]...)
		w = append(w, p[off:end]...)
		if err := s.c.Tx(w, nil); err != nil {
			return err
		}
	}
	return nil
}

func (s *spiBus) HostCommand(c HostCommand) error {
	return s.c.Tx([]byte{byte(c), 0x00, 0x00}, nil)
}

var _ Bus = &spiBus{}
