// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft800

import (
	"encoding/binary"
)

// read8 reads an 8 bit value at addr.
func (d *Dev) read8(addr uint32) (uint8, error) {
	var buf [1]byte
	if err := d.b.Read(addr, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// read16 reads a 16 bit value at addr.
func (d *Dev) read16(addr uint32) (uint16, error) {
	var buf [2]byte
	if err := d.b.Read(addr, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// read32 reads a 32 bit value at addr.
func (d *Dev) read32(addr uint32) (uint32, error) {
	var buf [4]byte
	if err := d.b.Read(addr, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func (d *Dev) write8(addr uint32, v uint8) error {
	return d.b.Write(addr, []byte{v})
}

func (d *Dev) write16(addr uint32, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return d.b.Write(addr, buf[:])
}

func (d *Dev) write32(addr uint32, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return d.b.Write(addr, buf[:])
}

// errorHandler is a wrapper for error management. Once a transaction fails
// the remaining ones are skipped and the first error is kept.
type errorHandler struct {
	d   *Dev
	err error
}

func (eh *errorHandler) write8(addr uint32, v uint8) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.write8(addr, v)
}

func (eh *errorHandler) write16(addr uint32, v uint16) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.write16(addr, v)
}

func (eh *errorHandler) write32(addr uint32, v uint32) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.write32(addr, v)
}

func (eh *errorHandler) read8(addr uint32) uint8 {
	if eh.err != nil {
		return 0
	}
	var v uint8
	v, eh.err = eh.d.read8(addr)
	return v
}

func (eh *errorHandler) read32(addr uint32) uint32 {
	if eh.err != nil {
		return 0
	}
	var v uint32
	v, eh.err = eh.d.read32(addr)
	return v
}
