// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft800

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// ErrCoprocessorFault is returned when REG_CMD_READ reports the co-processor
// fault value 0xFFF. Only a core reset recovers it.
var ErrCoprocessorFault = errors.New("ft800: co-processor fault")

const (
	fifoMask  = RAMCMDSize - 1
	fifoFault = 0xFFF
)

// roundUp4 rounds n up to the next multiple of 4.
func roundUp4(n int) int {
	return (n + 3) &^ 3
}

// Cursor returns the local copy of the command FIFO write offset.
func (d *Dev) Cursor() uint16 {
	return d.cursor
}

// WriteWord appends one 32 bit word to the command FIFO and publishes it.
func (d *Dev) WriteWord(v uint32) error {
	if !d.Initialized() {
		return ErrNotInitialized
	}
	return d.writeWord(v)
}

// WriteBuffer appends p to the command FIFO and publishes it.
//
// The FIFO consumes whole words, so the write offset advances by len(p)
// rounded up to a multiple of 4. The padding bytes are not written.
//
// If a transaction fails the write offset is not advanced; the display list
// under construction must be restarted with CmdDLStart.
func (d *Dev) WriteBuffer(p []byte) error {
	if !d.Initialized() {
		return ErrNotInitialized
	}
	return d.writeBuffer(p)
}

// DL appends display list words to the command FIFO.
//
// Each word is published as it is written, so a failure leaves the previous
// words in the FIFO.
func (d *Dev) DL(words ...Word) error {
	if !d.Initialized() {
		return ErrNotInitialized
	}
	for _, w := range words {
		if err := d.writeWord(uint32(w)); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dev) writeWord(v uint32) error {
	// The cursor is word aligned so a word never straddles the wrap point.
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	if err := d.b.Write(RAMCMD+uint32(d.cursor), buf[:]); err != nil {
		return fmt.Errorf("ft800: command fifo write at %d: %w", d.cursor, err)
	}
	return d.publish(4)
}

func (d *Dev) writeBuffer(p []byte) error {
	// One transaction per byte: the ring can wrap anywhere inside p.
	for i, c := range p {
		off := (int(d.cursor) + i) & fifoMask
		if err := d.b.Write(RAMCMD+uint32(off), []byte{c}); err != nil {
			return fmt.Errorf("ft800: command fifo write at %d: %w", off, err)
		}
	}
	return d.publish(len(p))
}

// writeString appends s and its terminating NUL.
func (d *Dev) writeString(s string) error {
	p := make([]byte, len(s)+1)
	copy(p, s)
	return d.writeBuffer(p)
}

// publish advances the cursor by n bytes rounded up to a word and writes it
// to REG_CMD_WRITE, which starts the co-processor on the new range.
func (d *Dev) publish(n int) error {
	next := uint16((int(d.cursor) + roundUp4(n)) & fifoMask)
	if err := d.write32(RegCmdWrite, uint32(next)); err != nil {
		return fmt.Errorf("ft800: publish command fifo offset %d: %w", next, err)
	}
	d.debug("ft800: cmd write %d -> %d", d.cursor, next)
	d.cursor = next
	return nil
}

// readPointer reads REG_CMD_READ.
func (d *Dev) readPointer() (uint16, error) {
	r, err := d.read32(RegCmdRead)
	if err != nil {
		return 0, fmt.Errorf("ft800: read command fifo offset: %w", err)
	}
	if r == fifoFault {
		return 0, ErrCoprocessorFault
	}
	return uint16(r & fifoMask), nil
}

// FIFOEmpty reports whether the co-processor consumed everything written.
func (d *Dev) FIFOEmpty() (bool, error) {
	r, err := d.readPointer()
	if err != nil {
		return false, err
	}
	return r == d.cursor, nil
}

// FIFOFree returns how many bytes can be written without overrunning
// commands the co-processor has not read yet.
//
// The writes themselves never check it.
func (d *Dev) FIFOFree() (int, error) {
	r, err := d.readPointer()
	if err != nil {
		return 0, err
	}
	pending := (int(d.cursor) - int(r)) & fifoMask
	return RAMCMDSize - 4 - pending, nil
}

// WaitFIFOEmpty polls FIFOEmpty every millisecond until it holds or timeout
// elapsed.
func (d *Dev) WaitFIFOEmpty(timeout time.Duration) error {
	return d.poll(time.Millisecond, timeout, d.FIFOEmpty)
}

// poll calls done every interval until it returns true, returns an error,
// or timeout worth of intervals elapsed.
func (d *Dev) poll(interval, timeout time.Duration, done func() (bool, error)) error {
	if interval <= 0 {
		interval = time.Millisecond
	}
	tries := int(timeout / interval)
	if tries < 1 {
		tries = 1
	}
	for i := 0; ; i++ {
		ok, err := done()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if i >= tries {
			return ErrTimeout
		}
		d.clock.Sleep(interval)
	}
}
