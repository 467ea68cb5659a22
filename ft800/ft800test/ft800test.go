// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ft800test implements a simulated FT800 for tests.
//
// Device models the chip at the transaction level: a sparse byte addressed
// memory, the ID register, the sound engine accepting requests at once, and
// optionally a co-processor that consumes every published command
// immediately. It does not render anything.
package ft800test

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/liquidic/devices/ft800"
)

// Kind is the kind of a logged transaction.
type Kind uint8

// Transaction kinds.
const (
	Read Kind = iota
	Write
	Host
)

func (k Kind) String() string {
	switch k {
	case Read:
		return "R"
	case Write:
		return "W"
	case Host:
		return "H"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Op is one bus transaction.
type Op struct {
	Kind Kind
	Addr uint32
	// Data is the bytes written, or read back.
	Data []byte
	Cmd  ft800.HostCommand
}

func (o Op) String() string {
	if o.Kind == Host {
		return "H " + o.Cmd.String()
	}
	return fmt.Sprintf("%s %#06x % x", o.Kind, o.Addr, o.Data)
}

// Device is a simulated FT800 implementing ft800.Bus.
type Device struct {
	sync.Mutex
	// AutoConsume makes the co-processor read every command as soon as
	// REG_CMD_WRITE is published.
	AutoConsume bool
	// HoldPlay leaves REG_PLAY set after a sound is requested, as if the
	// synthesizer were stuck.
	HoldPlay bool
	// Stuck lists bytes that read back a fixed value whatever is written.
	Stuck map[uint32]byte
	// Fail, when set, is called before each transaction. A non nil return
	// fails the transaction, which then has no effect and is not logged.
	// It must not call methods of the Device.
	Fail func(o Op) error
	// Ops is the log of successful transactions.
	Ops []Op

	mem map[uint32]byte
}

// New returns a simulated chip in its power on state: REG_ID reads
// ft800.ChipID and the co-processor consumes commands.
func New() *Device {
	d := &Device{AutoConsume: true, mem: map[uint32]byte{}}
	d.mem[ft800.RegID] = ft800.ChipID
	return d
}

// NewRunning returns a simulated chip that an earlier session already
// initialized, with the command FIFO write offset at cursor.
func NewRunning(cursor uint16) *Device {
	d := New()
	d.mem[ft800.RegGPIODir] = 0x83
	d.mem[ft800.RegGPIO] = 0x83
	d.mem[ft800.RegPCLK] = 5
	d.put32(ft800.RegCmdWrite, uint32(cursor))
	d.put32(ft800.RegCmdRead, uint32(cursor))
	return d
}

func (d *Device) String() string {
	return "ft800test"
}

// Read implements ft800.Bus.
func (d *Device) Read(addr uint32, p []byte) error {
	d.Lock()
	defer d.Unlock()
	o := Op{Kind: Read, Addr: addr, Data: make([]byte, len(p))}
	if err := d.fail(o); err != nil {
		return err
	}
	for i := range p {
		a := addr + uint32(i)
		if v, ok := d.Stuck[a]; ok {
			p[i] = v
			continue
		}
		p[i] = d.mem[a]
	}
	copy(o.Data, p)
	d.Ops = append(d.Ops, o)
	return nil
}

// Write implements ft800.Bus.
func (d *Device) Write(addr uint32, p []byte) error {
	d.Lock()
	defer d.Unlock()
	o := Op{Kind: Write, Addr: addr, Data: append([]byte(nil), p...)}
	if err := d.fail(o); err != nil {
		return err
	}
	for i, c := range p {
		d.mem[addr+uint32(i)] = c
	}
	d.Ops = append(d.Ops, o)
	switch addr {
	case ft800.RegPlay:
		if !d.HoldPlay {
			d.mem[ft800.RegPlay] = 0
		}
	case ft800.RegCmdWrite:
		if d.AutoConsume {
			d.put32(ft800.RegCmdRead, d.get32(ft800.RegCmdWrite))
		}
	}
	return nil
}

// HostCommand implements ft800.Bus.
//
// CORERST clears the command FIFO pointers.
func (d *Device) HostCommand(c ft800.HostCommand) error {
	d.Lock()
	defer d.Unlock()
	o := Op{Kind: Host, Cmd: c}
	if err := d.fail(o); err != nil {
		return err
	}
	if c == ft800.CoreRst {
		d.put32(ft800.RegCmdRead, 0)
		d.put32(ft800.RegCmdWrite, 0)
	}
	d.Ops = append(d.Ops, o)
	return nil
}

func (d *Device) fail(o Op) error {
	if d.Fail == nil {
		return nil
	}
	return d.Fail(o)
}

func (d *Device) get32(addr uint32) uint32 {
	var b [4]byte
	for i := range b {
		b[i] = d.mem[addr+uint32(i)]
	}
	return binary.LittleEndian.Uint32(b[:])
}

func (d *Device) put32(addr, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	for i, c := range b {
		d.mem[addr+uint32(i)] = c
	}
}

// Uint8 returns the byte at addr.
func (d *Device) Uint8(addr uint32) uint8 {
	d.Lock()
	defer d.Unlock()
	return d.mem[addr]
}

// Uint32 returns the little endian word at addr.
func (d *Device) Uint32(addr uint32) uint32 {
	d.Lock()
	defer d.Unlock()
	return d.get32(addr)
}

// SetUint8 stores v at addr without logging a transaction.
func (d *Device) SetUint8(addr uint32, v uint8) {
	d.Lock()
	defer d.Unlock()
	d.mem[addr] = v
}

// SetUint32 stores v at addr without logging a transaction.
func (d *Device) SetUint32(addr, v uint32) {
	d.Lock()
	defer d.Unlock()
	d.put32(addr, v)
}

// Touch simulates a touch at screen coordinates (x, y) on the object tagged
// tag. The raw ADC value reported is the screen value scaled by 4.
func (d *Device) Touch(x, y uint16, tag uint8) {
	d.Lock()
	defer d.Unlock()
	d.put32(ft800.RegTouchRawXY, uint32(x)<<18|uint32(y)<<2)
	d.put32(ft800.RegTouchScreen, uint32(x)<<16|uint32(y))
	d.mem[ft800.RegTouchTag] = tag
}

// Release simulates the end of a touch.
func (d *Device) Release() {
	d.Lock()
	defer d.Unlock()
	d.put32(ft800.RegTouchRawXY, 0xFFFFFFFF)
	d.put32(ft800.RegTouchScreen, 0x80008000)
	d.mem[ft800.RegTouchTag] = 0
}

// Commands returns the command FIFO bytes in [from, to), following the
// ring across its end.
func (d *Device) Commands(from, to uint16) []byte {
	d.Lock()
	defer d.Unlock()
	n := (int(to) - int(from)) & (ft800.RAMCMDSize - 1)
	out := make([]byte, n)
	for i := range out {
		off := (int(from) + i) & (ft800.RAMCMDSize - 1)
		out[i] = d.mem[ft800.RAMCMD+uint32(off)]
	}
	return out
}

// Words returns Commands(from, to) as little endian words. A trailing
// partial word is dropped.
func (d *Device) Words(from, to uint16) []uint32 {
	b := d.Commands(from, to)
	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return out
}

// Writes returns the logged writes to addr, in order.
func (d *Device) Writes(addr uint32) [][]byte {
	d.Lock()
	defer d.Unlock()
	var out [][]byte
	for _, o := range d.Ops {
		if o.Kind == Write && o.Addr == addr {
			out = append(out, o.Data)
		}
	}
	return out
}

// HostCommands returns the logged host commands, in order.
func (d *Device) HostCommands() []ft800.HostCommand {
	d.Lock()
	defer d.Unlock()
	var out []ft800.HostCommand
	for _, o := range d.Ops {
		if o.Kind == Host {
			out = append(out, o.Cmd)
		}
	}
	return out
}

// Reset clears the transaction log.
func (d *Device) Reset() {
	d.Lock()
	defer d.Unlock()
	d.Ops = nil
}

var _ ft800.Bus = &Device{}
