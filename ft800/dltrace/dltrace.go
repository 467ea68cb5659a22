// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dltrace prints the command stream sent to an FT800.
//
// Bus wraps the transport of an ft800.Dev. Every time the driver publishes
// REG_CMD_WRITE, the newly published part of the command FIFO is decoded
// and printed, one display list instruction or co-processor command per
// line. Colour commands are followed by a swatch of the colour.
//
// Useful to see what a screen is made of without the panel attached.
package dltrace

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image/color"
	"io"
	"strings"
	"sync"

	"github.com/liquidic/devices/ft800"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options of the tracer.
type Opts struct {
	// W receives the trace. Defaults to stdout, translated to the Windows
	// console API when needed.
	W io.Writer
	// Palette renders colour swatches. Defaults to ansi256.Default. Set
	// NoColor to omit them.
	Palette *ansi256.Palette
	NoColor bool

	_ struct{}
}

// Bus is an ft800.Bus that traces the command FIFO.
type Bus struct {
	b       ft800.Bus
	w       io.Writer
	palette ansi256.Palette
	noColor bool

	mu sync.Mutex
	// ring shadows RAM_CMD.
	ring [ft800.RAMCMDSize]byte
	// published is the last REG_CMD_WRITE seen.
	published uint16
	// pending holds published bytes not yet forming a whole command, and
	// pendingAt their offset in the ring.
	pending   []byte
	pendingAt uint16
	// blob is set after a command followed by raw data of unknown length.
	blob bool
	buf  bytes.Buffer
}

// New wraps b.
func New(b ft800.Bus, opts *Opts) *Bus {
	if opts == nil {
		opts = &Opts{}
	}
	t := &Bus{b: b, w: opts.W, noColor: opts.NoColor}
	if t.w == nil {
		t.w = colorable.NewColorableStdout()
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	t.palette = *p
	return t
}

func (t *Bus) String() string {
	return fmt.Sprintf("dltrace(%s)", t.b)
}

// Read implements ft800.Bus.
//
// Reading REG_CMD_WRITE, as the driver does when it attaches to a running
// chip, restarts decoding at the offset read.
func (t *Bus) Read(addr uint32, p []byte) error {
	if err := t.b.Read(addr, p); err != nil {
		return err
	}
	if addr == ft800.RegCmdWrite && len(p) >= 2 {
		t.mu.Lock()
		t.published = binary.LittleEndian.Uint16(p) & (ft800.RAMCMDSize - 1) &^ 3
		t.pending = nil
		t.blob = false
		t.mu.Unlock()
	}
	return nil
}

// Write implements ft800.Bus.
func (t *Bus) Write(addr uint32, p []byte) error {
	if err := t.b.Write(addr, p); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	switch {
	case addr >= ft800.RAMCMD && addr < ft800.RAMCMD+ft800.RAMCMDSize:
		for i, c := range p {
			t.ring[(int(addr-ft800.RAMCMD)+i)&(ft800.RAMCMDSize-1)] = c
		}
	case addr == ft800.RegCmdWrite && len(p) >= 2:
		next := binary.LittleEndian.Uint16(p) & (ft800.RAMCMDSize - 1)
		t.publish(next)
	}
	return nil
}

// HostCommand implements ft800.Bus.
func (t *Bus) HostCommand(c ft800.HostCommand) error {
	if err := t.b.HostCommand(c); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if c == ft800.CoreRst {
		t.published = 0
		t.pending = nil
		t.blob = false
	}
	t.buf.Reset()
	fmt.Fprintf(&t.buf, "----  host %s\n", c)
	_, _ = t.buf.WriteTo(t.w)
	return nil
}

func (t *Bus) publish(next uint16) {
	if len(t.pending) == 0 {
		t.pendingAt = t.published
	}
	for o := t.published; o != next; o = (o + 1) & (ft800.RAMCMDSize - 1) {
		t.pending = append(t.pending, t.ring[o])
	}
	t.published = next
	t.buf.Reset()
	t.decode()
	_, _ = t.buf.WriteTo(t.w)
}

// decode prints every whole command in pending.
func (t *Bus) decode() {
	if t.blob && len(t.pending) > 0 {
		fmt.Fprintf(&t.buf, "%04x    <%d bytes>\n", t.pendingAt, len(t.pending))
		t.consume(len(t.pending))
		t.blob = false
	}
	for len(t.pending) >= 4 {
		w := binary.LittleEndian.Uint32(t.pending)
		c, ok := coprocessor[w]
		if !ok {
			t.line(ft800.Word(w).String(), swatch(ft800.Word(w)))
			t.consume(4)
			continue
		}
		n := 4 + 4*c.params
		if len(t.pending) < n {
			return
		}
		args := make([]uint32, c.params)
		for i := range args {
			args[i] = binary.LittleEndian.Uint32(t.pending[4+4*i:])
		}
		if c.str {
			end := bytes.IndexByte(t.pending[n:], 0)
			if end < 0 {
				return
			}
			s := string(t.pending[n : n+end])
			t.line(c.format(args)+fmt.Sprintf(", %q)", s), nil)
			t.consume(n + (end+4)&^3)
			continue
		}
		var sw *color.NRGBA
		if c.color {
			sw = &color.NRGBA{R: uint8(args[0] >> 16), G: uint8(args[0] >> 8), B: uint8(args[0]), A: 0xFF}
		}
		t.line(c.format(args)+")", sw)
		t.consume(n)
		if c.blob {
			t.blob = true
			return
		}
	}
}

func (t *Bus) consume(n int) {
	if n > len(t.pending) {
		n = len(t.pending)
	}
	t.pending = t.pending[n:]
	t.pendingAt = uint16(int(t.pendingAt)+n) & (ft800.RAMCMDSize - 1)
}

func (t *Bus) line(s string, c *color.NRGBA) {
	fmt.Fprintf(&t.buf, "%04x  %s", t.pendingAt, s)
	if c != nil && !t.noColor {
		_, _ = t.buf.WriteString(" " + t.palette.Block(*c) + "\033[0m")
	}
	_ = t.buf.WriteByte('\n')
}

// swatch returns the colour set by a COLOR_RGB or CLEAR_COLOR_RGB word.
func swatch(w ft800.Word) *color.NRGBA {
	switch w.Opcode() {
	case ft800.OpColorRGB, ft800.OpClearColorRGB:
		return &color.NRGBA{R: uint8(w >> 16), G: uint8(w >> 8), B: uint8(w), A: 0xFF}
	}
	return nil
}

// command describes a co-processor command token.
type command struct {
	name   string
	params int
	// str is set when a NUL terminated string follows the parameters.
	str bool
	// blob is set when data of unknown length follows the parameters.
	blob bool
	// color is set when the first parameter is 0x00RRGGBB.
	color bool
	// halves prints each parameter as two 16 bit values, low half first.
	halves bool
}

func (c command) format(args []uint32) string {
	parts := make([]string, 0, 2*len(args))
	for _, a := range args {
		if c.halves {
			parts = append(parts, fmt.Sprint(a&0xFFFF), fmt.Sprint(a>>16))
		} else {
			parts = append(parts, fmt.Sprintf("%#x", a))
		}
	}
	return "CMD_" + c.name + "(" + strings.Join(parts, ", ")
}

var coprocessor = map[uint32]command{
	0xFFFFFF00: {name: "DLSTART"},
	0xFFFFFF01: {name: "SWAP"},
	0xFFFFFF09: {name: "BGCOLOR", params: 1, color: true},
	0xFFFFFF0A: {name: "FGCOLOR", params: 1, color: true},
	0xFFFFFF0C: {name: "TEXT", params: 2, str: true, halves: true},
	0xFFFFFF0D: {name: "BUTTON", params: 3, str: true, halves: true},
	0xFFFFFF0E: {name: "KEYS", params: 3, str: true, halves: true},
	0xFFFFFF15: {name: "CALIBRATE", params: 1},
	0xFFFFFF16: {name: "SPINNER", params: 2, halves: true},
	0xFFFFFF17: {name: "STOP"},
	0xFFFFFF22: {name: "INFLATE", params: 1, blob: true},
}

var _ ft800.Bus = &Bus{}
