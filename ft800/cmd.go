// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft800

import (
	"errors"
	"fmt"
)

// Co-processor command tokens.
const (
	cmdDLStart   = 0xFFFFFF00
	cmdSwap      = 0xFFFFFF01
	cmdBgColor   = 0xFFFFFF09
	cmdFgColor   = 0xFFFFFF0A
	cmdText      = 0xFFFFFF0C
	cmdButton    = 0xFFFFFF0D
	cmdKeys      = 0xFFFFFF0E
	cmdCalibrate = 0xFFFFFF15
	cmdSpinner   = 0xFFFFFF16
	cmdStop      = 0xFFFFFF17
	cmdInflate   = 0xFFFFFF22
)

// Option modifies how widgets are drawn. Some values are shared between
// widgets with different meanings.
type Option uint16

// Widget options.
const (
	Opt3D        Option = 0
	OptMono      Option = 1
	OptNoDL      Option = 2
	OptFlat      Option = 256
	OptSigned    Option = 256
	OptCenterX   Option = 512
	OptCenterY   Option = 1024
	OptCenter    Option = 1536
	OptRightX    Option = 2048
	OptNoBack    Option = 4096
	OptNoTicks   Option = 8192
	OptNoHM      Option = 16384
	OptNoPointer Option = 16384
	OptNoSecs    Option = 32768
	OptNoHands   Option = 49152
)

// SpinnerStyle selects the CmdSpinner animation.
type SpinnerStyle uint16

// Spinner styles.
const (
	SpinnerCircle SpinnerStyle = iota
	SpinnerLine
	SpinnerClock
	SpinnerOrbit
)

// pack puts hi in the upper and lo in the lower 16 bits of a word.
func pack(hi, lo uint16) uint32 {
	return uint32(hi)<<16 | uint32(lo)
}

// cmd writes a command and its parameter words.
func (d *Dev) cmd(words ...uint32) error {
	if !d.Initialized() {
		return ErrNotInitialized
	}
	for _, w := range words {
		if err := d.writeWord(w); err != nil {
			return err
		}
	}
	return nil
}

// cmdString writes a command, its parameter words and a NUL terminated
// string.
func (d *Dev) cmdString(s string, words ...uint32) error {
	if err := d.cmd(words...); err != nil {
		return err
	}
	return d.writeString(s)
}

// CmdDLStart starts a new display list.
func (d *Dev) CmdDLStart() error {
	return d.cmd(cmdDLStart)
}

// CmdSwap swaps the display list built since CmdDLStart onto the screen.
func (d *Dev) CmdSwap() error {
	return d.cmd(cmdSwap)
}

// CmdStop stops a running spinner.
func (d *Dev) CmdStop() error {
	return d.cmd(cmdStop)
}

// CmdBgColor sets the widget background colour.
func (d *Dev) CmdBgColor(r, g, b uint8) error {
	return d.cmd(cmdBgColor, rgb(r, g, b))
}

// CmdFgColor sets the widget foreground colour.
func (d *Dev) CmdFgColor(r, g, b uint8) error {
	return d.cmd(cmdFgColor, rgb(r, g, b))
}

// CmdText draws s with a ROM font at (x, y).
func (d *Dev) CmdText(x, y, font uint16, opts Option, s string) error {
	return d.cmdString(s, cmdText, pack(y, x), pack(uint16(opts), font))
}

// CmdButton draws a button labelled s. Precede it with Tag to make it
// touchable.
func (d *Dev) CmdButton(x, y, w, h, font uint16, opts Option, s string) error {
	return d.cmdString(s, cmdButton, pack(y, x), pack(h, w), pack(uint16(opts), font))
}

// CmdKeys draws a row of keys, one per character of keys. If pressed is one
// of the characters, that key is drawn pressed; pass 0 for none.
func (d *Dev) CmdKeys(x, y, w, h, font uint16, opts Option, pressed byte, keys string) error {
	o := uint16(opts)&0xFF00 | uint16(pressed)
	return d.cmdString(keys, cmdKeys, pack(y, x), pack(h, w), pack(o, font))
}

// CmdSpinner draws an animated busy indicator until CmdStop or the next
// CmdDLStart.
func (d *Dev) CmdSpinner(x, y uint16, style SpinnerStyle, scale uint16) error {
	return d.cmd(cmdSpinner, pack(y, x), pack(scale, uint16(style)))
}

// CmdInflate decompresses zlib data into graphics RAM at offset.
func (d *Dev) CmdInflate(offset uint32, data []byte) error {
	if err := d.cmd(cmdInflate, RAMG+offset); err != nil {
		return err
	}
	return d.writeBuffer(data)
}

// CmdCalibrate starts the interactive touch calibration. The co-processor
// draws three dots in turn; poll CalibrationComplete for the result.
func (d *Dev) CmdCalibrate() error {
	return d.cmd(cmdCalibrate, 0)
}

// Calibration is the touch transform matrix, REG_TOUCH_TRANSFORM_A to F.
type Calibration [6]uint32

var transformRegs = [6]uint32{
	RegTouchTransA, RegTouchTransB, RegTouchTransC,
	RegTouchTransD, RegTouchTransE, RegTouchTransF,
}

// ReadCalibration reads the current touch transform.
func (d *Dev) ReadCalibration() (Calibration, error) {
	var c Calibration
	eh := errorHandler{d: d}
	for i, r := range transformRegs {
		c[i] = eh.read32(r)
	}
	if eh.err != nil {
		return Calibration{}, fmt.Errorf("ft800: read calibration: %w", eh.err)
	}
	return c, nil
}

// CalibrationComplete returns the transform computed by CmdCalibrate once
// the co-processor consumed every command. ok is false while it is still
// waiting for touches.
func (d *Dev) CalibrationComplete() (c Calibration, ok bool, err error) {
	if !d.Initialized() {
		return Calibration{}, false, ErrNotInitialized
	}
	empty, err := d.FIFOEmpty()
	if err != nil || !empty {
		return Calibration{}, false, err
	}
	c, err = d.ReadCalibration()
	if err != nil {
		return Calibration{}, false, err
	}
	return c, true, nil
}

// SetCalibration restores a transform saved from a previous calibration.
func (d *Dev) SetCalibration(c Calibration) error {
	if !d.Initialized() {
		return ErrNotInitialized
	}
	eh := errorHandler{d: d}
	for i, r := range transformRegs {
		eh.write32(r, c[i])
	}
	if eh.err != nil {
		return fmt.Errorf("ft800: set calibration: %w", eh.err)
	}
	return nil
}

// LoadBitmap copies data into graphics RAM at offset. Point BitmapSource at
// RAMG+offset to draw it.
func (d *Dev) LoadBitmap(offset uint32, data []byte) error {
	if !d.Initialized() {
		return ErrNotInitialized
	}
	if uint64(offset)+uint64(len(data)) > RAMGSize {
		return errors.New("ft800: bitmap does not fit in graphics RAM")
	}
	if err := d.b.Write(RAMG+offset, data); err != nil {
		return fmt.Errorf("ft800: load bitmap at %#x: %w", offset, err)
	}
	return nil
}

// SetMacro stores w in REG_MACRO_0 or REG_MACRO_1. A display list running
// Macro(id) executes it, so the word can be changed without rebuilding the
// list.
func (d *Dev) SetMacro(id uint8, w Word) error {
	if !d.Initialized() {
		return ErrNotInitialized
	}
	reg := uint32(RegMacro0)
	if id&1 != 0 {
		reg = RegMacro1
	}
	if err := d.write32(reg, uint32(w)); err != nil {
		return fmt.Errorf("ft800: set macro %d: %w", id&1, err)
	}
	return nil
}
