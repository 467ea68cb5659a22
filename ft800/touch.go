// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft800

import (
	"fmt"

	"tinygo.org/x/drivers/touch"
)

// XY is a decoded touch coordinate.
type XY struct {
	X, Y uint16
	// Valid is false while nothing touches the panel.
	Valid bool
}

func (p XY) String() string {
	if !p.Valid {
		return "(none)"
	}
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// TouchSample is one read of the three touch registers.
//
// Each part carries its own validity: the tag can be set while the raw
// coordinates are being refreshed, and the reverse.
type TouchSample struct {
	Raw    XY
	Screen XY
	Tag    uint8
}

// decodeXY splits a touch register holding X in the high half and Y in the
// low half.
func decodeXY(v, none uint32) XY {
	if v == none {
		return XY{}
	}
	return XY{X: uint16(v >> 16), Y: uint16(v), Valid: true}
}

// TouchRawXY returns the unscaled ADC coordinates of the touch.
func (d *Dev) TouchRawXY() (XY, error) {
	v, err := d.read32(RegTouchRawXY)
	if err != nil {
		return XY{}, fmt.Errorf("ft800: read touch raw xy: %w", err)
	}
	return decodeXY(v, rawNoTouch), nil
}

// TouchScreenXY returns the touch in screen pixels, after the calibration
// transform.
func (d *Dev) TouchScreenXY() (XY, error) {
	v, err := d.read32(RegTouchScreen)
	if err != nil {
		return XY{}, fmt.Errorf("ft800: read touch screen xy: %w", err)
	}
	return decodeXY(v, screenNoTouch), nil
}

// TouchTag returns the tag of the graphics object under the touch, or NoTag.
func (d *Dev) TouchTag() (uint8, error) {
	v, err := d.read8(RegTouchTag)
	if err != nil {
		return NoTag, fmt.Errorf("ft800: read touch tag: %w", err)
	}
	return v, nil
}

// TouchSample reads the raw, screen and tag registers.
func (d *Dev) TouchSample() (TouchSample, error) {
	var s TouchSample
	var err error
	if s.Raw, err = d.TouchRawXY(); err != nil {
		return TouchSample{}, err
	}
	if s.Screen, err = d.TouchScreenXY(); err != nil {
		return TouchSample{}, err
	}
	if s.Tag, err = d.TouchTag(); err != nil {
		return TouchSample{}, err
	}
	return s, nil
}

// ReadTouchPoint implements touch.Pointer.
//
// X and Y are screen pixels. Z is 1 while the panel is touched and 0
// otherwise, including when the bus fails.
func (d *Dev) ReadTouchPoint() touch.Point {
	p, err := d.TouchScreenXY()
	if err != nil {
		d.debug("%v", err)
		return touch.Point{}
	}
	if !p.Valid {
		return touch.Point{}
	}
	return touch.Point{X: int(p.X), Y: int(p.Y), Z: 1}
}

var _ touch.Pointer = &Dev{}
