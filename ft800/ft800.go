// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft800

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPI settings. The FT800 accepts up to 30MHz once the PLL runs; the
// instrument board is routed for 11MHz.
var (
	SpiFrequency = 11 * physic.MegaHertz
	SpiMode      = spi.Mode0
	SpiBits      = 8
)

var (
	// ErrNotInitialized is returned by display list and co-processor writes
	// issued before Init succeeded.
	ErrNotInitialized = errors.New("ft800: not initialized")
	// ErrWrongChip is returned when REG_ID does not read back ChipID.
	ErrWrongChip = errors.New("ft800: wrong or absent chip")
	// ErrVerify is returned when the GPIO or PCLK readback after enabling
	// the display does not match what was written.
	ErrVerify = errors.New("ft800: display enable verification failed")
	// ErrTimeout is returned by bounded polling loops.
	ErrTimeout = errors.New("ft800: timeout")
)

// IDError reports an unexpected REG_ID value.
type IDError struct {
	ID byte
}

func (e *IDError) Error() string {
	return fmt.Sprintf("ft800: unexpected chip id %#02x, want %#02x", e.ID, ChipID)
}

// Unwrap makes errors.Is(err, ErrWrongChip) hold.
func (e *IDError) Unwrap() error {
	return ErrWrongChip
}

// DebugF is the debug function type.
type DebugF func(string, ...interface{})

func noop(string, ...interface{}) {}

// Clock is the time source used by settle delays and polling loops.
type Clock interface {
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// Panel holds the LCD timing programmed during Init.
type Panel struct {
	Width, Height    uint16
	HCycle, HOffset  uint16
	HSync0, HSync1   uint16
	VCycle, VOffset  uint16
	VSync0, VSync1   uint16
	Swizzle, PCLKPol uint8
	CSpread          uint8
	// PCLK is the pixel clock divisor. Writing it last turns the display on.
	PCLK uint8
}

// WQVGA is the 480x272 panel fitted to the instrument.
var WQVGA = Panel{
	Width: 480, Height: 272,
	HCycle: 548, HOffset: 43, HSync0: 0, HSync1: 41,
	VCycle: 292, VOffset: 12, VSync0: 0, VSync1: 10,
	Swizzle: 0, PCLKPol: 1, CSpread: 1,
	PCLK: 5,
}

// QVGA is the 320x240 panel of the FT800 evaluation modules.
var QVGA = Panel{
	Width: 320, Height: 240,
	HCycle: 408, HOffset: 70, HSync0: 0, HSync1: 10,
	VCycle: 263, VOffset: 13, VSync0: 0, VSync1: 2,
	Swizzle: 2, PCLKPol: 0, CSpread: 1,
	PCLK: 8,
}

// Opts defines the options for the device.
type Opts struct {
	Panel Panel
	// ClearColor fills the screen in the display list written during Init.
	ClearColor color.NRGBA
	// VerifyID checks REG_ID after the ACTIVE host command.
	VerifyID bool
	// Settle is the delay after each host command. Zero uses 100ms.
	Settle time.Duration
	// PowerDown is the optional PD_N pin. When set it is pulsed low before
	// the core reset host command.
	PowerDown gpio.PinOut
	// Clock replaces the wall clock, for tests.
	Clock Clock
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Panel:      WQVGA,
	ClearColor: color.NRGBA{A: 0xFF},
	VerifyID:   true,
	Settle:     100 * time.Millisecond,
}

// Dev is an open handle to an FT800.
//
// Dev is not safe for concurrent use. Command words reach the chip in the
// order they are written.
type Dev struct {
	b    Bus
	opts Opts

	clock  Clock
	settle time.Duration
	debug  DebugF

	state State
	// cursor is the local mirror of REG_CMD_WRITE, always a multiple of 4
	// within [0, RAMCMDSize).
	cursor   uint16
	keyClick uint16
}

// NewSPI returns a Dev that communicates with an FT800 over SPI.
//
// The chip is not touched until Init is called.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	b, err := NewSPIBus(p)
	if err != nil {
		return nil, err
	}
	return New(b, opts), nil
}

// NewSPIBus connects to p and returns the framed transport, to be wrapped
// before being passed to New.
func NewSPIBus(p spi.Port) (Bus, error) {
	c, err := p.Connect(SpiFrequency, SpiMode, SpiBits)
	if err != nil {
		return nil, fmt.Errorf("ft800: %w", err)
	}
	return newSPIBus(c), nil
}

// New returns a Dev using an already framed Bus.
func New(b Bus, opts *Opts) *Dev {
	if opts == nil {
		opts = &DefaultOpts
	}
	d := &Dev{
		b:        b,
		opts:     *opts,
		clock:    opts.Clock,
		settle:   opts.Settle,
		debug:    noop,
		keyClick: uint16(Click),
	}
	if d.clock == nil {
		d.clock = realClock{}
	}
	if d.settle == 0 {
		d.settle = 100 * time.Millisecond
	}
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("ft800.Dev{%s, %dx%d, %s}", d.b, d.opts.Panel.Width, d.opts.Panel.Height, d.state)
}

// EnableDebug sets the debugging output using the local print function.
func (d *Dev) EnableDebug(f DebugF) {
	if f == nil {
		f = noop
	}
	d.debug = f
}

// Initialized reports whether Init succeeded.
func (d *Dev) Initialized() bool {
	return d.state == Verified
}

// Bounds returns the panel size in pixels.
func (d *Dev) Bounds() (width, height uint16) {
	return d.opts.Panel.Width, d.opts.Panel.Height
}

// Halt implements conn.Resource.
//
// It blanks the panel by stopping the pixel clock. Init must be called again
// to display anything.
func (d *Dev) Halt() error {
	if err := d.write8(RegPCLK, 0); err != nil {
		return fmt.Errorf("ft800: halt: %w", err)
	}
	d.state = PoweredDown
	return nil
}
