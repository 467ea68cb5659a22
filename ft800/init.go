// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft800

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// State is the bring up stage reached by Init.
type State uint8

// Init stages, in order.
const (
	PoweredDown State = iota
	Reset
	ActiveState
	ClockConfigured
	TimingConfigured
	DisplayEnabled
	Verified
	Failed
)

func (s State) String() string {
	switch s {
	case PoweredDown:
		return "PoweredDown"
	case Reset:
		return "Reset"
	case ActiveState:
		return "Active"
	case ClockConfigured:
		return "ClockConfigured"
	case TimingConfigured:
		return "TimingConfigured"
	case DisplayEnabled:
		return "DisplayEnabled"
	case Verified:
		return "Verified"
	case Failed:
		return "Failed"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// State returns the stage reached by the last Init.
func (d *Dev) State() State {
	return d.state
}

// Init brings the chip to a displaying state.
//
// With force false, Init first probes the chip. If it already shows an
// enabled display the driver attaches to it without a reset, adopting the
// current REG_CMD_WRITE, so the screen does not flash. Otherwise, or with
// force true, the chip is reset and fully configured.
//
// There is no retry. On failure the Dev stays uninitialized and Init may be
// called again.
func (d *Dev) Init(force bool) error {
	if !force {
		ok, err := d.attach()
		if ok {
			return nil
		}
		d.debug("ft800: probe inconclusive (%v), resetting", err)
	}
	if err := d.initialize(); err != nil {
		d.debug("ft800: init failed in state %s: %v", d.state, err)
		d.state = Failed
		return err
	}
	return nil
}

// attach adopts an already running chip.
func (d *Dev) attach() (bool, error) {
	eh := errorHandler{d: d}
	id := eh.read8(RegID)
	dir := eh.read8(RegGPIODir)
	gp := eh.read8(RegGPIO)
	pclk := eh.read8(RegPCLK)
	if eh.err != nil {
		return false, eh.err
	}
	if id != ChipID || dir&gpioDisplay != gpioDisplay || gp&gpioDisplay != gpioDisplay || pclk == 0 {
		return false, nil
	}
	if _, err := d.readPointer(); err != nil {
		return false, err
	}
	w, err := d.read32(RegCmdWrite)
	if err != nil {
		return false, err
	}
	d.cursor = uint16(w & fifoMask &^ 3)
	d.setState(Verified)
	return true, nil
}

func (d *Dev) setState(s State) {
	d.debug("ft800: %s -> %s", d.state, s)
	d.state = s
}

func (d *Dev) hostCommand(c HostCommand) error {
	if err := d.b.HostCommand(c); err != nil {
		return fmt.Errorf("ft800: host command %s: %w", c, err)
	}
	d.clock.Sleep(d.settle)
	return nil
}

func (d *Dev) initialize() error {
	p := d.opts.Panel
	if p.PCLK == 0 {
		return errors.New("ft800: panel PCLK divisor must not be zero")
	}
	d.setState(PoweredDown)

	// 1. Reset.
	if pin := d.opts.PowerDown; pin != nil {
		if err := d.pulsePowerDown(pin); err != nil {
			return err
		}
	}
	if err := d.hostCommand(CoreRst); err != nil {
		return err
	}
	d.setState(Reset)

	// 2. Wake up, and make sure an FT800 answers.
	if err := d.hostCommand(Active); err != nil {
		return err
	}
	d.setState(ActiveState)
	if d.opts.VerifyID {
		if err := d.waitChipID(); err != nil {
			return err
		}
	}

	// 3. External crystal.
	if err := d.hostCommand(ClkExt); err != nil {
		return err
	}
	d.setState(ClockConfigured)

	// 4. Panel timing, with the pixel clock stopped.
	eh := errorHandler{d: d}
	eh.write8(RegPCLK, 0)
	eh.write16(RegHCycle, p.HCycle)
	eh.write16(RegHOffset, p.HOffset)
	eh.write16(RegHSync0, p.HSync0)
	eh.write16(RegHSync1, p.HSync1)
	eh.write16(RegVCycle, p.VCycle)
	eh.write16(RegVOffset, p.VOffset)
	eh.write16(RegVSync0, p.VSync0)
	eh.write16(RegVSync1, p.VSync1)
	eh.write8(RegSwizzle, p.Swizzle)
	eh.write8(RegPCLKPol, p.PCLKPol)
	eh.write8(RegCSpread, p.CSpread)
	eh.write16(RegHSize, p.Width)
	eh.write16(RegVSize, p.Height)
	if eh.err != nil {
		return fmt.Errorf("ft800: panel timing: %w", eh.err)
	}
	d.setState(TimingConfigured)

	// 5. Silence the power up pop, show a blank list and drive the panel.
	if err := d.Mute(); err != nil {
		return err
	}
	c := d.opts.ClearColor
	eh.write32(RAMDL+0, uint32(ClearColorRGB(c.R, c.G, c.B)))
	eh.write32(RAMDL+4, uint32(Clear(true, true, true)))
	eh.write32(RAMDL+8, uint32(Display()))
	eh.write8(RegDLSwap, DLSwapFrame)
	dir := eh.read8(RegGPIODir)
	eh.write8(RegGPIODir, dir|gpioDisplay)
	gp := eh.read8(RegGPIO)
	eh.write8(RegGPIO, gp|gpioDisplay)
	eh.write8(RegPCLK, p.PCLK)
	if eh.err != nil {
		return fmt.Errorf("ft800: display enable: %w", eh.err)
	}
	d.setState(DisplayEnabled)

	// 6. Read back.
	dir = eh.read8(RegGPIODir)
	gp = eh.read8(RegGPIO)
	pclk := eh.read8(RegPCLK)
	if eh.err != nil {
		return fmt.Errorf("ft800: display enable readback: %w", eh.err)
	}
	if dir&gpioDisplay != gpioDisplay || gp&gpioDisplay != gpioDisplay || pclk != p.PCLK {
		return fmt.Errorf("%w: gpio_dir=%#02x gpio=%#02x pclk=%d", ErrVerify, dir, gp, pclk)
	}
	d.cursor = 0
	d.setState(Verified)
	return d.Unmute()
}

// waitChipID polls REG_ID until the chip reports ChipID. The ID reads back
// garbage for a few milliseconds after ACTIVE.
func (d *Dev) waitChipID() error {
	var id uint8
	err := d.poll(d.settle/10, d.settle, func() (bool, error) {
		var err error
		id, err = d.read8(RegID)
		return id == ChipID, err
	})
	switch {
	case errors.Is(err, ErrTimeout):
		return &IDError{ID: id}
	case err != nil:
		return fmt.Errorf("ft800: read chip id: %w", err)
	}
	return nil
}

func (d *Dev) pulsePowerDown(pin gpio.PinOut) error {
	const pulse = 20 * time.Millisecond
	if err := pin.Out(gpio.Low); err != nil {
		return fmt.Errorf("ft800: power down pin: %w", err)
	}
	d.clock.Sleep(pulse)
	if err := pin.Out(gpio.High); err != nil {
		return fmt.Errorf("ft800: power down pin: %w", err)
	}
	d.clock.Sleep(pulse)
	return nil
}
