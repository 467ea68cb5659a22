// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package example brings up the instrument display and runs its home
// screen.
package example

import (
	"fmt"
	"log"
	"time"

	"github.com/liquidic/devices/ft800"
	"github.com/liquidic/devices/ft800/dltrace"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Button tags of the home screen.
const (
	TagTest  uint8 = 1
	TagFlush uint8 = 2
	TagSetup uint8 = 3
)

// HomeScreen builds the home screen display list.
func HomeScreen(d *ft800.Dev, status string) error {
	w, h := d.Bounds()
	steps := []func() error{
		d.CmdDLStart,
		func() error {
			return d.DL(ft800.ClearColorOf(ft800.PaletteBackground), ft800.Clear(true, true, true))
		},
		func() error { return d.CmdFgColor(ft800.RGB(ft800.PaletteButton)) },
		func() error { return d.DL(ft800.ColorOf(ft800.PaletteText), ft800.Tag(ft800.UntaggedIcon)) },
		func() error { return d.CmdText(w/2, 30, 29, ft800.OptCenter, "Oil Condition Tester") },
		func() error { return d.CmdText(w/2, 70, 27, ft800.OptCenter, status) },
		func() error { return d.DL(ft800.ColorOf(ft800.PaletteButtonText)) },
		func() error { return button(d, TagTest, 20, h-90, "Test") },
		func() error { return button(d, TagFlush, 180, h-90, "Flush") },
		func() error { return button(d, TagSetup, 340, h-90, "Setup") },
		func() error { return d.DL(ft800.Display()) },
		d.CmdSwap,
	}
	for _, s := range steps {
		if err := s(); err != nil {
			return err
		}
	}
	return nil
}

func button(d *ft800.Dev, tag uint8, x, y uint16, label string) error {
	if err := d.DL(ft800.Tag(tag)); err != nil {
		return err
	}
	return d.CmdButton(x, y, 120, 60, 28, ft800.Opt3D, label)
}

// Calibrate runs the touch calibration and returns the transform.
func Calibrate(d *ft800.Dev, timeout time.Duration) (ft800.Calibration, error) {
	if err := d.CmdDLStart(); err != nil {
		return ft800.Calibration{}, err
	}
	if err := d.DL(ft800.ClearColorOf(ft800.PaletteBackground), ft800.Clear(true, true, true), ft800.ColorOf(ft800.PaletteText)); err != nil {
		return ft800.Calibration{}, err
	}
	w, h := d.Bounds()
	if err := d.CmdText(w/2, h/2, 27, ft800.OptCenter, "Tap the dots"); err != nil {
		return ft800.Calibration{}, err
	}
	if err := d.CmdCalibrate(); err != nil {
		return ft800.Calibration{}, err
	}
	stop := time.After(timeout)
	for {
		c, ok, err := d.CalibrationComplete()
		if err != nil || ok {
			return c, err
		}
		select {
		case <-stop:
			return ft800.Calibration{}, ft800.ErrTimeout
		case <-time.After(50 * time.Millisecond):
		}
	}
}

// Example initializes the display on the first SPI port and polls the home
// screen buttons for ten seconds.
func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg SPI port registry to find the first available SPI bus.
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	opts := ft800.DefaultOpts
	// The PD_N line is optional; without it the chip is reset by host
	// command only.
	if pin := gpioreg.ByName("GPIO25"); pin != nil {
		opts.PowerDown = pin
	}
	b, err := ft800.NewSPIBus(p)
	if err != nil {
		log.Fatal(err)
	}
	// Print every command sent to the co-processor.
	d := ft800.New(dltrace.New(b, nil), &opts)
	d.EnableDebug(log.Printf)
	if err := d.Init(false); err != nil {
		log.Fatal(err)
	}
	fmt.Println(d)

	cal, err := Calibrate(d, 30*time.Second)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("calibration: %#08x\n", cal)

	if err := d.SetBacklight(80); err != nil {
		log.Fatal(err)
	}
	if err := HomeScreen(d, "Ready"); err != nil {
		log.Fatal(err)
	}

	buttons := ft800.NewButtons(d, d.KeyClick)
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	stop := time.After(10 * time.Second)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			switch ev := buttons.Poll(); ev {
			case ft800.NoTag:
			case ft800.ButtonReleased:
				fmt.Println("released")
			default:
				fmt.Printf("pressed %d at %v\n", ev, d.ReadTouchPoint())
			}
		}
	}
}
