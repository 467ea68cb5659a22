// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dltrace_test

import (
	"log"
	"os"

	"github.com/liquidic/devices/ft800"
	"github.com/liquidic/devices/ft800/dltrace"
	"github.com/liquidic/devices/ft800/ft800test"
)

func Example() {
	// Trace a screen drawn on a simulated chip. On hardware, wrap the bus
	// returned by ft800.NewSPIBus instead.
	tr := dltrace.New(ft800test.NewRunning(0), &dltrace.Opts{W: os.Stdout, NoColor: true})
	d := ft800.New(tr, &ft800.DefaultOpts)
	if err := d.Init(false); err != nil {
		log.Fatal(err)
	}
	steps := []func() error{
		d.CmdDLStart,
		func() error { return d.DL(ft800.ClearColorRGB(0, 0, 64), ft800.Clear(true, true, true)) },
		func() error { return d.CmdText(240, 136, 28, ft800.OptCenter, "Ready") },
		func() error { return d.DL(ft800.Display()) },
		d.CmdSwap,
	}
	for _, s := range steps {
		if err := s(); err != nil {
			log.Fatal(err)
		}
	}
	// Output:
	// 0000  CMD_DLSTART()
	// 0004  CLEAR_COLOR_RGB(0, 0, 64)
	// 0008  CLEAR(1, 1, 1)
	// 000c  CMD_TEXT(240, 136, 28, 1536, "Ready")
	// 0020  DISPLAY()
	// 0024  CMD_SWAP()
}
