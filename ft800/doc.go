// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ft800 controls a Bridgetek (FTDI) FT800 Embedded Video Engine
// attached over SPI.
//
// The FT800 is a graphics co-processor with its own display list memory,
// a 4 KiB circular command FIFO and a resistive touch engine. The host never
// draws pixels: it streams 32 bit display list words and co-processor
// commands into the FIFO and publishes the new write offset, and the chip
// renders the frame.
//
// # Display lists
//
// Every frame is built between CmdDLStart and CmdSwap. The word encoders
// (ClearColorRGB, Begin, Vertex2ii, ...) are pure functions; write their
// result with Dev.DL or Dev.WriteWord.
//
//	d.CmdDLStart()
//	d.DL(ft800.ClearColorRGB(0, 0, 0), ft800.Clear(true, true, true))
//	d.CmdText(240, 136, 28, ft800.OptCenter, "Ready")
//	d.DL(ft800.Display())
//	d.CmdSwap()
//
// The driver does not check free space in the FIFO before writing. A caller
// issuing a large or unrelated list should first wait for the previous one
// to drain with WaitFIFOEmpty, or check FIFOFree.
//
// # Touch
//
// TouchRawXY, TouchScreenXY and TouchTag decode the touch engine registers.
// Buttons turns the tag register into debounced press and release events.
//
// # Datasheets
//
// https://brtchip.com/wp-content/uploads/Support/Documentation/Datasheets/ICs/EVE/DS_FT800.pdf
//
// https://brtchip.com/wp-content/uploads/Support/Documentation/Programming_Guides/ICs/EVE/FT800_Series_Programmer_Guide.pdf
package ft800
