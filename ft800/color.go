// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft800

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Instrument palette.
var (
	PaletteBackground = colornames.Black
	PaletteText       = colornames.White
	PaletteButton     = colornames.Steelblue
	PaletteButtonText = colornames.Whitesmoke
	PaletteGood       = colornames.Limegreen
	PaletteWarning    = colornames.Orange
	PaletteFault      = colornames.Red
)

// RGB converts c to the 8 bit channels used by ColorRGB and ClearColorRGB.
// Alpha is dropped; draw with ColorA for transparency.
func RGB(c color.Color) (r, g, b uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B
}

// ColorOf is ColorRGB for a color.Color.
func ColorOf(c color.Color) Word {
	return ColorRGB(RGB(c))
}

// ClearColorOf is ClearColorRGB for a color.Color.
func ClearColorOf(c color.Color) Word {
	return ClearColorRGB(RGB(c))
}

// rgb packs a widget colour parameter, 0x00RRGGBB.
func rgb(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
