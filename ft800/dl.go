// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft800

// Word is one 32 bit display list instruction.
//
// The top byte selects the instruction, the remaining bits hold the
// parameters. VERTEX2F and VERTEX2II use the top 2 bits instead. Encoders
// mask parameters to their field width, the same way the chip ignores the
// extra bits.
type Word uint32

// Opcode identifies a display list instruction.
type Opcode uint8

// Display list opcodes.
const (
	OpDisplay          Opcode = 0x00
	OpBitmapSource     Opcode = 0x01
	OpClearColorRGB    Opcode = 0x02
	OpTag              Opcode = 0x03
	OpColorRGB         Opcode = 0x04
	OpBitmapHandle     Opcode = 0x05
	OpCell             Opcode = 0x06
	OpBitmapLayout     Opcode = 0x07
	OpBitmapSize       Opcode = 0x08
	OpAlphaFunc        Opcode = 0x09
	OpStencilFunc      Opcode = 0x0A
	OpBlendFunc        Opcode = 0x0B
	OpStencilOp        Opcode = 0x0C
	OpPointSize        Opcode = 0x0D
	OpLineWidth        Opcode = 0x0E
	OpClearColorA      Opcode = 0x0F
	OpColorA           Opcode = 0x10
	OpClearStencil     Opcode = 0x11
	OpClearTag         Opcode = 0x12
	OpStencilMask      Opcode = 0x13
	OpTagMask          Opcode = 0x14
	OpBitmapTransformA Opcode = 0x15
	OpBitmapTransformB Opcode = 0x16
	OpBitmapTransformC Opcode = 0x17
	OpBitmapTransformD Opcode = 0x18
	OpBitmapTransformE Opcode = 0x19
	OpBitmapTransformF Opcode = 0x1A
	OpScissorXY        Opcode = 0x1B
	OpScissorSize      Opcode = 0x1C
	OpCall             Opcode = 0x1D
	OpJump             Opcode = 0x1E
	OpBegin            Opcode = 0x1F
	OpColorMask        Opcode = 0x20
	OpEnd              Opcode = 0x21
	OpSaveContext      Opcode = 0x22
	OpRestoreContext   Opcode = 0x23
	OpReturn           Opcode = 0x24
	OpMacro            Opcode = 0x25
	OpClear            Opcode = 0x26
	OpVertex2f         Opcode = 0x40
	OpVertex2ii        Opcode = 0x80
)

// Primitive is the graphics primitive selected by Begin.
type Primitive uint8

// Primitives.
const (
	Bitmaps    Primitive = 1
	Points     Primitive = 2
	Lines      Primitive = 3
	LineStrip  Primitive = 4
	EdgeStripR Primitive = 5
	EdgeStripL Primitive = 6
	EdgeStripA Primitive = 7
	EdgeStripB Primitive = 8
	Rects      Primitive = 9
)

// Format is a bitmap pixel format.
type Format uint8

// Bitmap formats.
const (
	ARGB1555 Format = 0
	L1       Format = 1
	L4       Format = 2
	L8       Format = 3
	RGB332   Format = 4
	ARGB2    Format = 5
	ARGB4    Format = 6
	RGB565   Format = 7
	Paletted Format = 8
	Text8x8  Format = 9
	TextVGA  Format = 10
	Bargraph Format = 11
)

// Filter is the bitmap sampling filter.
type Filter uint8

// Filters.
const (
	Nearest  Filter = 0
	Bilinear Filter = 1
)

// Wrap is the bitmap wrap mode along one axis.
type Wrap uint8

// Wrap modes.
const (
	Border Wrap = 0
	Repeat Wrap = 1
)

// TestFunc is the comparison used by AlphaFunc and StencilFunc.
type TestFunc uint8

// Test functions.
const (
	Never    TestFunc = 0
	Less     TestFunc = 1
	LEqual   TestFunc = 2
	Greater  TestFunc = 3
	GEqual   TestFunc = 4
	Equal    TestFunc = 5
	NotEqual TestFunc = 6
	Always   TestFunc = 7
)

// BlendFactor is a source or destination factor for BlendFunc.
type BlendFactor uint8

// Blend factors.
const (
	Zero             BlendFactor = 0
	One              BlendFactor = 1
	SrcAlpha         BlendFactor = 2
	DstAlpha         BlendFactor = 3
	OneMinusSrcAlpha BlendFactor = 4
	OneMinusDstAlpha BlendFactor = 5
)

// StencilAction is what StencilOp does with the stencil buffer.
type StencilAction uint8

// Stencil actions.
const (
	StencilZero    StencilAction = 0
	StencilKeep    StencilAction = 1
	StencilReplace StencilAction = 2
	StencilIncr    StencilAction = 3
	StencilDecr    StencilAction = 4
	StencilInvert  StencilAction = 5
)

func op(o Opcode) Word {
	return Word(o) << 24
}

func bit(b bool) Word {
	if b {
		return 1
	}
	return 0
}

// Display ends the display list.
func Display() Word {
	return op(OpDisplay)
}

// BitmapSource sets the RAM_G address of the current bitmap handle.
func BitmapSource(addr uint32) Word {
	return op(OpBitmapSource) | Word(addr&0xFFFFF)
}

// ClearColorRGB sets the color used by Clear.
func ClearColorRGB(r, g, b uint8) Word {
	return op(OpClearColorRGB) | Word(r)<<16 | Word(g)<<8 | Word(b)
}

// Tag sets the tag value attached to the following graphics objects.
func Tag(v uint8) Word {
	return op(OpTag) | Word(v)
}

// ColorRGB sets the current drawing color.
func ColorRGB(r, g, b uint8) Word {
	return op(OpColorRGB) | Word(r)<<16 | Word(g)<<8 | Word(b)
}

// BitmapHandle selects the bitmap handle for the following bitmap commands.
func BitmapHandle(h uint8) Word {
	return op(OpBitmapHandle) | Word(h&0x1F)
}

// Cell sets the bitmap cell number used by Vertex2f.
func Cell(c uint8) Word {
	return op(OpCell) | Word(c&0x7F)
}

// BitmapLayout sets the format, line stride in bytes and height in lines of
// the current bitmap handle.
func BitmapLayout(f Format, stride, height uint16) Word {
	return op(OpBitmapLayout) | Word(f&0x1F)<<19 | Word(stride&0x3FF)<<9 | Word(height&0x1FF)
}

// BitmapSize sets the on screen drawing size of the current bitmap handle.
func BitmapSize(filter Filter, wrapX, wrapY Wrap, width, height uint16) Word {
	return op(OpBitmapSize) |
		Word(filter&1)<<20 |
		Word(wrapX&1)<<19 |
		Word(wrapY&1)<<18 |
		Word(width&0x1FF)<<9 |
		Word(height&0x1FF)
}

// AlphaFunc sets the alpha test.
func AlphaFunc(f TestFunc, ref uint8) Word {
	return op(OpAlphaFunc) | Word(f&7)<<8 | Word(ref)
}

// StencilFunc sets the stencil test.
func StencilFunc(f TestFunc, ref, mask uint8) Word {
	return op(OpStencilFunc) | Word(f&0xF)<<16 | Word(ref)<<8 | Word(mask)
}

// BlendFunc sets the pixel arithmetic.
func BlendFunc(src, dst BlendFactor) Word {
	return op(OpBlendFunc) | Word(src&7)<<3 | Word(dst&7)
}

// StencilOp sets the stencil actions on test failure and success.
func StencilOp(fail, pass StencilAction) Word {
	return op(OpStencilOp) | Word(fail&7)<<3 | Word(pass&7)
}

// PointSize sets the point radius in 1/16 pixel.
func PointSize(size uint16) Word {
	return op(OpPointSize) | Word(size&0x1FFF)
}

// LineWidth sets the line width in 1/16 pixel.
func LineWidth(width uint16) Word {
	return op(OpLineWidth) | Word(width&0xFFF)
}

// ClearColorA sets the alpha used by Clear.
func ClearColorA(a uint8) Word {
	return op(OpClearColorA) | Word(a)
}

// ColorA sets the current drawing alpha.
func ColorA(a uint8) Word {
	return op(OpColorA) | Word(a)
}

// ClearStencil sets the stencil value used by Clear.
func ClearStencil(s uint8) Word {
	return op(OpClearStencil) | Word(s)
}

// ClearTag sets the tag value used by Clear.
func ClearTag(t uint8) Word {
	return op(OpClearTag) | Word(t)
}

// StencilMask controls which stencil bits are written.
func StencilMask(mask uint8) Word {
	return op(OpStencilMask) | Word(mask)
}

// TagMask controls whether the tag buffer is written.
func TagMask(enable bool) Word {
	return op(OpTagMask) | bit(enable)
}

// BitmapTransformA sets coefficient A of the bitmap transform matrix, in
// signed 8.8 fixed point.
func BitmapTransformA(v int32) Word {
	return op(OpBitmapTransformA) | Word(uint32(v)&0x1FFFF)
}

// BitmapTransformB sets coefficient B of the bitmap transform matrix.
func BitmapTransformB(v int32) Word {
	return op(OpBitmapTransformB) | Word(uint32(v)&0x1FFFF)
}

// BitmapTransformC sets coefficient C of the bitmap transform matrix, in
// signed 15.8 fixed point.
func BitmapTransformC(v int32) Word {
	return op(OpBitmapTransformC) | Word(uint32(v)&0xFFFFFF)
}

// BitmapTransformD sets coefficient D of the bitmap transform matrix.
func BitmapTransformD(v int32) Word {
	return op(OpBitmapTransformD) | Word(uint32(v)&0x1FFFF)
}

// BitmapTransformE sets coefficient E of the bitmap transform matrix.
func BitmapTransformE(v int32) Word {
	return op(OpBitmapTransformE) | Word(uint32(v)&0x1FFFF)
}

// BitmapTransformF sets coefficient F of the bitmap transform matrix.
func BitmapTransformF(v int32) Word {
	return op(OpBitmapTransformF) | Word(uint32(v)&0xFFFFFF)
}

// ScissorXY sets the top left corner of the scissor clip rectangle.
func ScissorXY(x, y uint16) Word {
	return op(OpScissorXY) | Word(x&0x1FF)<<9 | Word(y&0x1FF)
}

// ScissorSize sets the size of the scissor clip rectangle.
func ScissorSize(width, height uint16) Word {
	return op(OpScissorSize) | Word(width&0x3FF)<<10 | Word(height&0x3FF)
}

// Call executes a sub list at dest, a word offset in RAM_DL.
func Call(dest uint16) Word {
	return op(OpCall) | Word(dest)
}

// Jump continues execution at dest, a word offset in RAM_DL.
func Jump(dest uint16) Word {
	return op(OpJump) | Word(dest)
}

// Begin starts drawing a primitive.
func Begin(p Primitive) Word {
	return op(OpBegin) | Word(p&0xF)
}

// ColorMask enables or disables writes to each color channel.
func ColorMask(r, g, b, a bool) Word {
	return op(OpColorMask) | bit(r)<<3 | bit(g)<<2 | bit(b)<<1 | bit(a)
}

// End ends the primitive started by Begin.
func End() Word {
	return op(OpEnd)
}

// SaveContext pushes the graphics context.
func SaveContext() Word {
	return op(OpSaveContext)
}

// RestoreContext pops the graphics context.
func RestoreContext() Word {
	return op(OpRestoreContext)
}

// Return ends a sub list started with Call.
func Return() Word {
	return op(OpReturn)
}

// Macro executes the word stored in REG_MACRO_0 or REG_MACRO_1.
func Macro(m uint8) Word {
	return op(OpMacro) | Word(m&1)
}

// Clear clears the selected buffers.
func Clear(color, stencil, tag bool) Word {
	return op(OpClear) | bit(color)<<2 | bit(stencil)<<1 | bit(tag)
}

// Vertex2f emits a vertex in 1/16 pixel units. Both coordinates are signed
// 15 bit values.
func Vertex2f(x, y int16) Word {
	return 1<<30 | Word(uint16(x)&0x7FFF)<<15 | Word(uint16(y)&0x7FFF)
}

// Vertex2ii emits a vertex in whole pixels with a bitmap handle and cell.
func Vertex2ii(x, y uint16, handle, cell uint8) Word {
	return 2<<30 | Word(x&0x1FF)<<21 | Word(y&0x1FF)<<12 | Word(handle&0x1F)<<7 | Word(cell&0x7F)
}
