// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft800

import (
	"fmt"
	"strconv"
)

// Opcode returns the instruction encoded in w.
func (w Word) Opcode() Opcode {
	switch {
	case w>>31 == 1:
		return OpVertex2ii
	case w>>30 == 1:
		return OpVertex2f
	}
	return Opcode(w >> 24)
}

// field extracts width bits starting at shift.
func (w Word) field(shift, width uint) uint32 {
	return uint32(w>>shift) & (1<<width - 1)
}

// signed sign-extends a width bit field.
func (w Word) signed(shift, width uint) int32 {
	v := int32(w.field(shift, width))
	if v&(1<<(width-1)) != 0 {
		v -= 1 << width
	}
	return v
}

var opNames = map[Opcode]string{
	OpDisplay:          "DISPLAY",
	OpBitmapSource:     "BITMAP_SOURCE",
	OpClearColorRGB:    "CLEAR_COLOR_RGB",
	OpTag:              "TAG",
	OpColorRGB:         "COLOR_RGB",
	OpBitmapHandle:     "BITMAP_HANDLE",
	OpCell:             "CELL",
	OpBitmapLayout:     "BITMAP_LAYOUT",
	OpBitmapSize:       "BITMAP_SIZE",
	OpAlphaFunc:        "ALPHA_FUNC",
	OpStencilFunc:      "STENCIL_FUNC",
	OpBlendFunc:        "BLEND_FUNC",
	OpStencilOp:        "STENCIL_OP",
	OpPointSize:        "POINT_SIZE",
	OpLineWidth:        "LINE_WIDTH",
	OpClearColorA:      "CLEAR_COLOR_A",
	OpColorA:           "COLOR_A",
	OpClearStencil:     "CLEAR_STENCIL",
	OpClearTag:         "CLEAR_TAG",
	OpStencilMask:      "STENCIL_MASK",
	OpTagMask:          "TAG_MASK",
	OpBitmapTransformA: "BITMAP_TRANSFORM_A",
	OpBitmapTransformB: "BITMAP_TRANSFORM_B",
	OpBitmapTransformC: "BITMAP_TRANSFORM_C",
	OpBitmapTransformD: "BITMAP_TRANSFORM_D",
	OpBitmapTransformE: "BITMAP_TRANSFORM_E",
	OpBitmapTransformF: "BITMAP_TRANSFORM_F",
	OpScissorXY:        "SCISSOR_XY",
	OpScissorSize:      "SCISSOR_SIZE",
	OpCall:             "CALL",
	OpJump:             "JUMP",
	OpBegin:            "BEGIN",
	OpColorMask:        "COLOR_MASK",
	OpEnd:              "END",
	OpSaveContext:      "SAVE_CONTEXT",
	OpRestoreContext:   "RESTORE_CONTEXT",
	OpReturn:           "RETURN",
	OpMacro:            "MACRO",
	OpClear:            "CLEAR",
	OpVertex2f:         "VERTEX2F",
	OpVertex2ii:        "VERTEX2II",
}

func (o Opcode) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return "Opcode(" + strconv.Itoa(int(o)) + ")"
}

var primitiveNames = [...]string{
	Bitmaps:    "BITMAPS",
	Points:     "POINTS",
	Lines:      "LINES",
	LineStrip:  "LINE_STRIP",
	EdgeStripR: "EDGE_STRIP_R",
	EdgeStripL: "EDGE_STRIP_L",
	EdgeStripA: "EDGE_STRIP_A",
	EdgeStripB: "EDGE_STRIP_B",
	Rects:      "RECTS",
}

func (p Primitive) String() string {
	if int(p) < len(primitiveNames) && primitiveNames[p] != "" {
		return primitiveNames[p]
	}
	return "Primitive(" + strconv.Itoa(int(p)) + ")"
}

// String disassembles w in the notation of the programmer guide, for
// example "VERTEX2II(435, 5, 0, 0)".
func (w Word) String() string {
	o := w.Opcode()
	switch o {
	case OpDisplay, OpEnd, OpSaveContext, OpRestoreContext, OpReturn:
		return o.String() + "()"
	case OpBitmapSource:
		return fmt.Sprintf("%s(%#x)", o, w.field(0, 20))
	case OpClearColorRGB, OpColorRGB:
		return fmt.Sprintf("%s(%d, %d, %d)", o, w.field(16, 8), w.field(8, 8), w.field(0, 8))
	case OpTag, OpClearColorA, OpColorA, OpClearStencil, OpClearTag, OpStencilMask:
		return fmt.Sprintf("%s(%d)", o, w.field(0, 8))
	case OpBitmapHandle:
		return fmt.Sprintf("%s(%d)", o, w.field(0, 5))
	case OpCell:
		return fmt.Sprintf("%s(%d)", o, w.field(0, 7))
	case OpBitmapLayout:
		return fmt.Sprintf("%s(%d, %d, %d)", o, w.field(19, 5), w.field(9, 10), w.field(0, 9))
	case OpBitmapSize:
		return fmt.Sprintf("%s(%d, %d, %d, %d, %d)", o, w.field(20, 1), w.field(19, 1), w.field(18, 1), w.field(9, 9), w.field(0, 9))
	case OpAlphaFunc:
		return fmt.Sprintf("%s(%d, %d)", o, w.field(8, 3), w.field(0, 8))
	case OpStencilFunc:
		return fmt.Sprintf("%s(%d, %d, %d)", o, w.field(16, 4), w.field(8, 8), w.field(0, 8))
	case OpBlendFunc, OpStencilOp:
		return fmt.Sprintf("%s(%d, %d)", o, w.field(3, 3), w.field(0, 3))
	case OpPointSize:
		return fmt.Sprintf("%s(%d)", o, w.field(0, 13))
	case OpLineWidth:
		return fmt.Sprintf("%s(%d)", o, w.field(0, 12))
	case OpTagMask, OpMacro:
		return fmt.Sprintf("%s(%d)", o, w.field(0, 1))
	case OpBitmapTransformA, OpBitmapTransformB, OpBitmapTransformD, OpBitmapTransformE:
		return fmt.Sprintf("%s(%d)", o, w.signed(0, 17))
	case OpBitmapTransformC, OpBitmapTransformF:
		return fmt.Sprintf("%s(%d)", o, w.signed(0, 24))
	case OpScissorXY:
		return fmt.Sprintf("%s(%d, %d)", o, w.field(9, 9), w.field(0, 9))
	case OpScissorSize:
		return fmt.Sprintf("%s(%d, %d)", o, w.field(10, 10), w.field(0, 10))
	case OpCall, OpJump:
		return fmt.Sprintf("%s(%d)", o, w.field(0, 16))
	case OpBegin:
		return fmt.Sprintf("%s(%s)", o, Primitive(w.field(0, 4)))
	case OpColorMask:
		return fmt.Sprintf("%s(%d, %d, %d, %d)", o, w.field(3, 1), w.field(2, 1), w.field(1, 1), w.field(0, 1))
	case OpClear:
		return fmt.Sprintf("%s(%d, %d, %d)", o, w.field(2, 1), w.field(1, 1), w.field(0, 1))
	case OpVertex2f:
		return fmt.Sprintf("%s(%d, %d)", o, w.signed(15, 15), w.signed(0, 15))
	case OpVertex2ii:
		return fmt.Sprintf("%s(%d, %d, %d, %d)", o, w.field(21, 9), w.field(12, 9), w.field(7, 5), w.field(0, 7))
	}
	return fmt.Sprintf("%s[%#08x]", o, uint32(w))
}
