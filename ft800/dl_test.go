// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft800

import "testing"

func TestEncoders(t *testing.T) {
	for _, tc := range []struct {
		name string
		got  Word
		want uint32
	}{
		{"Display", Display(), 0x00000000},
		{"BitmapSource", BitmapSource(0x12345), 0x01012345},
		{"BitmapSource masked", BitmapSource(0xFFFFFFFF), 0x010FFFFF},
		{"ClearColorRGB", ClearColorRGB(0x12, 0x34, 0x56), 0x02123456},
		{"Tag", Tag(254), 0x030000FE},
		{"ColorRGB", ColorRGB(0xFF, 0x00, 0x80), 0x04FF0080},
		{"BitmapHandle masked", BitmapHandle(0xFF), 0x0500001F},
		{"Cell masked", Cell(0xFF), 0x0600007F},
		{"BitmapLayout", BitmapLayout(RGB565, 960, 272), 0x07000000 | 7<<19 | 960<<9 | 272},
		{"BitmapLayout masked", BitmapLayout(0xFF, 0xFFFF, 0xFFFF), 0x07FFFFFF},
		{"BitmapSize", BitmapSize(Bilinear, Repeat, Border, 480, 272), 0x08000000 | 1<<20 | 1<<19 | 480<<9 | 272},
		{"BitmapSize masked", BitmapSize(0xFF, 0xFF, 0xFF, 0xFFFF, 0xFFFF), 0x081FFFFF},
		{"AlphaFunc", AlphaFunc(Greater, 0x80), 0x09000380},
		{"StencilFunc", StencilFunc(Always, 1, 0xFF), 0x0A0701FF},
		{"BlendFunc", BlendFunc(SrcAlpha, OneMinusSrcAlpha), 0x0B000014},
		{"StencilOp", StencilOp(StencilKeep, StencilIncr), 0x0C00000B},
		{"PointSize masked", PointSize(0xFFFF), 0x0D001FFF},
		{"LineWidth masked", LineWidth(0xFFFF), 0x0E000FFF},
		{"ClearColorA", ClearColorA(0x7F), 0x0F00007F},
		{"ColorA", ColorA(0x7F), 0x1000007F},
		{"ClearStencil", ClearStencil(3), 0x11000003},
		{"ClearTag", ClearTag(9), 0x12000009},
		{"StencilMask", StencilMask(0xF0), 0x130000F0},
		{"TagMask on", TagMask(true), 0x14000001},
		{"TagMask off", TagMask(false), 0x14000000},
		{"BitmapTransformA", BitmapTransformA(256), 0x15000100},
		{"BitmapTransformB negative", BitmapTransformB(-1), 0x1601FFFF},
		{"BitmapTransformC negative", BitmapTransformC(-1), 0x17FFFFFF},
		{"BitmapTransformE", BitmapTransformE(256), 0x19000100},
		{"ScissorXY masked", ScissorXY(0xFFFF, 0xFFFF), 0x1B03FFFF},
		{"ScissorSize", ScissorSize(480, 272), 0x1C000000 | 480<<10 | 272},
		{"Call", Call(100), 0x1D000064},
		{"Jump", Jump(0xFFFF), 0x1E00FFFF},
		{"Begin", Begin(Rects), 0x1F000009},
		{"Begin masked", Begin(0xFF), 0x1F00000F},
		{"ColorMask", ColorMask(true, false, true, false), 0x2000000A},
		{"End", End(), 0x21000000},
		{"SaveContext", SaveContext(), 0x22000000},
		{"RestoreContext", RestoreContext(), 0x23000000},
		{"Return", Return(), 0x24000000},
		{"Macro masked", Macro(3), 0x25000001},
		{"Clear all", Clear(true, true, true), 0x26000007},
		{"Clear color", Clear(true, false, false), 0x26000004},
		{"Vertex2f", Vertex2f(16, 32), 0x40000000 | 16<<15 | 32},
		{"Vertex2f negative", Vertex2f(-1, -1), 0x7FFFFFFF},
		{"Vertex2ii", Vertex2ii(435, 5, 0, 0), 0x80000000 | 435<<21 | 5<<12},
		{"Vertex2ii max", Vertex2ii(511, 511, 31, 127), 0xBFFFFFFF},
		{"Vertex2ii masked", Vertex2ii(512, 512, 32, 128), 0x80000000},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if uint32(tc.got) != tc.want {
				t.Fatalf("got %#08x, want %#08x", uint32(tc.got), tc.want)
			}
		})
	}
}

func TestVertex2iiFields(t *testing.T) {
	for _, tc := range []struct {
		x, y         uint16
		handle, cell uint8
	}{
		{0, 0, 0, 0},
		{511, 511, 31, 127},
		{1, 2, 3, 4},
		{479, 271, 0, 1},
	} {
		w := Vertex2ii(tc.x, tc.y, tc.handle, tc.cell)
		if w.Opcode() != OpVertex2ii {
			t.Fatalf("%#08x: got opcode %s", uint32(w), w.Opcode())
		}
		if x := w.field(21, 9); x != uint32(tc.x) {
			t.Errorf("%v: x = %d", tc, x)
		}
		if y := w.field(12, 9); y != uint32(tc.y) {
			t.Errorf("%v: y = %d", tc, y)
		}
		if h := w.field(7, 5); h != uint32(tc.handle) {
			t.Errorf("%v: handle = %d", tc, h)
		}
		if c := w.field(0, 7); c != uint32(tc.cell) {
			t.Errorf("%v: cell = %d", tc, c)
		}
	}
}

func TestWord_String(t *testing.T) {
	for _, tc := range []struct {
		w    Word
		want string
	}{
		{Display(), "DISPLAY()"},
		{ClearColorRGB(1, 2, 3), "CLEAR_COLOR_RGB(1, 2, 3)"},
		{Clear(true, true, true), "CLEAR(1, 1, 1)"},
		{Begin(Rects), "BEGIN(RECTS)"},
		{Begin(0), "BEGIN(Primitive(0))"},
		{Tag(7), "TAG(7)"},
		{BitmapSource(0x100), "BITMAP_SOURCE(0x100)"},
		{BitmapLayout(L8, 40, 20), "BITMAP_LAYOUT(3, 40, 20)"},
		{BitmapTransformB(-256), "BITMAP_TRANSFORM_B(-256)"},
		{Vertex2f(-16, 32), "VERTEX2F(-16, 32)"},
		{Vertex2ii(435, 5, 0, 0), "VERTEX2II(435, 5, 0, 0)"},
		{Word(0x3F000000), "Opcode(63)[0x3f000000]"},
	} {
		if got := tc.w.String(); got != tc.want {
			t.Errorf("%#08x: got %q, want %q", uint32(tc.w), got, tc.want)
		}
	}
}
