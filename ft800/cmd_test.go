// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft800_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/liquidic/devices/ft800"
	"github.com/liquidic/devices/ft800/ft800test"
)

func TestCommands(t *testing.T) {
	for _, tc := range []struct {
		name string
		f    func(d *ft800.Dev) error
		want []uint32
	}{
		{
			name: "DLStart",
			f:    (*ft800.Dev).CmdDLStart,
			want: []uint32{0xFFFFFF00},
		},
		{
			name: "Swap",
			f:    (*ft800.Dev).CmdSwap,
			want: []uint32{0xFFFFFF01},
		},
		{
			name: "Stop",
			f:    (*ft800.Dev).CmdStop,
			want: []uint32{0xFFFFFF17},
		},
		{
			name: "Calibrate",
			f:    (*ft800.Dev).CmdCalibrate,
			want: []uint32{0xFFFFFF15, 0},
		},
		{
			name: "BgColor",
			f:    func(d *ft800.Dev) error { return d.CmdBgColor(0x12, 0x34, 0x56) },
			want: []uint32{0xFFFFFF09, 0x123456},
		},
		{
			name: "FgColor",
			f:    func(d *ft800.Dev) error { return d.CmdFgColor(ft800.RGB(ft800.PaletteFault)) },
			want: []uint32{0xFFFFFF0A, 0xFF0000},
		},
		{
			name: "Text",
			f:    func(d *ft800.Dev) error { return d.CmdText(10, 20, 28, ft800.OptCenter, "Hi") },
			want: []uint32{0xFFFFFF0C, 20<<16 | 10, 1536<<16 | 28, 0x00006948},
		},
		{
			name: "Text empty",
			f:    func(d *ft800.Dev) error { return d.CmdText(0, 0, 16, ft800.Opt3D, "") },
			want: []uint32{0xFFFFFF0C, 0, 16, 0},
		},
		{
			name: "Text word sized",
			f:    func(d *ft800.Dev) error { return d.CmdText(1, 2, 26, ft800.OptRightX, "abcd") },
			want: []uint32{0xFFFFFF0C, 2<<16 | 1, 2048<<16 | 26, 0x64636261, 0},
		},
		{
			name: "Button",
			f: func(d *ft800.Dev) error {
				return d.CmdButton(20, 182, 120, 60, 28, ft800.OptFlat, "Test")
			},
			want: []uint32{0xFFFFFF0D, 182<<16 | 20, 60<<16 | 120, 256<<16 | 28, 0x74736554, 0},
		},
		{
			name: "Keys",
			f: func(d *ft800.Dev) error {
				return d.CmdKeys(0, 100, 480, 40, 29, ft800.OptCenter, '2', "123")
			},
			want: []uint32{0xFFFFFF0E, 100<<16 | 0, 40<<16 | 480, (1536|'2')<<16 | 29, 0x00333231},
		},
		{
			name: "Spinner",
			f: func(d *ft800.Dev) error {
				return d.CmdSpinner(240, 136, ft800.SpinnerClock, 1)
			},
			want: []uint32{0xFFFFFF16, 136<<16 | 240, 1<<16 | 2},
		},
		{
			name: "Inflate",
			f: func(d *ft800.Dev) error {
				return d.CmdInflate(0x100, []byte{0x78, 0x9C, 0x03, 0x00, 0x00})
			},
			want: []uint32{0xFFFFFF22, 0x100, 0x00039C78, 0x00},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, sim := initDev(t, 0)
			if err := tc.f(d); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, sim.Words(0, d.Cursor())); diff != "" {
				t.Fatalf("FIFO difference (-want +got):\n%s", diff)
			}
			if d.Cursor()%4 != 0 {
				t.Fatalf("unaligned cursor %d", d.Cursor())
			}
		})
	}
}

func TestCommands_NotInitialized(t *testing.T) {
	sim := ft800test.New()
	d, _ := newDev(t, sim)
	for name, f := range map[string]func() error{
		"CmdDLStart":     d.CmdDLStart,
		"CmdSwap":        d.CmdSwap,
		"CmdCalibrate":   d.CmdCalibrate,
		"CmdText":        func() error { return d.CmdText(0, 0, 16, 0, "x") },
		"CmdButton":      func() error { return d.CmdButton(0, 0, 1, 1, 16, 0, "x") },
		"CmdSpinner":     func() error { return d.CmdSpinner(0, 0, ft800.SpinnerCircle, 0) },
		"LoadBitmap":     func() error { return d.LoadBitmap(0, []byte{1}) },
		"SetMacro":       func() error { return d.SetMacro(0, ft800.Display()) },
		"SetCalibration": func() error { return d.SetCalibration(ft800.Calibration{}) },
		"KeyClick":       d.KeyClick,
	} {
		if err := f(); err != ft800.ErrNotInitialized {
			t.Errorf("%s: got %v", name, err)
		}
	}
	if len(sim.Ops) != 0 {
		t.Fatalf("chip touched: %v", sim.Ops)
	}
}

func TestCalibration(t *testing.T) {
	d, sim := initDev(t, 0)
	sim.AutoConsume = false
	if err := d.CmdCalibrate(); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := d.CalibrationComplete(); err != nil || ok {
		t.Fatalf("got %t, %v while the co-processor waits for touches", ok, err)
	}

	want := ft800.Calibration{0x8000, 0x10, 0xFFF00000, 0x20, 0x7F00, 0x12345}
	regs := []uint32{
		ft800.RegTouchTransA, ft800.RegTouchTransB, ft800.RegTouchTransC,
		ft800.RegTouchTransD, ft800.RegTouchTransE, ft800.RegTouchTransF,
	}
	for i, r := range regs {
		sim.SetUint32(r, want[i])
	}
	sim.SetUint32(ft800.RegCmdRead, uint32(d.Cursor()))
	got, ok, err := d.CalibrationComplete()
	if err != nil || !ok {
		t.Fatalf("got %t, %v", ok, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("CalibrationComplete() difference (-want +got):\n%s", diff)
	}

	// Restoring the saved transform on a fresh chip.
	d2, sim2 := initDev(t, 0)
	if err := d2.SetCalibration(got); err != nil {
		t.Fatal(err)
	}
	for i, r := range regs {
		if v := sim2.Uint32(r); v != want[i] {
			t.Errorf("transform %c = %#x, want %#x", 'A'+i, v, want[i])
		}
	}
	back, err := d2.ReadCalibration()
	if err != nil {
		t.Fatal(err)
	}
	if back != want {
		t.Fatalf("got %v", back)
	}
}

func TestCalibration_Error(t *testing.T) {
	boom := errors.New("boom")
	d, sim := initDev(t, 0)
	sim.Fail = func(o ft800test.Op) error {
		if o.Addr == ft800.RegTouchTransD {
			return boom
		}
		return nil
	}
	if _, err := d.ReadCalibration(); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if err := d.SetCalibration(ft800.Calibration{}); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	// The transaction after the failed one is skipped.
	if w := sim.Writes(ft800.RegTouchTransE); len(w) != 0 {
		t.Fatalf("got %v", w)
	}
}

func TestLoadBitmap(t *testing.T) {
	d, sim := initDev(t, 0)
	data := []byte{1, 2, 3, 4, 5, 6}
	if err := d.LoadBitmap(0x2000, data); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]byte{data}, sim.Writes(ft800.RAMG+0x2000)); diff != "" {
		t.Fatalf("RAM_G difference (-want +got):\n%s", diff)
	}
	if err := d.LoadBitmap(ft800.RAMGSize-2, data); err == nil {
		t.Fatal("expected overflow error")
	}
	// Nothing reaches the command FIFO.
	if d.Cursor() != 0 {
		t.Fatalf("got cursor %d", d.Cursor())
	}
}

func TestSetMacro(t *testing.T) {
	d, sim := initDev(t, 0)
	if err := d.SetMacro(0, ft800.ColorRGB(1, 2, 3)); err != nil {
		t.Fatal(err)
	}
	if err := d.SetMacro(1, ft800.LineWidth(32)); err != nil {
		t.Fatal(err)
	}
	if v := sim.Uint32(ft800.RegMacro0); v != uint32(ft800.ColorRGB(1, 2, 3)) {
		t.Fatalf("REG_MACRO_0 = %#08x", v)
	}
	if v := sim.Uint32(ft800.RegMacro1); v != uint32(ft800.LineWidth(32)) {
		t.Fatalf("REG_MACRO_1 = %#08x", v)
	}
}
