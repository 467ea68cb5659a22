// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dltrace

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/liquidic/devices/ft800"
	"github.com/liquidic/devices/ft800/ft800test"
)

type fakeClock struct{}

func (fakeClock) Sleep(time.Duration) {}

func newDev(t *testing.T, sim *ft800test.Device, opts *Opts) (*ft800.Dev, *Bus) {
	tr := New(sim, opts)
	o := ft800.DefaultOpts
	o.Clock = fakeClock{}
	d := ft800.New(tr, &o)
	if err := d.Init(false); err != nil {
		t.Fatal(err)
	}
	return d, tr
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestBus_Trace(t *testing.T) {
	var buf bytes.Buffer
	d, _ := newDev(t, ft800test.NewRunning(0), &Opts{W: &buf, NoColor: true})
	steps := []func() error{
		d.CmdDLStart,
		func() error { return d.DL(ft800.ClearColorRGB(0, 0, 64), ft800.Clear(true, true, true)) },
		func() error { return d.CmdButton(20, 182, 120, 60, 28, ft800.OptFlat, "Test") },
		func() error { return d.CmdSpinner(240, 136, ft800.SpinnerOrbit, 0) },
		func() error { return d.CmdBgColor(1, 2, 3) },
		func() error { return d.DL(ft800.Begin(ft800.Rects), ft800.Vertex2ii(1, 2, 0, 0), ft800.End()) },
		func() error { return d.CmdInflate(0, []byte{1, 2, 3, 4, 5}) },
		func() error { return d.DL(ft800.Display()) },
		d.CmdSwap,
	}
	for _, s := range steps {
		if err := s(); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{
		"0000  CMD_DLSTART()",
		"0004  CLEAR_COLOR_RGB(0, 0, 64)",
		"0008  CLEAR(1, 1, 1)",
		`000c  CMD_BUTTON(20, 182, 120, 60, 28, 256, "Test")`,
		"0024  CMD_SPINNER(240, 136, 3, 0)",
		"0030  CMD_BGCOLOR(0x10203)",
		"0038  BEGIN(RECTS)",
		"003c  VERTEX2II(1, 2, 0, 0)",
		"0040  END()",
		"0044  CMD_INFLATE(0x0)",
		"004c    <8 bytes>",
		"0054  DISPLAY()",
		"0058  CMD_SWAP()",
	}
	if diff := cmp.Diff(want, lines(buf.String())); diff != "" {
		t.Fatalf("trace difference (-want +got):\n%s", diff)
	}
}

func TestBus_Wrap(t *testing.T) {
	var buf bytes.Buffer
	d, tr := newDev(t, ft800test.NewRunning(4088), &Opts{W: &buf, NoColor: true})
	if tr.published != 4088 {
		t.Fatalf("attach left the tracer at %d", tr.published)
	}
	if err := d.CmdText(1, 2, 16, 0, "ab"); err != nil {
		t.Fatal(err)
	}
	want := []string{`0ff8  CMD_TEXT(1, 2, 16, 0, "ab")`}
	if diff := cmp.Diff(want, lines(buf.String())); diff != "" {
		t.Fatalf("trace difference (-want +got):\n%s", diff)
	}
}

func TestBus_Color(t *testing.T) {
	var buf bytes.Buffer
	d, _ := newDev(t, ft800test.NewRunning(0), &Opts{W: &buf})
	if err := d.DL(ft800.ColorRGB(0xFF, 0, 0)); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "0000  COLOR_RGB(255, 0, 0) ") || !strings.HasSuffix(got, "\033[0m\n") {
		t.Fatalf("got %q", got)
	}
	// The swatch follows the text.
	if len(got) <= len("0000  COLOR_RGB(255, 0, 0) \033[0m\n") {
		t.Fatalf("no swatch in %q", got)
	}
}

func TestBus_HostCommand(t *testing.T) {
	var buf bytes.Buffer
	sim := ft800test.New()
	tr := New(sim, &Opts{W: &buf, NoColor: true})
	o := ft800.DefaultOpts
	o.Clock = fakeClock{}
	d := ft800.New(tr, &o)
	if err := d.Init(true); err != nil {
		t.Fatal(err)
	}
	want := []string{"----  host CORERST", "----  host ACTIVE", "----  host CLKEXT"}
	if diff := cmp.Diff(want, lines(buf.String())); diff != "" {
		t.Fatalf("trace difference (-want +got):\n%s", diff)
	}
	if s := tr.String(); s != "dltrace(ft800test)" {
		t.Fatal(s)
	}
}

func TestBus_Error(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")
	sim := ft800test.NewRunning(0)
	d, _ := newDev(t, sim, &Opts{W: &buf, NoColor: true})
	sim.Fail = func(ft800test.Op) error { return boom }
	if err := d.CmdSwap(); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("traced a failed write: %q", buf.String())
	}
}
