// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft800

import "strconv"

// Reserved tag values.
const (
	// NoTag is reported when nothing, or an object drawn without a tag, is
	// touched.
	NoTag uint8 = 0
	// ButtonReleased is the release event returned by Buttons.Poll. The
	// chip never reports it.
	ButtonReleased uint8 = 254
	// UntaggedIcon is drawn under decorative graphics. It is never a button.
	UntaggedIcon uint8 = 255
)

// ButtonState is the state of the debounce machine.
type ButtonState uint8

// Debounce states.
const (
	NoButton ButtonState = iota
	Debounce
	Detected
	Discard
)

func (s ButtonState) String() string {
	switch s {
	case NoButton:
		return "NoButton"
	case Debounce:
		return "Debounce"
	case Detected:
		return "Detected"
	case Discard:
		return "Discard"
	}
	return "ButtonState(" + strconv.Itoa(int(s)) + ")"
}

// TagReader is the source of touch tags. *Dev implements it.
type TagReader interface {
	TouchTag() (uint8, error)
}

// Buttons turns touch tags into press and release events.
//
// A press is reported once the same tag is read on two consecutive polls. A
// release is reported when the tag changes or the touch is lost.
type Buttons struct {
	src     TagReader
	click   func() error
	state   ButtonState
	lastTag uint8
}

// NewButtons returns a debouncer polling src.
//
// click is called on every press; pass Dev.KeyClick for audible feedback, or
// nil.
func NewButtons(src TagReader, click func() error) *Buttons {
	return &Buttons{src: src, click: click}
}

// isButton reports whether t is a tag a button can carry.
func isButton(t uint8) bool {
	return t != NoTag && t != UntaggedIcon
}

// Poll reads one tag and advances the state machine.
//
// It returns the pressed tag, ButtonReleased, or NoTag when nothing happened.
// A failed read counts as NoTag.
func (b *Buttons) Poll() uint8 {
	t, err := b.src.TouchTag()
	if err != nil {
		t = NoTag
	}
	ev := NoTag
	switch b.state {
	case NoButton:
		if isButton(t) {
			b.state = Debounce
		}
	case Debounce:
		if !isButton(t) {
			b.state = NoButton
		} else if t == b.lastTag {
			ev = t
			b.state = Detected
			if b.click != nil {
				// Click errors do not affect the press.
				_ = b.click()
			}
		}
	case Detected:
		if !isButton(t) {
			ev = ButtonReleased
			b.state = NoButton
		} else if t != b.lastTag {
			ev = ButtonReleased
			b.state = Debounce
		}
	case Discard:
		if !isButton(t) {
			b.state = NoButton
		}
	default:
		b.state = NoButton
	}
	b.lastTag = t
	return ev
}

// Pressed reports whether tag is the button currently held down.
func (b *Buttons) Pressed(tag uint8) bool {
	return b.state == Detected && b.lastTag == tag
}

// Active returns the button currently held down, or NoTag.
func (b *Buttons) Active() uint8 {
	if b.state == Detected {
		return b.lastTag
	}
	return NoTag
}

// Discard drops the current press. No release is reported for it; the
// machine waits until the touch is lost.
//
// Use it when the screen behind the button changes while it is held.
func (b *Buttons) Discard() {
	if b.state != NoButton {
		b.state = Discard
	}
}

// State returns the current debounce state.
func (b *Buttons) State() ButtonState {
	return b.state
}

var _ TagReader = &Dev{}
