// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft800

import (
	"fmt"
	"time"
)

// Sound is a synthesizer effect, written to the low byte of REG_SOUND.
//
// Pitched instruments take a MIDI note in the high byte; see Note.
type Sound uint8

// Sound effects.
const (
	Silence     Sound = 0x00
	SquareWave  Sound = 0x01
	SineWave    Sound = 0x02
	Sawtooth    Sound = 0x03
	Triangle    Sound = 0x04
	Beeping     Sound = 0x05
	Alarm       Sound = 0x06
	Warble      Sound = 0x07
	Carousel    Sound = 0x08
	Harp        Sound = 0x40
	Xylophone   Sound = 0x41
	Tuba        Sound = 0x42
	Glock       Sound = 0x43
	Organ       Sound = 0x44
	Trumpet     Sound = 0x45
	Piano       Sound = 0x46
	Chimes      Sound = 0x47
	MusicBox    Sound = 0x48
	Bell        Sound = 0x49
	Click       Sound = 0x50
	Switch      Sound = 0x51
	Cowbell     Sound = 0x52
	Notch       Sound = 0x53
	Hihat       Sound = 0x54
	Kickdrum    Sound = 0x55
	Pop         Sound = 0x56
	Clack       Sound = 0x57
	Chack       Sound = 0x58
	MuteSound   Sound = 0x60
	UnmuteSound Sound = 0x61
)

// Note combines a pitched effect with a MIDI note, 21 (A0) to 108 (C8).
func Note(s Sound, midi uint8) uint16 {
	return uint16(midi)<<8 | uint16(s)
}

// playTimeout bounds the wait for the synthesizer to accept a sound.
const playTimeout = 100 * time.Millisecond

// ConfigureKeyClick selects the sound played by KeyClick, as written to
// REG_SOUND: an effect, or Note(effect, midi).
func (d *Dev) ConfigureKeyClick(code uint16) {
	d.keyClick = code
}

// KeyClick plays the configured key click without waiting for it.
func (d *Dev) KeyClick() error {
	if !d.Initialized() {
		return ErrNotInitialized
	}
	return d.play(d.keyClick)
}

// Mute silences the audio output. It waits until the synthesizer took the
// request.
func (d *Dev) Mute() error {
	return d.playWait(uint16(MuteSound))
}

// Unmute reenables the audio output after Mute.
func (d *Dev) Unmute() error {
	return d.playWait(uint16(UnmuteSound))
}

func (d *Dev) play(code uint16) error {
	eh := errorHandler{d: d}
	eh.write16(RegSound, code)
	eh.write8(RegPlay, 1)
	if eh.err != nil {
		return fmt.Errorf("ft800: play sound %#04x: %w", code, eh.err)
	}
	return nil
}

func (d *Dev) playWait(code uint16) error {
	if err := d.play(code); err != nil {
		return err
	}
	err := d.poll(time.Millisecond, playTimeout, func() (bool, error) {
		v, err := d.read8(RegPlay)
		return v == 0, err
	})
	if err != nil {
		return fmt.Errorf("ft800: wait sound %#04x: %w", code, err)
	}
	return nil
}

// SetBacklight sets the backlight PWM duty cycle. percent above 100 is
// clamped.
func (d *Dev) SetBacklight(percent uint8) error {
	if percent > 100 {
		percent = 100
	}
	duty := uint8(uint16(percent) * 128 / 100)
	if err := d.write8(RegPWMDuty, duty); err != nil {
		return fmt.Errorf("ft800: set backlight: %w", err)
	}
	return nil
}
