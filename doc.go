// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for the device drivers of the oil
// condition tester.
//
// The drivers build on periph.io/x/conn/v3 and live one package per chip,
// for example ft800 for the display and touch controller.
package devices
