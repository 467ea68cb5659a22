// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft800

// Memory map.
const (
	RAMG       = 0x000000 // General purpose graphics RAM, 256 KiB.
	RAMGSize   = 256 * 1024
	ROMChipID  = 0x0C0000
	ROMFont    = 0x0BB23C
	RAMDL      = 0x100000 // Display list RAM, 8 KiB.
	RAMDLSize  = 8 * 1024
	RAMPal     = 0x102000
	RAMReg     = 0x102400 // Register block.
	RAMCMD     = 0x108000 // Co-processor command FIFO.
	RAMCMDSize = 4096
)

// Registers.
const (
	RegID          = 0x102400
	RegFrames      = 0x102404
	RegClock       = 0x102408
	RegFrequency   = 0x10240C
	RegCPUReset    = 0x10241C
	RegHCycle      = 0x102428
	RegHOffset     = 0x10242C
	RegHSize       = 0x102430
	RegHSync0      = 0x102434
	RegHSync1      = 0x102438
	RegVCycle      = 0x10243C
	RegVOffset     = 0x102440
	RegVSize       = 0x102444
	RegVSync0      = 0x102448
	RegVSync1      = 0x10244C
	RegDLSwap      = 0x102450
	RegRotate      = 0x102454
	RegOutBits     = 0x102458
	RegDither      = 0x10245C
	RegSwizzle     = 0x102460
	RegCSpread     = 0x102464
	RegPCLKPol     = 0x102468
	RegPCLK        = 0x10246C
	RegTagX        = 0x102470
	RegTagY        = 0x102474
	RegTag         = 0x102478
	RegVolPB       = 0x10247C
	RegVolSound    = 0x102480
	RegSound       = 0x102484
	RegPlay        = 0x102488
	RegGPIODir     = 0x10248C
	RegGPIO        = 0x102490
	RegIntFlags    = 0x102498
	RegIntEn       = 0x10249C
	RegIntMask     = 0x1024A0
	RegPWMHz       = 0x1024C0
	RegPWMDuty     = 0x1024C4
	RegMacro0      = 0x1024C8
	RegMacro1      = 0x1024CC
	RegCmdRead     = 0x1024E4
	RegCmdWrite    = 0x1024E8
	RegCmdDL       = 0x1024EC
	RegTouchMode   = 0x1024F0
	RegTouchRawXY  = 0x102508
	RegTouchRZ     = 0x10250C
	RegTouchScreen = 0x102510
	RegTouchTagXY  = 0x102514
	RegTouchTag    = 0x102518
	RegTouchTransA = 0x10251C
	RegTouchTransB = 0x102520
	RegTouchTransC = 0x102524
	RegTouchTransD = 0x102528
	RegTouchTransE = 0x10252C
	RegTouchTransF = 0x102530
)

const (
	// ChipID is the value of RegID on a live FT800.
	ChipID = 0x7C

	// DLSwapFrame swaps the display list at the end of the current frame.
	DLSwapFrame = 0x02

	// gpioDisplay is the DISP line (bit 7) plus GPIO0/1 used by the panel
	// drivers on the instrument board.
	gpioDisplay = 0x83

	// rawNoTouch and screenNoTouch are what the touch engine reports while
	// nothing presses the panel.
	rawNoTouch    = 0xFFFFFFFF
	screenNoTouch = 0x80008000
)
