// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht12

import (
	"errors"
	"fmt"
)

// ChecksumError is returned when the additive checksum of a measurement
// payload does not match the check byte sent by the sensor.
type ChecksumError struct {
	// Computed is the checksum calculated over the four data bytes.
	Computed byte
	// Received is the check byte the sensor transmitted.
	Received byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("dht12: checksum mismatch: computed %#02x, sensor sent %#02x", e.Computed, e.Received)
}

// UnsupportedAttributeError is returned by ReadChannel for attributes the
// device does not implement.
type UnsupportedAttributeError struct {
	Attr Attribute
}

func (e *UnsupportedAttributeError) Error() string {
	return fmt.Sprintf("dht12: unsupported attribute %d", int(e.Attr))
}

var (
	errInvalidChannel  = errors.New("dht12: invalid channel")
	errInvalidScanMask = errors.New("dht12: invalid scan mask")
	errNilTrigger      = errors.New("dht12: nil trigger")
	errBufferEnabled   = errors.New("dht12: buffer already enabled")
)
