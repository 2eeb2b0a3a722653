// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dht12 controls an Aosong DHT12 temperature and humidity sensor
// over I²C.
//
// The sensor is an inexpensive two-channel device reporting relative
// humidity and temperature with one decimal digit of resolution. Readings
// are validated with an additive checksum before decoding.
//
// Besides one-shot reads via Sense() and ReadChannel(), the driver offers a
// trigger-driven buffered interface: EnableBuffer() consumes events from a
// Trigger (periodic or software-fired) and delivers timestamped samples
// packed according to a scan mask, one sample per trigger event.
//
// Note that the device encodes temperature without a sign bit, so readings
// below 0°C are not represented correctly. This is a limitation of the
// sensor protocol, not of the driver.
//
// # Datasheet
//
// http://www.aosong.com/en/products-68.html
package dht12
