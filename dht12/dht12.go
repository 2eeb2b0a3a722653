// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht12

import (
	"fmt"
	"sync"
	"time"

	"github.com/openiio/devices/common"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	// SensorAddress is the fixed i2c address of the device.
	SensorAddress uint16 = 0x5c

	// DeviceName is the identification string the device is matched by.
	DeviceName = "dht12"
	// ACPIHardwareID is the ACPI identifier for hosts that enumerate the
	// sensor through firmware tables.
	ACPIHardwareID = "AOS0012"
)

const (
	// Writing this byte requests a measurement.
	cmdMeasure byte = 0x00

	// Wait applied after each bus operation. The sensor needs 10-20ms of
	// conversion time; the lower bound is the hard requirement.
	conversionDelay = 10 * time.Millisecond

	// All Raw readings are the physical value multiplied by this factor,
	// the sensor reporting one decimal digit.
	scaleFactor = 100

	// The sensor samples at 0.5Hz.
	minInterval = 2 * time.Second
)

// Dev represents a DHT12 temperature/humidity sensor.
type Dev struct {
	d *i2c.Dev

	// mu serializes the bus transaction pair and guards the scan buffer
	// and streaming state. It is never held across a whole poll cycle.
	mu        sync.Mutex
	buffer    [channelCount]int16
	stop      chan struct{}
	senseTrig *PeriodicTrigger
	wg        sync.WaitGroup
}

// NewI2C returns a device handle for a DHT12 on the provided bus. The
// sensor only answers on SensorAddress.
func NewI2C(b i2c.Bus, addr uint16) (*Dev, error) {
	return &Dev{d: &i2c.Dev{Bus: b, Addr: addr}}, nil
}

// reading is one decoded measurement. Values are the physical value
// multiplied by 100.
type reading struct {
	humidity    int16
	temperature int16
}

func (r reading) value(c Channel) int16 {
	if c == Temperature {
		return r.temperature
	}
	return r.humidity
}

// readData performs one measurement transaction: wake/request write, 5-byte
// read, checksum validation, decode. The payload is humidity integer part,
// humidity scale part, temperature integer part, temperature scale part,
// checksum. The mutex is held only across the two bus operations; the
// checksum runs on a local copy after the lock is released.
func (d *Dev) readData() (reading, error) {
	var rx [5]byte

	d.mu.Lock()
	if err := d.d.Tx([]byte{cmdMeasure}, nil); err != nil {
		d.mu.Unlock()
		return reading{}, fmt.Errorf("dht12: error sending measurement request: %w", err)
	}
	time.Sleep(conversionDelay)
	if err := d.d.Tx(nil, rx[:]); err != nil {
		d.mu.Unlock()
		return reading{}, fmt.Errorf("dht12: error reading measurement: %w", err)
	}
	time.Sleep(conversionDelay)
	d.mu.Unlock()

	if sum := common.Sum8(rx[:4]); sum != rx[4] {
		return reading{}, &ChecksumError{Computed: sum, Received: rx[4]}
	}
	// The scale parts are decimal digits, not a low byte. Temperature has
	// no sign bit in this encoding; sub-zero values are mangled by the
	// hardware itself.
	return reading{
		humidity:    int16(rx[0])*100 + int16(rx[1]),
		temperature: int16(rx[2])*100 + int16(rx[3]),
	}, nil
}

// Sense queries the sensor for the current temperature and humidity. The
// DHT12 does not measure pressure. Note the sensor's sample rate of 0.5Hz;
// polling it faster than once every 2 seconds returns stale data.
func (d *Dev) Sense(e *physic.Env) error {
	e.Temperature = 0
	e.Pressure = 0
	e.Humidity = 0

	r, err := d.readData()
	if err != nil {
		return err
	}
	e.Humidity = physic.RelativeHumidity(r.humidity) * physic.PercentRH / scaleFactor
	e.Temperature = physic.ZeroCelsius + physic.Temperature(r.temperature)*physic.Celsius/scaleFactor
	return nil
}

// SenseContinuous returns a channel that delivers a reading every interval.
// The minimum interval is 2 seconds. Readings are taken over the buffered
// path, so each one is the second of a measurement pair. To end the read,
// call Halt().
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	trig, err := NewPeriodicTrigger(interval)
	if err != nil {
		return nil, err
	}
	samples, err := d.EnableBuffer(trig, ScanAll)
	if err != nil {
		trig.Close()
		return nil, err
	}
	d.mu.Lock()
	d.senseTrig = trig
	d.mu.Unlock()

	ch := make(chan physic.Env, 16)
	go func() {
		defer close(ch)
		for s := range samples {
			ch <- physic.Env{
				Humidity:    physic.RelativeHumidity(s.Values[0]) * physic.PercentRH / scaleFactor,
				Temperature: physic.ZeroCelsius + physic.Temperature(s.Values[1])*physic.Celsius/scaleFactor,
			}
		}
	}()
	return ch, nil
}

// Precision returns the resolution of the device for its measured
// parameters. Implements physic.SenseEnv.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = physic.Celsius / scaleFactor
	e.Pressure = 0
	e.Humidity = physic.PercentRH / scaleFactor
}

// Halt detaches the device: it terminates a running SenseContinuous(),
// disables the buffered interface and releases the owned trigger, in that
// order. Implements conn.Resource.
func (d *Dev) Halt() error {
	err := d.DisableBuffer()
	d.mu.Lock()
	if d.senseTrig != nil {
		d.senseTrig.Close()
		d.senseTrig = nil
	}
	d.mu.Unlock()
	return err
}

func (d *Dev) String() string {
	return fmt.Sprintf("dht12: %s", d.d)
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
