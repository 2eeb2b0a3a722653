// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht12

// Channel identifies one of the sensor's data channels. Channel values
// match the bit positions of ScanMask and the scan order of buffered
// samples.
type Channel int

const (
	Humidity Channel = iota
	Temperature

	channelCount
)

func (c Channel) String() string {
	switch c {
	case Humidity:
		return "humidity"
	case Temperature:
		return "temperature"
	}
	return "invalid"
}

// Attribute selects which per-channel property ReadChannel returns.
type Attribute int

const (
	// Raw is the current reading as a signed 16-bit integer, scaled by the
	// value of the Scale attribute.
	Raw Attribute = iota
	// Scale is the fixed divisor converting a Raw reading to physical
	// units (%RH or °C).
	Scale
)

// ScanMask selects which data channels a buffered stream carries. Bit
// positions match Channel values.
type ScanMask uint8

const (
	ScanHumidity    ScanMask = 1 << Humidity
	ScanTemperature ScanMask = 1 << Temperature

	ScanAll = ScanHumidity | ScanTemperature
)

// ChannelDesc describes one scan element of the buffered interface.
type ChannelDesc struct {
	Channel   Channel
	ScanIndex int
	RealBits  int
	Signed    bool
}

// The ordering of this table is what fixes the packing order of buffered
// samples: ascending scan index, humidity first.
var dataChannels = [channelCount]ChannelDesc{
	{Channel: Humidity, ScanIndex: 0, RealBits: 16, Signed: true},
	{Channel: Temperature, ScanIndex: 1, RealBits: 16, Signed: true},
}

// Channels returns the fixed scan layout of the device: humidity at index
// 0, temperature at index 1. The timestamp is appended to every Sample
// rather than occupying a scan slot.
func Channels() []ChannelDesc {
	c := make([]ChannelDesc, channelCount)
	copy(c, dataChannels[:])
	return c
}

// ReadChannel performs an on-demand attribute read on a single channel.
//
// For Raw it executes one measurement transaction and returns the value of
// the requested channel. For Scale it returns the fixed constant 100
// without touching the bus. Other attributes fail with
// *UnsupportedAttributeError.
func (d *Dev) ReadChannel(ch Channel, attr Attribute) (int, error) {
	if ch < 0 || ch >= channelCount {
		return 0, errInvalidChannel
	}
	switch attr {
	case Raw:
		r, err := d.readData()
		if err != nil {
			return 0, err
		}
		return int(r.value(ch)), nil
	case Scale:
		return scaleFactor, nil
	}
	return 0, &UnsupportedAttributeError{Attr: attr}
}
