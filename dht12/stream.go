// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht12

import (
	"errors"
	"time"
)

// Trigger supplies the poll events that drive the buffered interface.
// Events delivers at most one event at a time; each value received is the
// timestamp attached to the resulting sample. NotifyDone is called exactly
// once after each event has been handled, whether or not a sample was
// published.
type Trigger interface {
	Events() <-chan time.Time
	NotifyDone()
}

// Sample is one buffered scan: the enabled channel values packed in
// ascending channel order with no gaps, plus the trigger timestamp.
type Sample struct {
	Values    []int16
	Timestamp time.Time
}

// PeriodicTrigger fires an event at a fixed interval.
type PeriodicTrigger struct {
	ticker *time.Ticker
}

// NewPeriodicTrigger returns a trigger firing every interval. The minimum
// interval is 2 seconds, the sensor's own sample period.
func NewPeriodicTrigger(interval time.Duration) (*PeriodicTrigger, error) {
	if interval < minInterval {
		return nil, errors.New("dht12: invalid interval. minimum 2 seconds")
	}
	return &PeriodicTrigger{ticker: time.NewTicker(interval)}, nil
}

func (t *PeriodicTrigger) Events() <-chan time.Time {
	return t.ticker.C
}

// NotifyDone is a no-op; a ticker needs no completion handshake.
func (t *PeriodicTrigger) NotifyDone() {}

// Close stops the trigger. It does not disable a buffer fed by it.
func (t *PeriodicTrigger) Close() {
	t.ticker.Stop()
}

// SoftwareTrigger fires an event each time Fire is called, the equivalent
// of the kernel's sysfs-trigger. Wait blocks until the device has finished
// handling the fired event, making Fire/Wait pairs a synchronous
// one-sample poll.
type SoftwareTrigger struct {
	events chan time.Time
	done   chan struct{}
}

func NewSoftwareTrigger() *SoftwareTrigger {
	return &SoftwareTrigger{
		events: make(chan time.Time, 1),
		done:   make(chan struct{}, 1),
	}
}

// Fire queues one poll event stamped with the current time.
func (t *SoftwareTrigger) Fire() {
	t.FireAt(time.Now())
}

// FireAt queues one poll event with an explicit timestamp.
func (t *SoftwareTrigger) FireAt(ts time.Time) {
	t.events <- ts
}

func (t *SoftwareTrigger) Events() <-chan time.Time {
	return t.events
}

func (t *SoftwareTrigger) NotifyDone() {
	select {
	case t.done <- struct{}{}:
	default:
	}
}

// Wait blocks until the device has completed processing of a fired event.
func (t *SoftwareTrigger) Wait() {
	<-t.done
}

// EnableBuffer starts trigger-driven streaming of the channels selected by
// mask and returns the consumer channel. One sample is delivered per
// trigger event; failed cycles are skipped without closing the stream.
// The channel is closed by DisableBuffer() or Halt().
//
// Nothing is registered if validation fails, so a failed enable leaves the
// device in direct-read mode.
func (d *Dev) EnableBuffer(trig Trigger, mask ScanMask) (<-chan Sample, error) {
	if trig == nil {
		return nil, errNilTrigger
	}
	if mask == 0 || mask&^ScanAll != 0 {
		return nil, errInvalidScanMask
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return nil, errBufferEnabled
	}
	d.stop = make(chan struct{})
	ch := make(chan Sample, 16)
	d.wg.Add(1)
	go d.stream(trig, mask, d.stop, ch)
	return ch, nil
}

// DisableBuffer stops streaming and closes the sample channel, returning
// the device to direct-read mode. A cycle in flight runs to completion
// first; once the measurement request is on the wire there is no
// cancellation. Calling DisableBuffer on a disabled device is a no-op.
func (d *Dev) DisableBuffer() error {
	d.mu.Lock()
	if d.stop == nil {
		d.mu.Unlock()
		return nil
	}
	close(d.stop)
	d.stop = nil
	d.mu.Unlock()
	d.wg.Wait()
	return nil
}

func (d *Dev) stream(trig Trigger, mask ScanMask, stop chan struct{}, ch chan Sample) {
	defer d.wg.Done()
	defer close(ch)
	for {
		select {
		case <-stop:
			return
		case ts, ok := <-trig.Events():
			if !ok {
				return
			}
			d.handleTrigger(trig, mask, ts, ch)
		}
	}
}

// handleTrigger runs one poll cycle: measure, assemble, publish. The cycle
// is best-effort; a failed measurement skips the sample. The trigger
// handshake always runs, and runs last.
func (d *Dev) handleTrigger(trig Trigger, mask ScanMask, ts time.Time, ch chan<- Sample) {
	defer trig.NotifyDone()

	// The first reading after a wake request can be stale on this sensor
	// family. Read twice and keep only the second.
	d.readData()
	r, err := d.readData()
	if err != nil {
		return
	}

	d.mu.Lock()
	var n int
	if mask == ScanAll {
		d.buffer[0] = r.humidity
		d.buffer[1] = r.temperature
		n = int(channelCount)
	} else {
		for _, desc := range dataChannels {
			if mask&(1<<desc.Channel) == 0 {
				continue
			}
			d.buffer[n] = r.value(desc.Channel)
			n++
		}
	}
	s := Sample{Values: make([]int16, n), Timestamp: ts}
	copy(s.Values, d.buffer[:n])
	d.mu.Unlock()

	// One atomic sample per event. If the consumer queue is full the scan
	// is dropped rather than stalling the trigger.
	select {
	case ch <- s:
	default:
	}
}
