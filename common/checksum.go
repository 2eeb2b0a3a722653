// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, checksum calculations.
package common

// Sum8 calculates the 8-bit additive checksum of the byte slice parameter
// and returns the calculated value. Aosong sensors append this sum,
// truncated to 8 bits, as the final byte of each measurement payload.
func Sum8(bytes []byte) byte {
	var sum byte
	for _, val := range bytes {
		sum += val
	}
	return sum
}
