// Copyright (C) 2026 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package crc32 computes the IEEE 802.3 CRC-32 of a byte stream, either
// with a table-free shift register or by polynomial division over GF(2).
// Both yield the value produced by hash/crc32.ChecksumIEEE.
//
// Note that checksums do not compose under concatenation:
// Checksum(a ++ b) is in general not Checksum(a) ^ Checksum(b).
package crc32

import (
	"strconv"
	"strings"
)

// The size of a CRC-32 checksum in bytes.
const Size = 4

const (
	// IEEE is the generator polynomial in reflected (LSB first) form, as
	// used by the shift register.
	IEEE = 0xedb88320

	// IEEENormal is the same generator in direct (MSB first) form, with
	// the implicit x^32 term omitted.
	IEEENormal = 0x04c11db7

	initial = 0xffffffff
)

// A Register is the running CRC state, updated once per input byte.
type Register uint32

// NewRegister returns a register in its initial all-ones state.
func NewRegister() Register {
	return initial
}

// Update returns the register after shifting in b.
func (r Register) Update(b byte) Register {
	return Register(Update(uint32(r), b))
}

// Write shifts every byte of p into the register, in order.
func (r Register) Write(p []byte) Register {
	reg := uint32(r)
	for _, b := range p {
		reg = Update(reg, b)
	}
	return Register(reg)
}

// Sum returns the finalized checksum for the bytes seen so far.
func (r Register) Sum() uint32 {
	return Finalize(uint32(r))
}

// Update processes one input byte against the register value reg.
func Update(reg uint32, b byte) uint32 {
	tmp := (reg ^ uint32(b)) & 0xff
	for i := 0; i < 8; i++ {
		if tmp&1 == 1 {
			tmp = (tmp >> 1) ^ IEEE
		} else {
			tmp >>= 1
		}
	}
	return (reg >> 8) ^ tmp
}

// Finalize turns a register value into the published checksum.
func Finalize(reg uint32) uint32 {
	return reg ^ initial
}

// Checksum returns the CRC-32 of data using the shift register.
func Checksum(data []byte) uint32 {
	return NewRegister().Write(data).Sum()
}

// Format renders a checksum as upper case hexadecimal without zero
// padding, e.g. "CBF43926" or "0".
func Format(sum uint32) string {
	return strings.ToUpper(strconv.FormatUint(uint64(sum), 16))
}
