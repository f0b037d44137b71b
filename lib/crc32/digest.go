// Copyright (C) 2026 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package crc32

import "hash"

// digest is the shift register behind a hash.Hash32.
type digest struct {
	reg Register
}

// New creates a new hash.Hash32 computing the CRC-32 checksum with the
// shift register. Its Sum method lays the value out in big-endian byte
// order.
func New() hash.Hash32 {
	return &digest{reg: NewRegister()}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.reg = NewRegister() }

func (d *digest) Write(p []byte) (n int, err error) {
	d.reg = d.reg.Write(p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return d.reg.Sum() }

func (d *digest) Sum(in []byte) []byte {
	return appendUint32(in, d.Sum32())
}

// divisionDigest streams its input through a Divider.
type divisionDigest struct {
	div *Divider
}

// NewDivision creates a new hash.Hash32 computing the CRC-32 checksum by
// polynomial division. Its Sum method lays the value out in big-endian
// byte order.
func NewDivision() hash.Hash32 {
	return &divisionDigest{div: NewDivider()}
}

func (d *divisionDigest) Size() int { return Size }

func (d *divisionDigest) BlockSize() int { return 1 }

func (d *divisionDigest) Reset() { d.div.Reset() }

func (d *divisionDigest) Write(p []byte) (n int, err error) {
	d.div.Write(p)
	return len(p), nil
}

func (d *divisionDigest) Sum32() uint32 {
	sum := Finalize(d.div.Remainder())
	l.Debugf("division over %d bytes: %s", d.div.Len(), Format(sum))
	return sum
}

func (d *divisionDigest) Sum(in []byte) []byte {
	return appendUint32(in, d.Sum32())
}

func appendUint32(in []byte, s uint32) []byte {
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
