// Copyright (C) 2026 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package crc32

import (
	"fmt"
	"math/bits"

	"github.com/syncthing/stcrc/lib/gf2"
)

// Generator is the degree 32 IEEE generator polynomial,
// x^32 + x^26 + x^23 + x^22 + x^16 + x^12 + x^11 + x^10 + x^8 + x^7 + x^5 + x^4 + x^2 + x + 1.
func Generator() *gf2.Poly {
	return gf2.New(1<<32 | IEEENormal)
}

// divisionSeed is the remainder a Divider starts from: the all-ones
// register times x^-32 modulo the generator, so that appending the 32 zero
// bits in Remainder brings it back to the all-ones register.
var divisionSeed = shiftInverse(initial, 32)

// shiftInverse returns v * x^-n mod g.
func shiftInverse(v uint64, n int) *gf2.Poly {
	g := Generator()

	// g has a constant term, so (g + 1) / x is the inverse of x.
	var inv, rem gf2.Poly
	inv.Add(g, gf2.New(1))
	inv.DivMod(&inv, gf2.New(2), &rem)

	seed := gf2.New(v)
	for i := 0; i < n; i++ {
		seed.Mul(seed, &inv)
		seed.Mod(seed, g)
	}

	var check gf2.Poly
	check.Lsh(seed, uint(n)).Mod(&check, g)
	if check.Cmp(gf2.New(v)) != 0 {
		panic(fmt.Sprintf("crc32: bad division seed %s", seed.Bits()))
	}
	return seed
}

// A Divider computes the CRC register by long division over GF(2), one
// byte at a time. The message is read with the least significant bit of
// each byte first. The running remainder is that of the message without
// its 32 appended zero bits, so every step divides a polynomial of degree
// below 40 and the cost is linear in the input.
type Divider struct {
	rem gf2.Poly
	b   gf2.Poly
	g   *gf2.Poly
	n   int64
}

// NewDivider returns a Divider holding the initial register.
func NewDivider() *Divider {
	d := &Divider{g: Generator()}
	d.Reset()
	return d
}

// Reset returns d to the initial register.
func (d *Divider) Reset() {
	d.rem.Set(divisionSeed)
	d.n = 0
}

// Write folds p into the running remainder.
func (d *Divider) Write(p []byte) {
	for _, c := range p {
		d.b.SetUint64(uint64(bits.Reverse8(c)))
		d.rem.Concat(&d.rem, &d.b, 8)
		d.rem.Mod(&d.rem, d.g)
	}
	d.n += int64(len(p))
}

// Len returns the number of bytes written since the last Reset.
func (d *Divider) Len() int64 {
	return d.n
}

// Remainder appends the 32 zero bits to the message written so far and
// returns the reflected remainder. This equals the register value before
// Finalize. d is not modified.
func (d *Divider) Remainder() uint32 {
	var r gf2.Poly
	r.Lsh(&d.rem, 32).Mod(&r, d.g)
	return bits.Reverse32(uint32(r.Uint64()))
}

// Divide computes the CRC register for message by long division over
// GF(2). The result equals the register value before Finalize.
func Divide(message []byte) uint32 {
	d := NewDivider()
	d.Write(message)
	return d.Remainder()
}

// ChecksumDivision returns the CRC-32 of data computed by polynomial
// division. It agrees with Checksum for every input.
func ChecksumDivision(data []byte) uint32 {
	return Finalize(Divide(data))
}
