// Copyright (C) 2026 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gf2 implements arithmetic on polynomials with coefficients in
// GF(2). A polynomial is stored as an arbitrary precision integer where bit
// i holds the coefficient of x^i, so addition and subtraction are both XOR.
//
// Methods follow the math/big convention: the receiver holds the result and
// is returned, which allows chaining and aliasing of operands.
package gf2

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrDivisionByZero = errors.New("gf2: division by zero polynomial")
	ErrDegree         = errors.New("gf2: degree out of range")
)

// A Poly is a polynomial over GF(2). The zero value is the zero polynomial.
type Poly struct {
	v big.Int
}

// New returns a polynomial whose coefficients are the bits of v.
func New(v uint64) *Poly {
	return new(Poly).SetUint64(v)
}

// SetUint64 sets z to the polynomial with coefficients given by the bits of
// v and returns z.
func (z *Poly) SetUint64(v uint64) *Poly {
	z.v.SetUint64(v)
	return z
}

// Set sets z to x and returns z.
func (z *Poly) Set(x *Poly) *Poly {
	z.v.Set(&x.v)
	return z
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p *Poly) Degree() int {
	return p.v.BitLen() - 1
}

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool {
	return p.v.Sign() == 0
}

// Coefficient returns the coefficient of x^d. Asking for a degree above
// Degree() is a programming error and panics.
func (p *Poly) Coefficient(d int) uint {
	if d < 0 || d > p.Degree() {
		panic(fmt.Errorf("%w: coefficient %d of polynomial of degree %d", ErrDegree, d, p.Degree()))
	}
	return p.v.Bit(d)
}

// Add sets z to x + y and returns z.
func (z *Poly) Add(x, y *Poly) *Poly {
	z.v.Xor(&x.v, &y.v)
	return z
}

// Sub sets z to x - y and returns z. In GF(2) this is the same as Add.
func (z *Poly) Sub(x, y *Poly) *Poly {
	return z.Add(x, y)
}

// Lsh sets z to x * x^n and returns z.
func (z *Poly) Lsh(x *Poly, n uint) *Poly {
	z.v.Lsh(&x.v, n)
	return z
}

// Concat sets z to the bit string of x followed by the width lowest bits
// of y, that is x * x^width + (y mod x^width), and returns z.
func (z *Poly) Concat(x, y *Poly, width uint) *Poly {
	var low, mask big.Int
	mask.Lsh(big.NewInt(1), width)
	mask.Sub(&mask, big.NewInt(1))
	low.And(&y.v, &mask)
	z.v.Lsh(&x.v, width)
	z.v.Or(&z.v, &low)
	return z
}

// Mul sets z to the carry-less product x * y and returns z.
func (z *Poly) Mul(x, y *Poly) *Poly {
	var acc, shifted big.Int
	for i := 0; i < y.v.BitLen(); i++ {
		if y.v.Bit(i) == 0 {
			continue
		}
		shifted.Lsh(&x.v, uint(i))
		acc.Xor(&acc, &shifted)
	}
	z.v.Set(&acc)
	return z
}

// DivMod sets z to the quotient x / y and m to the remainder x mod y and
// returns the pair (z, m). The degree of m is strictly below the degree of
// y. DivMod panics if y is the zero polynomial.
func (z *Poly) DivMod(x, y, m *Poly) (*Poly, *Poly) {
	dy := y.Degree()
	if dy < 0 {
		panic(ErrDivisionByZero)
	}

	var q, r, t big.Int
	r.Set(&x.v)
	for {
		dr := r.BitLen() - 1
		if dr < dy {
			break
		}
		shift := uint(dr - dy)
		t.Lsh(&y.v, shift)
		r.Xor(&r, &t)
		q.SetBit(&q, int(shift), 1)
	}

	z.v.Set(&q)
	m.v.Set(&r)
	return z, m
}

// Mod sets z to x mod y and returns z. Mod panics if y is the zero
// polynomial.
func (z *Poly) Mod(x, y *Poly) *Poly {
	var q Poly
	q.DivMod(x, y, z)
	return z
}

// Uint64 returns the coefficients of p as an integer. The result is
// undefined if the degree of p is 64 or more.
func (p *Poly) Uint64() uint64 {
	return p.v.Uint64()
}

// Cmp compares the coefficient bit strings of p and q, returning -1, 0 or
// +1 like big.Int.Cmp.
func (p *Poly) Cmp(q *Poly) int {
	return p.v.Cmp(&q.v)
}

// Bits returns the coefficients as a string of binary digits, highest
// degree first. The zero polynomial is "0".
func (p *Poly) Bits() string {
	return p.v.Text(2)
}

// String renders p in conventional notation, e.g. "x^3 + x + 1".
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var terms []string
	for d := p.Degree(); d >= 0; d-- {
		if p.v.Bit(d) == 0 {
			continue
		}
		switch d {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, fmt.Sprintf("x^%d", d))
		}
	}
	return strings.Join(terms, " + ")
}
