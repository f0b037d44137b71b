// Copyright (C) 2026 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package gf2

import (
	"errors"
	"testing"
	"testing/quick"
)

func TestDegree(t *testing.T) {
	cases := []struct {
		v   uint64
		deg int
	}{
		{0, -1},
		{1, 0},
		{2, 1},
		{0b1011, 3},
		{1<<32 | 0x04c11db7, 32},
	}
	for _, tc := range cases {
		if d := New(tc.v).Degree(); d != tc.deg {
			t.Errorf("Degree(%b) = %d, expected %d", tc.v, d, tc.deg)
		}
	}
}

func TestCoefficient(t *testing.T) {
	p := New(0b1011)
	expected := []uint{1, 1, 0, 1}
	for d, c := range expected {
		if got := p.Coefficient(d); got != c {
			t.Errorf("Coefficient(%d) = %d, expected %d", d, got, c)
		}
	}
}

func TestCoefficientOutOfRangePanics(t *testing.T) {
	for _, d := range []int{-1, 4, 100} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("Coefficient(%d) did not panic", d)
					return
				}
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrDegree) {
					t.Errorf("Coefficient(%d) panicked with %v, expected ErrDegree", d, r)
				}
			}()
			New(0b1011).Coefficient(d)
		}()
	}
}

func TestAddIsSub(t *testing.T) {
	f := func(a, b uint64) bool {
		var s, d Poly
		s.Add(New(a), New(b))
		d.Sub(New(a), New(b))
		return s.Cmp(&d) == 0 && s.Uint64() == a^b
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMul(t *testing.T) {
	// (x + 1)(x + 1) = x^2 + 1 over GF(2)
	var z Poly
	z.Mul(New(0b11), New(0b11))
	if z.Uint64() != 0b101 {
		t.Errorf("(x+1)^2 = %s, expected x^2 + 1", &z)
	}
}

func TestDivModIdentity(t *testing.T) {
	// a = q*g + r and deg r < deg g, for any nonzero g.
	f := func(a uint64, g uint32) bool {
		if g == 0 {
			g = 1
		}
		x, y := New(a), New(uint64(g))
		var q, r, back Poly
		q.DivMod(x, y, &r)
		back.Mul(&q, y)
		back.Add(&back, &r)
		return back.Cmp(x) == 0 && r.Degree() < y.Degree()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestDivisionByZeroPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrDivisionByZero {
			t.Errorf("got %v, expected ErrDivisionByZero", r)
		}
	}()
	new(Poly).Mod(New(5), new(Poly))
}

func TestModAliasing(t *testing.T) {
	x := New(0b110101)
	x.Mod(x, New(0b1011))
	var expected Poly
	expected.Mod(New(0b110101), New(0b1011))
	if x.Cmp(&expected) != 0 {
		t.Errorf("aliased Mod = %s, expected %s", x, &expected)
	}
}

func TestConcat(t *testing.T) {
	var z Poly
	z.Concat(New(0b101), New(0b0011), 4)
	if z.Bits() != "1010011" {
		t.Errorf("Concat = %s, expected 1010011", z.Bits())
	}

	// Bits of y above width are dropped.
	z.Concat(New(1), New(0xff), 2)
	if z.Bits() != "111" {
		t.Errorf("Concat = %s, expected 111", z.Bits())
	}
}

func TestString(t *testing.T) {
	cases := map[uint64]string{
		0:      "0",
		1:      "1",
		0b10:   "x",
		0b1011: "x^3 + x + 1",
	}
	for v, s := range cases {
		if got := New(v).String(); got != s {
			t.Errorf("String(%b) = %q, expected %q", v, got, s)
		}
	}
}
