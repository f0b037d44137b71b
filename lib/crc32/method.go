// Copyright (C) 2026 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package crc32

import (
	"errors"
	"fmt"
	"hash"

	klauspostCrc32 "github.com/klauspost/crc32"
)

var ErrUnknownMethod = errors.New("unknown method")

// A Method selects the implementation used to compute a checksum.
type Method int

const (
	// MethodBitwise is the table-free shift register.
	MethodBitwise Method = iota
	// MethodDivision is long division over GF(2).
	MethodDivision
	// MethodReference is an independent, table driven implementation used
	// to cross check the others.
	MethodReference
)

var methodNames = map[Method]string{
	MethodBitwise:   "bitwise",
	MethodDivision:  "division",
	MethodReference: "reference",
}

// Methods lists the method names accepted by ParseMethod.
func Methods() []string {
	return []string{"bitwise", "division", "reference"}
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod returns the method with the given name.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMethod, s)
}

// New returns a fresh hash for the method. It panics on an unknown method.
func (m Method) New() hash.Hash32 {
	switch m {
	case MethodBitwise:
		return New()
	case MethodDivision:
		return NewDivision()
	case MethodReference:
		return klauspostCrc32.NewIEEE()
	default:
		panic(fmt.Sprintf("bug: unknown method %d", int(m)))
	}
}

// ChecksumReference returns the CRC-32 of data from the reference
// implementation.
func ChecksumReference(data []byte) uint32 {
	return klauspostCrc32.ChecksumIEEE(data)
}
