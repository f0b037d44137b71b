// Copyright (C) 2014 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package scanner

import (
	"context"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/syncthing/stcrc/lib/crc32"
)

var ErrMismatch = errors.New("checksum mismatch")

type Counter interface {
	Update(bytes int64)
}

// Config controls how a file is checksummed.
type Config struct {
	// Method computes the checksum that is reported.
	Method crc32.Method
	// If Verify is set the reference implementation hashes the same bytes
	// and a differing result is returned as ErrMismatch. Verify has no
	// effect when Method is already the reference implementation.
	Verify bool
	// Counter, if not nil, is updated with the number of bytes read.
	Counter Counter
}

// Result is the outcome of hashing one file.
type Result struct {
	Index     int // position of the path in the request
	Path      string
	Size      int64
	Method    crc32.Method
	Sum       uint32
	Reference uint32 // only meaningful when Verified is set
	Verified  bool
	Err       error
}

// Checksum copies r into every hasher and returns the number of bytes
// read. The context is checked between chunks.
func Checksum(ctx context.Context, r io.Reader, counter Counter, hashers ...hash.Hash32) (int64, error) {
	if counter == nil {
		counter = &noopCounter{}
	}

	ws := make([]io.Writer, len(hashers))
	for i, h := range hashers {
		ws[i] = h
	}
	multiHf := io.MultiWriter(ws...)

	// A 32k buffer is used for copying into the hash functions.
	buf := make([]byte, 32<<10)

	var total int64
	lr := io.LimitReader(r, int64(len(buf))).(*io.LimitedReader)
	for {
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		default:
		}

		lr.N = int64(len(buf))
		n, err := io.CopyBuffer(multiHf, lr, buf)
		if err != nil {
			return total, err
		}

		if n == 0 {
			break
		}

		counter.Update(n)
		total += n
	}

	return total, nil
}

// HashFile returns the checksum of the named file. I/O problems are
// returned as they come, wrapped with the path.
func HashFile(ctx context.Context, path string, cfg Config) (Result, error) {
	res := Result{Path: path, Method: cfg.Method}

	fd, err := os.Open(path)
	if err != nil {
		l.Debugln("open:", err)
		return res, err
	}
	defer fd.Close()

	fi, err := fd.Stat()
	if err != nil {
		return res, err
	}
	if fi.IsDir() {
		return res, fmt.Errorf("%s: is a directory", path)
	}

	hf := cfg.Method.New()
	hashers := []hash.Hash32{hf}
	var refHf hash.Hash32
	if cfg.Verify && cfg.Method != crc32.MethodReference {
		refHf = crc32.MethodReference.New()
		hashers = append(hashers, refHf)
	}

	n, err := Checksum(ctx, fd, cfg.Counter, hashers...)
	if err != nil {
		return res, fmt.Errorf("reading %s: %w", path, err)
	}

	res.Size = n
	res.Sum = hf.Sum32()
	l.Debugf("hashed %s (%d bytes, %v): %s", path, n, cfg.Method, crc32.Format(res.Sum))

	if refHf != nil {
		res.Reference = refHf.Sum32()
		res.Verified = true
		if res.Reference != res.Sum {
			return res, fmt.Errorf("%s: %w: %s %s != reference %s", path, ErrMismatch, cfg.Method, crc32.Format(res.Sum), crc32.Format(res.Reference))
		}
	}

	return res, nil
}

type noopCounter struct{}

func (*noopCounter) Update(bytes int64) {}
