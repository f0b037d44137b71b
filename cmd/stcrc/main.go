// Copyright (C) 2026 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Command stcrc prints the IEEE 802.3 CRC-32 of files.
//
// With a single file argument only the checksum is printed, in upper case
// hexadecimal. With several arguments, or a directory, each line also
// carries the path. The
// --verify flag hashes the same bytes with an independent implementation
// and exits non-zero if the two disagree.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/syncthing/stcrc/lib/build"
	"github.com/syncthing/stcrc/lib/crc32"
	"github.com/syncthing/stcrc/lib/scanner"
)

type CLI struct {
	Paths       []string         `arg:"" optional:"" name:"path" help:"Files or directories to checksum" default:"input.txt"`
	Method      string           `help:"Checksum method (${enum})" enum:"bitwise,division,reference" default:"bitwise" env:"STCRC_METHOD"`
	Verify      bool             `help:"Cross check every checksum against the reference implementation" env:"STCRC_VERIFY"`
	Decimal     bool             `help:"Print checksums in decimal instead of hexadecimal"`
	Hashers     int              `help:"Number of files to hash in parallel" default:"${hashers}" env:"STCRC_HASHERS"`
	MetricsFile string           `help:"Write Prometheus metrics to this file after the run" placeholder:"PATH" env:"STCRC_METRICS_FILE"`
	Version     kong.VersionFlag `help:"Show version and exit"`
}

func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("stcrc"),
		kong.Description("Compute the CRC-32 (IEEE 802.3) checksum of files."),
		kong.Vars{
			"version": build.LongVersion,
			"hashers": strconv.Itoa(runtime.NumCPU()),
		},
	}
}

func main() {
	var params CLI
	kong.Parse(&params, kongOptions()...)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, params, os.Stdout)
	cancel()
	os.Exit(code)
}

// run hashes everything named in params, prints the checksums to w and
// returns the process exit code.
func run(ctx context.Context, params CLI, w io.Writer) int {
	method, err := crc32.ParseMethod(params.Method)
	if err != nil {
		l.Warnln(err)
		return 1
	}

	if params.Verify && method == crc32.MethodReference {
		l.Infoln("Nothing to verify against with the reference method; ignoring --verify")
	}

	files, err := scanner.Walk(ctx, params.Paths)
	if err != nil {
		l.Warnln("Listing files:", err)
		return 1
	}
	if len(files) == 0 {
		l.Warnln("No files to checksum in", params.Paths)
		return 1
	}
	l.Debugf("hashing %d files with %v, %d hashers", len(files), method, params.Hashers)

	results := scanner.HashAll(ctx, files, params.Hashers, scanner.Config{
		Method: method,
		Verify: params.Verify,
	})

	code := report(w, results, params.Decimal, withPaths(params.Paths))

	if params.MetricsFile != "" {
		if err := writeMetrics(params.MetricsFile); err != nil {
			l.Warnln("Writing metrics:", err)
			code = 1
		}
	}

	return code
}

// withPaths reports whether output lines should name their file: the
// bare checksum is only printed for a single file argument.
func withPaths(args []string) bool {
	if len(args) != 1 {
		return true
	}
	fi, err := os.Stat(args[0])
	return err == nil && fi.IsDir()
}

// report prints one entry per result and returns 1 if any of them failed.
func report(w io.Writer, results []scanner.Result, decimal, withPath bool) int {
	code := 0
	for _, res := range results {
		recordResult(res)

		if res.Err != nil && !errors.Is(res.Err, scanner.ErrMismatch) {
			l.Warnln(res.Err)
			code = 1
			continue
		}

		sum := crc32.Format(res.Sum)
		if decimal {
			sum = strconv.FormatUint(uint64(res.Sum), 10)
		}
		if withPath {
			fmt.Fprintf(w, "%s  %s\n", sum, res.Path)
		} else {
			fmt.Fprintln(w, sum)
		}

		if res.Verified {
			fmt.Fprintf(w, "reference: %d\n", res.Reference)
		}
		if res.Err != nil {
			l.Warnln(res.Err)
			code = 1
		}
	}
	return code
}
