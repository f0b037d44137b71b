// Copyright (C) 2026 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/syncthing/stcrc/lib/scanner"
)

var (
	metricFilesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stcrc",
		Name:      "files_total",
	}, []string{"result"})
	metricBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stcrc",
		Name:      "bytes_total",
	})
	metricVerifyMismatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stcrc",
		Name:      "verify_mismatches_total",
	})
)

func recordResult(res scanner.Result) {
	result := "success"
	switch {
	case errors.Is(res.Err, scanner.ErrMismatch):
		result = "mismatch"
		metricVerifyMismatchesTotal.Inc()
	case res.Err != nil:
		result = "error"
	}
	metricFilesTotal.WithLabelValues(result).Inc()
	metricBytesTotal.Add(float64(res.Size))
}

// writeMetrics dumps the default registry in the text exposition format,
// suitable for the node_exporter textfile collector.
func writeMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
