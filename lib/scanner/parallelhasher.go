// Copyright (C) 2014 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package scanner

import (
	"context"
	"slices"
	"sync"
	"time"
)

// A Job asks for the file at Path to be hashed. Index is carried over to
// the Result so that callers can restore the request order.
type Job struct {
	Index int
	Path  string
}

type waitGroup interface {
	Add(delta int)
	Done()
	Wait()
}

// The parallel hasher reads jobs from the inbox, hashes the file and sends
// the Result to the outbox. A number of workers are used in parallel. The
// outbox will become closed when the inbox is closed and all items handled.
type ParallelHasher struct {
	outbox chan<- Result
	inbox  <-chan Job
	done   chan<- struct{}
	wg     waitGroup
	cfg    Config
}

func newParallelHasher(cfg Config, outbox chan<- Result, inbox <-chan Job, done chan<- struct{}) *ParallelHasher {
	return &ParallelHasher{
		outbox: outbox,
		inbox:  inbox,
		done:   done,
		wg:     &sync.WaitGroup{},
		cfg:    cfg,
	}
}

func (ph *ParallelHasher) run(ctx context.Context, workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		ph.wg.Add(1)
		go ph.hashFiles(ctx)
	}
	go ph.closeWhenDone()
}

func (ph *ParallelHasher) hashFiles(ctx context.Context) {
	defer ph.wg.Done()

	for {
		select {
		case job, ok := <-ph.inbox:
			if !ok {
				return
			}

			res, err := HashFile(ctx, job.Path, ph.cfg)
			if err != nil {
				l.Debugln("hash error:", job.Path, err)
				res.Err = err
			}
			res.Index = job.Index

			select {
			case ph.outbox <- res:
			case <-ctx.Done():
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

func (ph *ParallelHasher) closeWhenDone() {
	ph.wg.Wait()
	if ph.done != nil {
		close(ph.done)
	}
	close(ph.outbox)
}

// HashAll hashes every path using the given number of workers and returns
// one Result per path, in the order of paths. Failures are reported in
// Result.Err. If ctx is cancelled the remaining paths get ctx.Err().
func HashAll(ctx context.Context, paths []string, workers int, cfg Config) []Result {
	progress := newByteCounter()
	defer progress.Close()
	if cfg.Counter == nil {
		cfg.Counter = progress
	} else {
		cfg.Counter = multiCounter{cfg.Counter, progress}
	}

	inbox := make(chan Job)
	outbox := make(chan Result)
	done := make(chan struct{})
	newParallelHasher(cfg, outbox, inbox, done).run(ctx, workers)

	go func() {
		defer close(inbox)
		for i, p := range paths {
			select {
			case inbox <- Job{Index: i, Path: p}:
			case <-ctx.Done():
				return
			}
		}
	}()

	if l.ShouldDebug("scanner") {
		go reportProgress(ctx, progress, done, 2*time.Second)
	}

	results := make([]Result, 0, len(paths))
	seen := make([]bool, len(paths))
	for res := range outbox {
		seen[res.Index] = true
		results = append(results, res)
	}

	for i, ok := range seen {
		if !ok {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			results = append(results, Result{Index: i, Path: paths[i], Method: cfg.Method, Err: err})
		}
	}

	slices.SortFunc(results, func(a, b Result) int {
		return a.Index - b.Index
	})
	return results
}

func reportProgress(ctx context.Context, progress *byteCounter, done <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			l.Debugln("Hash progress done,", progress.Total(), "bytes")
			return
		case <-ticker.C:
			l.Debugf("Hash progress %d bytes at %.01f MiB/s", progress.Total(), progress.Rate()/1024/1024)
		case <-ctx.Done():
			return
		}
	}
}
