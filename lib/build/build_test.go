// Copyright (C) 2019 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package build

import (
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestAllowedVersions(t *testing.T) {
	testcases := []struct {
		ver     string
		allowed bool
	}{
		{"v0.13.0", true},
		{"v0.12.11+22-gabcdef0", true},
		{"v0.13.0-beta0", true},
		{"v0.13.0-beta.47+1-gabcdef0", true},
		{"v0.13.0-some-weird-but-allowed-tag", true},
		{"v0.13.0+not.allowed.to.do.this", false},
		{"1.0.0", false},
	}

	for i, c := range testcases {
		if allowed := AllowedVersionExp.MatchString(c.ver); allowed != c.allowed {
			t.Errorf("%d: incorrect result %v != %v for %q", i, allowed, c.allowed, c.ver)
		}
	}
}

func TestLongVersion(t *testing.T) {
	lv := formatLongVersion("v1.0.0", time.Unix(0, 0), "jb", "build.example")
	if !strings.HasPrefix(lv, "stcrc v1.0.0 ("+runtime.Version()) {
		t.Errorf("unexpected prefix in %q", lv)
	}
	if !strings.HasSuffix(lv, "jb@build.example 1970-01-01 00:00:00 UTC") {
		t.Errorf("unexpected suffix in %q", lv)
	}
}
