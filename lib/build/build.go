// Copyright (C) 2019 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package build

import (
	"fmt"
	"log"
	"regexp"
	"runtime"
	"strconv"
	"time"
)

var (
	// Injected by build script
	Version = "unknown-dev"
	Host    = "unknown" // Set by build script
	User    = "unknown" // Set by build script
	Stamp   = "0"       // Set by build script

	// Set by init()
	Date        time.Time
	IsRelease   bool
	LongVersion string

	AllowedVersionExp = regexp.MustCompile(`^v\d+\.\d+\.\d+(-[a-z0-9]+)*(\.\d+)*(\+\d+-g[0-9a-f]+)?(-[^\s]+)?$`)
	releaseExp        = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)
)

func init() {
	if Version != "unknown-dev" {
		// If not a generic dev build, version string should come from git describe
		if !AllowedVersionExp.MatchString(Version) {
			log.Fatalf("Invalid version string %q;\n\tdoes not match regexp %v", Version, AllowedVersionExp)
		}
	}
	setBuildData()
}

func setBuildData() {
	// Only a bare "v1.2.3" is a release; anything with a suffix is a
	// development or candidate build.
	IsRelease = releaseExp.MatchString(Version)

	stamp, _ := strconv.Atoi(Stamp)
	Date = time.Unix(int64(stamp), 0)
	LongVersion = formatLongVersion(Version, Date, User, Host)
}

func formatLongVersion(version string, date time.Time, user, host string) string {
	d := date.UTC().Format("2006-01-02 15:04:05 MST")
	return fmt.Sprintf(`stcrc %s (%s %s-%s) %s@%s %s`, version, runtime.Version(), runtime.GOOS, runtime.GOARCH, user, host, d)
}
