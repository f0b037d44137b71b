// Copyright (C) 2014 Jakob Borg. All rights reserved. Use of this source code
// is governed by an MIT-style license that can be found in the LICENSE file.

package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestAPI(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "")

	debug := 0
	l.AddHandler(LevelDebug, checkFunc(t, LevelDebug, &debug))
	info := 0
	l.AddHandler(LevelInfo, checkFunc(t, LevelInfo, &info))
	warn := 0
	l.AddHandler(LevelWarn, checkFunc(t, LevelWarn, &warn))

	l.Debugf("test %d", 0)
	l.Debugln("test", 0)
	l.Infof("test %d", 1)
	l.Infoln("test", 1)
	l.Warnf("test %d", 3)
	l.Warnln("test", 3)

	if debug != 6 {
		t.Errorf("Debug handler called %d != 6 times", debug)
	}
	if info != 4 {
		t.Errorf("Info handler called %d != 4 times", info)
	}
	if warn != 2 {
		t.Errorf("Warn handler called %d != 2 times", warn)
	}

	if !strings.Contains(buf.String(), "WARNING: test 3") {
		t.Errorf("Missing warning line in output: %q", buf.String())
	}
}

func checkFunc(t *testing.T, expectl LogLevel, counter *int) func(LogLevel, string) {
	return func(l LogLevel, msg string) {
		*counter++
		if l < expectl {
			t.Errorf("Incorrect message level %d < %d", l, expectl)
		}
	}
}

func TestFacilityDebugging(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "crc32")

	traced := l.NewFacility("crc32", "CRC engine")
	silent := l.NewFacility("scanner", "File hashing")

	traced.Debugln("from traced")
	silent.Debugln("from silent")

	out := buf.String()
	if !strings.Contains(out, "DEBUG: from traced") {
		t.Errorf("Expected traced facility debug output, got %q", out)
	}
	if strings.Contains(out, "from silent") {
		t.Errorf("Unexpected debug output from untraced facility: %q", out)
	}

	if f := l.Facilities(); f["scanner"] != "File hashing" || len(f) != 2 {
		t.Errorf("Unexpected facilities %v", f)
	}

	l.SetDebug("scanner", true)
	silent.Debugln("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("SetDebug did not enable the facility")
	}
}

func TestTraceAll(t *testing.T) {
	l := NewWithWriter(&bytes.Buffer{}, "foo,all")
	l.NewFacility("anything", "")
	if !l.ShouldDebug("anything") {
		t.Error("STTRACE=all should enable every facility")
	}
}

func TestControlStripper(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "")
	l.Infoln("a\x1bb\tc")
	if got := buf.String(); got != "INFO: a b c\n" {
		t.Errorf("Unexpected output %q", got)
	}
}
