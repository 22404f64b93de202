// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/decred/slog"
)

// testLog writes log lines to the test log while also retaining them so tests
// can inspect what was logged.
type testLog struct {
	*testing.T

	mtx sync.Mutex
	buf bytes.Buffer
}

func (t *testLog) Write(b []byte) (int, error) {
	t.Logf("%s", b)
	t.mtx.Lock()
	t.buf.Write(b)
	t.mtx.Unlock()
	return len(b), nil
}

// String returns everything logged so far.
func (t *testLog) String() string {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.buf.String()
}

// useTestLogger sets the package-level logger to a backend that writes
// trace-level logs to the test log.  A function is returned to set the logger
// back to Disabled when finished.
//
// Due to the use of a global logger variable that must write to test logs of
// individual test variables, it is not possible to parallelize tests.
func useTestLogger(t *testing.T) (*testLog, func()) {
	w := &testLog{T: t}
	backend := slog.NewBackend(w)
	l := backend.Logger("GCS")
	l.SetLevel(slog.LevelTrace)
	UseLogger(l)
	return w, func() {
		UseLogger(slog.Disabled)
	}
}

// TestLogging ensures filter construction and corrupt filter detection are
// logged when a logger is in use.
func TestLogging(t *testing.T) {
	w, done := useTestLogger(t)
	defer done()

	var key [KeySize]byte
	data := append([][]byte{contents1[0]}, contents1...)
	if _, err := NewFilter(BasicParams, key, data); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := "Built filter with 17 items (1 duplicates removed"
	if !strings.Contains(w.String(), want) {
		t.Fatalf("missing build log entry %q in %q", want, w.String())
	}

	f, err := FromBytes(BasicParams, hexToBytes("1189af"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := f.Match(key, contents1[0]); err == nil {
		t.Fatal("did not receive expected err matching corrupt filter")
	}
	want = "Match on corrupt filter"
	if !strings.Contains(w.String(), want) {
		t.Fatalf("missing corrupt filter log entry %q in %q", want,
			w.String())
	}
}
