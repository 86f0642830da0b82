package profiler

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeClock() func() int64 {
	var t int64
	return func() int64 {
		t += 1000 // 1µs per reading
		return t
	}
}

func newTestRecorder(capacity int) *Recorder {
	r := &Recorder{clock: fakeClock()}
	r.Reset(capacity)
	return r
}

func decode(t *testing.T, r *Recorder) document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.WriteTo(&buf))
	var doc document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	return doc
}

func TestDisabledRecorderIsNoop(t *testing.T) {
	var r Recorder
	end := r.Start("frame")
	end()
	assert.Empty(t, r.snapshot())
}

func TestNestedScopes(t *testing.T) {
	r := newTestRecorder(16)
	outer := r.Start("frame")
	inner := r.Start("frame.gui")
	inner()
	outer()

	doc := decode(t, r)
	require.Len(t, doc.Profiles, 1)
	evs := doc.Profiles[0].Events
	require.Len(t, evs, 4)
	assert.Equal(t, []string{"O", "O", "C", "C"}, []string{evs[0].Type, evs[1].Type, evs[2].Type, evs[3].Type})
	assert.Equal(t, "frame", doc.Shared.Frames[evs[0].Frame].Name)
	assert.Equal(t, "frame.gui", doc.Shared.Frames[evs[1].Frame].Name)
	assert.Equal(t, int64(0), evs[0].At)
	assert.Equal(t, int64(3), doc.Profiles[0].EndValue)
}

func TestOpenScopesAreClosed(t *testing.T) {
	r := newTestRecorder(16)
	r.Start("frame")
	r.Start("frame.scene")

	evs := decode(t, r).Profiles[0].Events
	require.Len(t, evs, 4)
	assert.Equal(t, "C", evs[2].Type)
	assert.Equal(t, evs[1].Frame, evs[2].Frame, "innermost scope closes first")
	assert.Equal(t, evs[0].Frame, evs[3].Frame)
}

func TestRingDropsOrphanedCloses(t *testing.T) {
	r := newTestRecorder(3)
	end := r.Start("a") // overwritten by the ring
	b := r.Start("b")
	b()
	end()

	snap := r.snapshot()
	require.Len(t, snap, 3)
	assert.True(t, snap[0].open)

	evs := decode(t, r).Profiles[0].Events
	// "b" open/close survive; the close of "a" has no open left and is dropped.
	require.Len(t, evs, 2)
	assert.Equal(t, "O", evs[0].Type)
	assert.Equal(t, "C", evs[1].Type)
}

func TestWriteToWithoutEvents(t *testing.T) {
	r := newTestRecorder(4)
	var buf bytes.Buffer
	assert.ErrorIs(t, r.WriteTo(&buf), ErrNoEvents)
}

func TestDumpWritesFile(t *testing.T) {
	r := newTestRecorder(8)
	r.Start("frame")()

	path := filepath.Join(t.TempDir(), "trace.json")
	got, err := r.Dump(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), schemaURL)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestDumpFailureLeavesNoTempFile(t *testing.T) {
	r := newTestRecorder(8)
	r.Start("frame")()

	// Renaming a file over a non-empty directory fails.
	path := filepath.Join(t.TempDir(), "trace.json")
	require.NoError(t, os.MkdirAll(filepath.Join(path, "keep"), 0o755))

	_, err := r.Dump(path)
	require.Error(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestDumpWithoutEventsLeavesNoTempFile(t *testing.T) {
	r := newTestRecorder(8)
	path := filepath.Join(t.TempDir(), "trace.json")

	_, err := r.Dump(path)
	assert.ErrorIs(t, err, ErrNoEvents)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
