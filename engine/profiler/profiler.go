// Package profiler records nested timing scopes into a fixed-size ring and
// writes them out as a speedscope evented profile
// (https://www.speedscope.app/file-format-schema.json).
//
// The package-level functions use a default recorder that stays disabled
// until Init is called, so scopes cost one atomic load when profiling is off.
package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

const schemaURL = "https://www.speedscope.app/file-format-schema.json"

// DefaultFile is the file name used when Dump is given an empty path.
const DefaultFile = "canopy.speedscope.json"

// ErrNoEvents is returned when there is nothing to write.
var ErrNoEvents = errors.New("profiler: no events recorded")

var std Recorder

// Init enables the default recorder with room for capacity events.
func Init(capacity int) { std.Reset(capacity) }

// Enabled reports whether the default recorder is collecting.
func Enabled() bool { return std.enabled.Load() }

// Start opens a scope on the default recorder; call the returned func to close it.
func Start(name string) func() { return std.Start(name) }

// Dump writes the default recorder's events to path (or the temp dir).
func Dump(path string) (string, error) { return std.Dump(path) }

type event struct {
	at    int64 // unix nanoseconds
	frame int
	open  bool
}

// Recorder is safe for concurrent Start calls. Reset must not race with them.
type Recorder struct {
	enabled atomic.Bool
	next    atomic.Uint64
	ring    []event

	mu    sync.Mutex
	names []string
	ids   map[string]int

	clock func() int64
}

func New(capacity int) *Recorder {
	r := &Recorder{}
	r.Reset(capacity)
	return r
}

// Reset drops all events and enables recording. Non-positive capacities fall
// back to 4096 events.
func (r *Recorder) Reset(capacity int) {
	if capacity <= 0 {
		capacity = 4096
	}
	r.ring = make([]event, capacity)
	r.next.Store(0)
	r.mu.Lock()
	r.names = r.names[:0]
	r.ids = make(map[string]int)
	r.mu.Unlock()
	if r.clock == nil {
		r.clock = func() int64 { return time.Now().UnixNano() }
	}
	r.enabled.Store(true)
}

func (r *Recorder) Start(name string) func() {
	if !r.enabled.Load() {
		return func() {}
	}
	id := r.intern(name)
	begin := r.clock()
	r.push(event{at: begin, frame: id, open: true})
	return func() {
		end := r.clock()
		if end < begin {
			end = begin
		}
		r.push(event{at: end, frame: id})
	}
}

func (r *Recorder) push(e event) {
	i := r.next.Add(1) - 1
	r.ring[i%uint64(len(r.ring))] = e
}

func (r *Recorder) intern(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.ids[name]; ok {
		return id
	}
	id := len(r.names)
	r.ids[name] = id
	r.names = append(r.names, name)
	return id
}

// snapshot returns the retained events in write order.
func (r *Recorder) snapshot() []event {
	n := r.next.Load()
	size := uint64(len(r.ring))
	if n == 0 || size == 0 {
		return nil
	}
	first := uint64(0)
	if n > size {
		first = n - size
	}
	out := make([]event, 0, n-first)
	for k := first; k < n; k++ {
		out = append(out, r.ring[k%size])
	}
	return out
}

// Dump writes the profile to path atomically. An empty path writes
// DefaultFile into the OS temp dir. The written path is returned.
func (r *Recorder) Dump(path string) (string, error) {
	if path == "" {
		path = filepath.Join(os.TempDir(), DefaultFile)
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("profiler: %w", err)
	}
	err = r.WriteTo(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("profiler: %w", cerr)
	}
	if err == nil {
		if rerr := os.Rename(tmp, path); rerr != nil {
			err = fmt.Errorf("profiler: %w", rerr)
		}
	}
	if err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return path, nil
}

// WriteTo encodes the retained events as an indented speedscope document.
func (r *Recorder) WriteTo(w io.Writer) error {
	r.mu.Lock()
	names := append([]string(nil), r.names...)
	r.mu.Unlock()

	doc, err := buildDocument(r.snapshot(), names)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("profiler: encode: %w", err)
	}
	return nil
}
