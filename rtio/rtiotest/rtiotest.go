// Package rtiotest provides in-memory streams and exit recorders for testing
// code built on rtio.
package rtiotest

import (
	"bytes"
	"errors"
	"sync"
)

var ErrInjected = errors.New("injected write failure")

// Sink is an in-memory writer that is safe for concurrent use.
type Sink struct {
	mu    sync.Mutex
	buf   bytes.Buffer
	calls int
}

func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.buf.Write(p)
}

// Bytes returns a copy of everything written so far.
func (s *Sink) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bytes.Clone(s.buf.Bytes())
}

func (s *Sink) String() string {
	return string(s.Bytes())
}

// Calls returns the number of Write requests received.
func (s *Sink) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// FailingWriter rejects every write with Err, or ErrInjected when Err is nil.
type FailingWriter struct {
	Err error
}

func (w FailingWriter) Write(p []byte) (int, error) {
	if w.Err != nil {
		return 0, w.Err
	}
	return 0, ErrInjected
}

// ShortWriter accepts at most Limit bytes per request without reporting an
// error.
type ShortWriter struct {
	Limit int
}

func (w ShortWriter) Write(p []byte) (int, error) {
	if len(p) > w.Limit {
		return w.Limit, nil
	}
	return len(p), nil
}

// Exited is the panic value raised by ExitRecorder.Exit.
type Exited struct {
	Status int
}

// ExitRecorder stands in for os.Exit. Exit records the status and panics
// with Exited so the caller observes a non-returning call.
type ExitRecorder struct {
	mu       sync.Mutex
	statuses []int
}

func (r *ExitRecorder) Exit(status int) {
	r.mu.Lock()
	r.statuses = append(r.statuses, status)
	r.mu.Unlock()
	panic(Exited{Status: status})
}

// Statuses returns every status passed to Exit.
func (r *ExitRecorder) Statuses() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.statuses...)
}

// Run calls fn and returns the status if fn exited through the recorder.
func (r *ExitRecorder) Run(fn func()) (status int, exited bool) {
	defer func() {
		if v := recover(); v != nil {
			e, ok := v.(Exited)
			if !ok {
				panic(v)
			}
			status, exited = e.Status, true
		}
	}()
	fn()
	return 0, false
}
