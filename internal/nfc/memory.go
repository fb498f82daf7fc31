package nfc

import (
	"context"
	"sync"

	"artag/internal/artag"
)

// ScriptedRead is one queued outcome for a MemoryReader. Exactly one of
// UID or Err is meaningful.
type ScriptedRead struct {
	UID string
	Err error
}

// MemoryReader is a scripted implementation of the TagReader interface,
// useful for testing scan flows without NFC hardware. Reads are served
// from a queue in FIFO order; an empty queue reads as a timeout.
// This implementation is safe for concurrent use.
type MemoryReader struct {
	available   bool
	grantAccess bool
	reads       []ScriptedRead
	stopped     bool
	mu          sync.Mutex
}

// NewMemoryReader creates a scripted reader that reports hardware as
// available and grants access.
func NewMemoryReader() *MemoryReader {
	return &MemoryReader{available: true, grantAccess: true}
}

// SetAvailable controls what Available reports.
func (m *MemoryReader) SetAvailable(available bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = available
}

// SetGrantAccess controls whether RequestAccess succeeds.
func (m *MemoryReader) SetGrantAccess(grant bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.grantAccess = grant
}

// QueueUID appends a successful read to the script.
func (m *MemoryReader) QueueUID(uid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads = append(m.reads, ScriptedRead{UID: uid})
}

// QueueError appends a failed read to the script.
func (m *MemoryReader) QueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads = append(m.reads, ScriptedRead{Err: err})
}

// Available reports whether reader hardware is present.
func (m *MemoryReader) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}

// RequestAccess reports whether the reader may be used.
func (m *MemoryReader) RequestAccess(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grantAccess
}

// ReadTag serves the next scripted read.
func (m *MemoryReader) ReadTag(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", artag.ErrScanCancelled
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.reads) == 0 {
		return "", artag.ErrScanTimeout
	}

	next := m.reads[0]
	m.reads = m.reads[1:]
	if next.Err != nil {
		return "", next.Err
	}
	return next.UID, nil
}

// Stop records that the reader was stopped.
func (m *MemoryReader) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

// Stopped reports whether Stop has been called, for use in tests.
func (m *MemoryReader) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// Compile-time check that MemoryReader implements artag.TagReader
var _ artag.TagReader = (*MemoryReader)(nil)
