package nfc

import (
	"context"
	"sync"
	"time"

	"artag/internal/artag"

	"github.com/clausecker/nfc/v2"
)

// pollModulations lists the tag modulations we ask libnfc to poll for.
// ISO14443a covers NTAG and MIFARE family tags, which is what artwork
// tags are in practice.
var pollModulations = []nfc.Modulation{
	{Type: nfc.ISO14443a, BaudRate: nfc.Nbr106},
}

const (
	// pollAttempts * pollPeriod bounds a single InitiatorPollTarget call,
	// so cancellation latency stays under ~300ms.
	pollAttempts = 2
	pollPeriod   = 150 * time.Millisecond
)

// LibNFCReader reads tag UIDs through libnfc (PN532 and friends).
// A device is opened on RequestAccess and held until Stop.
type LibNFCReader struct {
	connstring string
	timeout    time.Duration
	logger     artag.Logger

	mu  sync.Mutex
	dev *nfc.Device
}

// NewLibNFCReader creates a reader for the given libnfc connection string.
// An empty connstring lets libnfc pick the first available device.
func NewLibNFCReader(connstring string, timeout time.Duration, logger artag.Logger) *LibNFCReader {
	return &LibNFCReader{
		connstring: connstring,
		timeout:    timeout,
		logger:     logger,
	}
}

// Available reports whether any libnfc device is present.
func (r *LibNFCReader) Available() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.dev != nil {
		return true
	}

	devices, err := nfc.ListDevices()
	if err != nil {
		r.logger.Debug("nfc device listing failed", "error", err)
		return false
	}
	return len(devices) > 0
}

// RequestAccess opens and initializes the device. Returns false when the
// device cannot be opened, which the caller treats as access denied.
func (r *LibNFCReader) RequestAccess(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.dev != nil {
		return true
	}

	dev, err := nfc.Open(r.connstring)
	if err != nil {
		r.logger.Warn("failed to open nfc device", "connstring", r.connstring, "error", err)
		return false
	}

	if err := dev.InitiatorInit(); err != nil {
		r.logger.Warn("failed to initialize nfc device", "error", err)
		dev.Close()
		return false
	}

	r.dev = &dev
	r.logger.Info("nfc device opened", "device", dev.String())
	return true
}

// ReadTag polls for a tag and returns its UID as uppercase hex.
// Returns ErrScanCancelled when ctx is cancelled, ErrScanTimeout when no
// tag shows up within the configured timeout, ErrTagUnsupported for
// non-ISO14443a targets, and ErrHardwareUnavailable when no device is open.
func (r *LibNFCReader) ReadTag(ctx context.Context) (string, error) {
	r.mu.Lock()
	dev := r.dev
	r.mu.Unlock()

	if dev == nil {
		return "", artag.ErrHardwareUnavailable
	}

	deadline := time.Now().Add(r.timeout)
	for {
		if err := ctx.Err(); err != nil {
			return "", artag.ErrScanCancelled
		}
		if time.Now().After(deadline) {
			return "", artag.ErrScanTimeout
		}

		n, target, err := dev.InitiatorPollTarget(pollModulations, pollAttempts, pollPeriod)
		if err != nil {
			r.logger.Warn("nfc poll failed", "error", err)
			return "", artag.ErrHardwareUnavailable
		}
		if n == 0 {
			// No tag during this poll window, try again
			continue
		}

		iso, ok := target.(*nfc.ISO14443aTarget)
		if !ok {
			return "", artag.ErrTagUnsupported
		}
		return FormatUID(iso.UID[:iso.UIDLen]), nil
	}
}

// Stop closes the device if one is open.
func (r *LibNFCReader) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.dev == nil {
		return
	}
	if err := r.dev.Close(); err != nil {
		r.logger.Warn("failed to close nfc device", "error", err)
	}
	r.dev = nil
}

// Compile-time check that LibNFCReader implements artag.TagReader
var _ artag.TagReader = (*LibNFCReader)(nil)
