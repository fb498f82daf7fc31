package artag

import "context"

// TagReader abstracts the NFC hardware. Implementations must degrade
// gracefully: a missing or unopenable device reports unavailable/denied
// rather than crashing.
type TagReader interface {
	// Available reports whether the hardware binding could be initialized.
	// The capability is captured at construction and injected into the scan
	// controller; there is no module-global flag. No I/O.
	Available() bool

	// RequestAccess checks support and enabled state, prompting where the
	// platform requires it, and prepares a session. It reports readiness as
	// a bool and never returns an error: any negative step yields false.
	RequestAccess(ctx context.Context) bool

	// ReadTag opens a tag-detection session, waits for a single tag and
	// returns its UID as uppercase hex with even length. The session is
	// released in a guaranteed cleanup step regardless of outcome. Failures
	// are one of ErrScanCancelled, ErrTagUnsupported, ErrScanTimeout,
	// ErrHardwareUnavailable, or a generic error.
	ReadTag(ctx context.Context) (string, error)

	// Stop tears the session down best-effort. It never reports an error;
	// stopping a session that was never started is a no-op.
	Stop()
}
