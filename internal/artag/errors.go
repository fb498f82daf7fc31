package artag

import "errors"

// Service-level sentinel errors. Callers match these with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrUsernameTaken = errors.New("username already taken")
	ErrNotLoggedIn   = errors.New("not logged in")
)

// Reader errors form a closed set so the scan controller can classify
// failures with a type switch instead of substring matching.
var (
	// ErrScanCancelled means the user aborted the read. The controller
	// treats this as a silent return to idle, not an error.
	ErrScanCancelled = errors.New("scan cancelled")

	// ErrTagUnsupported means a tag was detected but is not a supported type.
	ErrTagUnsupported = errors.New("unsupported tag type")

	// ErrScanTimeout means no tag was presented before the read deadline.
	ErrScanTimeout = errors.New("scan timed out")

	// ErrHardwareUnavailable means no NFC device could be opened. A missing
	// hardware binding degrades to this, never a crash.
	ErrHardwareUnavailable = errors.New("nfc hardware unavailable")
)
