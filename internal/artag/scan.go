package artag

import (
	"context"
	"errors"
	"sync"
	"time"

	"artag/internal/model"
)

// ScanState is the transient state of a scan session.
type ScanState int

const (
	StateIdle ScanState = iota
	StateScanning
	StateFound
	StateNotFound
	StateError
)

func (s ScanState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateFound:
		return "found"
	case StateNotFound:
		return "not-found"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// DefaultFoundDisplayDelay is how long a successful result stays on screen
// before navigating to the artwork.
const DefaultFoundDisplayDelay = 1500 * time.Millisecond

// Navigator receives the navigation side effect of a successful scan.
type Navigator interface {
	NavigateToArtwork(artworkID string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(artworkID string)

func (f NavigatorFunc) NavigateToArtwork(artworkID string) { f(artworkID) }

// TagResolver is the narrow slice of the registry the controller needs:
// resolving scanned UIDs and binding tags after a not-found result.
// *RegistryService satisfies it.
type TagResolver interface {
	ResolveTag(ctx context.Context, uid string) (*model.NFCTag, *model.Artwork, error)
	LinkTag(ctx context.Context, uid string, artworkID string) error
}

// ScanController orchestrates one scan flow at a time:
//
//	idle → scanning → {found | not-found | error} → idle
//
// A found result records a history entry, lingers for the found-display
// delay, then navigates to the artwork and resets. A not-found result
// retains the UID so the user can link an existing artwork or create a new
// one pre-filled with it. Cancellation is silent.
type ScanController struct {
	reader     TagReader
	resolver   TagResolver
	history    HistoryStore
	navigator  Navigator
	logger     Logger
	clock      Clock
	foundDelay time.Duration

	mu      sync.Mutex
	state   ScanState
	uid     string
	artwork *model.Artwork
	message string
}

// NewScanController creates a controller in the idle state.
func NewScanController(reader TagReader, resolver TagResolver, history HistoryStore, navigator Navigator, logger Logger, clock Clock) *ScanController {
	return &ScanController{
		reader:     reader,
		resolver:   resolver,
		history:    history,
		navigator:  navigator,
		logger:     logger,
		clock:      clock,
		foundDelay: DefaultFoundDisplayDelay,
		state:      StateIdle,
	}
}

// SetFoundDisplayDelay overrides the found-display delay. Tests set it to 0.
func (c *ScanController) SetFoundDisplayDelay(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.foundDelay = d
}

// State returns the current session state.
func (c *ScanController) State() ScanState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// UID returns the UID of the last read, retained through the not-found
// state for the link/create follow-ups.
func (c *ScanController) UID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uid
}

// Artwork returns the resolved artwork of a found result, or nil.
func (c *ScanController) Artwork() *model.Artwork {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.artwork
}

// Message returns the user-facing description of the last error, or "".
func (c *ScanController) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Scan runs one full scan flow and returns the outcome state. While a scan
// is in flight further Scan calls return immediately with the current state;
// the UI disables the trigger, this guard backs it up.
func (c *ScanController) Scan(ctx context.Context) ScanState {
	if !c.begin() {
		return c.State()
	}

	if !c.reader.RequestAccess(ctx) {
		// Permission dialogs already informed the user; return silently.
		c.toIdle()
		return StateIdle
	}

	uid, err := c.reader.ReadTag(ctx)
	if err != nil {
		return c.readFailed(err)
	}

	tag, artwork, err := c.resolver.ResolveTag(ctx, uid)
	if err != nil {
		c.logger.Error("tag lookup failed", "uid", uid, "error", err)
		return c.toError(uid, "Could not look up the tag. Check your connection and try again.")
	}

	if tag == nil || !tag.IsBound || artwork == nil {
		c.toNotFound(uid)
		return StateNotFound
	}

	if err := c.history.Record(artwork.Title, artwork.ID, c.clock.Now()); err != nil {
		// History is a convenience; a failed write must not break the scan.
		c.logger.Warn("recording scan history failed", "error", err)
	}

	c.toFound(uid, artwork)
	c.lingerThenNavigate(ctx, artwork.ID)
	return StateFound
}

// LinkExisting binds the retained UID of a not-found result to an existing
// artwork and resets the session.
func (c *ScanController) LinkExisting(ctx context.Context, artworkID string) error {
	c.mu.Lock()
	if c.state != StateNotFound || c.uid == "" {
		c.mu.Unlock()
		return errors.New("no unlinked tag scanned")
	}
	uid := c.uid
	c.mu.Unlock()

	if err := c.resolver.LinkTag(ctx, uid, artworkID); err != nil {
		return err
	}
	c.Reset()
	return nil
}

// NewArtworkDraft returns an artwork draft pre-filled with the retained UID
// of a not-found result, for the "create new artwork and link" follow-up.
func (c *ScanController) NewArtworkDraft() ArtworkDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ArtworkDraft{NFCTagUID: c.uid}
}

// Reset stops the reader best-effort and returns the session to idle. Safe
// to call in any state.
func (c *ScanController) Reset() {
	c.reader.Stop()
	c.toIdle()
}

// begin moves idle/not-found/error → scanning. Returns false while a scan is
// already in flight or a found result is lingering.
func (c *ScanController) begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateScanning || c.state == StateFound {
		return false
	}
	c.state = StateScanning
	c.uid = ""
	c.artwork = nil
	c.message = ""
	return true
}

// readFailed classifies a reader error. Cancellation resets silently; the
// closed error set maps to user-facing messages without string matching.
func (c *ScanController) readFailed(err error) ScanState {
	if errors.Is(err, ErrScanCancelled) {
		c.toIdle()
		return StateIdle
	}

	var msg string
	switch {
	case errors.Is(err, ErrTagUnsupported):
		msg = "This tag type is not supported."
	case errors.Is(err, ErrScanTimeout):
		msg = "No tag detected. Hold the tag near the reader and try again."
	case errors.Is(err, ErrHardwareUnavailable):
		msg = "NFC is not available on this device."
	default:
		msg = "Scan failed. Please try again."
	}

	c.logger.Warn("tag read failed", "error", err)
	return c.toError("", msg)
}

// lingerThenNavigate holds the found result on screen for the configured
// delay, then fires navigation and resets to idle.
func (c *ScanController) lingerThenNavigate(ctx context.Context, artworkID string) {
	c.mu.Lock()
	delay := c.foundDelay
	c.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			c.toIdle()
			return
		case <-time.After(delay):
		}
	}

	c.navigator.NavigateToArtwork(artworkID)
	c.toIdle()
}

func (c *ScanController) toIdle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateIdle
	c.uid = ""
	c.artwork = nil
	c.message = ""
}

func (c *ScanController) toFound(uid string, artwork *model.Artwork) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateFound
	c.uid = uid
	c.artwork = artwork
}

func (c *ScanController) toNotFound(uid string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateNotFound
	c.uid = uid
	c.artwork = nil
}

func (c *ScanController) toError(uid string, message string) ScanState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateError
	c.uid = uid
	c.artwork = nil
	c.message = message
	return StateError
}
