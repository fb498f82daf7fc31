package model

import (
	"database/sql"
	"time"
)

// Artwork status values. The status is flipped by certificate issue/revoke
// call sites, not by a database trigger.
const (
	StatusVerified   = "verified"
	StatusUnverified = "unverified"
)

// UserProfile represents a registered account.
type UserProfile struct {
	ID           string // UUID
	Username     string // Unique handle
	FullName     string
	Bio          string
	AvatarURL    string
	PasswordHash string // bcrypt
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Artwork represents a registered piece owned by exactly one profile.
type Artwork struct {
	ID         string // UUID
	OwnerID    string // Foreign key to UserProfile
	Title      string
	Artist     string
	Year       string
	Medium     string
	Dimensions string
	Status     string // "verified" or "unverified"
	ImageURL   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Certificate represents a certificate of authenticity for an artwork.
type Certificate struct {
	ID             string // UUID
	CertificateID  string // Display string, e.g. "COA-2026-1A2B3C4D"
	ArtworkID      string // Foreign key to Artwork
	QRCodeURL      string
	BlockchainHash string // Non-cryptographic placeholder
	GeneratedAt    time.Time
}

// NFCTag represents a hardware tag known to the registry.
// The UID is hardware-assigned and immutable; tags are never deleted,
// only bound and unbound.
type NFCTag struct {
	UID       string // Uppercase hex, even length
	IsBound   bool
	ArtworkID sql.NullString // Set while bound
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScanEntry is a device-local record of a resolved scan.
type ScanEntry struct {
	ArtworkTitle string    `json:"artwork_title"`
	ArtworkID    string    `json:"artwork_id"`
	Timestamp    time.Time `json:"timestamp"`
}
