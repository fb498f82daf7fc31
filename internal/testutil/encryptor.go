package testutil

import (
	"artag/internal/artag"
	"artag/internal/encryption"
)

// NewTestEncryptor creates a deterministic encryptor for testing.
func NewTestEncryptor() artag.Encryptor {
	return encryption.NewTestEncryptor()
}
