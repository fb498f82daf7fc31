package artag

import "io"

// Encryptor seals small local secrets at rest, such as the session file.
// Keys are generated once by Setup and live next to the config.
type Encryptor interface {
	// Setup generates a fresh key pair, replacing any existing one.
	Setup() error

	// IsConfigured returns true if the key material exists.
	IsConfigured() bool

	// Encrypt reads plaintext from r and writes ciphertext to w.
	Encrypt(r io.Reader, w io.Writer) error

	// Decrypt reads ciphertext from r and writes plaintext to w.
	Decrypt(r io.Reader, w io.Writer) error
}
