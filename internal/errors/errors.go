package errors

import "errors"

// Passphrase errors indicate the encryption passphrase could not be resolved.
var (
	// ErrKeyNotFound indicates the passphrase environment variable is absent or empty.
	ErrKeyNotFound = errors.New("encryption key not found in environment")
)

// Path errors indicate a caller-supplied path failed validation.
var (
	// ErrInvalidPath indicates the path resolves outside the working directory tree.
	ErrInvalidPath = errors.New("path escapes the working directory")
)

// Container errors indicate issues reading the encrypted container file.
var (
	// ErrMalformedContainer indicates the container file is not parseable at all.
	ErrMalformedContainer = errors.New("encrypted container is malformed")

	// ErrInvalidFormat indicates the container parsed but is missing required fields.
	ErrInvalidFormat = errors.New("encrypted container is missing required fields")
)

// Cryptographic errors indicate failures during encryption or decryption operations.
var (
	// ErrDecryptionFailed indicates authenticated decryption was rejected.
	// A wrong passphrase, corrupted ciphertext, and a tampered tag are
	// indistinguishable at this layer.
	ErrDecryptionFailed = errors.New("decryption failed: authentication tag mismatch")

	// ErrEncryptFailed indicates file encryption failed.
	ErrEncryptFailed = errors.New("failed to encrypt file")
)
