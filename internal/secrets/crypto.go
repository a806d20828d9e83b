package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/crypto/scrypt"

	serrors "github.com/tovesk/envseal/internal/errors"
	"github.com/tovesk/envseal/internal/pathsafe"
)

const (
	saltSize  = 16
	nonceSize = 16
	tagSize   = 16
	keySize   = 32 // AES-256

	// scrypt cost parameters. N is deliberately high so brute-forcing a
	// passphrase from a leaked container stays expensive. Changing these
	// breaks decryption of existing containers, so they are pinned until
	// the format version moves.
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// DefaultKeyVar is the environment variable consulted for the passphrase
// when the caller does not name one.
const DefaultKeyVar = "ENV_CRYPTO_KEY"

// Encrypt reads the plaintext file at sourcePath and writes an encrypted
// container to outputPath, overwriting it if it already exists.
//
// The passphrase is resolved from the environment variable named by keyVar
// (DefaultKeyVar when empty); the engine never accepts it as a direct
// argument. Both paths are validated against the working directory before
// any file I/O.
//
// Every invocation draws a fresh random salt and nonce, so encrypting the
// same plaintext twice produces different containers. The output file is
// written with owner-only permissions, and only after the full ciphertext
// and authentication tag have been computed.
//
// Returns ErrKeyNotFound if the passphrase variable is unset or empty and
// ErrInvalidPath if either path escapes the working directory.
func Encrypt(sourcePath, outputPath, keyVar string) error {
	passphrase, err := resolvePassphrase(keyVar)
	if err != nil {
		return err
	}
	defer zeroBytes(passphrase)

	src, err := pathsafe.Resolve(sourcePath)
	if err != nil {
		return err
	}
	dst, err := pathsafe.Resolve(outputPath)
	if err != nil {
		return err
	}

	plaintext, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read plaintext file at %s: %w", sourcePath, err)
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	defer zeroBytes(salt)

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return err
	}
	defer zeroBytes(key)

	aead, err := newAEAD(key)
	if err != nil {
		return fmt.Errorf("%w: %v", serrors.ErrEncryptFailed, err)
	}

	// Seal appends the 16-byte GCM tag to the ciphertext; the container
	// format stores the two separately.
	sealed := aead.Seal(nil, nonce, plaintext, nil)
	content, authTag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	raw, err := marshalContainer(salt, nonce, content, authTag)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dst, raw, 0600); err != nil {
		return fmt.Errorf("failed to write container to %s: %w", outputPath, err)
	}

	return nil
}

// Decrypt reads the encrypted container at sourcePath, authenticates and
// decrypts it, and parses the recovered plaintext into a key-value mapping.
//
// The passphrase is resolved the same way as in Encrypt. The GCM tag check
// is the sole integrity check: any modification of the ciphertext or tag,
// and any wrong passphrase, is rejected with ErrDecryptionFailed rather
// than producing silently wrong plaintext.
func Decrypt(sourcePath, keyVar string) (map[string]string, error) {
	passphrase, err := resolvePassphrase(keyVar)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(passphrase)

	src, err := pathsafe.Resolve(sourcePath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read container at %s: %w", sourcePath, err)
	}

	c, err := parseContainer(raw)
	if err != nil {
		return nil, err
	}

	key, err := deriveKey(passphrase, c.salt)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(key)

	aead, err := newAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", serrors.ErrDecryptionFailed, err)
	}

	plaintext, err := aead.Open(nil, c.iv, append(c.content, c.authTag...), nil)
	if err != nil {
		return nil, serrors.ErrDecryptionFailed
	}

	return ParseEnv(string(plaintext)), nil
}

// resolvePassphrase looks up the passphrase from the named environment
// variable. Returns ErrKeyNotFound when the variable is unset or empty;
// an empty passphrase is never accepted as a valid key.
func resolvePassphrase(keyVar string) ([]byte, error) {
	if keyVar == "" {
		keyVar = DefaultKeyVar
	}
	passphrase := os.Getenv(keyVar)
	if passphrase == "" {
		return nil, fmt.Errorf("variable %s is unset or empty: %w", keyVar, serrors.ErrKeyNotFound)
	}
	return []byte(passphrase), nil
}

// deriveKey stretches (passphrase, salt) into a 32-byte AES key using
// scrypt. The derivation is deterministic for a given passphrase and salt;
// the per-container random salt is what makes encryption non-deterministic.
func deriveKey(passphrase, salt []byte) ([]byte, error) {
	key, err := scrypt.Key(passphrase, salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to derive encryption key: %w", err)
	}
	return key, nil
}

// newAEAD builds the AES-256-GCM transform over a derived key. The 16-byte
// nonce size matches the container's iv field.
func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithNonceSize(block, nonceSize)
}

// zeroBytes overwrites b so key material does not linger in freed process
// memory. Callers defer this on every buffer holding secrets.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
