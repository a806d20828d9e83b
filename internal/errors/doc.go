// Package errors provides typed error values for the envseal engine.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Passphrase errors: The key variable is unset or empty (ErrKeyNotFound)
//   - Path errors: A path escapes the working tree (ErrInvalidPath)
//   - Container errors: The encrypted file is unreadable (ErrMalformedContainer,
//     ErrInvalidFormat)
//   - Crypto errors: Encryption/decryption failures (ErrDecryptionFailed)
//
// # Usage
//
// Return errors from internal packages:
//
//	if passphrase == "" {
//	    return nil, errors.ErrKeyNotFound
//	}
//
// Handle errors in the CLI layer:
//
//	vars, err := workflows.Decrypt(opts)
//	if errors.Is(err, serrors.ErrDecryptionFailed) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading container %s: %w", path, errors.ErrMalformedContainer)
package errors
