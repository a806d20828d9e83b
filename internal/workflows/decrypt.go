package workflows

import (
	"fmt"
	"os"

	"github.com/tovesk/envseal/internal/audit"
	"github.com/tovesk/envseal/internal/configs"
	"github.com/tovesk/envseal/internal/pathsafe"
	"github.com/tovesk/envseal/internal/secrets"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// SourcePath is the encrypted container to read. Defaults to the
	// settings' output path, since that is where encrypt writes.
	SourcePath string

	// OutputPath, when set, receives the decrypted variables re-serialized
	// as key=value lines. When empty, nothing is written to disk.
	OutputPath string

	// KeyVar names the environment variable holding the passphrase.
	KeyVar string
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	// SourcePath is the container file that was decrypted.
	SourcePath string

	// OutputPath is the plaintext file that was written, if any.
	OutputPath string

	// Vars is the decrypted key-value mapping.
	Vars map[string]string
}

// Decrypt decrypts an encrypted container back into a key-value mapping,
// optionally re-serializing it to a plaintext file.
//
// Returns ErrKeyNotFound if the passphrase variable is unset or empty.
// Returns ErrInvalidPath if a path escapes the working directory.
// Returns ErrMalformedContainer or ErrInvalidFormat if the container file
// cannot be read as the expected format.
// Returns ErrDecryptionFailed on a wrong passphrase or tampered container.
func Decrypt(opts DecryptOptions) (*DecryptResult, error) {
	settings, err := configs.LoadSettings()
	if err != nil {
		return nil, err
	}

	source := opts.SourcePath
	if source == "" {
		source = settings.Output
	}
	keyVar := opts.KeyVar
	if keyVar == "" {
		keyVar = settings.KeyVar
	}

	vars, err := secrets.Decrypt(source, keyVar)
	if err != nil {
		return nil, err
	}

	if opts.OutputPath != "" {
		dst, err := pathsafe.Resolve(opts.OutputPath)
		if err != nil {
			return nil, err
		}
		// Decrypted secrets stay owner-only, same as the container.
		if err := os.WriteFile(dst, []byte(secrets.SerializeEnv(vars)), 0600); err != nil {
			return nil, fmt.Errorf("failed to write decrypted file to %s: %w", opts.OutputPath, err)
		}
	}

	logAudit(settings, audit.Entry{Operation: "decrypt", Source: source, Output: opts.OutputPath})

	return &DecryptResult{
		SourcePath: source,
		OutputPath: opts.OutputPath,
		Vars:       vars,
	}, nil
}
