package workflows

import (
	"github.com/tovesk/envseal/internal/audit"
	"github.com/tovesk/envseal/internal/configs"
	"github.com/tovesk/envseal/internal/pathsafe"
	"github.com/tovesk/envseal/internal/secrets"
)

// EncryptOptions configures the encrypt workflow. Empty fields fall back to
// the settings file, then to built-in defaults.
type EncryptOptions struct {
	// SourcePath is the plaintext dotenv file to encrypt.
	SourcePath string

	// OutputPath is where the encrypted container is written.
	OutputPath string

	// KeyVar names the environment variable holding the passphrase.
	KeyVar string
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// SourcePath is the plaintext file that was encrypted.
	SourcePath string

	// OutputPath is the container file that was written.
	OutputPath string

	// KeyVar is the environment variable the passphrase came from.
	KeyVar string
}

// Encrypt encrypts a dotenv file into an encrypted container.
//
// Returns ErrKeyNotFound if the passphrase variable is unset or empty.
// Returns ErrInvalidPath if either path escapes the working directory.
func Encrypt(opts EncryptOptions) (*EncryptResult, error) {
	settings, err := configs.LoadSettings()
	if err != nil {
		return nil, err
	}

	source := opts.SourcePath
	if source == "" {
		source = settings.Source
	}
	output := opts.OutputPath
	if output == "" {
		output = settings.Output
	}
	keyVar := opts.KeyVar
	if keyVar == "" {
		keyVar = settings.KeyVar
	}

	if err := secrets.Encrypt(source, output, keyVar); err != nil {
		return nil, err
	}

	logAudit(settings, audit.Entry{Operation: "encrypt", Source: source, Output: output})

	return &EncryptResult{
		SourcePath: source,
		OutputPath: output,
		KeyVar:     keyVar,
	}, nil
}

// logAudit appends an audit entry when the settings enable audit logging.
// The log path goes through the same validation as every other path.
func logAudit(settings *configs.Settings, entry audit.Entry) {
	if settings.AuditLog == "" {
		return
	}
	logPath, err := pathsafe.Resolve(settings.AuditLog)
	if err != nil {
		return
	}
	audit.Log(logPath, entry)
}
