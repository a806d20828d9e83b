// Package secrets implements the envseal encryption engine.
//
// The engine turns a plaintext dotenv file into a self-describing encrypted
// container and back. A 32-byte key is derived from an environment-supplied
// passphrase with scrypt, the payload is sealed with AES-256-GCM, and the
// result is persisted as a flat JSON record with hex-encoded binary fields:
//
//	{ "version": "1.0.0", "salt": "...", "iv": "...",
//	  "content": "...", "authTag": "..." }
//
// Each encryption draws a fresh salt and nonce, so containers are never
// deterministic. Decryption authenticates before anything else: a wrong
// passphrase or any tampering with the ciphertext or tag fails with
// ErrDecryptionFailed.
//
// The engine is stateless; every call is independent and all key material
// is zeroed before the call returns, on success and failure alike. Callers
// are responsible for not racing two writers on the same output path.
package secrets
