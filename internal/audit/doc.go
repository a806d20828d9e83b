// Package audit provides best-effort JSONL audit logging for encrypt and
// decrypt operations.
//
// Audit logging is opt-in: the workflows layer only calls Log when the
// settings file names an audit_log path. Entries record what happened and
// where, never key material or plaintext values.
package audit
