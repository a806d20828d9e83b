// Package envcache is the process-wide consumer of the decryption engine.
//
// Applications load their encrypted environment once, then read typed
// values from the cache for the rest of the process lifetime. The cache is
// an explicit state container rather than hidden module-level state, so
// tests can Reset it and reload. Type coercion (bool, int) happens here,
// never in the engine, which always returns raw strings.
package envcache
