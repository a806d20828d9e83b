// Package pathsafe constrains caller-supplied file paths to the current
// working directory tree.
//
// Source and destination paths for encrypt/decrypt are attacker-reachable in
// hostile deployments (for example, config paths supplied by an external
// system). Resolving and rejecting traversal before any file I/O prevents
// arbitrary file read/write outside the trusted subtree.
//
// Validation is lexical only; existence checks belong to the callers that
// actually open the files.
package pathsafe
