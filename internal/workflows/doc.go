// Package workflows contains the business logic behind envseal's CLI
// commands.
//
// Each workflow takes an Options struct, resolves defaults from the
// settings file, drives the encryption engine, and returns a Result struct.
// Commands stay thin: they translate flags and arguments into Options and
// Results into console output.
package workflows
