// Package configs loads and saves envseal's per-directory settings.
//
// Settings live in an optional .envseal.toml next to the files being
// protected. Precedence is: command-line arguments, then the settings
// file, then built-in defaults (.env / .env.encrypted / ENV_CRYPTO_KEY).
package configs
