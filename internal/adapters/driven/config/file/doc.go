// Package file provides file-based implementations of driven port interfaces.
//
// ConfigStore keeps settings in a TOML file (by default ~/.radix/config.toml)
// and can watch that file for edits made outside the running process.
package file
