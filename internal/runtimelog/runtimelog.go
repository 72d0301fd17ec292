// Package runtimelog points the standard logger at a per-binary file under
// ~/.local/state/cloudguard so the TUI's alternate screen stays clean.
package runtimelog

import (
	"log"
	"os"
	"path/filepath"
)

// Configure redirects the standard logger to <state dir>/<name>.log and
// returns a cleanup func. It falls back to stderr when the file cannot be
// opened.
func Configure(name string) func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	path, err := Path(name)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}
}

// Path returns the log file path for a binary.
func Path(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", "cloudguard", name+".log"), nil
}
