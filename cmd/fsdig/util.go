package main

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

// parseSize parses a byte-size string into bytes.
// Supports plain numbers and humanized forms: "8192", "8K", "1MiB", etc.
func parseSize(s string) (int, error) {
	bytes, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	if bytes == 0 {
		return 0, fmt.Errorf("size must be positive")
	}
	return int(bytes), nil
}

// canonicalize fully resolves a user-supplied root path, following every
// symlink. Used by the commands whose output must be stable under link
// indirection.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("canonicalize path %s: %w", path, err)
	}
	log.WithFields(log.Fields{
		"given":         path,
		"canonicalized": resolved,
	}).Debug("Canonicalized root path.")
	return resolved, nil
}
