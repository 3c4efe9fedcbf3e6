// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

// Package casefile persists the case collection as a single JSON file.
// The file holds the entire collection as an array of case objects and
// is rewritten whole on every save: write to a temporary file in the
// same directory, fsync, rename into place. Readers never see a
// partial write — either the new collection landed or the prior file
// is intact.
//
// Loading is deliberately forgiving. A missing file is the normal
// first-run state and yields an empty collection. A corrupt or
// non-array file also yields an empty collection, with a logged
// warning; startup is never blocked by bad data on disk.
//
// A flock sidecar (<path>.lock) guards against a one-shot CLI command
// and a running TUI writing the file at the same moment.
package casefile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/rahul5Q/judicial-system/lib/docket"
)

// lockTimeout bounds how long Save and Load wait for the cross-process
// file lock before giving up. Contention is rare (a second casetrack
// process on the same data file) and writes are small, so a short
// timeout is enough.
const (
	lockTimeout       = 5 * time.Second
	lockRetryInterval = 25 * time.Millisecond
)

// File is the persistence adapter for one case data file.
type File struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// New creates an adapter for the data file at path. The logger receives
// warnings about recoverable anomalies (corrupt data, duplicate IDs);
// it is never used for fatal conditions.
func New(path string, logger *slog.Logger) *File {
	return &File{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logger,
	}
}

// Path returns the data file path.
func (f *File) Path() string {
	return f.path
}

// Save writes the entire collection to the data file, replacing any
// prior contents. The parent directory is created if needed. The write
// is atomic: a failure at any step leaves the previous file untouched.
func (f *File) Save(cases []docket.Case) error {
	unlock, err := f.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	// Persist an empty collection as an empty array, not JSON null.
	if cases == nil {
		cases = []docket.Case{}
	}
	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding case collection: %w", err)
	}
	data = append(data, '\n')

	temporaryPath := f.path + ".tmp"
	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("creating temporary case file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary case file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary case file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary case file: %w", err)
	}

	if err := os.Rename(temporaryPath, f.path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming case file into place: %w", err)
	}

	// Sync the parent directory so the rename survives power loss.
	if directory, err := os.Open(filepath.Dir(f.path)); err == nil {
		directory.Sync()
		directory.Close()
	}

	return nil
}

// Load reads the persisted collection. A missing or empty file yields
// an empty collection and no error. Unparseable content yields an
// empty collection, no error, and a logged warning: corrupt data is a
// recoverable condition, not a startup failure. Only environmental
// problems (permissions, lock timeout) are reported as errors.
func (f *File) Load() ([]docket.Case, error) {
	unlock, err := f.acquireLock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading case file %s: %w", f.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var cases []docket.Case
	if err := json.Unmarshal(data, &cases); err != nil {
		f.logger.Warn("case data file is not a valid case array; starting empty",
			"path", f.path, "error", err)
		return nil, nil
	}
	return cases, nil
}

// acquireLock takes the cross-process lock, returning the release
// function. Both Save and Load hold it for the duration of the
// operation so a concurrent process never reads a half-renamed state
// or interleaves writes.
//
// The lock file lives next to the data file, so on a fresh install the
// data directory must exist before the lock file can be opened.
func (f *File) acquireLock() (func(), error) {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := f.lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("locking case file %s: %w", f.path, err)
	}
	if !locked {
		return nil, fmt.Errorf("case file %s is locked by another process", f.path)
	}
	return func() { f.lock.Unlock() }, nil
}
