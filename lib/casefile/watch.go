// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package casefile

import (
	"encoding/binary"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

// Watch starts an inotify watcher on the case data file and invokes
// onChange after every completed write to it. The callback runs on the
// watcher goroutine; callers that need event-loop serialization (the
// TUI) should forward it as a message rather than mutating state
// directly. The returned stop function ends the watcher; it is safe to
// call more than once.
//
// The watcher monitors the parent directory for IN_CLOSE_WRITE and
// IN_MOVED_TO events on the target filename, handling both in-place
// writes and the atomic temp-file-and-rename performed by Save. The
// caller sees its own saves too; reloading after one is redundant but
// harmless.
func (f *File) Watch(onChange func()) (func(), error) {
	absolutePath, err := filepath.Abs(f.path)
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: atomic renames create a new
	// inode, so a file-level watch on the old inode misses the
	// replacement.
	directory := filepath.Dir(absolutePath)
	filename := filepath.Base(absolutePath)

	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, err
	}

	if _, err := unix.InotifyAddWatch(fd, directory, unix.IN_CLOSE_WRITE|unix.IN_MOVED_TO); err != nil {
		unix.Close(fd)
		return nil, err
	}

	stopChannel := make(chan struct{})
	go watchLoop(fd, filename, onChange, f.logger, stopChannel)

	stopped := false
	stop := func() {
		if stopped {
			return
		}
		stopped = true
		close(stopChannel)
	}
	return stop, nil
}

// watchLoop polls the inotify fd for changes to the target file and
// fires the callback. Uses poll(2) with a 100ms timeout for responsive
// stop-channel checking. After detecting a change, waits 50ms and
// drains queued events to coalesce rapid writes into one callback.
func watchLoop(fd int, filename string, onChange func(), logger *slog.Logger, stopChannel <-chan struct{}) {
	defer unix.Close(fd)

	buffer := make([]byte, 4096)

	for {
		select {
		case <-stopChannel:
			return
		default:
		}

		pollDescriptors := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		count, err := unix.Poll(pollDescriptors, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			// Fatal poll error — watcher exits and the view degrades
			// to manual reloads.
			logger.Warn("case file watcher stopped", "error", err)
			return
		}
		if count == 0 {
			continue
		}

		bytesRead, err := unix.Read(fd, buffer)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			logger.Warn("case file watcher stopped", "error", err)
			return
		}

		if !inotifyMatchesFile(buffer[:bytesRead], filename) {
			continue
		}

		// Debounce: coalesce rapid writes (a script registering several
		// cases in a row) into a single callback.
		time.Sleep(50 * time.Millisecond)
		drainInotifyEvents(fd, buffer)

		onChange()
	}
}

// inotifyMatchesFile checks whether any inotify event in the buffer
// matches the target filename. Layout from inotify(7):
//
//	struct inotify_event {
//	    int32_t  wd;     // offset 0
//	    uint32_t mask;   // offset 4
//	    uint32_t cookie; // offset 8
//	    uint32_t len;    // offset 12
//	    char     name[]; // offset 16, null-padded to alignment
//	};
func inotifyMatchesFile(buffer []byte, targetFilename string) bool {
	offset := 0
	for offset+unix.SizeofInotifyEvent <= len(buffer) {
		nameLength := int(binary.NativeEndian.Uint32(buffer[offset+12 : offset+16]))
		eventSize := unix.SizeofInotifyEvent + nameLength
		if offset+eventSize > len(buffer) {
			break
		}

		if nameLength > 0 {
			nameBytes := buffer[offset+unix.SizeofInotifyEvent : offset+eventSize]
			if nullTerminatedString(nameBytes) == targetFilename {
				return true
			}
		}

		offset += eventSize
	}
	return false
}

// nullTerminatedString extracts a string from a null-padded byte
// slice, stopping at the first null byte.
func nullTerminatedString(data []byte) string {
	for i, b := range data {
		if b == 0 {
			return string(data[:i])
		}
	}
	return string(data)
}

// drainInotifyEvents reads and discards any pending inotify events.
// Called after the debounce sleep to coalesce rapid writes into a
// single callback.
func drainInotifyEvents(fd int, buffer []byte) {
	for {
		if _, err := unix.Read(fd, buffer); err != nil {
			// EAGAIN means no more events; any other error, stop.
			return
		}
	}
}
