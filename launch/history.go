package launch

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// History is the append-only log of submitted commands plus a navigation
// cursor. Entries are oldest first; the cursor sits one past the newest
// while not navigating. Prev clamps at the oldest entry, Next clamps at an
// empty line past the newest, so holding either key is safe.
type History struct {
	path    string
	entries []string
	cursor  int
}

// OpenHistory loads the line log at path. A missing file is an empty
// history, not an error.
func OpenHistory(path string) (*History, error) {
	h := &History{path: path}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			h.entries = append(h.entries, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read history %s: %w", path, err)
	}
	h.cursor = len(h.entries)
	return h, nil
}

// NewHistory builds an in-memory history, oldest first. Saves are not
// persisted anywhere.
func NewHistory(entries ...string) *History {
	return &History{entries: append([]string(nil), entries...), cursor: len(entries)}
}

// Save appends command to the log and the backing file, then parks the
// cursor past the newest entry. Empty commands are never persisted. The
// write is flushed before returning so a failure surfaces immediately.
func (h *History) Save(command string) error {
	defer func() { h.cursor = len(h.entries) }()
	if command == "" {
		return nil
	}
	h.entries = append(h.entries, command)
	if h.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0700); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	f, err := os.OpenFile(h.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("append history %s: %w", h.path, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, command); err != nil {
		return fmt.Errorf("append history %s: %w", h.path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("flush history %s: %w", h.path, err)
	}
	return nil
}

// Prev steps toward the oldest entry and returns it, clamping at the
// oldest. With no entries it returns the empty string.
func (h *History) Prev() string {
	if len(h.entries) == 0 {
		return ""
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor]
}

// Next steps toward the newest entry; past the newest it returns the empty
// string (a fresh buffer) and stays there.
func (h *History) Next() string {
	if h.cursor < len(h.entries) {
		h.cursor++
	}
	if h.cursor < len(h.entries) {
		return h.entries[h.cursor]
	}
	return ""
}

// ResetCursor parks navigation one past the newest entry. Called whenever
// the buffer is edited by typing.
func (h *History) ResetCursor() {
	h.cursor = len(h.entries)
}

func (h *History) Len() int {
	return len(h.entries)
}
