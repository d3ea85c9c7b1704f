package launch

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Bookmarks maps a single key symbol to a full command line. Loaded once at
// startup and immutable afterwards.
type Bookmarks struct {
	bindings map[rune]string
}

// NewBookmarks builds a table from explicit bindings.
func NewBookmarks(bindings map[rune]string) *Bookmarks {
	b := &Bookmarks{bindings: make(map[rune]string, len(bindings))}
	for k, v := range bindings {
		b.bindings[k] = v
	}
	return b
}

// LoadBookmarks reads a YAML map of single-character keys to commands, e.g.
//
//	f: firefox
//	t: xterm -e top
//
// A missing file yields an empty table. A key that is not exactly one
// character is a configuration error.
func LoadBookmarks(path string) (*Bookmarks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewBookmarks(nil), nil
		}
		return nil, fmt.Errorf("open bookmarks %s: %w", path, err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse bookmarks %s: %w", path, err)
	}

	b := &Bookmarks{bindings: make(map[rune]string, len(raw))}
	for key, cmd := range raw {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) || r == utf8.RuneError {
			return nil, fmt.Errorf("bookmarks %s: key %q must be a single character", path, key)
		}
		b.bindings[r] = cmd
	}
	return b, nil
}

// Lookup returns the command bound to symbol. A miss is not an error; it
// means the key falls through to normal handling.
func (b *Bookmarks) Lookup(symbol rune) (string, bool) {
	cmd, ok := b.bindings[symbol]
	return cmd, ok
}

func (b *Bookmarks) Len() int {
	return len(b.bindings)
}
