package launch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Completion cycles through corpus entries that share the prefix captured
// when the session opened. A session stays open across consecutive Next
// calls and is closed by Reset; any other edit must Reset so the next
// Next recaptures the prefix from the fresh buffer text.
type Completion struct {
	corpus  []string // sorted, deduped
	open    bool
	prefix  string
	matches []string
	idx     int
}

// NewCompletion builds an engine over a copy of corpus, sorted and deduped.
func NewCompletion(corpus []string) *Completion {
	c := &Completion{corpus: append([]string(nil), corpus...)}
	sort.Strings(c.corpus)
	c.corpus = dedupSorted(c.corpus)
	return c
}

// Next returns the suggestion for current. Opening a session captures
// current as the prefix and offers the first match; while the session is
// open, each call advances cyclically through the same match set. With no
// match, current comes back unchanged.
func (c *Completion) Next(current string) string {
	if !c.open {
		c.open = true
		c.prefix = current
		c.matches = c.matchPrefix(current)
		c.idx = 0
	} else if len(c.matches) > 0 {
		c.idx = (c.idx + 1) % len(c.matches)
	}
	if len(c.matches) == 0 {
		return current
	}
	return c.matches[c.idx]
}

// Reset closes any open session.
func (c *Completion) Reset() {
	c.open = false
	c.prefix = ""
	c.matches = nil
	c.idx = 0
}

func (c *Completion) matchPrefix(prefix string) []string {
	// Corpus is sorted, so the match set is one contiguous run.
	start := sort.SearchStrings(c.corpus, prefix)
	var out []string
	for i := start; i < len(c.corpus) && strings.HasPrefix(c.corpus[i], prefix); i++ {
		out = append(out, c.corpus[i])
	}
	return out
}

func dedupSorted(s []string) []string {
	out := s[:0]
	for i, v := range s {
		if i == 0 || v != s[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// PathCorpus lists the executable names found on $PATH.
func PathCorpus() []string {
	var names []string
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		ents, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, ent := range ents {
			if ent.IsDir() {
				continue
			}
			info, err := ent.Info()
			if err != nil || info.Mode()&0111 == 0 {
				continue
			}
			names = append(names, ent.Name())
		}
	}
	sort.Strings(names)
	return dedupSorted(names)
}
