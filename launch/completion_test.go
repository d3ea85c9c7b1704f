package launch

import "testing"

func TestCompletionCyclesAndWraps(t *testing.T) {
	c := NewCompletion([]string{"lsof", "ls", "cat"})

	if got := c.Next("ls"); got != "ls" {
		t.Fatalf("first match: want %q, got %q", "ls", got)
	}
	if got := c.Next("ls"); got != "lsof" {
		t.Fatalf("second match: want %q, got %q", "lsof", got)
	}
	if got := c.Next("lsof"); got != "ls" {
		t.Fatalf("wrap: want %q, got %q", "ls", got)
	}
}

func TestCompletionFullCycleLength(t *testing.T) {
	corpus := []string{"git", "gi", "gimp", "go", "cat"}
	c := NewCompletion(corpus)

	// Three corpus entries share the prefix "gi"; the first suggestion must
	// come back after exactly three calls.
	first := c.Next("gi")
	second := c.Next(first)
	third := c.Next(second)
	again := c.Next(third)
	if first != "gi" || second != "gimp" || third != "git" {
		t.Fatalf("cycle order: got %q %q %q", first, second, third)
	}
	if again != first {
		t.Fatalf("cycle of 3 should wrap to %q, got %q", first, again)
	}
}

func TestCompletionNoMatchReturnsInput(t *testing.T) {
	c := NewCompletion([]string{"ls", "cat"})
	if got := c.Next("xyz"); got != "xyz" {
		t.Fatalf("no match: want input back, got %q", got)
	}
	// Still no match on the next press of the same session.
	if got := c.Next("xyz"); got != "xyz" {
		t.Fatalf("no match repeat: want input back, got %q", got)
	}
}

func TestCompletionResetRecapturesPrefix(t *testing.T) {
	c := NewCompletion([]string{"ls", "lsof", "lsblk"})

	if got := c.Next("ls"); got != "ls" {
		t.Fatalf("want %q, got %q", "ls", got)
	}
	if got := c.Next("ls"); got != "lsblk" {
		t.Fatalf("want %q, got %q", "lsblk", got)
	}

	// Any other edit closes the session; the next call starts over from the
	// new buffer text.
	c.Reset()
	if got := c.Next("lso"); got != "lsof" {
		t.Fatalf("after reset: want %q, got %q", "lsof", got)
	}
}

func TestCompletionIsCaseSensitive(t *testing.T) {
	c := NewCompletion([]string{"Xorg", "xterm"})
	if got := c.Next("X"); got != "Xorg" {
		t.Fatalf("want %q, got %q", "Xorg", got)
	}
	c.Reset()
	if got := c.Next("xo"); got != "xo" {
		t.Fatalf("case-sensitive miss: want input back, got %q", got)
	}
}

func TestCompletionEmptyPrefixOffersWholeCorpus(t *testing.T) {
	c := NewCompletion([]string{"b", "a"})
	if got := c.Next(""); got != "a" {
		t.Fatalf("want %q, got %q", "a", got)
	}
	if got := c.Next("a"); got != "b" {
		t.Fatalf("want %q, got %q", "b", got)
	}
}

func TestCompletionDedupesCorpus(t *testing.T) {
	c := NewCompletion([]string{"ls", "ls", "ls"})
	if got := c.Next("ls"); got != "ls" {
		t.Fatalf("want %q, got %q", "ls", got)
	}
	if got := c.Next("ls"); got != "ls" {
		t.Fatalf("deduped corpus should keep cycling %q, got %q", "ls", got)
	}
	if len(c.matches) != 1 {
		t.Fatalf("want 1 deduped match, got %d", len(c.matches))
	}
}
