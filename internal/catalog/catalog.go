// Package catalog holds the KEY=VALUE message catalogs that localise names
// and interface strings.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	MaxKeyLen   = 63
	MaxValueLen = 255
	MaxEntries  = 512
)

// ErrNotFound is returned when no catalog source exists for a locale.
var ErrNotFound = errors.New("catalog: not found")

// Catalog maps message keys to localised text. It is read-only after
// construction and safe for concurrent use.
type Catalog struct {
	entries map[string]string
	lines   int
}

// Empty returns a catalog with no entries; every Get returns its key.
func Empty() *Catalog {
	return &Catalog{entries: map[string]string{}}
}

// Parse reads KEY=VALUE lines. Blank lines, lines starting with '#' and lines
// without '=' are skipped. Keys and values longer than the limits are cut.
// A repeated key keeps its first value but still takes one of the MaxEntries
// slots; lines past the last slot are ignored.
func Parse(r io.Reader) (*Catalog, error) {
	c := Empty()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" || line[0] == '#' {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if !c.set(key, value) {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return c, nil
}

// set stores one entry and reports whether the catalog has room for more.
func (c *Catalog) set(key, value string) bool {
	if c.lines >= MaxEntries {
		return false
	}
	c.lines++
	key = truncate(key, MaxKeyLen)
	if _, exists := c.entries[key]; !exists {
		c.entries[key] = truncate(value, MaxValueLen)
	}
	return true
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func (c *Catalog) Lookup(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.entries[key]
	return v, ok
}

// Get returns the message for key, or key itself when there is none. An empty
// key yields "".
func (c *Catalog) Get(key string) string {
	if key == "" {
		return ""
	}
	if v, ok := c.Lookup(key); ok {
		return v
	}
	return key
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Keys returns all keys in sorted order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := lo.Keys(c.entries)
	slices.Sort(keys)
	return keys
}

// WithPrefix returns the sorted keys starting with prefix, e.g. "MSG_COLOR_".
func (c *Catalog) WithPrefix(prefix string) []string {
	return lo.Filter(c.Keys(), func(k string, _ int) bool {
		return strings.HasPrefix(k, prefix)
	})
}

// WriteTo writes the catalog as sorted KEY=VALUE lines that Parse reads back.
func (c *Catalog) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, k := range c.Keys() {
		n, err := fmt.Fprintf(bw, "%s=%s\n", k, c.entries[k])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}
