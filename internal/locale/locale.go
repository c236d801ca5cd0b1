// Package locale decides whether the running process wants Hangul output.
//
// The decision is a value (Gate) so callers can hold one explicitly. Default
// provides the process-wide gate, computed once from the environment.
package locale

import (
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

const (
	Korean  = "ko"
	English = "en"
)

// Gate reports whether text should be transliterated for the active locale.
type Gate struct {
	lang string
}

// New builds a gate from a POSIX locale string such as "ko_KR.UTF-8".
// Anything that does not start with a lowercase "ko" is treated as English.
func New(lang string) Gate {
	if strings.HasPrefix(lang, Korean) {
		return Gate{lang: Korean}
	}
	return Gate{lang: English}
}

// FromEnv reads LANG through getenv, which is usually os.Getenv.
func FromEnv(getenv func(string) string) Gate {
	return New(getenv("LANG"))
}

// Requires reports whether transliteration should run.
func (g Gate) Requires() bool {
	return g.lang == Korean
}

// Lang returns the two-letter language code, "ko" or "en".
func (g Gate) Lang() string {
	if g.lang == "" {
		return English
	}
	return g.lang
}

// CatalogFile is the message catalog file name for the gate's language.
func (g Gate) CatalogFile() string {
	return g.Lang() + ".msg"
}

var (
	once    sync.Once
	current atomic.Pointer[Gate]
)

// Default returns the process-wide gate. The first call reads LANG; later
// calls return the same value until SetDefault replaces it.
func Default() Gate {
	once.Do(func() {
		g := FromEnv(os.Getenv)
		current.CompareAndSwap(nil, &g)
	})
	return *current.Load()
}

// SetDefault re-initialises the process-wide gate.
func SetDefault(g Gate) {
	current.Store(&g)
}
