package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/terzeron/rogue-kr/internal/locale"
)

// DefaultDir is searched after any directories passed to Load.
const DefaultDir = "/usr/local/share/rogue"

//go:embed locales/*.msg
var embedded embed.FS

// Open parses the catalog file at path. A missing file yields an error
// wrapping ErrNotFound.
func Open(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("opening %s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Load finds the catalog file for gate's language in dirs, then DefaultDir,
// then falls back to the built-in catalog. Only read or parse failures of a
// file that exists are errors.
func Load(gate locale.Gate, log *slog.Logger, dirs ...string) (*Catalog, error) {
	name := gate.CatalogFile()
	for _, dir := range append(lo.Compact(dirs), DefaultDir) {
		path := filepath.Join(dir, name)
		c, err := Open(path)
		if errors.Is(err, ErrNotFound) {
			log.Debug("catalog file not found", "path", path)
			continue
		}
		if err != nil {
			return nil, err
		}
		log.Debug("loaded catalog", "path", path, "entries", c.Len())
		return c, nil
	}

	c, err := Builtin(gate.Lang())
	if err != nil {
		return nil, err
	}
	log.Debug("using built-in catalog", "lang", gate.Lang(), "entries", c.Len())
	return c, nil
}

// Builtin returns the catalog compiled into the binary for lang.
func Builtin(lang string) (*Catalog, error) {
	f, err := embedded.Open("locales/" + lang + ".msg")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("built-in catalog %q: %w", lang, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// BuiltinLocales lists the languages that have a built-in catalog.
func BuiltinLocales() []string {
	entries, _ := fs.Glob(embedded, "locales/*.msg")
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		base := filepath.Base(e)
		langs = append(langs, base[:len(base)-len(filepath.Ext(base))])
	}
	return langs
}
