// Command preview is a live terminal preview of Hangul transliteration.
// On first run it offers to write a .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/terzeron/rogue-kr/internal/catalog"
	"github.com/terzeron/rogue-kr/internal/envsetup"
	"github.com/terzeron/rogue-kr/internal/locale"
	"github.com/terzeron/rogue-kr/internal/logger"
	"github.com/terzeron/rogue-kr/internal/preview"
	"github.com/terzeron/rogue-kr/internal/storage"
)

const envFile = ".env"

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

type options struct {
	setup       bool
	lang        string
	databaseURL string
	catalogDir  string
	seed        int64
}

func parseFlags(args []string) (options, error) {
	fs := ff.NewFlagSet("preview")
	var (
		setup       = fs.BoolLong("setup", "Run the .env wizard even if .env exists")
		lang        = fs.StringLong("lang", "", "Locale, e.g. ko_KR.UTF-8")
		databaseURL = fs.StringLong("database-url", "", "Read the catalog from this database instead of files")
		catalogDir  = fs.StringLong("catalog-dir", "", "Directory holding ko.msg and en.msg")
		seed        = fs.Int64Long("seed", 0, "Seed for random scroll titles; 0 picks one")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return options{}, fmt.Errorf("parsing flags: %w", err)
	}
	return options{
		setup:       *setup,
		lang:        *lang,
		databaseURL: *databaseURL,
		catalogDir:  *catalogDir,
		seed:        *seed,
	}, nil
}

func mainE() error {
	_ = godotenv.Load(envFile)

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}

	if opts.setup || envsetup.NeedsSetup(envFile) {
		ok, err := envsetup.Run(envFile)
		if err != nil {
			return fmt.Errorf("running setup: %w", err)
		}
		if ok {
			// pick up what the wizard wrote
			_ = godotenv.Overload(envFile)
			if opts, err = parseFlags(os.Args[1:]); err != nil {
				return err
			}
		}
	}

	log := logger.New()
	ctx := context.Background()
	gate := locale.New(opts.lang)

	cat, err := loadCatalog(ctx, gate, opts.databaseURL, opts.catalogDir, log)
	if err != nil {
		return err
	}
	log.Debug("catalog ready", "lang", gate.Lang(), "entries", cat.Len())

	cfg := preview.Config{
		Gate:    gate,
		Catalog: cat,
		Load: func(g locale.Gate) (*catalog.Catalog, error) {
			return loadCatalog(ctx, g, opts.databaseURL, opts.catalogDir, log)
		},
	}
	if opts.seed != 0 {
		cfg.Rand = rand.New(rand.NewPCG(uint64(opts.seed), uint64(opts.seed)))
	}
	return preview.Run(cfg)
}

// loadCatalog prefers the database when one is configured and has rows for
// the locale, then catalog files, then the built-in catalog.
func loadCatalog(ctx context.Context, gate locale.Gate, databaseURL, dir string, log *slog.Logger) (*catalog.Catalog, error) {
	if databaseURL != "" {
		repo, err := storage.Open(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		defer repo.Close()

		c, err := catalog.FromRepository(ctx, repo, gate.Lang())
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
		log.Warn("no stored catalog, falling back to files", "lang", gate.Lang())
	}
	return catalog.Load(gate, log, dir)
}
