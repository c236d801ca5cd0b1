// Command msgcat manages message catalogs stored in SQLite or PostgreSQL.
//
//	msgcat --import ko.msg --locale ko
//	msgcat --locale ko --get MSG_WEAPON_MACE
//	msgcat --locale ko --export > ko.msg
//	msgcat --list
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/terzeron/rogue-kr/internal/catalog"
	"github.com/terzeron/rogue-kr/internal/db"
	"github.com/terzeron/rogue-kr/internal/logger"
	"github.com/terzeron/rogue-kr/internal/storage"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()
	return run(context.Background(), os.Args[1:], os.Stdout, logger.New())
}

func run(ctx context.Context, args []string, stdout io.Writer, log *slog.Logger) error {
	fs := ff.NewFlagSet("msgcat")
	var (
		databaseURL = fs.StringLong("database-url", "rogue.db", "SQLite path or PostgreSQL connection URL")
		importPath  = fs.StringLong("import", "", "Catalog file to store, replacing the locale's messages")
		builtin     = fs.BoolLong("import-builtin", "Store the built-in catalog for --locale")
		lang        = fs.StringLong("locale", "", "Catalog locale, e.g. ko")
		get         = fs.StringLong("get", "", "Print one message")
		export      = fs.BoolLong("export", "Print the locale's catalog as KEY=VALUE lines")
		list        = fs.BoolLong("list", "Print stored locales and their message counts")
		remove      = fs.BoolLong("delete", "Delete the locale's messages")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVars()); err != nil {
		fmt.Fprintf(stdout, "%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	needsLocale := *importPath != "" || *builtin || *get != "" || *export || *remove
	if needsLocale && *lang == "" {
		return errors.New("locale is required")
	}

	repo, err := storage.Open(ctx, *databaseURL)
	if err != nil {
		return err
	}
	defer repo.Close()

	switch {
	case *importPath != "":
		c, err := catalog.Open(*importPath)
		if err != nil {
			return err
		}
		return store(ctx, repo, *lang, c, stdout, log)
	case *builtin:
		c, err := catalog.Builtin(*lang)
		if err != nil {
			return err
		}
		return store(ctx, repo, *lang, c, stdout, log)
	case *get != "":
		c, err := catalog.FromRepository(ctx, repo, *lang)
		if err != nil {
			return err
		}
		v, ok := c.Lookup(*get)
		if !ok {
			return fmt.Errorf("%s/%s: %w", *lang, *get, db.ErrNoRows)
		}
		fmt.Fprintln(stdout, v)
		return nil
	case *export:
		c, err := catalog.FromRepository(ctx, repo, *lang)
		if err != nil {
			return err
		}
		_, err = c.WriteTo(stdout)
		return err
	case *remove:
		n, err := repo.DeleteLocale(ctx, *lang)
		if err != nil {
			return fmt.Errorf("deleting %s: %w", *lang, err)
		}
		log.Info("deleted locale", "locale", *lang, "messages", n)
		return nil
	case *list:
		return listLocales(ctx, repo, stdout)
	}

	fmt.Fprintf(stdout, "%s\n", ffhelp.Flags(fs))
	return errors.New("nothing to do")
}

func store(ctx context.Context, repo db.Repository, lang string, c *catalog.Catalog, stdout io.Writer, log *slog.Logger) error {
	n, err := catalog.Store(ctx, repo, lang, c)
	if err != nil {
		return fmt.Errorf("storing %s: %w", lang, err)
	}
	log.Info("stored catalog", "locale", lang, "messages", n)
	fmt.Fprintf(stdout, "%s: %d messages\n", lang, n)
	return nil
}

func listLocales(ctx context.Context, repo db.Repository, stdout io.Writer) error {
	locales, err := repo.ListLocales(ctx)
	if err != nil {
		return fmt.Errorf("listing locales: %w", err)
	}
	for _, l := range locales {
		messages, err := repo.ListMessages(ctx, l)
		if err != nil {
			return fmt.Errorf("listing %s: %w", l, err)
		}
		fmt.Fprintf(stdout, "%s\t%d\n", l, len(messages))
	}
	return nil
}
