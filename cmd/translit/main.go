// Command translit prints romanized words in Hangul. Words come from the
// arguments, or one text per line from stdin.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/terzeron/rogue-kr/internal/locale"
	"github.com/terzeron/rogue-kr/internal/logger"
	"github.com/terzeron/rogue-kr/internal/transliteration"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()
	logger.Init()
	return run(context.Background(), os.Args[1:], os.Stdin, os.Stdout)
}

type config struct {
	gate    locale.Gate
	explain bool
	workers int
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := ff.NewFlagSet("translit")
	var (
		lang    = fs.StringLong("lang", "", "Locale, e.g. ko_KR.UTF-8; only Korean locales transliterate")
		force   = fs.BoolLong("force", "Transliterate regardless of locale")
		explain = fs.BoolLong("explain", "Print the jamo and romanization of every syllable")
		workers = fs.Int64Long("workers", 4, "Lines converted concurrently when reading stdin")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVars()); err != nil {
		fmt.Fprintf(stdout, "%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	if *workers < 1 {
		return errors.New("workers must be at least 1")
	}

	cfg := config{
		gate:    locale.New(*lang),
		explain: *explain,
		workers: int(*workers),
	}
	if *force {
		cfg.gate = locale.New(locale.Korean)
	}
	slog.Debug("transliterating", "lang", cfg.gate.Lang(), "explain", cfg.explain)

	texts := fs.GetArgs()
	if len(texts) > 0 {
		texts = []string{strings.Join(texts, " ")}
	} else {
		var err error
		if texts, err = readLines(stdin); err != nil {
			return err
		}
	}

	return write(ctx, cfg, texts, stdout)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

func write(ctx context.Context, cfg config, texts []string, w io.Writer) error {
	tr := transliteration.New(cfg.gate)
	out, err := tr.TransliterateAll(ctx, texts, cfg.workers)
	if err != nil {
		return fmt.Errorf("transliterating: %w", err)
	}

	bw := bufio.NewWriter(w)
	for i, line := range out {
		fmt.Fprintln(bw, line)
		if cfg.explain && cfg.gate.Requires() {
			explain(bw, texts[i])
		}
	}
	return bw.Flush()
}

// explain prints one row per syllable: the block, its jamo and its
// romanization.
func explain(w io.Writer, text string) {
	for _, syl := range transliteration.Syllables(text) {
		r := syl.Rune()
		fmt.Fprintf(w, "  %c  %-8s %s\n", r, syl.Jamo(), transliteration.Romanize(string(r)))
	}
}
