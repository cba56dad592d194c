// Package cli is the line-oriented command shared by norm, tl and bbn.
// Each command reads text line by line, converts every line independently
// and writes one output line per input line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/samber/lo"

	"github.com/jusunglee/baybayin/internal/lineio"
	"github.com/jusunglee/baybayin/internal/options"
	"github.com/jusunglee/baybayin/internal/pipeline"
)

// EnvVarPrefix scopes environment overrides, e.g. BBN_LANGUAGE=english.
const EnvVarPrefix = "BBN"

var trailingNgValues = []string{"mark", "drop"}

// Run parses args for a command named name and converts input to output
// using the stages of mode. Only the selectors of the stages mode runs are
// registered as flags.
func Run(ctx context.Context, log *slog.Logger, name string, mode pipeline.Mode, args []string) error {
	fs_ := ff.NewFlagSet(name)

	var (
		input    = fs_.StringLong("input", "-", "input file, - for stdin; may also be given as the only argument")
		output   = fs_.StringLong("output", "-", "output file, - for stdout")
		encoding = fs_.StringEnumLong("encoding", "input encoding", lineio.EncodingValues...)
	)

	var language, orthography, diphthong, cluster *string
	if mode != pipeline.Transliterate {
		language = fs_.StringEnumLong("language", "source language of loanwords", options.LanguageValues...)
		orthography = fs_.StringEnumLong("orthography", "Latin alphabet to normalize into", options.AlphabetValues...)
		diphthong = fs_.StringEnumLong("diphthong", "diphthong handling", options.DiphthongValues...)
		cluster = fs_.StringEnumLong("cluster", "word-initial consonant cluster handling", options.ClusterValues...)
	}

	var script, virama, trailingNg *string
	if mode != pipeline.Normalize {
		script = fs_.StringEnumLong("script", "Baybayin orthography", options.OrthographyValues...)
		virama = fs_.StringEnumLong("virama", "virama glyph", options.ViramaValues...)
		trailingNg = fs_.StringEnumLong("trailing-ng", "word-final ng under the reformed script", trailingNgValues...)
	}

	if err := ff.Parse(fs_, args, ff.WithEnvVarPrefix(EnvVarPrefix)); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs_))
		if errors.Is(err, ff.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parsing flags: %w", err)
	}

	switch args := fs_.GetArgs(); {
	case len(args) > 1:
		return fmt.Errorf("expected at most one input file, got %d arguments", len(args))
	case len(args) == 1 && *input != "-":
		return fmt.Errorf("input given both as --input %q and as argument %q", *input, args[0])
	case len(args) == 1:
		*input = args[0]
	}

	sel := pipeline.Selectors{
		NormalizationFlags: options.NormalizationFlags{
			Language:    lo.FromPtr(language),
			Orthography: lo.FromPtr(orthography),
			Diphthong:   lo.FromPtr(diphthong),
			Cluster:     lo.FromPtr(cluster),
		},
		TransliterationFlags: options.TransliterationFlags{
			Script: lo.FromPtr(script),
			Virama: lo.FromPtr(virama),
		},
	}
	if trailingNg != nil {
		sel.MarkTrailingNg = lo.ToPtr(*trailingNg == "mark")
	}

	conv, err := pipeline.New(mode, sel)
	if err != nil {
		return fmt.Errorf("resolving options: %w", err)
	}
	enc, err := lineio.ParseEncoding(*encoding)
	if err != nil {
		return fmt.Errorf("resolving options: %w", err)
	}

	in, err := lineio.OpenInput(*input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := lineio.CreateOutput(*output)
	if err != nil {
		return err
	}

	start := time.Now()
	n, err := lineio.Process(ctx, in, out, enc, conv.Line)
	if err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	log.DebugContext(ctx, "converted input",
		"command", name,
		"mode", mode.String(),
		"lines", n,
		"duration", time.Since(start),
	)
	return nil
}
