// Package pipeline runs the normalizer and the transliterator back to back
// and records per-stage metrics. A Converter is a value and is safe for
// concurrent use.
package pipeline

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/jusunglee/baybayin/internal/metrics"
	"github.com/jusunglee/baybayin/internal/normalize"
	"github.com/jusunglee/baybayin/internal/options"
	"github.com/jusunglee/baybayin/internal/transliteration"
)

// Mode selects which stages a Converter runs.
type Mode int

const (
	// Convert normalizes and then transliterates.
	Convert Mode = iota
	Normalize
	Transliterate
)

var modeNames = map[string]Mode{
	"convert":       Convert,
	"normalize":     Normalize,
	"transliterate": Transliterate,
}

func (m Mode) String() string {
	if name, ok := lo.FindKey(modeNames, m); ok {
		return name
	}
	return fmt.Sprintf("pipeline.Mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	if m, ok := modeNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	keys := lo.Keys(modeNames)
	slices.Sort(keys)
	return 0, fmt.Errorf("%w for mode: %q (want one of %s)", options.ErrUnknownValue, s, strings.Join(keys, ", "))
}

const (
	stageNormalize     = "normalize"
	stageTransliterate = "transliterate"
)

// Selectors are the option strings of a request, as they arrive from flags
// or a JSON body.
type Selectors struct {
	options.NormalizationFlags
	options.TransliterationFlags
}

type Converter struct {
	Mode            Mode
	Normalization   options.Normalization
	Transliteration options.Transliteration
}

// New resolves sel into a Converter for mode. Selectors for a stage the
// mode does not run are still validated.
func New(mode Mode, sel Selectors) (Converter, error) {
	n, nErr := sel.NormalizationFlags.Parse()
	t, tErr := sel.TransliterationFlags.Parse()
	if err := errors.Join(nErr, tErr); err != nil {
		return Converter{}, err
	}
	return Converter{Mode: mode, Normalization: n, Transliteration: t}, nil
}

// Line converts a single line.
func (c Converter) Line(line string) string {
	if c.Mode != Transliterate {
		line = observe(stageNormalize, line, func(s string) string {
			return normalize.Normalize(s, c.Normalization)
		})
	}
	if c.Mode != Normalize {
		line = observe(stageTransliterate, line, func(s string) string {
			return transliteration.Transliterate(s, c.Transliteration)
		})
	}
	return line
}

// Text converts every line of s independently and keeps the line breaks.
func (c Converter) Text(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = c.Line(line)
	}
	return strings.Join(lines, "\n")
}

func observe(stage, in string, fn func(string) string) string {
	start := time.Now()
	out := fn(in)
	metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	metrics.LinesProcessed.WithLabelValues(stage).Inc()
	metrics.BytesProcessed.WithLabelValues(stage, "in").Add(float64(len(in)))
	metrics.BytesProcessed.WithLabelValues(stage, "out").Add(float64(len(out)))
	return out
}
