// Package lineio drives a line conversion over a reader and a writer.
// Input is decoded to UTF-8 and composed to NFC before each line reaches the
// conversion function, so a decomposed n with combining tilde arrives as ñ.
package lineio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jusunglee/baybayin/internal/options"
)

// MaxLineBytes bounds a single input line.
const MaxLineBytes = 1 << 20

type Encoding int

const (
	UTF8 Encoding = iota
	Latin1
)

var encodingNames = map[string]Encoding{
	"utf8":   UTF8,
	"latin1": Latin1,
}

// EncodingValues lists the accepted encoding names, default first.
var EncodingValues = []string{"utf8", "latin1"}

func (e Encoding) String() string {
	if name, ok := lo.FindKey(encodingNames, e); ok {
		return name
	}
	return fmt.Sprintf("lineio.Encoding(%d)", int(e))
}

func ParseEncoding(s string) (Encoding, error) {
	if e, ok := encodingNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return e, nil
	}
	keys := lo.Keys(encodingNames)
	slices.Sort(keys)
	return 0, fmt.Errorf("%w for encoding: %q (want one of %s)", options.ErrUnknownValue, s, strings.Join(keys, ", "))
}

// NewReader returns r decoded from enc and composed to NFC.
func NewReader(r io.Reader, enc Encoding) io.Reader {
	var t transform.Transformer = norm.NFC
	if enc == Latin1 {
		t = transform.Chain(charmap.ISO8859_1.NewDecoder(), norm.NFC)
	}
	return transform.NewReader(r, t)
}

// Process applies fn to every line of r and writes each result to w
// followed by a newline. It checks ctx between lines and returns the number
// of lines written.
func Process(ctx context.Context, r io.Reader, w io.Writer, enc Encoding, fn func(string) string) (int, error) {
	scanner := bufio.NewScanner(NewReader(r, enc))
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	out := bufio.NewWriter(w)

	lines := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return lines, err
		}
		if _, err := out.WriteString(fn(scanner.Text())); err != nil {
			return lines, fmt.Errorf("writing output: %w", err)
		}
		if err := out.WriteByte('\n'); err != nil {
			return lines, fmt.Errorf("writing output: %w", err)
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("reading input: %w", err)
	}
	if err := out.Flush(); err != nil {
		return lines, fmt.Errorf("writing output: %w", err)
	}
	return lines, nil
}

// OpenInput opens path for reading. An empty path or "-" means stdin.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}

// CreateOutput creates path for writing. An empty path or "-" means stdout.
func CreateOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
