// Command playground previews normalization and transliteration live in the terminal.
package main

import (
	"log/slog"
	"os"

	"github.com/jusunglee/baybayin/internal/playground"
)

func main() {
	if err := playground.Run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
