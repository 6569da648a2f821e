package sgf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/haigo/gongo/internal/engine"
)

// Write serializes eng's move history as a single-line main-line SGF
// game tree: "(;SZ[n]KM[k];B[..];W[..]...)". original_source/src/sgf.c
// has no writer at all (it only parses); this is a supplemented
// feature, written in the same property-token shape it reads.
func Write(w io.Writer, eng *engine.Engine) error {
	var b strings.Builder
	b.WriteString("(;SZ[")
	fmt.Fprintf(&b, "%d", eng.BoardSize())
	b.WriteString("]")
	fmt.Fprintf(&b, "KM[%.1f]", eng.Komi())

	for _, m := range eng.Moves().History().Moves() {
		tag := "B"
		if m.Color == engine.White {
			tag = "W"
		}
		b.WriteString(";")
		b.WriteString(tag)
		b.WriteString("[")
		if !m.Pass {
			b.WriteByte(byte('a' + m.Point.I))
			b.WriteByte(byte('a' + m.Point.J))
		}
		b.WriteString("]")
	}
	b.WriteString(")")

	_, err := io.WriteString(w, b.String())
	return err
}

// Save writes eng's SGF text to path, gzip-compressing when path ends
// in ".gz".
func Save(path string, eng *engine.Engine) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sgf: create %s: %w", path, err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".gz") {
		gw := gzip.NewWriter(f)
		defer gw.Close()
		return Write(gw, eng)
	}
	return Write(f, eng)
}
