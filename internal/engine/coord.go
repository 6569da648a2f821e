package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// columnLetters skips 'I', matching Go board coordinate convention.
const columnLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// labelColumn returns the column letter for 0-based column index i,
// never yielding 'I'. It is strictly monotone over 0..N-1.
func labelColumn(i int) string {
	return string(columnLetters[i])
}

// labelRowPlain formats a 0-based row index as its 1-based row number.
func labelRowPlain(j int) string {
	return strconv.Itoa(j + 1)
}

// ParseVertex parses a GTP vertex token ("A1".."T19", skipping 'I'),
// returning zero-based (i,j).
func ParseVertex(token string, size int) (Point, error) {
	token = strings.ToUpper(strings.TrimSpace(token))
	if token == "PASS" {
		return PassPoint, nil
	}
	if len(token) < 2 {
		return Point{}, fmt.Errorf("invalid coordinate %q", token)
	}
	col := strings.IndexByte(columnLetters, token[0])
	if col < 0 {
		return Point{}, fmt.Errorf("invalid coordinate %q", token)
	}
	row, err := strconv.Atoi(token[1:])
	if err != nil || row < 1 || row > size {
		return Point{}, fmt.Errorf("invalid coordinate %q", token)
	}
	return Point{I: col, J: row - 1}, nil
}

// FormatVertex renders a point in GTP vertex notation, or "pass".
func FormatVertex(p Point) string {
	return formatVertex(p)
}

// labelRow renders a 1-based row number right-aligned to width 2 for
// the left margin, or left-aligned for the right margin.
func labelRow(j int, rightMargin bool) string {
	s := labelRowPlain(j)
	if rightMargin {
		return s
	}
	if len(s) < 2 {
		return " " + s
	}
	return s
}

// Render draws the board exactly as the reference renderer does:
// column letters above and below, row numbers on both sides, empty
// points as '.', hoshi as '+', Black as 'X', White as '0', and capture
// counts appended to two rows: row indices 1 (White) and 0 (Black) on
// boards up to 10, n-9 and n-10 on larger boards.
func Render(b *BoardState) string {
	n := b.Size()
	var out strings.Builder
	out.WriteByte('\n')

	writeColumnHeader(&out, n, true)

	lineShowWhite := 1
	lineShowBlack := 0
	if n > 10 {
		lineShowWhite = n - 9
		lineShowBlack = n - 10
	}

	for j := n - 1; j >= 0; j-- {
		out.WriteString(" ")
		out.WriteString(labelRow(j, false))
		for i := 0; i < n; i++ {
			out.WriteString(" ")
			out.WriteString(cellGlyph(b, i, j))
		}
		out.WriteString(" ")
		out.WriteString(labelRow(j, true))

		if j == lineShowWhite {
			fmt.Fprintf(&out, "\t    WHITE (0) has captured %d stones", b.WhiteCaptured())
		}
		if j == lineShowBlack {
			fmt.Fprintf(&out, "\t    BLACK (X) has captured %d stones", b.BlackCaptured())
		}
		out.WriteByte('\n')
	}

	writeColumnHeader(&out, n, false)
	return out.String()
}

func writeColumnHeader(out *strings.Builder, n int, trailingNewline bool) {
	out.WriteString("  ")
	for i := 0; i < n; i++ {
		out.WriteString(" ")
		out.WriteString(labelColumn(i))
	}
	if trailingNewline {
		out.WriteByte('\n')
	}
}

func cellGlyph(b *BoardState, i, j int) string {
	switch b.GetStone(i, j) {
	case Black:
		return "X"
	case White:
		return "0"
	default:
		if b.IsHoshi(i, j) {
			return "+"
		}
		return "."
	}
}
