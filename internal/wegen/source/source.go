// Package source reconstructs template text from positioned tokens and maps
// positions in the reconstructed text back to the original file.
package source

import "strings"

// Token is one lexical unit of a template region, with its position in the
// original file. Lines and columns are 1-based; EndLine/EndCol point just
// past the token. Tokens are never mutated.
type Token struct {
	Text    string
	Line    int
	Col     int
	EndLine int
	EndCol  int
}

// Mapper translates byte offsets in the reconstructed text into original
// file positions.
type Mapper struct {
	text    string
	lines   []int // original line per reconstructed line
	baseCol int   // column of the very first token
}

// Reconstruct rebuilds a text blob from template tokens, preserving original
// line breaks and approximate column alignment so that parser positions can
// be mapped back to file positions. The first token is placed at a
// baseline-relative indent, never preceded by a newline; a token starting on
// a later line than the previous one ended gets a newline plus
// baseline-relative indent; otherwise the column gap to the previous token's
// end is filled with spaces. Negative gaps floor at zero.
func Reconstruct(tokens []Token) (string, *Mapper) {
	var b strings.Builder
	m := &Mapper{baseCol: 1}
	var prev *Token
	for i := range tokens {
		tok := &tokens[i]
		switch {
		case prev == nil:
			m.baseCol = tok.Col
			m.lines = append(m.lines, tok.Line)
			b.WriteString(spaces(tok.Col - m.baseCol))
		case tok.Line > prev.EndLine:
			b.WriteByte('\n')
			m.lines = append(m.lines, tok.Line)
			b.WriteString(spaces(tok.Col - m.baseCol))
		default:
			b.WriteString(spaces(tok.Col - prev.EndCol))
		}
		b.WriteString(tok.Text)
		prev = tok
	}
	m.text = b.String()
	return m.text, m
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}

// Pos returns the original file position of a byte offset in the
// reconstructed text. The mapping is best-effort, column-accurate for token
// starts and line-accurate everywhere.
func (m *Mapper) Pos(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(m.text) {
		offset = len(m.text)
	}
	recLine, lineStart := 1, 0
	for i := 0; i < offset; i++ {
		if m.text[i] == '\n' {
			recLine++
			lineStart = i + 1
		}
	}
	if recLine <= len(m.lines) {
		line = m.lines[recLine-1]
	} else if n := len(m.lines); n > 0 {
		line = m.lines[n-1] + recLine - n
	} else {
		line = recLine
	}
	return line, offset - lineStart + m.baseCol
}
