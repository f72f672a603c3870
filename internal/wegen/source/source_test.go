package source

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tok(text string, line, col int) Token {
	return Token{Text: text, Line: line, Col: col, EndLine: line, EndCol: col + len(text)}
}

func TestReconstructSameLine(t *testing.T) {
	tokens := []Token{
		tok("<", 1, 5),
		tok("div", 1, 6),
		tok("class", 1, 10),
		tok("=", 1, 15),
		tok(`"a"`, 1, 16),
		tok(">", 1, 19),
	}
	text, _ := Reconstruct(tokens)
	want := `<div class="a">`
	if diff := cmp.Diff(want, text); diff != "" {
		t.Errorf("reconstructed text mismatch (-want +got):\n%s", diff)
	}
}

func TestReconstructNewlineIndent(t *testing.T) {
	tokens := []Token{
		tok("<", 2, 5),
		tok("div", 2, 6),
		tok(">", 2, 9),
		tok("<", 3, 9),
		tok("p", 3, 10),
		tok("/", 3, 12),
		tok(">", 3, 13),
		tok("<", 4, 5),
		tok("/", 4, 6),
		tok("div", 4, 7),
		tok(">", 4, 10),
	}
	text, _ := Reconstruct(tokens)
	want := "<div>\n    <p />\n</div>"
	if diff := cmp.Diff(want, text); diff != "" {
		t.Errorf("reconstructed text mismatch (-want +got):\n%s", diff)
	}
}

func TestReconstructFirstTokenNoNewline(t *testing.T) {
	text, _ := Reconstruct([]Token{tok("<", 7, 3), tok("p", 7, 4), tok("/>", 7, 6)})
	if diff := cmp.Diff("<p />", text); diff != "" {
		t.Errorf("reconstructed text mismatch (-want +got):\n%s", diff)
	}
}

func TestReconstructFloorsNegativeGap(t *testing.T) {
	// Second line dedented past the baseline: indent floors at zero.
	tokens := []Token{
		tok("<", 1, 9),
		tok("div", 1, 10),
		tok("/>", 1, 13),
		tok("<", 2, 3),
		tok("p", 2, 4),
		tok("/>", 2, 5),
	}
	text, _ := Reconstruct(tokens)
	want := "<div/>\n<p/>"
	if diff := cmp.Diff(want, text); diff != "" {
		t.Errorf("reconstructed text mismatch (-want +got):\n%s", diff)
	}
}

func TestMapperPositions(t *testing.T) {
	tokens := []Token{
		tok("<", 2, 5),
		tok("div", 2, 6),
		tok(">", 2, 9),
		tok("<", 3, 9),
		tok("p", 3, 10),
		tok("/>", 3, 11),
		tok("<", 4, 5),
		tok("/", 4, 6),
		tok("div", 4, 7),
		tok(">", 4, 10),
	}
	text, m := Reconstruct(tokens)
	if line, col := m.Pos(0); line != 2 || col != 5 {
		t.Errorf("Pos(0) = %d:%d, want 2:5", line, col)
	}
	// Offset of the nested "<p" on the second reconstructed line.
	offset := len("<div>\n    ")
	if line, col := m.Pos(offset); line != 3 || col != 9 {
		t.Errorf("Pos(%d) = %d:%d, want 3:9", offset, line, col)
	}
	if line, _ := m.Pos(len(text)); line != 4 {
		t.Errorf("Pos(end) line = %d, want 4", line)
	}
}

func TestReconstructEmpty(t *testing.T) {
	text, m := Reconstruct(nil)
	if text != "" {
		t.Errorf("Reconstruct(nil) = %q, want empty", text)
	}
	if line, col := m.Pos(0); line != 1 || col != 1 {
		t.Errorf("Pos(0) = %d:%d, want 1:1", line, col)
	}
}
