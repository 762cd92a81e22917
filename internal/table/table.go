// Package table renders a probability matrix as an ASCII table.
package table

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/message"

	"github.com/louisbranch/fairdice/internal/probability"
)

// minWidth is the narrowest column.
const minWidth = 10

// Render draws the matrix with one row and one column per die, labelled by
// the die faces. Cell (row, column) is the probability that the row die beats
// the column die. A die facing itself has no matrix entry, so the diagonal
// shows SelfPlay: the chance it strictly beats an independent copy of itself
// (1/3 for dice made of three pairs, 15/36 for 1..6). Columns share the
// width of the longest label. Text and numbers are formatted by p, so the
// decimal separator follows its locale.
func Render(p *message.Printer, m *probability.Matrix) string {
	corner := p.Sprintf("game.table.corner")
	width := max(minWidth, utf8.RuneCountInString(corner))
	labels := make([]string, m.Len())
	for i := range labels {
		labels[i] = m.Die(i).String()
		width = max(width, utf8.RuneCountInString(labels[i]))
	}

	cells := make([][]string, m.Len())
	for i := range cells {
		cells[i] = make([]string, m.Len())
		for j := range cells[i] {
			r, ok := m.At(i, j)
			if !ok {
				r = m.SelfPlay(i)
			}
			cells[i][j] = p.Sprintf("%.4f", r.Float64())
			width = max(width, utf8.RuneCountInString(cells[i][j]))
		}
	}

	var b strings.Builder
	rule := ruleLine(width, m.Len())

	b.WriteString(p.Sprintf("game.table.title"))
	b.WriteByte('\n')
	b.WriteString(rule)
	writeRow(&b, width, corner, labels)
	b.WriteString(rule)
	for i, label := range labels {
		writeRow(&b, width, label, cells[i])
	}
	b.WriteString(rule)
	return b.String()
}

func ruleLine(width, columns int) string {
	segment := strings.Repeat("-", width+2) + "+"
	return "+" + strings.Repeat(segment, columns+1) + "\n"
}

func writeRow(b *strings.Builder, width int, head string, cells []string) {
	b.WriteString("|")
	writeCell(b, width, head)
	for _, cell := range cells {
		writeCell(b, width, cell)
	}
	b.WriteByte('\n')
}

func writeCell(b *strings.Builder, width int, text string) {
	b.WriteByte(' ')
	b.WriteString(text)
	if pad := width - utf8.RuneCountInString(text); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(" |")
}
