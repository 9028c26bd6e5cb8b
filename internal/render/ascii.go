package render

import (
	"bufio"
	"io"

	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

// ASCII writes g as one line of glyphs per row.
func ASCII(w io.Writer, g grid.Reader, s Scheme) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, g.Width()+1)
	line[len(line)-1] = '\n'
	for y := 0; y < g.Height(); y++ {
		for x := range g.Width() {
			line[x] = Glyph(s, g.Value(x, y))
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
