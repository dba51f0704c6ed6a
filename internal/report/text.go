package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bigredeye/gradebook/internal/grades"
)

const barSymbol = "#"

type TextRenderer struct {
	out io.Writer
}

func NewTextRenderer(out io.Writer) *TextRenderer {
	return &TextRenderer{out: out}
}

func (r *TextRenderer) Render(histogram *grades.Histogram) error {
	if _, err := fmt.Fprintln(r.out, histogram.Title); err != nil {
		return err
	}

	w := tabwriter.NewWriter(r.out, 0, 0, 1, ' ', 0)
	for _, bucket := range histogram.Buckets {
		fmt.Fprintf(w, "%s\t|%s %d\n", bucket.Label(), strings.Repeat(barSymbol, bucket.Count), bucket.Count)
	}
	return w.Flush()
}
