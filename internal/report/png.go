package report

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/alexsergivan/transliterator"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bigredeye/gradebook/internal/grades"
	lf "github.com/bigredeye/gradebook/internal/logfield"
)

const (
	pngWidth  = 6 * vg.Inch
	pngHeight = 4 * vg.Inch
	barWidth  = 40
)

type PNGRenderer struct {
	dir      string
	out      io.Writer
	logger   *zap.Logger
	translit *transliterator.Transliterator
}

func NewPNGRenderer(dir string, out io.Writer, logger *zap.Logger) *PNGRenderer {
	return &PNGRenderer{
		dir:      dir,
		out:      out,
		logger:   logger.With(lf.Module("report")),
		translit: transliterator.NewTransliterator(nil),
	}
}

// FileName makes a file system friendly name out of an assignment name.
func (r *PNGRenderer) FileName(assignment string) string {
	slug := strings.Map(func(ch rune) rune {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			return unicode.ToLower(ch)
		}
		return '-'
	}, r.translit.Transliterate(assignment, "en"))

	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "assignment"
	}
	return fmt.Sprintf("histogram-%s.png", slug)
}

func (r *PNGRenderer) Render(histogram *grades.Histogram) error {
	p := plot.New()
	p.Title.Text = histogram.Title
	p.X.Label.Text = "Score (%)"
	p.Y.Label.Text = "Number of Students"

	values := make(plotter.Values, len(histogram.Buckets))
	labels := make([]string, len(histogram.Buckets))
	for i, bucket := range histogram.Buckets {
		values[i] = float64(bucket.Count)
		labels[i] = bucket.Label()
	}

	bars, err := plotter.NewBarChart(values, vg.Points(barWidth))
	if err != nil {
		return errors.Wrap(err, "Failed to build bar chart")
	}
	bars.LineStyle.Color = color.Black
	p.Add(bars)
	p.NominalX(labels...)

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return errors.Wrapf(err, "Failed to create %s", r.dir)
	}
	path := filepath.Join(r.dir, r.FileName(histogram.Assignment))
	if err := p.Save(pngWidth, pngHeight, path); err != nil {
		return errors.Wrapf(err, "Failed to save histogram to %s", path)
	}

	r.logger.Debug("Saved histogram", lf.AssignmentName(histogram.Assignment), lf.Path(path))
	_, err = fmt.Fprintf(r.out, "Saved %s to %s\n", histogram.Title, path)
	return err
}
