package report

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bigredeye/gradebook/internal/config"
	"github.com/bigredeye/gradebook/internal/grades"
)

type Renderer interface {
	Render(histogram *grades.Histogram) error
}

// NewRenderer picks a renderer for the report format. Text is written to out,
// png is saved into dir and its path is reported to out.
func NewRenderer(format, dir string, out io.Writer, logger *zap.Logger) (Renderer, error) {
	switch format {
	case config.ReportFormatText:
		return NewTextRenderer(out), nil
	case config.ReportFormatPNG:
		return NewPNGRenderer(dir, out, logger), nil
	default:
		return nil, errors.Errorf("Unknown report format %q", format)
	}
}
