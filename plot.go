package smt

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SaveTracePlot renders the per-component bias trajectories of a Learn run
// as a line plot and writes it to path, inferring the image format from the
// file extension (png when there is none). Labels are optional; missing
// entries fall back to the component index.
func SaveTracePlot(tr Trace, labels []string, path string) error {
	if len(tr) == 0 {
		return ErrEmptyTrace
	}

	p := plot.New()
	p.Title.Text = "EM parameter trace"
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Theta"
	p.Y.Min = 0
	p.Y.Max = 1

	for j := 0; j < len(tr[0].Thetas); j++ {
		xys := make(plotter.XYs, len(tr))
		for i := range tr {
			xys[i].X = float64(i + 1)
			xys[i].Y = tr[i].Thetas[j]
		}

		l, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}

		l.Color = plotutil.Color(j)

		p.Add(l)

		name := "theta " + strconv.Itoa(j)
		if j < len(labels) && labels[j] != "" {
			name = labels[j]
		}

		p.Legend.Add(name, l)
	}

	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		format = "png"
	}

	output, err := os.Create(path)
	if err != nil {
		return err
	}

	return writeClosePlot(p, 6*vg.Inch, 4*vg.Inch, output, format)
}

func writePlot(p *plot.Plot, width, height vg.Length, output io.Writer, format string) error {
	w, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = w.WriteTo(output)
	return err
}

func writeClosePlot(p *plot.Plot, width, height vg.Length, output io.WriteCloser, format string) (err error) {
	defer func() {
		e := output.Close()
		err = combineErrors(err, e)
	}()
	return writePlot(p, width, height, output, format)
}

func combineErrors(errors ...error) (err error) {
	for _, e := range errors {
		switch {
		case e == nil:
			// ignore
		case err == nil:
			err = e
		default:
			err = multierror.Append(err, e)
		}
	}
	return err
}
