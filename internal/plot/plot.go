package plot

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/halfeq/burette/internal/sweep"
)

// ErrNoSamples is returned when a record contains nothing to draw.
var ErrNoSamples = errors.New("record has no samples")

// Axis bounds. pH is clamped to [0, 14] by the solver, so the curve
// always fits this window.
const (
	phMin = 0
	phMax = 14
)

var (
	curveColor  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	markerColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// Render draws the titration curve for rec and writes it to path.
// The image format follows the file extension.
func Render(rec *sweep.Record, path string) error {
	if len(rec.Samples) == 0 {
		return fmt.Errorf("render %q: %w", rec.Name, ErrNoSamples)
	}

	p := plot.New()
	p.Title.Text = rec.Name
	p.X.Label.Text = "titrant volume (mL)"
	p.Y.Label.Text = "pH"
	p.Y.Min = phMin
	p.Y.Max = phMax
	p.X.Min = 0
	p.X.Max = rec.State.TitrantMax
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(rec.Samples))
	for i, s := range rec.Samples {
		pts[i].X = s.TitrantVol
		pts[i].Y = s.PH
	}
	curve, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("render %q: curve: %w", rec.Name, err)
	}
	curve.Color = curveColor
	curve.Width = vg.Points(1.5)
	p.Add(curve)
	p.Legend.Add("pH", curve)

	for _, ep := range rec.Points {
		marker, err := plotter.NewLine(plotter.XYs{
			{X: ep.VolumeML, Y: phMin},
			{X: ep.VolumeML, Y: phMax},
		})
		if err != nil {
			return fmt.Errorf("render %q: marker %q: %w", rec.Name, ep.Label, err)
		}
		marker.Color = markerColor
		marker.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(marker)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("render %q: save: %w", rec.Name, err)
	}
	return nil
}
