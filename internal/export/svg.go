package export

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/san-kum/compound/internal/growth"
)

type SVGOptions struct {
	Width, Height float64
	Padding       float64
	Background    string
	Stroke        string
	Marker        string
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:      640,
		Height:     320,
		Padding:    24,
		Background: "#0a0a0a",
		Stroke:     "#00ff88",
		Marker:     "#ffcc00",
	}
}

// WriteSVG draws the trace as a polyline, with a dot on every emitted year.
func WriteSVG(w io.Writer, trace iter.Seq[growth.Snapshot], opts SVGOptions) error {
	var snaps []growth.Snapshot
	lo, hi := 0.0, 0.0
	for s := range trace {
		if len(snaps) == 0 || s.Amount < lo {
			lo = s.Amount
		}
		if len(snaps) == 0 || s.Amount > hi {
			hi = s.Amount
		}
		snaps = append(snaps, s)
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Background)

	if len(snaps) > 0 {
		rng := hi - lo
		if rng == 0 {
			rng = 1
		}
		plotW := opts.Width - 2*opts.Padding
		plotH := opts.Height - 2*opts.Padding

		point := func(i int, amount float64) (float64, float64) {
			x := opts.Padding
			if len(snaps) > 1 {
				x += plotW * float64(i) / float64(len(snaps)-1)
			}
			y := opts.Padding + plotH*(1-(amount-lo)/rng)
			return x, y
		}

		points := make([]string, len(snaps))
		for i, s := range snaps {
			x, y := point(i, s.Amount)
			points[i] = fmt.Sprintf("%.2f,%.2f", x, y)
		}
		fmt.Fprintf(&sb, "<polyline fill=\"none\" stroke=\"%s\" stroke-width=\"2\" points=\"%s\"/>\n",
			opts.Stroke, strings.Join(points, " "))

		fmt.Fprintf(&sb, "<g fill=\"%s\">\n", opts.Marker)
		for i, s := range snaps {
			if !s.Emit {
				continue
			}
			x, y := point(i, s.Amount)
			fmt.Fprintf(&sb, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"3\"><title>year %d</title></circle>\n", x, y, s.Period)
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
