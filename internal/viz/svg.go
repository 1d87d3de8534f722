package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/highlight"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/step"
)

// BarsSVG draws one record as an SVG bar chart colored like the terminal
// player.
func BarsSVG(r step.Record, mode step.Mode, theme Theme, width, height int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if r != nil && len(r.Common().Array) > 0 {
		arr := r.Common().Array
		classes := highlight.Resolve(r, mode)

		top := 1
		for _, v := range arr {
			top = max(top, v)
		}

		slot := float64(width) / float64(len(arr))
		barW := slot * 0.8
		for i, v := range arr {
			h := float64(v) / float64(top) * float64(height) * 0.95
			x := float64(i)*slot + (slot-barW)/2
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"><title>%d %s</title></rect>
`, x, float64(height)-h, barW, h, string(theme.Color(classes[i])), v, classes[i]))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// ProgressSVG draws metrics.Progress over the whole sequence as a path.
func ProgressSVG(seq step.Sequence, width, height int, stroke string) string {
	points := metrics.Progress(seq)
	if len(points) < 2 {
		return ""
	}

	lo, hi := points[0], points[0]
	for _, p := range points {
		lo = min(lo, p)
		hi = max(hi, p)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, stroke))

	last := float64(len(points) - 1)
	for i, p := range points {
		x := float64(i) / last * float64(width)
		y := float64(height) - (p-lo)/span*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
