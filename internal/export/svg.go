package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/san-kum/dpsim/internal/render"
)

// SceneToSVG converts a scene to SVG format. The trace is written as one path
// per run of connected segments, then the arms and orbs on top.
func SceneToSVG(scene *render.Scene) string {
	if scene == nil {
		return ""
	}
	width, height := scene.Size()

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, hex(scene.Background())))

	writeTrace(&sb, scene.Trace())

	for _, l := range scene.Lines() {
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
`, l.X0, l.Y0, l.X1, l.Y1, hex(l.Color)))
	}
	for _, c := range scene.Circles() {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, c.CX, c.CY, c.R, hex(c.Color)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writeTrace(sb *strings.Builder, trace []render.Segment) {
	if len(trace) == 0 {
		return
	}

	open := false
	var stroke color.RGBA
	var lastX, lastY float64
	for _, s := range trace {
		connected := open && s.Color == stroke && s.X0 == lastX && s.Y0 == lastY
		if !connected {
			if open {
				sb.WriteString(`"/>` + "\n")
			}
			stroke = s.Color
			sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1" d="M%.1f,%.1f`, hex(stroke), s.X0, s.Y0))
			open = true
		}
		sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", s.X1, s.Y1))
		lastX, lastY = s.X1, s.Y1
	}
	sb.WriteString(`"/>` + "\n")
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
