package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/bounce/internal/analysis"
	"github.com/san-kum/bounce/internal/physics"
)

// TraceToSVG draws the ball path of res inside its bounds box, with the
// final ball outline and a dot at every floor contact.
func TraceToSVG(res *analysis.Result, strokeColor string) string {
	if res == nil || len(res.Samples) < 2 {
		return ""
	}

	r := res.Radius
	width := res.Bounds.W
	height := res.Bounds.H

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, s := range res.Samples {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", s.X, s.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", s.X, s.Y))
		}
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf("<g fill=\"%s\" fill-opacity=\"0.6\">\n", strokeColor))
	for _, s := range floorHits(res) {
		sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"2\"/>\n", s.X, s.Y+r))
	}
	sb.WriteString("</g>\n")

	last := res.Final()
	sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"none\" stroke=\"#ffffff\"/>\n",
		last.X, last.Y, r))

	sb.WriteString("</svg>")
	return sb.String()
}

// floorHits returns the first sample of every run of floor contacts.
func floorHits(res *analysis.Result) []analysis.Sample {
	var hits []analysis.Sample
	prev := false
	for _, s := range res.Samples {
		on := s.Contact.Has(physics.ContactFloor)
		if on && !prev {
			hits = append(hits, s)
		}
		prev = on
	}
	return hits
}
