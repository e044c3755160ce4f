// Package ui formats simulation state for the status line and the GUI panels.
package ui

import (
	"strings"

	"chunk-life/internal/core"
)

// StatusLine joins the selected parameters into one line. Without keys every
// parameter is included in snapshot order.
func StatusLine(s core.ParameterSnapshot, keys ...string) string {
	var parts []string
	if len(keys) == 0 {
		for _, g := range s.Groups {
			for _, p := range g.Params {
				parts = append(parts, p.Label+" "+p.Value)
			}
		}
		return strings.Join(parts, " | ")
	}
	for _, key := range keys {
		if p, ok := s.Lookup(key); ok {
			parts = append(parts, p.Label+" "+p.Value)
		}
	}
	return strings.Join(parts, " | ")
}

// Lines lays a snapshot out as a heading per group followed by indented
// label/value rows.
func Lines(s core.ParameterSnapshot) []string {
	var lines []string
	for i, g := range s.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, "  "+p.Label+": "+p.Value)
		}
	}
	return lines
}
