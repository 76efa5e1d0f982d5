package ui

import (
	"fmt"
	"image"

	"conway-life/internal/render"
)

// MenuRect is the side panel area in screen pixels.
var MenuRect = image.Rect(10, 10, 140, 590)

const (
	menuTextX       = 14
	menuTextTop     = 10
	menuLineSpacing = 14
	menuBaseline    = 11
)

// MenuLines returns the text rows shown in the side panel.
func MenuLines(generation int, mode render.Mode, running bool) []string {
	state := "paused"
	if running {
		state = "running"
	}
	return []string{
		fmt.Sprintf("generation: %d", generation),
		state,
		"space : alive/dead",
		"s : start/stop",
		"n : next",
		"c : clear",
		"r : random",
		"p : pattern",
		"m : " + mode.Label(),
		"g : grid",
		"q : quit",
	}
}

// lineOrigin returns the baseline position of the i-th menu row.
func lineOrigin(i int) image.Point {
	return image.Pt(menuTextX, menuTextTop+menuBaseline+i*menuLineSpacing)
}
