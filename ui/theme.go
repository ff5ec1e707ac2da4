package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the colours of the terminal board.
type Theme struct {
	Board     tcell.Color
	Black     tcell.Color
	White     tcell.Color
	Highlight tcell.Color
	Cursor    tcell.Color
	Text      tcell.Color
}

var DefaultTheme = Theme{
	Board:     tcell.ColorGreen,
	Black:     tcell.ColorBlack,
	White:     tcell.ColorWhite,
	Highlight: tcell.ColorYellow,
	Cursor:    tcell.ColorRed,
	Text:      tcell.ColorSilver,
}

// ParseColor resolves a W3C colour name or a #rrggbb value.
func ParseColor(name string) (tcell.Color, error) {
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return c, fmt.Errorf("unknown colour %q", name)
	}
	return c, nil
}

// NewTheme builds a theme from colour names, in the order board, black, white, highlight,
// cursor, text.
func NewTheme(board, black, white, highlight, cursor, text string) (Theme, error) {
	names := []string{board, black, white, highlight, cursor, text}
	colors := make([]tcell.Color, len(names))
	for i, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return Theme{}, err
		}
		colors[i] = c
	}
	return Theme{
		Board:     colors[0],
		Black:     colors[1],
		White:     colors[2],
		Highlight: colors[3],
		Cursor:    colors[4],
		Text:      colors[5],
	}, nil
}
