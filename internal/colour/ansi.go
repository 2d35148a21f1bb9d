package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + strings.Repeat(" ", width) + ansiReset
}

// ColourPreviewWithText returns a colour preview with text overlay.
// The text colour is black or white, whichever contrasts more with c.
func ColourPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := Black
	if ContrastRatio(c, White) > ContrastRatio(c, Black) {
		fg = White
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)

	// Pad or truncate text to fit width.
	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bgColour + fgColour + displayText + ansiReset
}

// FormatColourWithPreview formats a colour with its preview and hex code.
func FormatColourWithPreview(rgb RGB, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(rgb, width), rgb.Hex())
}
