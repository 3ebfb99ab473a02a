package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/nrhelper/internal/card"
)

// InfoLines returns the labelled detail lines shown beside a card's art
func InfoLines(rec card.Record) []string {
	var lines []string

	lines = append(lines, colorize.CyanString("Card:      ")+colorize.HiWhiteString("%s", rec.Name))
	if rec.Archetype != "" {
		lines = append(lines, colorize.CyanString("Archetype: ")+colorize.HiWhiteString("%s", rec.Archetype))
	}

	category := rec.Category()
	if rec.FrameType != "" {
		lines = append(lines, colorize.CyanString("Type:      ")+
			colorize.HiWhiteString("%s · %s", category.Label(), rec.FrameType))
	} else {
		lines = append(lines, colorize.CyanString("Type:      ")+colorize.HiWhiteString("%s", category.Label()))
	}

	lines = append(lines, colorize.CyanString("Rarity:    ")+colorize.HiWhiteString("%s", rec.Rarity))

	if rec.Restricted() {
		lines = append(lines, colorize.CyanString("Banlist:   ")+
			colorize.New(colorize.FgYellow, colorize.BgRed, colorize.Bold).Sprintf(" %d ", *rec.Status))
	} else {
		lines = append(lines, colorize.CyanString("Banlist:   ")+colorize.HiWhiteString("unrestricted"))
	}

	if rec.DetailURL != "" {
		lines = append(lines, "")
		lines = append(lines, colorize.CyanString("Details:"))
		lines = append(lines, colorize.BlueString("%s", rec.DetailURL))
	}

	return lines
}

// Card prints the art on the left and the info lines on the right
func Card(w io.Writer, rec card.Record, art string, width int) {
	artLines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	maxArtWidth := 0
	for _, line := range artLines {
		if visible := utf8.RuneCountInString(StripANSI(line)); visible > maxArtWidth {
			maxArtWidth = visible
		}
	}

	if width <= 0 {
		width = TerminalWidth()
	}

	spacing := 4
	infoStartCol := maxArtWidth + spacing

	infoWidth := width - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}

	infoLines := InfoLines(rec)
	for i, line := range infoLines {
		if utf8.RuneCountInString(StripANSI(line)) > infoWidth {
			infoLines[i] = truncate(StripANSI(line), infoWidth)
		}
	}

	fmt.Fprintln(w)

	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(w, "  ")
		if i < len(artLines) {
			fmt.Fprint(w, artLines[i])
			visible := utf8.RuneCountInString(StripANSI(artLines[i]))
			fmt.Fprint(w, strings.Repeat(" ", max(infoStartCol-visible, 0)))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(w, infoLines[i])
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}
