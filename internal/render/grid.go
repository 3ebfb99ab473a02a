// Package render draws catalog views and single cards on a terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/nrhelper/internal/card"
)

const (
	defaultWidth = 80
	minCellWidth = 24
	cellGap      = 2
)

// GridOptions controls how a list of cards is laid out
type GridOptions struct {
	Width     int  // terminal width; 0 detects it
	CellWidth int  // 0 uses minCellWidth
	Links     bool // print detail URLs under each row
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// Badge returns the banlist and rarity markers for a card, uncoloured
func Badge(rec card.Record) string {
	var parts []string
	if rec.Restricted() {
		parts = append(parts, fmt.Sprintf("(%d)", *rec.Status))
	}
	if b := rec.Rarity.Badge(); b != "" {
		parts = append(parts, "["+b+"]")
	}
	return strings.Join(parts, " ")
}

func colorBadge(rec card.Record) string {
	var parts []string
	if rec.Restricted() {
		parts = append(parts, colorize.New(colorize.FgYellow, colorize.BgRed, colorize.Bold).Sprintf("(%d)", *rec.Status))
	}
	switch rec.Rarity {
	case card.RarityRare:
		parts = append(parts, colorize.HiCyanString("[R]"))
	case card.RarityCommon:
		parts = append(parts, colorize.WhiteString("[N]"))
	}
	return strings.Join(parts, " ")
}

// Cell renders a single grid cell padded to width visible columns
func Cell(rec card.Record, width int) string {
	badge := Badge(rec)
	nameWidth := width - utf8.RuneCountInString(badge) - 1
	if badge == "" {
		nameWidth = width
	}
	name := truncate(rec.Name, nameWidth)

	var s string
	if badge == "" {
		s = colorize.HiWhiteString("%s", name)
	} else {
		s = colorBadge(rec) + " " + colorize.HiWhiteString("%s", name)
	}

	visible := utf8.RuneCountInString(badge) + utf8.RuneCountInString(name)
	if badge != "" {
		visible++
	}
	if pad := width - visible; pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// Grid writes cards as rows of fixed-width cells
func Grid(w io.Writer, cards []card.Record, opts GridOptions) {
	if len(cards) == 0 {
		fmt.Fprintln(w, colorize.YellowString("No cards match the current filters."))
		return
	}

	width := opts.Width
	if width <= 0 {
		width = TerminalWidth()
	}
	cellWidth := opts.CellWidth
	if cellWidth <= 0 {
		cellWidth = minCellWidth
	}

	columns := (width + cellGap) / (cellWidth + cellGap)
	if columns < 1 {
		columns = 1
	}

	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		row := cards[start:end]

		cells := make([]string, len(row))
		for i, rec := range row {
			cells[i] = Cell(rec, cellWidth)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, strings.Repeat(" ", cellGap)), " "))

		if opts.Links {
			for _, rec := range row {
				if rec.DetailURL != "" {
					fmt.Fprintln(w, "  "+colorize.BlueString("%s", rec.DetailURL))
				}
			}
		}
	}
}

// Summary writes the one-line header shown above a listing
func Summary(w io.Writer, shown, total int, archetypes int) {
	fmt.Fprintf(w, "%s %s\n",
		colorize.CyanString("Cards:"),
		colorize.HiWhiteString("%d of %d (%d archetypes)", shown, total, archetypes))
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width <= 3 {
		return string([]rune(s)[:width])
	}
	return string([]rune(s)[:width-3]) + "..."
}
