package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/handoff/pkg/geom"
	"github.com/matzehuels/handoff/pkg/measure"
	"github.com/matzehuels/handoff/pkg/numeric"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan    = lipgloss.Color("36")  // Teal - primary actions
	colorGreen   = lipgloss.Color("35")  // Green - success
	colorYellow  = lipgloss.Color("220") // Amber - warnings
	colorMagenta = lipgloss.Color("170") // Magenta - ruler guides
	colorWhite   = lipgloss.Color("255") // Bright white - values
	colorGray    = lipgloss.Color("245") // Gray - secondary text
	colorDim     = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleHeader    = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleBorder    = lipgloss.NewStyle().Foreground(colorDim)
	styleLabel     = lipgloss.NewStyle().Foreground(colorCyan)
	styleGuide     = lipgloss.NewStyle().Foreground(colorMagenta)
	styleComponent = lipgloss.NewStyle().Foreground(colorGreen)

	styleCommand = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Tables
// =============================================================================

// rectTable renders rectangles with their selector keys. ids[i] belongs to
// rects[i]; cursor marks one row, or none when negative.
func rectTable(ids []string, rects []geom.Rect, cursor int) string {
	rows := make([][]string, len(rects))
	for i, r := range rects {
		mark := "  "
		if i == cursor {
			mark = "▸ "
		}
		rows[i] = []string{
			mark,
			"#" + strconv.Itoa(r.Index),
			ids[i],
			r.Title,
			strings.Join(r.Tags, ","),
			formatPx(r.Left) + ", " + formatPx(r.Top),
			formatPx(r.ActualWidth) + " × " + formatPx(r.ActualHeight),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("", "Index", "ID", "Title", "Tags", "Position", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == cursor {
				base = base.Bold(true).Foreground(colorCyan)
			} else if row < len(rects) && rects[row].HasTag(geom.TagComponent) {
				base = base.Inherit(styleComponent)
			}
			return base
		})
	return t.Render()
}

// markTable renders the labels and guides of a measurement. Positions and
// lengths are shown as page percentages, distances in pixels.
func markTable(res measure.Result) string {
	var rows [][]string
	for _, l := range res.DistanceLabels {
		rows = append(rows, markRow("label", l.Mark))
	}
	for _, g := range res.RulerGuides {
		rows = append(rows, markRow("guide", g.Mark))
	}
	labels := len(res.DistanceLabels)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Kind", "Axis", "X", "Y", "Length", "Distance").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col == 0 {
				if row < labels {
					return base.Inherit(styleLabel)
				}
				return base.Inherit(styleGuide)
			}
			return base
		})
	return t.Render()
}

func markRow(kind string, m measure.Mark) []string {
	axis := "→ w"
	if m.Axis == numeric.Vertical {
		axis = "↓ h"
	}
	return []string{
		kind,
		axis,
		numeric.Percent(m.X),
		numeric.Percent(m.Y),
		numeric.Percent(m.Length),
		formatPx(m.Distance),
	}
}

// formatPx formats a pixel value rounded for display.
func formatPx(v float64) string {
	return strconv.FormatFloat(numeric.ToFixed(v), 'f', -1, 64) + "px"
}
