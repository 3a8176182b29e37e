// Package render turns dashboard panels into terminal output, PDF reports and charts.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/godilite/ride-insights/internal/insight"
	"github.com/godilite/ride-insights/internal/service"
	"github.com/olekukonko/tablewriter"
)

var toneColors = map[insight.Tone]*color.Color{
	insight.ToneSuccess: color.New(color.FgGreen),
	insight.ToneError:   color.New(color.FgRed),
	insight.ToneWarning: color.New(color.FgYellow),
	insight.ToneInfo:    color.New(color.FgCyan),
}

var (
	titleColor  = color.New(color.FgCyan, color.Bold)
	noticeColor = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed)
)

// Terminal writes panel to w.
func Terminal(w io.Writer, panel service.Panel) {
	titleColor.Fprintf(w, "\n=== %s ===\n", panel.Title)

	switch panel.Status {
	case service.StatusOK:
	case service.StatusError:
		errorColor.Fprintln(w, panel.Notice)
		return
	default:
		noticeColor.Fprintln(w, panel.Notice)
		return
	}

	if panel.Home != nil {
		terminalHome(w, *panel.Home)
		return
	}
	if panel.Table != nil {
		TerminalTable(w, panel.Table.Columns, panel.Table.Rows)
	}
	if panel.Message != nil {
		Tone(w, panel.Message.Tone, panel.Message.Text)
	}
	for _, m := range panel.Metrics {
		fmt.Fprintf(w, "%s: %s\n", m.Label, m.Display)
	}
}

// TerminalTable renders rows as an ASCII table.
func TerminalTable(w io.Writer, columns []string, rows [][]any) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = service.FormatValue(v)
		}
		table.Append(cells)
	}
	table.Render()
}

// Tone prints text in the color of tone. Unknown tones print plain.
func Tone(w io.Writer, tone insight.Tone, text string) {
	if c, ok := toneColors[tone]; ok {
		c.Fprintln(w, text)
		return
	}
	fmt.Fprintln(w, text)
}

func terminalHome(w io.Writer, home insight.HomeContent) {
	fmt.Fprintln(w, home.Heading)
	fmt.Fprintln(w, home.Summary)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Features:")
	for _, f := range home.Features {
		fmt.Fprintf(w, "  - %s\n", f)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", home.LinkText, home.LinkURL)
}
