package main

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func paint(w io.Writer, s string, colors ...text.Color) string {
	if !shouldColorize(w) {
		return s
	}
	return text.Colors(colors).Sprint(s)
}

// renderTable draws rows under headers. Columns listed in wrap are capped
// at maxCellWidth and wrapped.
func renderTable(w io.Writer, headers []string, rows [][]string, wrap ...int) string {
	tw := table.NewWriter()
	if shouldColorize(w) {
		tw.SetStyle(table.StyleColoredBright)
	} else {
		tw.SetStyle(table.StyleRounded)
	}

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			r[i] = ""
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(wrap))
	for _, col := range wrap {
		configs = append(configs, table.ColumnConfig{Number: col, WidthMax: maxCellWidth})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

const maxCellWidth = 60
