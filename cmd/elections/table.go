package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
)

// renderSummary formats label/value pairs as a rounded table on a terminal
// and as plain "label: value" lines when output is redirected.
func renderSummary(title string, pairs [][2]string) string {
	if !stdoutIsTerminal() {
		var b strings.Builder
		b.WriteString(title)
		b.WriteByte('\n')
		for _, pair := range pairs {
			fmt.Fprintf(&b, "%s: %s\n", pair[0], pair[1])
		}
		return b.String()
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)
	for _, pair := range pairs {
		tw.AppendRow(table.Row{pair[0], pair[1]})
	}
	return tw.Render() + "\n"
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
