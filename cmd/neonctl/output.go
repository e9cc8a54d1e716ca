package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

// table is the renderer-independent shape of tabular command output.
// Quiet mode prints only the first column, one value per line, for
// piping into other tools.
type table struct {
	headers []string
	rows    [][]string
}

// render writes the result in the selected output format. jsonValue is
// the structured form used by the json renderer.
func render(t table, jsonValue interface{}) error {
	switch outputFormat {
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, strings.Join(t.headers, "\t"))
		for _, row := range t.rows {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		return w.Flush()
	case "markdown":
		fmt.Println("| " + strings.Join(t.headers, " | ") + " |")
		separators := make([]string, len(t.headers))
		for i := range separators {
			separators[i] = "---"
		}
		fmt.Println("| " + strings.Join(separators, " | ") + " |")
		for _, row := range t.rows {
			fmt.Println("| " + strings.Join(row, " | ") + " |")
		}
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonValue)
	case "quiet":
		for _, row := range t.rows {
			if len(row) > 0 {
				fmt.Println(row[0])
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, json, markdown, or quiet)", outputFormat)
	}
}
