package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/grandboard/internal/common"
	"github.com/dmitrijs2005/grandboard/internal/models"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

func renderEntries(w io.Writer, entries []models.Entry, format string, pending []string) error {
	switch format {
	case outputYAML:
		return renderYAML(w, entries)
	case outputTable, "":
		return renderTable(w, entries, pending)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderTable(w io.Writer, entries []models.Entry, pending []string) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No entries.")
		return err
	}

	isPending := make(map[string]bool, len(pending))
	for _, id := range pending {
		isPending[id] = true
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tCATEGORY\tTITLE\tTHEMES\t")
	for _, e := range entries {
		id := e.ID
		if isPending[id] {
			id += " *"
		}
		themes := strings.Join(nonEmpty(e.Theme1, e.Theme2), ", ")
		fmt.Fprintf(tw, "%s\t%s %d\t%s\t%s\t%s\t\n", id, common.MonthName(e.Month), e.Year, e.Category, e.Title, themes)
	}
	return tw.Flush()
}

func renderYAML(w io.Writer, entries []models.Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}

func nonEmpty(vals ...string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
