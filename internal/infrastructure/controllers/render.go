package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/depmeta/internal/domain/entities"
)

const (
	yamlIndent     = 2
	tableMinWidth  = 0
	tableTabWidth  = 4
	tablePadding   = 2
	tablePadChar   = ' '
	noValueDisplay = "-"
)

// Render writes the records in the requested format ("json", "yaml" or "table").
func Render(w io.Writer, format string, records []entities.UpdatedDependency) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(yamlIndent)
		if err := encoder.Encode(records); err != nil {
			return err
		}
		return encoder.Close()
	case "table":
		return renderTable(w, records)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}

func renderTable(w io.Writer, records []entities.UpdatedDependency) error {
	table := tabwriter.NewWriter(w, tableMinWidth, tableTabWidth, tablePadding, tablePadChar, 0)
	fmt.Fprintln(table, "DEPENDENCY\tTYPE\tUPDATE\tECOSYSTEM\tDIRECTORY\tFROM\tTO\tSCORE\tADVISORY")
	for _, r := range records {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%g\t%s\n",
			r.DependencyName,
			r.DependencyType,
			orNone(string(r.UpdateType)),
			r.PackageEcosystem,
			r.Directory,
			orNone(r.PrevVersion),
			orNone(r.NewVersion),
			r.CompatScore,
			orNone(r.GHSAID),
		)
	}
	return table.Flush()
}

func orNone(value string) string {
	if value == "" {
		return noValueDisplay
	}
	return value
}
