// Package export renders a day plan in the formats understood by the CLI.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/dayplanner/core/interval"
)

// Format names an output encoding.
type Format string

const (
	FormatList  Format = "list"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Formats lists the supported formats.
var Formats = []Format{FormatList, FormatJSON, FormatCSV, FormatYAML, FormatTable}

// Entry is one event of the plan as it is exported.
type Entry struct {
	Index    int    `json:"index" yaml:"index"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Duration int    `json:"duration_min" yaml:"duration_min"`
	Label    string `json:"label" yaml:"label"`
}

// FromEvents converts ordered events into entries.
func FromEvents(evs []*interval.Interval) []Entry {
	entries := make([]Entry, 0, len(evs))
	for i, ev := range evs {
		entries = append(entries, Entry{
			Index:    i,
			Start:    ev.Start().String(),
			End:      ev.End().String(),
			Duration: ev.Duration(),
			Label:    ev.Label(),
		})
	}
	return entries
}

// Write encodes entries to w in format f.
func Write(w io.Writer, f Format, entries []Entry) error {
	switch f {
	case FormatList, "":
		return WriteList(w, entries)
	case FormatJSON:
		return WriteJSON(w, entries)
	case FormatCSV:
		return WriteCSV(w, entries)
	case FormatYAML:
		return WriteYAML(w, entries)
	case FormatTable:
		return WriteTable(w, entries)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// WriteFile writes entries to path on fs.
func WriteFile(fs afero.Fs, path string, f Format, entries []Entry) error {
	file, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(file, f, entries); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteList writes one "[i]HH:MM-HH:MM/label" line per entry.
func WriteList(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "[%d]%s-%s/%s\n", e.Index, e.Start, e.End, e.Label); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the plan as a JSON array.
func WriteJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	return enc.Encode(entries)
}

// WriteCSV writes the plan in CSV format with a header row.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "start", "end", "duration_min", "label"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write(e.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteYAML writes the plan as a YAML sequence.
func WriteYAML(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}

// WriteTable writes an aligned ASCII table.
func WriteTable(w io.Writer, entries []Entry) error {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"#", "Start", "End", "Minutes", "Label"})
	for _, e := range entries {
		tbl.Append(e.record())
	}
	tbl.Render()
	return nil
}

func (e Entry) record() []string {
	return []string{
		strconv.Itoa(e.Index),
		e.Start,
		e.End,
		strconv.Itoa(e.Duration),
		e.Label,
	}
}
