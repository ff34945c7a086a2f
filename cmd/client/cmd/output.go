package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"datareceiver/internal/domain/record"

	"github.com/fatih/color"
)

const previewLen = 40

func printSent(w io.Writer, rec *record.Record) {
	color.New(color.FgGreen).Fprintln(w, "✓ Data received and saved successfully")
	if rec == nil {
		return
	}
	fmt.Fprintf(w, "  ID: %s | Origin: %s | Datetime: %s\n", rec.ID, rec.Origin, rec.Datetime)
}

func printRecordsJSON(w io.Writer, records []record.Record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func printRecordsTable(w io.Writer, records []record.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No data found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tOrigin\tDatetime\tData\t\n")
	fmt.Fprintf(tw, "---\t---\t---\t---\t\n")

	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			rec.ID,
			rec.Origin,
			rec.Datetime,
			truncate(oneLine(rec.MimeData), previewLen),
		)
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nВсего записей: %d\n", len(records))
	return nil
}

// таблица ломается на переводах строк и табуляциях
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
