package record

import (
	"embed"
	"html/template"
	"io"

	"datareceiver/internal/domain/record"
)

//go:embed templates/data.html
var templatesFS embed.FS

var dataTemplate = template.Must(template.ParseFS(templatesFS, "templates/data.html"))

type viewData struct {
	Rows   []record.Record
	Filter record.Filter
}

func renderHTML(w io.Writer, rows []record.Record, filter record.Filter) error {
	return dataTemplate.Execute(w, viewData{Rows: rows, Filter: filter})
}
