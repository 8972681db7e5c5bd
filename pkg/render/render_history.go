package render

import (
	"html/template"
	"io"

	"github.com/yumyai/protfold/logger"
	"go.uber.org/zap"
)

var history_page_template *template.Template

// HistoryEntry is one row of the recent predictions table.
type HistoryEntry struct {
	ID               string
	Sequence         string
	Length           int
	MolecularWeight  float64
	InstabilityIndex float64
	CreatedAt        string
}

type HistoryPageData struct {
	Entries []HistoryEntry
}

// init initializes the templates used for rendering the history page.
func init() {
	mainTmpl := `
	<!DOCTYPE html>
	<html>
	<head>
	    <title>Recent Predictions</title>
	    <style>
        body {
            font-family: sans-serif;
            margin: 2em;
        }
        table {
            border-collapse: collapse;
        }
        td, th {
            border: 1px solid #999999;
            padding: 0.2em 0.6em;
        }
        code {
            word-break: break-all;
        }
   		</style>
	</head>
	<body>
		<h1>Recent Predictions</h1>
		{{ if .Entries }}
		<table>
		<tr>
			<th>When</th>
			<th>Sequence</th>
			<th>Length</th>
			<th>Molecular Weight</th>
			<th>Instability Index</th>
		</tr>
		{{ range .Entries }}
			<tr>
				<td>{{ .CreatedAt }}</td>
				<td><code>{{ .Sequence }}</code></td>
				<td>{{ .Length }}</td>
				<td>{{ printf "%.2f" .MolecularWeight }}</td>
				<td>{{ printf "%.2f" .InstabilityIndex }}</td>
			</tr>
		{{ end }}
		</table>
		{{ else }}
			<p>No predictions recorded yet.</p>
		{{ end }}
		<p><a href="/">New prediction</a></p>
	</body>
	</html>`

	history_page_template = template.Must(template.New("history_page").Parse(mainTmpl))
}

// Function to render an HTML page with the recent prediction table
func RenderHistoryPage(w io.Writer, data HistoryPageData) error {
	logger.Debug("Rendering history page", zap.Int("entries", len(data.Entries)))
	return history_page_template.Execute(w, data)
}
