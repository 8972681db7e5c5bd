// Render HTML for viewing a prediction result

package render

import (
	"html/template"
	"io"

	"github.com/yumyai/protfold/logger"
	"github.com/yumyai/protfold/pkg/nnet"
	"github.com/yumyai/protfold/pkg/protparam"
	"go.uber.org/zap"
)

var result_page_template *template.Template

// ResultPageData carries everything the result page shows: the coordinate
// table, the statistics block and the path the 3D viewer fetches.
type ResultPageData struct {
	ResultID string
	Sequence string
	Points   []nnet.Point
	Analysis *protparam.Analysis
	PDBPath  string
}

// init initializes the templates used for rendering the result page.
func init() {
	mainTmpl := `
	<!DOCTYPE html>
	<html>
	<head>
	    <title>Prediction {{ .ResultID }}</title>
		<script src="https://3Dmol.org/build/3Dmol-min.js"></script>
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
            text-align: right;
        }
        #viewer {
            width: 480px;
            height: 480px;
            position: relative;
        }
   		</style>
	</head>
	<body>
		<h1>Predicted structure</h1>
		<p><strong>Result ID:</strong> {{ .ResultID }}</p>
		<p><strong>Sequence ({{ len .Sequence }} residues):</strong> <code>{{ .Sequence }}</code></p>
		<p>The model is untrained; coordinates are architecture-shaped noise and carry no biological meaning.</p>

		<h2>3D view</h2>
		<div id="viewer"></div>
		<p>[<a href="{{ .PDBPath }}">PDB</a>] Download the structure record</p>

		{{ template "statistics" .Analysis }}

		<h2>Predicted 3D Coordinates (x, y, z)</h2>
		<table>
		<tr><th>#</th><th>x</th><th>y</th><th>z</th></tr>
		{{ range $i, $p := .Points }}
			<tr>
				<td>{{ add $i 1 }}</td>
				<td>{{ printf "%.3f" $p.X }}</td>
				<td>{{ printf "%.3f" $p.Y }}</td>
				<td>{{ printf "%.3f" $p.Z }}</td>
			</tr>
		{{ end }}
		</table>

		<p><a href="/">New prediction</a> | <a href="/history">Recent predictions</a></p>

		<script>
			var viewer = $3Dmol.createViewer("viewer");
			fetch("{{ .PDBPath }}")
				.then(function (resp) { return resp.text(); })
				.then(function (pdb) {
					viewer.addModel(pdb, "pdb");
					viewer.setStyle({ cartoon: { color: "spectrum" } });
					viewer.zoomTo();
					viewer.render();
				});
		</script>
	</body>
	</html>`

	statisticsTmpl := `
	{{ define "statistics" }}
		<h2>Sequence statistics</h2>
		<table>
			<tr><th>Molecular Weight</th><td>{{ printf "%.2f" .MolecularWeight }}</td></tr>
			<tr><th>Aromaticity</th><td>{{ printf "%.4f" .Aromaticity }}</td></tr>
			<tr><th>Instability Index</th><td>{{ printf "%.2f" .InstabilityIndex }}</td></tr>
			<tr><th>Isoelectric Point</th><td>{{ printf "%.2f" .IsoelectricPoint }}</td></tr>
			<tr><th>Secondary Structure Fraction (Helix, Turn, Sheet)</th>
				<td>{{ printf "%.3f" .SecondaryStructure.Helix }}, {{ printf "%.3f" .SecondaryStructure.Turn }}, {{ printf "%.3f" .SecondaryStructure.Sheet }}</td></tr>
		</table>
		<h3>Amino Acid Composition</h3>
		<table>
		<tr><th>Residue</th><th>Fraction</th></tr>
		{{ range $aa, $frac := .Composition }}
			<tr><td>{{ $aa }}</td><td>{{ printf "%.4f" $frac }}</td></tr>
		{{ end }}
		</table>
	{{ end }}`

	result_page_template = template.New("result_page").Funcs(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	})
	result_page_template = template.Must(result_page_template.Parse(mainTmpl))
	result_page_template = template.Must(result_page_template.Parse(statisticsTmpl))
}

// Function to render an HTML page with the prediction result
func RenderResultPage(w io.Writer, data ResultPageData) error {
	logger.Info("Rendering result page", zap.String("result_id", data.ResultID), zap.Int("points", len(data.Points)))
	return result_page_template.Execute(w, data)
}
