package render

import (
	"html/template"
	"io"

	"github.com/yumyai/protfold/logger"
	"go.uber.org/zap"
)

var home_page_template *template.Template

// HomePageData describes the state of the input form for rendering.
type HomePageData struct {
	DefaultSequence string
	MaxLength       int
	ErrorMessage    string
}

// init initializes the templates used for rendering the HTML page.
func init() {
	mainTmpl := `
	<!DOCTYPE html>
	<html>
	<head>
	    <title>Protein 3D Structure Demo</title>
	    <style>
        body {
            font-family: sans-serif;
            margin: 2em;
        }
        input[type=text] {
            width: 40em;
            font-family: monospace;
        }
        .error {
            color: red;
        }
   		</style>
	</head>
	<body>
		<h1>Protein 3D Structure Prediction and Visualization</h1>
		<p>Input an amino acid sequence (max {{ .MaxLength }} residues, symbols ACDEFGHIKLMNPQRSTVWY) to predict a pseudo 3D structure and visualize it.</p>
		{{ if .ErrorMessage }}
			<p class="error">{{ .ErrorMessage }}</p>
		{{ end }}
		<form action="/predict" method="post">
			<input type="text" name="sequence" value="{{ .DefaultSequence }}" maxlength="{{ .MaxLength }}">
			<button type="submit">Predict and Visualize Structure</button>
		</form>
		<p><a href="/history">Recent predictions</a></p>
	</body>
	</html>`

	home_page_template = template.Must(template.New("home_page").Parse(mainTmpl))
}

// Function to render the input form page
func RenderHomePage(w io.Writer, data HomePageData) error {
	logger.Debug("Rendering home page", zap.Bool("has_error", data.ErrorMessage != ""))
	return home_page_template.Execute(w, data)
}
