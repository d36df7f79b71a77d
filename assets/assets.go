package assets

import (
	"embed"
	"text/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// FileTemplate is the name of the top-level template of a generated file.
const FileTemplate = "file"

// Templates parses the embedded source templates.
func Templates() (*template.Template, error) {
	return template.New("swatchgen").ParseFS(templatesFS, "templates/*.tmpl")
}
