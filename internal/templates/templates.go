package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/moriware/rncreate/internal/naming"
)

//go:embed files/*.tmpl
var templateFS embed.FS

var parsed = template.Must(
	template.New("templates").Delims("[[", "]]").ParseFS(templateFS, "files/*.tmpl"),
)

// File is one generated source file.
type File struct {
	Filename string // relative to the artifact's base directory
	Content  string
	Message  string // progress line shown before the file is written
}

// Data is the record every template is executed against.
type Data struct {
	Name        string // e.g. "sampleName"
	Capitalized string // e.g. "SampleName"
}

// NewData derives the template record for name.
func NewData(name string) Data {
	return Data{Name: name, Capitalized: naming.CapitalizeFirstLetter(name)}
}

// render executes one embedded template. Templates are parsed at init and
// only reference Data fields, so an execution failure is a programming
// error rather than bad input.
func render(tmplName string, data Data) string {
	var buf bytes.Buffer
	if err := parsed.ExecuteTemplate(&buf, tmplName, data); err != nil {
		panic(fmt.Sprintf("templates: executing %s: %v", tmplName, err))
	}
	return buf.String()
}
