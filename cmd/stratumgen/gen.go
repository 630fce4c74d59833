package main

import (
	"bytes"
	"go/format"
	"text/template"

	"github.com/rotisserie/eris"
)

// genTmpl renders a validated schema to Go source. Manager variables are
// prefixed with "m" so schema names never collide with Go keywords.
var genTmpl = template.Must(template.New("gen").Parse(`// Code generated by stratumgen. DO NOT EDIT.

package {{.Package}}

import "github.com/kvistgard/stratum"

{{range .Components}}{{if .Tag}}// {{.Name}} is a tag component.
type {{.Name}} struct{}
{{else}}type {{.Name}} struct {
{{range .Fields}}	{{.Name}} {{.Type}}
{{end}}}
{{end}}
{{end}}// Managers holds the constructed manager graph, one field per schema
// manager, in schema order.
type Managers struct {
{{range .Managers}}	{{.Name}} *stratum.Manager
{{end}}}

// BuildManagers registers the component types and constructs every
// manager in schema order, bases before derived managers. It panics on
// configuration errors, like stratum.NewManager.
func BuildManagers() *Managers {
{{range .Components}}	stratum.RegisterComponent[{{.Name}}]()
{{end}}
{{range .Managers}}	m{{.Name}} := stratum.NewManager(stratum.Config{
		Name: "{{.Name}}",
{{if .Components}}		Components: []stratum.ComponentID{
{{range .Components}}			stratum.GetID[{{.}}](),
{{end}}		},
{{end}}{{if .Bases}}		Bases: []*stratum.Manager{ {{range $i, $b := .Bases}}{{if $i}}, {{end}}m{{$b}}{{end}} },
{{end}}	})
{{end}}
	return &Managers{
{{range .Managers}}		{{.Name}}: m{{.Name}},
{{end}}	}
}
`))

// Generate renders the schema to gofmt-formatted Go source.
func Generate(s *Schema) ([]byte, error) {
	var buf bytes.Buffer
	if err := genTmpl.Execute(&buf, s); err != nil {
		return nil, eris.Wrap(err, "rendering schema")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, eris.Wrap(err, "formatting generated source")
	}
	return src, nil
}
