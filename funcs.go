package bem

import "text/template"

// FuncMap returns template functions exposing the package to templates.
//
//	bemBlock "name" ["modifier" ...]   builds a ClassNames value
//
// Every exported ClassNames method can be called on the result. Validation
// errors abort template execution. For html/template, convert the result with
// htmltemplate.FuncMap(bem.FuncMap()).
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"bemBlock": Block,
	}
}
