package main

import (
	"fmt"
	"go/ast"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/imports"
)

// deprecatePath is the import path of the runtime package generated code uses.
const deprecatePath = "github.com/sghaida/deprecate/deprecate"

// forwarder is one generated deprecated declaration.
type forwarder struct {
	VarName  string // package var holding the wrapped function
	Target   string // "Connect" or "(*Client).Get"
	OldLabel string // name shown in the warning for the deprecated construct
	NewLabel string // name shown in the warning for its replacement
	Old      string
	New      string
	RecvDecl string // "(r *Client) " for methods
	Params   string
	Args     string
	Results  string
}

// templateData is the input passed to the Go template.
type templateData struct {
	Spec        *Spec
	ImportsList []ImportSpec
	Forwarders  []forwarder
}

// generate renders the forwarders for spec against idx and returns
// formatted Go source. outPath is only used to resolve sibling files while
// pruning imports.
func generate(spec *Spec, idx *packageIndex, outPath string) ([]byte, error) {
	data := templateData{Spec: spec}
	var importsList []ImportSpec

	for _, e := range spec.Functions {
		site, err := idx.lookup(e.New)
		if err != nil {
			return nil, err
		}
		if site.decl.Recv != nil {
			return nil, fmt.Errorf("target %s is a method; list it under methods", e.New)
		}
		sig, err := idx.render(site.decl)
		if err != nil {
			return nil, err
		}
		data.Forwarders = append(data.Forwarders, forwarder{
			VarName:  "deprecated" + upperFirst(e.Old),
			Target:   e.New,
			OldLabel: e.Old,
			NewLabel: e.New,
			Old:      e.Old,
			New:      e.New,
			Params:   sig.Params,
			Args:     sig.Args,
			Results:  sig.Results,
		})
		importsList = mergeImports(importsList, site.imports)
	}

	for _, e := range spec.Methods {
		base := recvBase(e.Recv)
		pointer := strings.HasPrefix(strings.TrimSpace(e.Recv), "*")

		site, err := idx.lookup(base + "." + e.New)
		if err != nil {
			return nil, err
		}
		if _, isPtr := site.decl.Recv.List[0].Type.(*ast.StarExpr); isPtr && !pointer {
			return nil, fmt.Errorf("target %s.%s has a pointer receiver; use recv %q", base, e.New, "*"+base)
		}
		sig, err := idx.render(site.decl)
		if err != nil {
			return nil, err
		}

		recvType, target := base, base+"."+e.New
		if pointer {
			recvType, target = "*"+base, "(*"+base+")."+e.New
		}

		args := "r"
		if sig.Args != "" {
			args += ", " + sig.Args
		}

		data.Forwarders = append(data.Forwarders, forwarder{
			VarName:  "deprecated" + upperFirst(base) + upperFirst(e.Old),
			Target:   target,
			OldLabel: base + "." + e.Old,
			NewLabel: base + "." + e.New,
			Old:      e.Old,
			New:      e.New,
			RecvDecl: "(r " + recvType + ") ",
			Params:   sig.Params,
			Args:     args,
			Results:  sig.Results,
		})
		importsList = mergeImports(importsList, site.imports)
	}

	data.ImportsList = ensureDeprecateImport(importsList)

	var out strings.Builder
	if err := genTemplate.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	formatted, err := imports.Process(outPath, []byte(out.String()), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return formatted, nil
}

// mergeImports appends the imports in more whose paths are not in have yet.
// Blank and dot imports stay with their owner file.
func mergeImports(have, more []ImportSpec) []ImportSpec {
	for _, imp := range more {
		if imp.Alias == "_" || imp.Alias == "." {
			continue
		}
		if !containsPath(have, imp.Path) {
			have = append(have, imp)
		}
	}
	return have
}

func containsPath(importsList []ImportSpec, importPath string) bool {
	for _, existing := range importsList {
		if existing.Path == importPath {
			return true
		}
	}
	return false
}

// ensureDeprecateImport guarantees the deprecate package is importable under
// its default identifier, which the template refers to.
func ensureDeprecateImport(importsList []ImportSpec) []ImportSpec {
	out := make([]ImportSpec, 0, len(importsList)+1)
	for _, imp := range importsList {
		if imp.Path == deprecatePath {
			continue
		}
		out = append(out, imp)
	}
	return append(out, ImportSpec{Path: deprecatePath})
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// genTemplate is the Go source template used to generate the forwarders.
var genTemplate = template.Must(
	template.New("deprecgen").Parse(`// Code generated by deprecgen; DO NOT EDIT.

package {{.Spec.Package}}

import (
{{- range .ImportsList}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{range .Forwarders}}
var {{.VarName}} = deprecate.RenameFunction({{$.Spec.Facility}}, {{.Target}}, "{{.OldLabel}}", "{{.NewLabel}}")

// {{.Old}} forwards to {{.New}}.
//
// Deprecated: Use {{.New}} instead.
func {{.RecvDecl}}{{.Old}}({{.Params}}){{.Results}} {
	{{if .Results}}return {{end}}{{.VarName}}({{.Args}})
}
{{end -}}
`),
)
