package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ImportSpec models one Go import: optional alias and full import path.
type ImportSpec struct {
	Alias string
	Path  string
}

// declSite is a function or method declaration plus the file it lives in.
type declSite struct {
	decl    *ast.FuncDecl
	imports []ImportSpec
}

// packageIndex holds the free functions and methods found in a package dir,
// keyed by "Name" and "Type.Name".
type packageIndex struct {
	fset  *token.FileSet
	decls map[string]declSite
}

// indexPackage parses non-test, non-generated Go files in dir. skip names a
// file to ignore (usually the generator's own output).
func indexPackage(dir, skip string) (*packageIndex, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	idx := &packageIndex{fset: token.NewFileSet(), decls: make(map[string]declSite)}
	skip = filepath.Clean(skip)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileName := entry.Name()
		if !strings.HasSuffix(fileName, ".go") ||
			strings.HasSuffix(fileName, "_test.go") ||
			strings.HasSuffix(fileName, ".gen.go") {
			continue
		}

		filePath := filepath.Join(dir, fileName)
		if filepath.Clean(filePath) == skip {
			continue
		}

		file, err := parser.ParseFile(idx.fset, filePath, nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", fileName, err)
		}

		imports := importsOf(file)
		for _, decl := range file.Decls {
			funcDecl, ok := decl.(*ast.FuncDecl)
			if !ok || funcDecl.Name == nil {
				continue
			}
			key := funcDecl.Name.Name
			if funcDecl.Recv != nil && len(funcDecl.Recv.List) == 1 {
				key = receiverTypeName(funcDecl.Recv.List[0].Type) + "." + key
			}
			idx.decls[key] = declSite{decl: funcDecl, imports: imports}
		}
	}
	return idx, nil
}

func importsOf(file *ast.File) []ImportSpec {
	imports := make([]ImportSpec, 0, len(file.Imports))
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		alias := ""
		if imp.Name != nil {
			alias = imp.Name.Name
		}
		imports = append(imports, ImportSpec{Alias: alias, Path: path})
	}
	return imports
}

// receiverTypeName returns "Client" for receivers typed Client, *Client,
// Client[T] or *Client[T].
func receiverTypeName(expr ast.Expr) string {
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.Ident:
			return e.Name
		case *ast.ParenExpr:
			expr = e.X
		default:
			return ""
		}
	}
}

// signature is a declaration rendered for the template.
type signature struct {
	Params  string // "p0 int, p1 ...string"
	Args    string // "p0, p1..."
	Results string // "", " int", " (int, error)"
}

// lookup returns the declaration for key, rejecting generic ones.
func (idx *packageIndex) lookup(key string) (declSite, error) {
	site, ok := idx.decls[key]
	if !ok {
		return declSite{}, fmt.Errorf("target %s not found", key)
	}
	if site.decl.Type.TypeParams != nil && len(site.decl.Type.TypeParams.List) > 0 {
		return declSite{}, fmt.Errorf("target %s is generic; wrap it by hand", key)
	}
	if site.decl.Recv != nil && isGenericRecv(site.decl.Recv.List[0].Type) {
		return declSite{}, fmt.Errorf("target %s has a generic receiver; wrap it by hand", key)
	}
	return site, nil
}

func isGenericRecv(expr ast.Expr) bool {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	switch expr.(type) {
	case *ast.IndexExpr, *ast.IndexListExpr:
		return true
	}
	return false
}

// render prints the parameter and result lists of decl with positional
// parameter names.
func (idx *packageIndex) render(decl *ast.FuncDecl) (signature, error) {
	var (
		params []string
		args   []string
	)

	if decl.Type.Params != nil {
		for _, field := range decl.Type.Params.List {
			typ, err := idx.exprString(field.Type)
			if err != nil {
				return signature{}, err
			}
			_, variadic := field.Type.(*ast.Ellipsis)

			for range max(1, len(field.Names)) {
				name := "p" + strconv.Itoa(len(params))
				params = append(params, name+" "+typ)
				if variadic {
					name += "..."
				}
				args = append(args, name)
			}
		}
	}

	var results []string
	if decl.Type.Results != nil {
		for _, field := range decl.Type.Results.List {
			typ, err := idx.exprString(field.Type)
			if err != nil {
				return signature{}, err
			}
			for range max(1, len(field.Names)) {
				results = append(results, typ)
			}
		}
	}

	sig := signature{
		Params: strings.Join(params, ", "),
		Args:   strings.Join(args, ", "),
	}
	switch len(results) {
	case 0:
	case 1:
		sig.Results = " " + results[0]
	default:
		sig.Results = " (" + strings.Join(results, ", ") + ")"
	}
	return sig, nil
}

func (idx *packageIndex) exprString(expr ast.Expr) (string, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, idx.fset, expr); err != nil {
		return "", err
	}
	return buf.String(), nil
}
