// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package challenge

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrSyntax          = errors.New("challenge: submission does not parse")
	ErrForbiddenImport = errors.New("challenge: forbidden import")
	ErrMissingExport   = errors.New("challenge: submission does not declare the exported name")
)

// importSpec is one hoisted import.
type importSpec struct {
	name string // alias, or ""
	path string
}

// submission is learner source split into imports and top-level
// declarations.
type submission struct {
	imports []importSpec
	decls   string
	names   []string // declared top-level identifiers
}

// hasPackageClause reports whether the first token of src is "package".
func hasPackageClause(src string) bool {
	var s scanner.Scanner
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))
	s.Init(file, []byte(src), nil, 0)
	_, tok, _ := s.Scan()
	return tok == token.PACKAGE
}

// parseSubmission parses learner source. A missing package clause is
// supplied. The package name is ignored; everything is evaluated in main.
func parseSubmission(src string) (*submission, error) {
	if !hasPackageClause(src) {
		src = "package main\n\n" + src
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "solution.go", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	sub := &submission{}
	var body []string
	for _, decl := range f.Decls {
		if gd, ok := decl.(*ast.GenDecl); ok && gd.Tok == token.IMPORT {
			for _, spec := range gd.Specs {
				is := spec.(*ast.ImportSpec)
				path, err := strconv.Unquote(is.Path.Value)
				if err != nil {
					return nil, fmt.Errorf("%w: import %s: %w", ErrSyntax, is.Path.Value, err)
				}
				imp := importSpec{path: path}
				if is.Name != nil {
					imp.name = is.Name.Name
				}
				sub.imports = append(sub.imports, imp)
			}
			continue
		}
		start := fset.Position(decl.Pos()).Offset
		end := fset.Position(decl.End()).Offset
		body = append(body, src[start:end])
		sub.names = append(sub.names, declNames(decl)...)
	}
	sub.decls = strings.Join(body, "\n\n")
	return sub, nil
}

func declNames(decl ast.Decl) []string {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		if d.Recv == nil {
			return []string{d.Name.Name}
		}
	case *ast.GenDecl:
		var names []string
		for _, spec := range d.Specs {
			switch s := spec.(type) {
			case *ast.ValueSpec:
				for _, n := range s.Names {
					names = append(names, n.Name)
				}
			case *ast.TypeSpec:
				names = append(names, s.Name.Name)
			}
		}
		return names
	}
	return nil
}

// validate checks imports against allowed and that export is declared.
func (s *submission) validate(allowed map[string]bool, export string) error {
	var forbidden []string
	for _, imp := range s.imports {
		if !allowed[imp.path] {
			forbidden = append(forbidden, imp.path)
		}
	}
	if len(forbidden) > 0 {
		permitted := make([]string, 0, len(allowed))
		for p := range allowed {
			permitted = append(permitted, p)
		}
		slices.Sort(permitted)
		return fmt.Errorf("%w: %v (allowed: %v)", ErrForbiddenImport, forbidden, permitted)
	}
	if export != "" && !slices.Contains(s.names, export) {
		return fmt.Errorf("%w: %s", ErrMissingExport, export)
	}
	return nil
}

// checkFunc is the generated function each case calls.
const checkFunc = "checkCase"

// program assembles the interpreted source for one case.
func (s *submission) program(prelude string, tc Case) string {
	var b strings.Builder
	b.WriteString("package main\n\n")
	if len(s.imports) > 0 {
		b.WriteString("import (\n")
		for _, imp := range s.imports {
			if imp.name != "" {
				fmt.Fprintf(&b, "\t%s %q\n", imp.name, imp.path)
			} else {
				fmt.Fprintf(&b, "\t%q\n", imp.path)
			}
		}
		b.WriteString(")\n\n")
	}
	b.WriteString(prelude)
	b.WriteString("\n\n")
	b.WriteString(s.decls)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "func %s() any {\n", checkFunc)
	if tc.Setup != "" {
		for line := range strings.SplitSeq(tc.Setup, "\n") {
			fmt.Fprintf(&b, "\t%s\n", line)
		}
	}
	fmt.Fprintf(&b, "\treturn %s\n}\n", tc.Expr)
	return b.String()
}
