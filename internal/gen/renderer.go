package gen

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"xsd-generator/internal/ir"
)

// Config holds configuration for header rendering.
type Config struct {
	// Namespace wraps every declaration of a header.
	Namespace string
	// Extension is appended to the record name to form the file name.
	Extension string
	// SortByDependency declares referenced types before their users.
	SortByDependency bool
}

// DefaultConfig returns the default renderer configuration.
func DefaultConfig() Config {
	return Config{
		Namespace:        "OpenDRIVE",
		Extension:        ".hpp",
		SortByDependency: true,
	}
}

//go:embed templates/header.hpp.tmpl
var headerSource string

var headerTemplate = template.Must(template.New("header").
	Funcs(template.FuncMap{"ident": identifier}).
	Parse(headerSource))

// Renderer renders IR records into C++ headers.
type Renderer struct {
	config Config
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	return &Renderer{config: config}
}

// Filename returns the header file name for rec.
func (r *Renderer) Filename(rec ir.Record) string {
	return rec.Name + r.config.Extension
}

// Render renders rec into header text.
func (r *Renderer) Render(rec ir.Record) ([]byte, error) {
	data := &headerData{
		Name:      rec.Name,
		Namespace: r.config.Namespace,
	}

	for _, e := range rec.Data.Entries() {
		data.Decls = append(data.Decls, buildDecl(e))
	}

	if r.config.SortByDependency {
		sorted, err := sortDecls(data.Decls)
		if err != nil && !errors.Is(err, ErrCycle) {
			return nil, err
		}

		// A cycle keeps IR order.
		if err == nil {
			data.Decls = sorted
		}
	}

	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderFile renders rec into a GeneratedFile.
func (r *Renderer) RenderFile(rec ir.Record) (GeneratedFile, error) {
	content, err := r.Render(rec)
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("rendering %s: %w", rec.Name, err)
	}

	return GeneratedFile{Filename: r.Filename(rec), Content: content}, nil
}

func sortDecls(decls []declData) ([]declData, error) {
	index := make(map[string]int, len(decls))
	for i, d := range decls {
		index[d.Name] = i
	}

	order, err := topoSortDecls(len(decls), func(i int) []int {
		var deps []int

		seen := make(map[int]bool)

		for _, name := range decls[i].deps {
			if j, ok := index[name]; ok && j != i && !seen[j] {
				seen[j] = true
				deps = append(deps, j)
			}
		}

		return deps
	})
	if err != nil {
		return nil, err
	}

	out := make([]declData, 0, len(decls))
	for _, i := range order {
		out = append(out, decls[i])
	}

	return out, nil
}

// identifier makes s usable as a C++ identifier: characters outside
// [A-Za-z0-9_] become underscores and a leading digit gets an underscore
// prefix.
func identifier(s string) string {
	var b strings.Builder

	for i, r := range s {
		if i == 0 && unicode.IsDigit(r) {
			b.WriteByte('_')
		}

		if r == '_' || (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	if b.Len() == 0 {
		return "_"
	}

	return b.String()
}
