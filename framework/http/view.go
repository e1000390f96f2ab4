package http

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"
)

// ViewEngine renders named templates from a filesystem. Field plugins hand it
// their embedded views; parsed templates are cached per name.
type ViewEngine struct {
	fsys  fs.FS
	ext   string
	funcs template.FuncMap

	mu    sync.RWMutex
	cache map[string]*template.Template
}

// NewViewEngine creates a ViewEngine over fsys. ext is the file extension
// (e.g. ".html") appended to view names.
func NewViewEngine(fsys fs.FS, ext string, funcs template.FuncMap) *ViewEngine {
	return &ViewEngine{fsys: fsys, ext: ext, funcs: funcs, cache: make(map[string]*template.Template)}
}

// Render executes the view called name with data and returns the markup.
//
//	html, err := engine.Render("input", data)
func (ve *ViewEngine) Render(name string, data any) (template.HTML, error) {
	tmpl, err := ve.lookup(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("view %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

func (ve *ViewEngine) lookup(name string) (*template.Template, error) {
	ve.mu.RLock()
	tmpl, ok := ve.cache[name]
	ve.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := template.New(path.Base(name) + ve.ext).Funcs(ve.funcs).ParseFS(ve.fsys, name+ve.ext)
	if err != nil {
		return nil, fmt.Errorf("view %s: %w", name, err)
	}
	ve.mu.Lock()
	ve.cache[name] = tmpl
	ve.mu.Unlock()
	return tmpl, nil
}
