// Package rendering renders column headers as HTML markup.
package rendering

import (
	"embed"
	"io"
	"strings"

	"github.com/google/safehtml/template"

	"pulseboard/internal/column"
)

//go:embed templates/*
var templateFS embed.FS

// HeaderRenderer renders column.Props to HTML.
type HeaderRenderer struct {
	headerTemplate *template.Template
}

// NewHeaderRenderer parses the embedded templates.
func NewHeaderRenderer() (*HeaderRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	headerTemplate, err := template.New("column_header.html").ParseFS(trustedFS, "templates/column_header.html")
	if err != nil {
		return nil, err
	}

	return &HeaderRenderer{headerTemplate: headerTemplate}, nil
}

// headerData is the template view of column.Model.
type headerData struct {
	Title      string
	CountLabel string
	Sortable   bool
	Sort       string // "asc", "desc", "neutral" or "" for no icon
	SortGlyph  string
	SortName   string
	Presets    []presetData
	Tools      []toolData
}

type presetData struct {
	Label  string
	Active bool
}

type toolData struct {
	Name  string
	Glyph string
	Wired bool
}

func newHeaderData(m column.Model) headerData {
	d := headerData{
		Title:      m.Title,
		CountLabel: m.CountLabel,
		Sortable:   m.Sortable,
		SortGlyph:  m.SortIcon.Glyph(),
		SortName:   m.SortIcon.Name(),
	}
	switch m.SortIcon {
	case column.IconSortAsc:
		d.Sort = "asc"
	case column.IconSortDesc:
		d.Sort = "desc"
	case column.IconSortable:
		d.Sort = "neutral"
	}
	for _, b := range m.Presets {
		d.Presets = append(d.Presets, presetData{Label: string(b.Preset), Active: b.Active})
	}
	for _, b := range m.Toolbar {
		d.Tools = append(d.Tools, toolData{Name: b.Icon.Name(), Glyph: b.Icon.Glyph(), Wired: b.Wired})
	}
	return d
}

// Render writes the header markup for p. Output depends only on p's visible fields.
func (r *HeaderRenderer) Render(w io.Writer, p column.Props) error {
	return r.headerTemplate.Execute(w, newHeaderData(column.Build(p)))
}

// RenderString is Render into a string.
func (r *HeaderRenderer) RenderString(p column.Props) (string, error) {
	var b strings.Builder
	if err := r.Render(&b, p); err != nil {
		return "", err
	}
	return b.String(), nil
}
