package tui

import (
	"fmt"
	"sort"
	"strings"

	table "github.com/charmbracelet/bubbles/table"

	"maptile/internal/feature"
	"maptile/internal/render"
)

// featureRow describes one loaded feature: what the classifier saw and
// which shape it would become.
func featureRow(i int, f *feature.RawFeature, tess *render.Tessellator) table.Row {
	shape := "-"
	if s := tess.Build(f); s != nil {
		shape = s.Kind().String()
	}
	keys := make([]string, 0, len(f.Properties))
	for k := range f.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	tags := make([]string, 0, len(keys))
	for _, k := range keys {
		tags = append(tags, k+"="+f.Properties[k])
	}
	return table.Row{
		fmt.Sprintf("%d", i+1),
		f.ID,
		f.Type.String(),
		tess.Classifier.Classify(f).String(),
		shape,
		strings.Join(tags, " "),
	}
}

// refreshAttrs rebuilds the feature table from the loaded features.
func (m *Model) refreshAttrs() {
	if len(m.features) == 0 {
		m.showAttrs = false
		m.status = "no features loaded"
		return
	}
	tess := render.NewTessellator(m.cfg.Classifier())
	rows := make([]table.Row, 0, len(m.features))
	for i, f := range m.features {
		rows = append(rows, featureRow(i, f, tess))
	}
	cols := []table.Column{
		{Title: "#", Width: 5},
		{Title: "id", Width: 12},
		{Title: "geometry", Width: 9},
		{Title: "class", Width: 24},
		{Title: "shape", Width: 9},
		{Title: "tags", Width: 40},
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
