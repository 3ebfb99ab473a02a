package web

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/arcanaland/nrhelper/internal/card"
	"github.com/arcanaland/nrhelper/internal/catalog"
)

type pageData struct {
	View       catalog.View
	Inputs     catalog.Inputs
	Categories []card.Category
	Total      int
	Ascending  bool
	SortURL    string
	StaplesURL string
}

var funcs = template.FuncMap{
	"image": func(rec card.Record) string {
		if rec.ImageURL == "" {
			return PlaceholderImage
		}
		return rec.ImageURL
	},
	"label": func(c card.Category) string { return c.Label() },
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	in := ParseInputs(r.URL.Query())

	sortIn := in
	sortIn.Direction = in.Direction.Toggle()
	staplesIn := in
	staplesIn.Staples = !in.Staples

	data := pageData{
		View:       catalog.ComputeView(s.records, in),
		Inputs:     in,
		Categories: card.Categories(),
		Total:      len(s.records),
		Ascending:  in.Direction == catalog.Ascending,
		SortURL:    "/?" + Query(sortIn).Encode(),
		StaplesURL: "/?" + Query(staplesIn).Encode(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tpl.Execute(w, data); err != nil {
		s.logger.Error("render page", zap.Error(err))
	}
}

const pageTpl = `<!doctype html>
<html lang="en">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>Yu-Gi-Oh! NR Helper</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto;max-width:1200px;margin:0 auto;padding:1rem}
.controls{display:flex;gap:10px;flex-wrap:wrap;margin-bottom:1rem}
.controls input,.controls select{padding:8px;border-radius:6px}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(160px,1fr));gap:16px}
.card{position:relative;text-align:center;text-decoration:none;color:inherit}
.card img.art{width:100%;border-radius:4px}
.rarity{position:absolute;top:4px;left:4px;padding:2px 6px;border-radius:4px;font-weight:bold;background:#eee}
.rarity.Rare{background:#2196F3;color:#fff}
.status{position:absolute;top:4px;right:4px;width:32px;height:32px;border-radius:50%;background:black;border:4px solid red;color:yellow;font-weight:bold;line-height:32px}
.name{font-size:1.2rem;font-weight:bold;margin:8px 0;color:#0077cc}
.muted{color:#777}
</style>
<body>
<div class="controls">
  <a href="{{.StaplesURL}}"><button type="button">{{if .Inputs.Staples}}Show All Cards{{else}}Show Staples{{end}}</button></a>
</div>
<h1>Yu-Gi-Oh! NR Helper</h1>
<form class="controls" method="get" action="/">
  <input type="text" name="q" placeholder="Search cards..." value="{{.Inputs.Search}}" />
  <select name="archetype">
    <option value="">All Archetypes</option>
    {{- range .View.Archetypes}}
    <option value="{{.}}"{{if eq . $.Inputs.Archetype}} selected{{end}}>{{.}}</option>
    {{- end}}
  </select>
  <select name="type">
    <option value="all">All Types</option>
    {{- range .Categories}}
    <option value="{{.}}"{{if eq . $.Inputs.Category}} selected{{end}}>{{label .}}</option>
    {{- end}}
  </select>
  {{- if .Inputs.Staples}}<input type="hidden" name="staples" value="1" />{{end}}
  {{- if .Ascending}}<input type="hidden" name="sort" value="asc" />{{end}}
  <button type="submit">Filter</button>
  <a href="{{.SortURL}}"><button type="button">Sort {{.Inputs.Direction.Label}}</button></a>
</form>
<p class="muted">{{len .View.Cards}} of {{.Total}} cards</p>
<div class="grid">
{{- range .View.Cards}}
  {{- if .DetailURL}}
  <a class="card" href="{{.DetailURL}}" target="_blank" rel="noopener noreferrer">
  {{- else}}
  <div class="card">
  {{- end}}
    {{- if .Rarity.Badge}}<span class="rarity {{.Rarity}}">{{.Rarity.Badge}}</span>{{end}}
    <img class="art" src="{{image .}}" alt="{{.Name}}" />
    {{- if .Restricted}}<span class="status">{{.StatusValue}}</span>{{end}}
    <p class="name">{{.Name}}</p>
  {{- if .DetailURL}}
  </a>
  {{- else}}
  </div>
  {{- end}}
{{- else}}
  <p class="muted">No cards match the current filters.</p>
{{- end}}
</div>
</body>
</html>`
