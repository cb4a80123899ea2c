package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"blogview/app/models"
	"blogview/app/services"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the stylesheet directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Renderer turns a view snapshot into a page.
type Renderer struct {
	page          *template.Template
	previewLength int
}

// NewRenderer parses the embedded templates. Card previews are cut to
// previewLength runes.
func NewRenderer(previewLength int) (*Renderer, error) {
	r := &Renderer{previewLength: previewLength}
	page, err := template.New("page").Funcs(template.FuncMap{
		"preview": func(p *models.Post) string { return p.Preview(r.previewLength) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.page = page
	return r, nil
}

// HTML writes the full page: the detail panel when a post is selected,
// the card grid otherwise.
func (r *Renderer) HTML(w io.Writer, snap services.Snapshot) error {
	return r.page.ExecuteTemplate(w, "layout", snap)
}

// Text writes a plain-text rendering of the same page, used by the CLI.
func (r *Renderer) Text(w io.Writer, snap services.Snapshot) error {
	var b strings.Builder
	if snap.Selected != nil {
		p := snap.Selected
		fmt.Fprintf(&b, "%s\n\n%s\n\n作者：%s  发布日期：%s\n", p.Title, p.Content, p.Author, p.Date)
	} else {
		if snap.SearchTerm != "" {
			fmt.Fprintf(&b, "搜索：%s (%d)\n\n", snap.SearchTerm, len(snap.Posts))
		}
		for _, p := range snap.Posts {
			fmt.Fprintf(&b, "[%d] %s\n    %s\n    %s · %s\n", p.ID, p.Title, p.Preview(r.previewLength), p.Author, p.Date)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
