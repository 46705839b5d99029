package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"votehall/internal/core"
)

//go:embed templates/*.html
var templateFS embed.FS

const layout = "templates/layout.html"

const (
	PageRegister    = "register"
	PageLogin       = "login"
	PageNominees    = "nominees"
	PageNominee     = "nominee"
	PageNomineeForm = "nominee_form"
	PageCategories  = "categories"
	PageResults     = "results"
	PageMyVotes     = "my_votes"
	PageAdminVotes  = "admin_votes"
	PageError       = "error"
)

var pages = []string{
	PageRegister,
	PageLogin,
	PageNominees,
	PageNominee,
	PageNomineeForm,
	PageCategories,
	PageResults,
	PageMyVotes,
	PageAdminVotes,
	PageError,
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04 MST")
	},
}

// Page is what every template is executed with. Form echoes submitted
// values back into a form and Fields holds per-field validation messages.
type Page struct {
	Title     string
	Principal core.Principal
	Notice    string
	Error     string
	Fields    map[string]string
	Form      any
	Data      any
}

type NomineesData struct {
	Category   string
	Categories []string
	Nominees   []core.Nominee
}

type AdminVotesData struct {
	Category   string
	Categories []string
	Votes      []core.VoteRecord
}

type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page together with the shared layout.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template, len(pages)),
	}

	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS, layout, "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

func (r *Renderer) Render(w io.Writer, page string, data Page) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("execute template %s: %w", page, err)
	}

	return nil
}
