package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/chatbot-service/internal/platform/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names understood by Pages.Render.
const (
	pageLogin    = "login"
	pageRegister = "register"
	pageChat     = "chat"
)

// pageData is the model passed to every page template.
type pageData struct {
	Title    string
	Username string
	Error    string
	Notice   string
}

// Pages holds the parsed HTML templates, one per page, each sharing the
// common layout.
type Pages struct {
	pages map[string]*template.Template
}

// NewPages parses the embedded templates. It fails only if a template is
// malformed, which is a build defect.
func NewPages() (*Pages, error) {
	p := &Pages{pages: make(map[string]*template.Template)}
	for _, name := range []string{pageLogin, pageRegister, pageChat} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		p.pages[name] = t
	}
	return p, nil
}

// render executes the named page into a buffer first so that a template
// error still produces a clean 500.
func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	t, ok := p.pages[name]
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "rendering page",
			slog.String("page", name),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
