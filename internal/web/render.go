package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/tokenstudio/tokenstudio/internal/launch"
	"github.com/tokenstudio/tokenstudio/internal/site"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	t, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return t, nil
}

// pageData is the root value passed to the "page" template.
type pageData struct {
	Page    site.Page
	Skin    site.Skin
	SkinCSS template.CSS
	Wizard  *wizardData
}

// wizardData is the value passed to the "wizard" template.
type wizardData struct {
	View     launch.View
	Steps    []launch.Step
	Decimals []int
	Skin     site.SkinName
	Blocked  bool
}

// skinCSS renders the skin palette as CSS custom properties.
// Skin values are compiled-in constants, so they are trusted as CSS.
func skinCSS(s site.Skin) template.CSS {
	vars := []struct{ name, value string }{
		{"--bg", s.Background},
		{"--surface", s.Surface},
		{"--border", s.Border},
		{"--text", s.Text},
		{"--muted", s.Muted},
		{"--accent", s.Accent},
		{"--accent-text", s.AccentText},
		{"--hero-overlay", s.HeroOverlay},
	}
	var b strings.Builder
	for _, v := range vars {
		fmt.Fprintf(&b, "%s: %s; ", v.name, v.value)
	}
	// #nosec G203
	return template.CSS(strings.TrimSpace(b.String()))
}

func newWizardData(v launch.View, skin site.SkinName, blocked bool) *wizardData {
	return &wizardData{
		View:     v,
		Steps:    launch.Steps,
		Decimals: launch.DecimalOptions,
		Skin:     skin,
		Blocked:  blocked,
	}
}

// renderPage executes the page template into a buffer before writing anything.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, data pageData) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, "page", data); err != nil {
		s.log.Error(err, "failed to render page", "path", r.URL.Path)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
