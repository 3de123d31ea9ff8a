package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/mtlprog/patrimoine/internal/dashboard"
	"github.com/mtlprog/patrimoine/internal/format"
)

//go:embed templates/*.html
var templatesFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

// HTML writes the dashboard page for v.
func HTML(w io.Writer, v dashboard.View, f *format.Formatter) error {
	// A template error must not leave a half-written page.
	var buf bytes.Buffer
	if err := dashboardTmpl.ExecuteTemplate(&buf, "dashboard.html", newPage(v, f)); err != nil {
		return fmt.Errorf("executing dashboard template: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing dashboard page: %w", err)
	}
	return nil
}
