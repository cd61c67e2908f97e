package googleauth

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
)

//go:embed templates/*
var templateFiles embed.FS

var formPostTmpl = template.Must(template.ParseFS(templateFiles, "templates/form_post.html"))

const contentTypeHTML = "text/html; charset=utf-8"

// FormPostNavigator renders an auto-submitting hidden form into the response.
// The browser posts it to Google as soon as the page loads.
type FormPostNavigator struct {
	w http.ResponseWriter
}

var _ Navigator = (*FormPostNavigator)(nil)

func NewFormPostNavigator(w http.ResponseWriter) *FormPostNavigator {
	return &FormPostNavigator{w: w}
}

func (n *FormPostNavigator) Navigate(form *AuthorizationForm) error {
	// Render to a buffer so a template failure doesn't leave a half written page.
	var buf bytes.Buffer
	if err := RenderForm(&buf, form); err != nil {
		return err
	}

	n.w.Header().Set("Content-Type", contentTypeHTML)
	n.w.Header().Set("Cache-Control", "no-store")
	n.w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(n.w); err != nil {
		return fmt.Errorf("[FormPostNavigator] write: %w", err)
	}
	return nil
}

// RenderForm writes the auto-submitting form page for form.
func RenderForm(w io.Writer, form *AuthorizationForm) error {
	if err := formPostTmpl.Execute(w, form); err != nil {
		return fmt.Errorf("[RenderForm] execute template: %w", err)
	}
	return nil
}
