package html

import (
	"embed"
	"html/template"
	"io"
	"log"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// NewTemplate parses the embedded page templates.
func NewTemplate() (*Template, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	for _, t := range tmpl.Templates() {
		if t.Name() != "" {
			log.Println("Loaded template:", t.Name())
		}
	}
	return &Template{Templates: tmpl}, nil
}
