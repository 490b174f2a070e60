package parts

import (
	_ "embed"
	"html/template"
	"log"
	"os"
)

//go:embed landing.css
var landingCSS string

// GetCriticalCSS returns the inline stylesheet for the landing page. LANDING_CSS
// points at a file that replaces the built-in one.
func GetCriticalCSS() (template.CSS, error) {
	path := os.Getenv("LANDING_CSS")
	if path == "" {
		return template.CSS(landingCSS), nil
	}
	css, err := os.ReadFile(path)
	if err != nil {
		log.Println("Critical CSS error:", err)
		return template.CSS(landingCSS), err
	}
	return template.CSS(css), nil
}
