package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html tasks/*.html users/*.html
var FS embed.FS

// NewEngine builds the template engine over the embedded views. Template
// names are file paths without the extension, e.g. "tasks/task_list".
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(FS), ".html")
}
