package views

import (
	"embed"
	"io/fs"
	"net/http"

	"ManhwaCatalog/pkg/utils"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templates embed.FS

// New builds the html view engine over the embedded templates.
func New() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("categoryToken", utils.CategoryToken)

	return engine
}
