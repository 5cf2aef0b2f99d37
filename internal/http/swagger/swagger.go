package swagger

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

const (
	uiPath       = "/swagger"
	specPath     = "/swagger/openapi.yml"
	defaultTitle = "Randomizer"
)

var page = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}} · API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      window.ui = SwaggerUIBundle({url: {{.SpecURL}}, dom_id: '#swagger-ui'});
    };
  </script>
</body>
</html>`))

type pageData struct {
	Title   string
	SpecURL string
}

// RegisterRoutes подключает Swagger UI и отдачу OpenAPI-описания.
// Заголовок страницы берётся из info.title. Пустое описание отдаётся как 204.
func RegisterRoutes(mux chi.Router, spec []byte) {
	ui := renderPage(title(spec))

	mux.Get(uiPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(ui)
	})
	mux.Get(specPath, func(w http.ResponseWriter, r *http.Request) {
		if len(spec) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec)
	})
}

// title достаёт info.title из описания. Битый YAML не мешает отдавать UI.
func title(spec []byte) string {
	var doc struct {
		Info struct {
			Title string `yaml:"title"`
		} `yaml:"info"`
	}
	if err := yaml.Unmarshal(spec, &doc); err != nil {
		slog.Warn("failed to parse openapi spec", "error", err)
		return defaultTitle
	}
	if doc.Info.Title == "" {
		return defaultTitle
	}
	return doc.Info.Title
}

func renderPage(title string) []byte {
	var buf bytes.Buffer
	if err := page.Execute(&buf, pageData{Title: title, SpecURL: specPath}); err != nil {
		// шаблон статичен, ошибка здесь означает поломку при сборке
		panic(err)
	}
	return buf.Bytes()
}
