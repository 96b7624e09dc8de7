package httpapi

import (
	_ "embed"
	"fmt"
	"html"
	"net/http"
)

const (
	openAPIPath  = "/openapi.yaml"
	swaggerTitle = "Cantera API"
	swaggerDist  = "https://unpkg.com/swagger-ui-dist@5"
)

//go:embed openapi.yaml
var openAPISpec []byte

func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	_, span := startHandlerSpan(r, "httpapi.Handler.OpenAPI")
	defer span.End()

	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write(openAPISpec)
}

func (h *Handler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	_, span := startHandlerSpan(r, "httpapi.Handler.SwaggerUI")
	defer span.End()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerPage(swaggerTitle, openAPIPath)))
}

// swaggerPage renders the Swagger UI shell pointing at specURL. Requests are sent with
// the session token kept by the UI's Authorize dialog.
func swaggerPage(title, specURL string) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="es">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>%[1]s</title>
    <link rel="stylesheet" href="%[3]s/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="%[3]s/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '%[2]s',
        dom_id: '#swagger-ui',
        persistAuthorization: true,
        presets: [SwaggerUIBundle.presets.apis],
      });
    </script>
  </body>
</html>`, html.EscapeString(title), html.EscapeString(specURL), swaggerDist)
}
