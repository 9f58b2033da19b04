// Package swagger serves the OpenAPI description of the API.
package swagger

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed openapi.yaml
var content embed.FS

// GetHandler returns a file server rooted at the embedded documents.
func GetHandler() (http.Handler, error) {
	sub, err := fs.Sub(content, ".")
	if err != nil {
		return nil, err
	}

	return http.FileServer(http.FS(sub)), nil
}
