package adapters

import (
	"log/slog"
	"net/http"
)

// closeBody drains nothing and closes the response body, logging instead of
// failing on close errors.
func closeBody(res *http.Response) {
	if err := res.Body.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err)
	}
}
