package response

import (
	"net/http"

	"github.com/Xunop/bookserver/internal/render"
)

// Document sends a rendered catalog document.
func Document(w http.ResponseWriter, r *http.Request, d render.Document) {
	body, err := d.Bytes()
	if err != nil {
		ServerError(w, r, err)
		return
	}

	builder := New(w, r)
	builder.WithHeader("Content-Type", d.ContentType())
	builder.WithBody(body)
	builder.Write()
}

// Text sends a plain text response.
func Text(w http.ResponseWriter, r *http.Request, body string) {
	builder := New(w, r)
	builder.WithHeader("Content-Type", "text/plain; charset=utf-8")
	builder.WithBody([]byte(body))
	builder.Write()
}
