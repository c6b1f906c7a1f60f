package http

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"locallibrary/internal/database"
)

// Renderer renders the shared error views. ShowErrorDetail controls
// whether the underlying error text reaches the page; it is off in
// production configuration.
type Renderer struct {
	ShowErrorDetail bool
}

// NotFound renders the generic error view with a 404 status.
func (r *Renderer) NotFound(c *gin.Context, resource string) {
	c.HTML(http.StatusNotFound, "error", gin.H{
		"Title":   "Not Found",
		"Status":  http.StatusNotFound,
		"Message": resource + " not found",
	})
}

// ServerError logs the error and renders the generic error view.
// The underlying error is exposed only outside production.
func (r *Renderer) ServerError(c *gin.Context, err error, context string) {
	log.Error().Err(err).Str("context", context).Msg("request failed")
	data := gin.H{
		"Title":   "Error",
		"Status":  http.StatusInternalServerError,
		"Message": "something went wrong",
	}
	if r.ShowErrorDetail {
		data["Detail"] = err.Error()
	}
	c.HTML(http.StatusInternalServerError, "error", data)
}

// StoreError dispatches a store read failure to the right error view.
func (r *Renderer) StoreError(c *gin.Context, err error, resource string) {
	if errors.Is(err, database.ErrNotFound) {
		r.NotFound(c, resource)
		return
	}
	r.ServerError(c, err, resource)
}

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with the 404 error view on malformed ids, since
// no record can live at such a path.
func parseIDParam(c *gin.Context, r *Renderer) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		r.NotFound(c, "Record")
		return 0, false
	}
	return uint(id), true
}

// withCSRF copies the CSRF hidden-field markup from the request context
// into template data, for views that render a form.
func withCSRF(c *gin.Context, data gin.H) gin.H {
	if field, ok := c.Get(contextKeyCSRFField); ok {
		data["CSRFField"] = field.(template.HTML)
	}
	return data
}
