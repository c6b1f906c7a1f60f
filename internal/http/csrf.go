package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// contextKeyCSRFField holds the rendered hidden-input markup for forms.
const contextKeyCSRFField = "csrf_field"

// CSRFMiddleware wraps gorilla/csrf as a gin middleware. Safe methods
// pass through; form posts must carry the token. The hidden-field
// markup is stored on the context for withCSRF.
func CSRFMiddleware(secret []byte, secure bool) gin.HandlerFunc {
	csrfProtect := csrf.Protect(
		secret,
		csrf.Secure(secure),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.Path("/"),
		csrf.ErrorHandler(http.HandlerFunc(csrfErrorHandler)),
	)

	return func(c *gin.Context) {
		// If the protection rejects the request the inner handler never
		// runs; the chain must be aborted or gin would still execute
		// the controller on top of the 403.
		ran := false
		handler := csrfProtect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ran = true
			c.Set(contextKeyCSRFField, csrf.TemplateField(r))
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)
		if !ran {
			c.Abort()
		}
	}
}

func csrfErrorHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("<h1>Forbidden</h1><p>CSRF token invalid or missing.</p>"))
}
