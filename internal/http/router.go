package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RouterConfig carries every dependency the router needs. Optional
// fields (SessionManager, CSRFSecret, StaticPath) may be left zero.
type RouterConfig struct {
	Authors   AuthorStore
	Genres    GenreStore
	Books     BookStore
	Instances BookInstanceStore

	Health  Pinger
	Version string

	TemplatesPath string
	StaticPath    string

	SessionManager  *SessionManager
	CSRFSecret      []byte
	SecureCookies   bool
	ShowErrorDetail bool
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	render := &Renderer{ShowErrorDetail: cfg.ShowErrorDetail}

	router.Use(RequestLogger())
	router.Use(Recovery(render))

	// CSRF must run before sessions so the session context is kept on
	// the replaced request.
	if len(cfg.CSRFSecret) > 0 {
		router.Use(CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	catalog := NewCatalogController(cfg.Authors, cfg.Genres, cfg.Books, cfg.Instances, cfg.SessionManager, render)
	authors := NewAuthorsController(cfg.Authors, cfg.SessionManager, render)
	genres := NewGenresController(cfg.Genres, cfg.SessionManager, render)
	books := NewBooksController(cfg.Books, cfg.Authors, cfg.Genres, cfg.SessionManager, render)
	instances := NewBookInstancesController(cfg.Instances, cfg.Books, cfg.SessionManager, render)

	if cfg.Health != nil {
		health := NewHealthController(cfg.Health, cfg.Version)
		router.GET("/health", health.Status)
	}

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/catalog")
	})

	cat := router.Group("/catalog")
	cat.GET("", catalog.Index)

	cat.GET("/books", books.List)
	cat.GET("/book/create", books.CreateForm)
	cat.POST("/book/create", books.CreateSubmit)
	cat.GET("/book/:id", books.Detail)
	cat.GET("/book/:id/update", books.UpdateForm)
	cat.POST("/book/:id/update", books.UpdateSubmit)
	cat.GET("/book/:id/delete", books.DeleteForm)
	cat.POST("/book/:id/delete", books.DeleteSubmit)

	cat.GET("/authors", authors.List)
	cat.GET("/author/create", authors.CreateForm)
	cat.POST("/author/create", authors.CreateSubmit)
	cat.GET("/author/:id", authors.Detail)
	cat.GET("/author/:id/update", authors.UpdateForm)
	cat.POST("/author/:id/update", authors.UpdateSubmit)
	cat.GET("/author/:id/delete", authors.DeleteForm)
	cat.POST("/author/:id/delete", authors.DeleteSubmit)

	cat.GET("/genres", genres.List)
	cat.GET("/genre/create", genres.CreateForm)
	cat.POST("/genre/create", genres.CreateSubmit)
	cat.GET("/genre/:id", genres.Detail)
	cat.GET("/genre/:id/update", genres.UpdateForm)
	cat.POST("/genre/:id/update", genres.UpdateSubmit)
	cat.GET("/genre/:id/delete", genres.DeleteForm)
	cat.POST("/genre/:id/delete", genres.DeleteSubmit)

	cat.GET("/bookinstances", instances.List)
	cat.GET("/bookinstance/create", instances.CreateForm)
	cat.POST("/bookinstance/create", instances.CreateSubmit)
	cat.GET("/bookinstance/:id", instances.Detail)
	cat.GET("/bookinstance/:id/update", instances.UpdateForm)
	cat.POST("/bookinstance/:id/update", instances.UpdateSubmit)
	cat.GET("/bookinstance/:id/delete", instances.DeleteForm)
	cat.POST("/bookinstance/:id/delete", instances.DeleteSubmit)

	return router
}
