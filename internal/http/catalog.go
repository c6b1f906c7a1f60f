package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// CatalogController serves the catalog home page.
type CatalogController struct {
	authors   AuthorStore
	genres    GenreStore
	books     BookStore
	instances BookInstanceStore
	sessions  *SessionManager
	render    *Renderer
}

func NewCatalogController(authors AuthorStore, genres GenreStore, books BookStore, instances BookInstanceStore, sessions *SessionManager, render *Renderer) *CatalogController {
	return &CatalogController{
		authors:   authors,
		genres:    genres,
		books:     books,
		instances: instances,
		sessions:  sessions,
		render:    render,
	}
}

// Index aggregates record counts across the catalog. The five count
// queries are independent and run concurrently; the page renders once
// all have completed.
func (ctrl *CatalogController) Index(c *gin.Context) {
	var (
		bookCount, copyCount, availableCount, authorCount, genreCount int64
	)

	g := new(errgroup.Group)
	g.Go(func() (err error) { bookCount, err = ctrl.books.Count(); return })
	g.Go(func() (err error) { copyCount, err = ctrl.instances.Count(); return })
	g.Go(func() (err error) { availableCount, err = ctrl.instances.CountAvailable(); return })
	g.Go(func() (err error) { authorCount, err = ctrl.authors.Count(); return })
	g.Go(func() (err error) { genreCount, err = ctrl.genres.Count(); return })
	if err := g.Wait(); err != nil {
		ctrl.render.ServerError(c, err, "catalog index")
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"Title":              "Local Library Home",
		"BookCount":          bookCount,
		"CopyCount":          copyCount,
		"CopyAvailableCount": availableCount,
		"AuthorCount":        authorCount,
		"GenreCount":         genreCount,
		"Flash":              ctrl.sessions.PopFlash(c),
	})
}
