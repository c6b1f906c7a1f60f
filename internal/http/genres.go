package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"locallibrary/internal/entities"
	"locallibrary/internal/forms"
)

// GenresController serves the genre CRUD pages.
type GenresController struct {
	genres   GenreStore
	sessions *SessionManager
	render   *Renderer
}

func NewGenresController(genres GenreStore, sessions *SessionManager, render *Renderer) *GenresController {
	return &GenresController{genres: genres, sessions: sessions, render: render}
}

func (ctrl *GenresController) List(c *gin.Context) {
	genres, err := ctrl.genres.GetAll()
	if err != nil {
		ctrl.render.ServerError(c, err, "genre list")
		return
	}
	c.HTML(http.StatusOK, "genre_list", gin.H{
		"Title":  "Genre List",
		"Genres": genres,
		"Flash":  ctrl.sessions.PopFlash(c),
	})
}

// Detail fetches the genre and its books concurrently.
func (ctrl *GenresController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	var (
		genre *entities.Genre
		books []entities.Book
	)
	g := new(errgroup.Group)
	g.Go(func() (err error) { genre, err = ctrl.genres.GetByID(id); return })
	g.Go(func() (err error) { books, err = ctrl.genres.GetBooks(id); return })
	if err := g.Wait(); err != nil {
		ctrl.render.StoreError(c, err, "Genre")
		return
	}

	c.HTML(http.StatusOK, "genre_detail", gin.H{
		"Title": "Genre Detail",
		"Genre": genre,
		"Books": books,
		"Flash": ctrl.sessions.PopFlash(c),
	})
}

func (ctrl *GenresController) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "genre_form", withCSRF(c, gin.H{
		"Title": "Create Genre",
		"Form":  forms.GenreForm{},
	}))
}

// CreateSubmit checks for an existing genre with the same name before
// inserting. A duplicate submission redirects to the existing record
// instead of creating a second one.
func (ctrl *GenresController) CreateSubmit(c *gin.Context) {
	_ = c.Request.ParseForm()
	form := forms.BindGenreForm(c.Request.PostForm)

	if err := form.Validate(); err != nil {
		c.HTML(http.StatusOK, "genre_form", withCSRF(c, gin.H{
			"Title":  "Create Genre",
			"Form":   form,
			"Errors": forms.FieldErrors(err),
		}))
		return
	}

	existing, err := ctrl.genres.GetByName(form.Name)
	if err != nil {
		ctrl.render.ServerError(c, err, "genre lookup")
		return
	}
	if existing != nil {
		c.Redirect(http.StatusFound, existing.URL())
		return
	}

	genre := form.ToEntity()
	if err := ctrl.genres.Create(&genre); err != nil {
		ctrl.render.ServerError(c, err, "genre create")
		return
	}

	ctrl.sessions.Flash(c, "Genre created")
	c.Redirect(http.StatusFound, genre.URL())
}

func (ctrl *GenresController) UpdateForm(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	genre, err := ctrl.genres.GetByID(id)
	if err != nil {
		ctrl.render.StoreError(c, err, "Genre")
		return
	}

	c.HTML(http.StatusOK, "genre_form", withCSRF(c, gin.H{
		"Title": "Update Genre",
		"Form":  forms.GenreForm{Name: genre.Name},
	}))
}

func (ctrl *GenresController) UpdateSubmit(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	if _, err := ctrl.genres.GetByID(id); err != nil {
		ctrl.render.StoreError(c, err, "Genre")
		return
	}

	_ = c.Request.ParseForm()
	form := forms.BindGenreForm(c.Request.PostForm)

	if err := form.Validate(); err != nil {
		c.HTML(http.StatusOK, "genre_form", withCSRF(c, gin.H{
			"Title":  "Update Genre",
			"Form":   form,
			"Errors": forms.FieldErrors(err),
		}))
		return
	}

	genre := form.ToEntity()
	genre.ID = id
	if err := ctrl.genres.Update(&genre); err != nil {
		ctrl.render.ServerError(c, err, "genre update")
		return
	}

	ctrl.sessions.Flash(c, "Genre updated")
	c.Redirect(http.StatusFound, genre.URL())
}

func (ctrl *GenresController) DeleteForm(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	var (
		genre *entities.Genre
		books []entities.Book
	)
	g := new(errgroup.Group)
	g.Go(func() (err error) { genre, err = ctrl.genres.GetByID(id); return })
	g.Go(func() (err error) { books, err = ctrl.genres.GetBooks(id); return })
	if err := g.Wait(); err != nil {
		ctrl.render.StoreError(c, err, "Genre")
		return
	}

	c.HTML(http.StatusOK, "genre_delete", withCSRF(c, gin.H{
		"Title": "Delete Genre",
		"Genre": genre,
		"Books": books,
	}))
}

// DeleteSubmit refuses to delete a genre while books still carry it.
func (ctrl *GenresController) DeleteSubmit(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	var (
		genre *entities.Genre
		books []entities.Book
	)
	g := new(errgroup.Group)
	g.Go(func() (err error) { genre, err = ctrl.genres.GetByID(id); return })
	g.Go(func() (err error) { books, err = ctrl.genres.GetBooks(id); return })
	if err := g.Wait(); err != nil {
		ctrl.render.StoreError(c, err, "Genre")
		return
	}

	if len(books) > 0 {
		c.HTML(http.StatusOK, "genre_delete", withCSRF(c, gin.H{
			"Title": "Delete Genre",
			"Genre": genre,
			"Books": books,
		}))
		return
	}

	if err := ctrl.genres.Delete(id); err != nil {
		ctrl.render.ServerError(c, err, "genre delete")
		return
	}

	ctrl.sessions.Flash(c, "Genre deleted")
	c.Redirect(http.StatusFound, "/catalog/genres")
}
