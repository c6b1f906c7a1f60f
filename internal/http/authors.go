package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"locallibrary/internal/entities"
	"locallibrary/internal/forms"
)

// AuthorsController serves the author CRUD pages.
type AuthorsController struct {
	authors  AuthorStore
	sessions *SessionManager
	render   *Renderer
}

func NewAuthorsController(authors AuthorStore, sessions *SessionManager, render *Renderer) *AuthorsController {
	return &AuthorsController{authors: authors, sessions: sessions, render: render}
}

func (ctrl *AuthorsController) List(c *gin.Context) {
	authors, err := ctrl.authors.GetAll()
	if err != nil {
		ctrl.render.ServerError(c, err, "author list")
		return
	}
	c.HTML(http.StatusOK, "author_list", gin.H{
		"Title":   "Author List",
		"Authors": authors,
		"Flash":   ctrl.sessions.PopFlash(c),
	})
}

// Detail fetches the author and their books concurrently.
func (ctrl *AuthorsController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	var (
		author *entities.Author
		books  []entities.Book
	)
	g := new(errgroup.Group)
	g.Go(func() (err error) { author, err = ctrl.authors.GetByID(id); return })
	g.Go(func() (err error) { books, err = ctrl.authors.GetBooks(id); return })
	if err := g.Wait(); err != nil {
		ctrl.render.StoreError(c, err, "Author")
		return
	}

	c.HTML(http.StatusOK, "author_detail", gin.H{
		"Title":  "Author Detail",
		"Author": author,
		"Books":  books,
		"Flash":  ctrl.sessions.PopFlash(c),
	})
}

func (ctrl *AuthorsController) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "author_form", withCSRF(c, gin.H{
		"Title": "Create Author",
		"Form":  forms.AuthorForm{},
	}))
}

func (ctrl *AuthorsController) CreateSubmit(c *gin.Context) {
	_ = c.Request.ParseForm()
	form := forms.BindAuthorForm(c.Request.PostForm)

	if err := form.Validate(); err != nil {
		c.HTML(http.StatusOK, "author_form", withCSRF(c, gin.H{
			"Title":  "Create Author",
			"Form":   form,
			"Errors": forms.FieldErrors(err),
		}))
		return
	}

	author := form.ToEntity()
	if err := ctrl.authors.Create(&author); err != nil {
		ctrl.render.ServerError(c, err, "author create")
		return
	}

	ctrl.sessions.Flash(c, "Author created")
	c.Redirect(http.StatusFound, author.URL())
}

func (ctrl *AuthorsController) UpdateForm(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	author, err := ctrl.authors.GetByID(id)
	if err != nil {
		ctrl.render.StoreError(c, err, "Author")
		return
	}

	c.HTML(http.StatusOK, "author_form", withCSRF(c, gin.H{
		"Title": "Update Author",
		"Form":  forms.FromAuthor(author),
	}))
}

func (ctrl *AuthorsController) UpdateSubmit(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	if _, err := ctrl.authors.GetByID(id); err != nil {
		ctrl.render.StoreError(c, err, "Author")
		return
	}

	_ = c.Request.ParseForm()
	form := forms.BindAuthorForm(c.Request.PostForm)

	if err := form.Validate(); err != nil {
		c.HTML(http.StatusOK, "author_form", withCSRF(c, gin.H{
			"Title":  "Update Author",
			"Form":   form,
			"Errors": forms.FieldErrors(err),
		}))
		return
	}

	author := form.ToEntity()
	author.ID = id
	if err := ctrl.authors.Update(&author); err != nil {
		ctrl.render.ServerError(c, err, "author update")
		return
	}

	ctrl.sessions.Flash(c, "Author updated")
	c.Redirect(http.StatusFound, author.URL())
}

// DeleteForm shows the confirmation page, listing any books that
// block the deletion.
func (ctrl *AuthorsController) DeleteForm(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	var (
		author *entities.Author
		books  []entities.Book
	)
	g := new(errgroup.Group)
	g.Go(func() (err error) { author, err = ctrl.authors.GetByID(id); return })
	g.Go(func() (err error) { books, err = ctrl.authors.GetBooks(id); return })
	if err := g.Wait(); err != nil {
		ctrl.render.StoreError(c, err, "Author")
		return
	}

	c.HTML(http.StatusOK, "author_delete", withCSRF(c, gin.H{
		"Title":  "Delete Author",
		"Author": author,
		"Books":  books,
	}))
}

// DeleteSubmit re-checks the dependents before deleting. An author
// with any remaining books is never deleted; the confirmation page
// re-renders listing them.
func (ctrl *AuthorsController) DeleteSubmit(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	var (
		author *entities.Author
		books  []entities.Book
	)
	g := new(errgroup.Group)
	g.Go(func() (err error) { author, err = ctrl.authors.GetByID(id); return })
	g.Go(func() (err error) { books, err = ctrl.authors.GetBooks(id); return })
	if err := g.Wait(); err != nil {
		ctrl.render.StoreError(c, err, "Author")
		return
	}

	if len(books) > 0 {
		c.HTML(http.StatusOK, "author_delete", withCSRF(c, gin.H{
			"Title":  "Delete Author",
			"Author": author,
			"Books":  books,
		}))
		return
	}

	if err := ctrl.authors.Delete(id); err != nil {
		ctrl.render.ServerError(c, err, "author delete")
		return
	}

	ctrl.sessions.Flash(c, "Author deleted")
	c.Redirect(http.StatusFound, "/catalog/authors")
}
