package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"locallibrary/internal/entities"
	"locallibrary/internal/forms"
)

// BooksController serves the book CRUD pages. It also reads the
// author and genre stores to build the create/update select boxes.
type BooksController struct {
	books    BookStore
	authors  AuthorStore
	genres   GenreStore
	sessions *SessionManager
	render   *Renderer
}

func NewBooksController(books BookStore, authors AuthorStore, genres GenreStore, sessions *SessionManager, render *Renderer) *BooksController {
	return &BooksController{
		books:    books,
		authors:  authors,
		genres:   genres,
		sessions: sessions,
		render:   render,
	}
}

// GenreOption is a genre plus its checked state on a book form.
type GenreOption struct {
	entities.Genre
	Checked bool
}

func (ctrl *BooksController) List(c *gin.Context) {
	books, err := ctrl.books.GetAll()
	if err != nil {
		ctrl.render.ServerError(c, err, "book list")
		return
	}
	c.HTML(http.StatusOK, "book_list", gin.H{
		"Title": "Book List",
		"Books": books,
		"Flash": ctrl.sessions.PopFlash(c),
	})
}

// Detail fetches the book (with author and genres populated) and its
// copies concurrently.
func (ctrl *BooksController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	var (
		book      *entities.Book
		instances []entities.BookInstance
	)
	g := new(errgroup.Group)
	g.Go(func() (err error) { book, err = ctrl.books.GetByID(id); return })
	g.Go(func() (err error) { instances, err = ctrl.books.GetInstances(id); return })
	if err := g.Wait(); err != nil {
		ctrl.render.StoreError(c, err, "Book")
		return
	}

	c.HTML(http.StatusOK, "book_detail", gin.H{
		"Title":     "Book Detail",
		"Book":      book,
		"Instances": instances,
		"Flash":     ctrl.sessions.PopFlash(c),
	})
}

// formOptions loads the author and genre lists for the book form,
// concurrently, and marks the genres the form currently selects.
func (ctrl *BooksController) formOptions(form forms.BookForm) ([]entities.Author, []GenreOption, error) {
	var (
		authors []entities.Author
		genres  []entities.Genre
	)
	g := new(errgroup.Group)
	g.Go(func() (err error) { authors, err = ctrl.authors.GetAll(); return })
	g.Go(func() (err error) { genres, err = ctrl.genres.GetAll(); return })
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	options := make([]GenreOption, 0, len(genres))
	for _, genre := range genres {
		options = append(options, GenreOption{Genre: genre, Checked: form.HasGenre(genre.ID)})
	}
	return authors, options, nil
}

func (ctrl *BooksController) renderForm(c *gin.Context, title string, form forms.BookForm, errs any) {
	authors, genreOptions, err := ctrl.formOptions(form)
	if err != nil {
		ctrl.render.ServerError(c, err, "book form options")
		return
	}
	c.HTML(http.StatusOK, "book_form", withCSRF(c, gin.H{
		"Title":   title,
		"Form":    form,
		"Errors":  errs,
		"Authors": authors,
		"Genres":  genreOptions,
	}))
}

func (ctrl *BooksController) CreateForm(c *gin.Context) {
	ctrl.renderForm(c, "Create Book", forms.BookForm{}, nil)
}

func (ctrl *BooksController) CreateSubmit(c *gin.Context) {
	_ = c.Request.ParseForm()
	form := forms.BindBookForm(c.Request.PostForm)

	if err := form.Validate(); err != nil {
		ctrl.renderForm(c, "Create Book", form, forms.FieldErrors(err))
		return
	}

	book := form.ToEntity()
	if err := ctrl.books.Create(&book); err != nil {
		ctrl.render.ServerError(c, err, "book create")
		return
	}

	ctrl.sessions.Flash(c, "Book created")
	c.Redirect(http.StatusFound, book.URL())
}

func (ctrl *BooksController) UpdateForm(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	book, err := ctrl.books.GetByID(id)
	if err != nil {
		ctrl.render.StoreError(c, err, "Book")
		return
	}

	ctrl.renderForm(c, "Update Book", forms.FromBook(book), nil)
}

func (ctrl *BooksController) UpdateSubmit(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	if _, err := ctrl.books.GetByID(id); err != nil {
		ctrl.render.StoreError(c, err, "Book")
		return
	}

	_ = c.Request.ParseForm()
	form := forms.BindBookForm(c.Request.PostForm)

	if err := form.Validate(); err != nil {
		ctrl.renderForm(c, "Update Book", form, forms.FieldErrors(err))
		return
	}

	book := form.ToEntity()
	book.ID = id
	if err := ctrl.books.Update(&book); err != nil {
		ctrl.render.ServerError(c, err, "book update")
		return
	}

	ctrl.sessions.Flash(c, "Book updated")
	c.Redirect(http.StatusFound, book.URL())
}

func (ctrl *BooksController) DeleteForm(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	var (
		book      *entities.Book
		instances []entities.BookInstance
	)
	g := new(errgroup.Group)
	g.Go(func() (err error) { book, err = ctrl.books.GetByID(id); return })
	g.Go(func() (err error) { instances, err = ctrl.books.GetInstances(id); return })
	if err := g.Wait(); err != nil {
		ctrl.render.StoreError(c, err, "Book")
		return
	}

	c.HTML(http.StatusOK, "book_delete", withCSRF(c, gin.H{
		"Title":     "Delete Book",
		"Book":      book,
		"Instances": instances,
	}))
}

// DeleteSubmit refuses to delete a book while copies of it exist.
func (ctrl *BooksController) DeleteSubmit(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	var (
		book      *entities.Book
		instances []entities.BookInstance
	)
	g := new(errgroup.Group)
	g.Go(func() (err error) { book, err = ctrl.books.GetByID(id); return })
	g.Go(func() (err error) { instances, err = ctrl.books.GetInstances(id); return })
	if err := g.Wait(); err != nil {
		ctrl.render.StoreError(c, err, "Book")
		return
	}

	if len(instances) > 0 {
		c.HTML(http.StatusOK, "book_delete", withCSRF(c, gin.H{
			"Title":     "Delete Book",
			"Book":      book,
			"Instances": instances,
		}))
		return
	}

	if err := ctrl.books.Delete(id); err != nil {
		ctrl.render.ServerError(c, err, "book delete")
		return
	}

	ctrl.sessions.Flash(c, "Book deleted")
	c.Redirect(http.StatusFound, "/catalog/books")
}
