package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"locallibrary/internal/entities"
	"locallibrary/internal/forms"
)

// BookInstancesController serves the book-copy CRUD pages.
type BookInstancesController struct {
	instances BookInstanceStore
	books     BookStore
	sessions  *SessionManager
	render    *Renderer
}

func NewBookInstancesController(instances BookInstanceStore, books BookStore, sessions *SessionManager, render *Renderer) *BookInstancesController {
	return &BookInstancesController{
		instances: instances,
		books:     books,
		sessions:  sessions,
		render:    render,
	}
}

func (ctrl *BookInstancesController) List(c *gin.Context) {
	instances, err := ctrl.instances.GetAll()
	if err != nil {
		ctrl.render.ServerError(c, err, "book instance list")
		return
	}
	c.HTML(http.StatusOK, "bookinstance_list", gin.H{
		"Title":     "Book Instance List",
		"Instances": instances,
		"Flash":     ctrl.sessions.PopFlash(c),
	})
}

func (ctrl *BookInstancesController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	instance, err := ctrl.instances.GetByID(id)
	if err != nil {
		ctrl.render.StoreError(c, err, "Book instance")
		return
	}

	c.HTML(http.StatusOK, "bookinstance_detail", gin.H{
		"Title":    "Book Instance Detail",
		"Instance": instance,
		"Flash":    ctrl.sessions.PopFlash(c),
	})
}

func (ctrl *BookInstancesController) renderForm(c *gin.Context, title string, form forms.BookInstanceForm, errs any) {
	books, err := ctrl.books.GetAll()
	if err != nil {
		ctrl.render.ServerError(c, err, "book instance form options")
		return
	}
	c.HTML(http.StatusOK, "bookinstance_form", withCSRF(c, gin.H{
		"Title":    title,
		"Form":     form,
		"Errors":   errs,
		"Books":    books,
		"Statuses": entities.InstanceStatuses,
	}))
}

func (ctrl *BookInstancesController) CreateForm(c *gin.Context) {
	ctrl.renderForm(c, "Create Book Instance", forms.BookInstanceForm{}, nil)
}

func (ctrl *BookInstancesController) CreateSubmit(c *gin.Context) {
	_ = c.Request.ParseForm()
	form := forms.BindBookInstanceForm(c.Request.PostForm)

	if err := form.Validate(); err != nil {
		ctrl.renderForm(c, "Create Book Instance", form, forms.FieldErrors(err))
		return
	}

	instance := form.ToEntity()
	if err := ctrl.instances.Create(&instance); err != nil {
		ctrl.render.ServerError(c, err, "book instance create")
		return
	}

	ctrl.sessions.Flash(c, "Book instance created")
	c.Redirect(http.StatusFound, instance.URL())
}

func (ctrl *BookInstancesController) UpdateForm(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	instance, err := ctrl.instances.GetByID(id)
	if err != nil {
		ctrl.render.StoreError(c, err, "Book instance")
		return
	}

	ctrl.renderForm(c, "Update Book Instance", forms.FromBookInstance(instance), nil)
}

func (ctrl *BookInstancesController) UpdateSubmit(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	if _, err := ctrl.instances.GetByID(id); err != nil {
		ctrl.render.StoreError(c, err, "Book instance")
		return
	}

	_ = c.Request.ParseForm()
	form := forms.BindBookInstanceForm(c.Request.PostForm)

	if err := form.Validate(); err != nil {
		ctrl.renderForm(c, "Update Book Instance", form, forms.FieldErrors(err))
		return
	}

	instance := form.ToEntity()
	instance.ID = id
	if err := ctrl.instances.Update(&instance); err != nil {
		ctrl.render.ServerError(c, err, "book instance update")
		return
	}

	ctrl.sessions.Flash(c, "Book instance updated")
	c.Redirect(http.StatusFound, instance.URL())
}

func (ctrl *BookInstancesController) DeleteForm(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	instance, err := ctrl.instances.GetByID(id)
	if err != nil {
		ctrl.render.StoreError(c, err, "Book instance")
		return
	}

	c.HTML(http.StatusOK, "bookinstance_delete", withCSRF(c, gin.H{
		"Title":    "Delete Book Instance",
		"Instance": instance,
	}))
}

// DeleteSubmit deletes unconditionally; copies have no dependents.
func (ctrl *BookInstancesController) DeleteSubmit(c *gin.Context) {
	id, ok := parseIDParam(c, ctrl.render)
	if !ok {
		return
	}

	if _, err := ctrl.instances.GetByID(id); err != nil {
		ctrl.render.StoreError(c, err, "Book instance")
		return
	}

	if err := ctrl.instances.Delete(id); err != nil {
		ctrl.render.ServerError(c, err, "book instance delete")
		return
	}

	ctrl.sessions.Flash(c, "Book instance deleted")
	c.Redirect(http.StatusFound, "/catalog/bookinstances")
}
