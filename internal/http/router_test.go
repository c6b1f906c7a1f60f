package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary/internal/database"
	"locallibrary/internal/database/authors"
	"locallibrary/internal/database/books"
	"locallibrary/internal/database/genres"
	"locallibrary/internal/database/instances"
)

type testApp struct {
	router    *gin.Engine
	db        *database.Database
	authors   *authors.Repository
	genres    *genres.Repository
	books     *books.Repository
	instances *instances.Repository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	app := &testApp{
		db:        db,
		authors:   authors.NewRepository(db.DB),
		genres:    genres.NewRepository(db.DB),
		books:     books.NewRepository(db.DB),
		instances: instances.NewRepository(db.DB),
	}
	app.router = NewRouter(RouterConfig{
		Authors:         app.authors,
		Genres:          app.genres,
		Books:           app.books,
		Instances:       app.instances,
		Health:          db,
		Version:         "test",
		TemplatesPath:   "../../templates",
		ShowErrorDetail: true,
	})
	return app
}

func (a *testApp) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func TestRootRedirectsToCatalog(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/catalog", rec.Header().Get("Location"))
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
	assert.Contains(t, rec.Body.String(), `"test"`)
}

func TestMalformedIDReturnsNotFound(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/catalog/book/not-a-number",
		"/catalog/author/-1",
		"/catalog/genre/12abc",
		"/catalog/bookinstance/abc",
	} {
		rec := app.get(t, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}
