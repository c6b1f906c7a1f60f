package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
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

func newSessionApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	sessionManager, err := NewSessionManager(sqlDB, false)
	require.NoError(t, err)

	app := &testApp{
		db:        db,
		authors:   authors.NewRepository(db.DB),
		genres:    genres.NewRepository(db.DB),
		books:     books.NewRepository(db.DB),
		instances: instances.NewRepository(db.DB),
	}
	app.router = NewRouter(RouterConfig{
		Authors:        app.authors,
		Genres:         app.genres,
		Books:          app.books,
		Instances:      app.instances,
		TemplatesPath:  "../../templates",
		SessionManager: sessionManager,
	})
	return app
}

func TestFlashShownAfterCreate(t *testing.T) {
	app := newSessionApp(t)

	rec := app.postForm(t, "/catalog/genre/create", url.Values{
		"name": {"Fantasy"},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, rec.Header().Get("Location"), nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	followup := httptest.NewRecorder()
	app.router.ServeHTTP(followup, req)

	assert.Equal(t, http.StatusOK, followup.Code)
	assert.Contains(t, followup.Body.String(), "Genre created")
}

func TestFlashConsumedOnFirstRender(t *testing.T) {
	app := newSessionApp(t)

	rec := app.postForm(t, "/catalog/genre/create", url.Values{
		"name": {"Fantasy"},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	cookies := rec.Result().Cookies()

	target := rec.Header().Get("Location")
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		followup := httptest.NewRecorder()
		app.router.ServeHTTP(followup, req)
		require.Equal(t, http.StatusOK, followup.Code)

		if i == 0 {
			assert.Contains(t, followup.Body.String(), "Genre created")
		} else {
			assert.NotContains(t, followup.Body.String(), "Genre created")
		}
	}
}

func TestNilSessionManagerDisablesFlash(t *testing.T) {
	var sm *SessionManager

	sm.Flash(nil, "ignored")
	assert.Equal(t, "", sm.PopFlash(nil))
}
