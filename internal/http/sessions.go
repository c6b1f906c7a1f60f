package http

import (
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
)

const flashKey = "flash"

// SessionManager wraps scs.SessionManager for post-redirect flash
// messages. A nil *SessionManager is valid and disables flashes.
type SessionManager struct {
	*scs.SessionManager
}

// NewSessionManager creates a sqlite-backed session manager on the
// application's database handle.
func NewSessionManager(sqlDB *sql.DB, secureCookies bool) (*SessionManager, error) {
	// Create sessions table if it doesn't exist
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)
	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = secureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"

	return &SessionManager{SessionManager: sm}, nil
}

// SessionLoadSave adapts scs.LoadAndSave to a gin middleware.
func (sm *SessionManager) SessionLoadSave() gin.HandlerFunc {
	return func(c *gin.Context) {
		// On a session-store failure LoadAndSave writes its error
		// response without calling the inner handler; abort so the
		// controller does not run on top of it.
		ran := false
		handler := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ran = true
			c.Request = r
			c.Next()
		}))
		handler.ServeHTTP(c.Writer, c.Request)
		if !ran {
			c.Abort()
		}
	}
}

// Flash stores a one-shot notice shown on the next rendered page.
func (sm *SessionManager) Flash(c *gin.Context, message string) {
	if sm == nil {
		return
	}
	sm.Put(c.Request.Context(), flashKey, message)
}

// PopFlash removes and returns the pending notice, if any.
func (sm *SessionManager) PopFlash(c *gin.Context) string {
	if sm == nil {
		return ""
	}
	return sm.PopString(c.Request.Context(), flashKey)
}
