package middleware

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionIDKey  = "session_id"
	SessionHeader = "X-Session-ID"
	SessionCookie = "session_id"
)

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,128}$`)

// SessionMiddleware resolves the browsing session from the X-Session-ID
// header or the session_id cookie. Missing or malformed ids are replaced by a
// fresh one, which is echoed back in both places.
func SessionMiddleware(maxAge time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Header wins over cookie
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID, _ = c.Cookie(SessionCookie)
		}

		// 2. Start a new session when needed
		if !sessionIDPattern.MatchString(sessionID) {
			sessionID = uuid.NewString()
		}

		// 3. Echo and expose to handlers
		c.Header(SessionHeader, sessionID)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sessionID, int(maxAge.Seconds()), "/", "", false, true)
		c.Set(SessionIDKey, sessionID)

		c.Next()
	}
}
