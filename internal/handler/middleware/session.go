package middleware

import (
	"log/slog"

	"saba-booking/internal/pkg/cookie"
	"saba-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type SessionSource string

const (
	SourceNone   SessionSource = ""
	SourceQuery  SessionSource = "query"
	SourceResume SessionSource = "resume"
	SourceCookie SessionSource = "cookie"

	ctxSessionIDKey     = "session_id"
	ctxSessionSourceKey = "session_source"

	sessionQueryParam = "session_id"
	resumeQueryParam  = "resume"
)

// SessionMiddleware resolves the reservation session a request acts on.
type SessionMiddleware struct {
	resume *jwt.Service
	logger *slog.Logger
}

func NewSessionMiddleware(resume *jwt.Service, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{resume: resume, logger: logger}
}

// ResolveSession looks at the session_id query parameter, then a resume
// token, then the session cookie. A request without any of them goes on
// with no session.
func (m *SessionMiddleware) ResolveSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, source := m.resolve(c)
		if sessionID != "" {
			c.Set(ctxSessionIDKey, sessionID)
			c.Set(ctxSessionSourceKey, source)
		}
		c.Next()
	}
}

func (m *SessionMiddleware) resolve(c *gin.Context) (string, SessionSource) {
	if id := c.Query(sessionQueryParam); id != "" {
		return id, SourceQuery
	}
	if token := c.Query(resumeQueryParam); token != "" {
		claims, err := m.resume.ValidateToken(token)
		if err == nil {
			return claims.SessionID, SourceResume
		}
		m.logger.Warn("ignoring invalid resume token", "error", err.Error())
	}
	if id := cookie.GetSessionID(c); id != "" {
		return id, SourceCookie
	}
	return "", SourceNone
}

func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(ctxSessionIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func GetSessionSource(c *gin.Context) SessionSource {
	if v, ok := c.Get(ctxSessionSourceKey); ok {
		if s, ok := v.(SessionSource); ok {
			return s
		}
	}
	return SourceNone
}
