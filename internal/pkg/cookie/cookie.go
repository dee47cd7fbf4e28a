package cookie

import (
	"net/http"

	"saba-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName = "cf_session_id"
	IntentCookieName  = "booking_intent"
)

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, sessionID string) {
	set(c, cfg, SessionCookieName, sessionID, int(cfg.SessionMaxAge.Seconds()))
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, SessionCookieName, "", -1)
}

func GetSessionID(c *gin.Context) string {
	v, _ := c.Cookie(SessionCookieName)
	return v
}

func SetIntentCookie(c *gin.Context, cfg config.CookieConfig, intentID string) {
	set(c, cfg, IntentCookieName, intentID, int(cfg.IntentMaxAge.Seconds()))
}

func ClearIntentCookie(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, IntentCookieName, "", -1)
}

func GetIntentID(c *gin.Context) string {
	v, _ := c.Cookie(IntentCookieName)
	return v
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		name,
		value,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
