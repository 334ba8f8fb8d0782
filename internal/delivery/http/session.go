package http

import (
	"net/http"

	"wealthflow/pkg/common"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// sessionMiddleware gives every visitor an anonymous id cookie. Theme and chat
// state are keyed by it.
func (h *HttpAPIHandler) sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := ""
		if cookie, err := c.Cookie(h.cfg.Session.CookieName); err == nil {
			if parsed, err := uuid.Parse(cookie.Value); err == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = uuid.NewString()
		}

		// refresh on every request so the cookie lives as long as the cached state
		c.SetCookie(&http.Cookie{
			Name:     h.cfg.Session.CookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(h.cfg.Session.TTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		c.Set(common.CONTEXT_KEY_SESSION_ID, id)
		return next(c)
	}
}

func sessionID(c echo.Context) string {
	id, _ := c.Get(common.CONTEXT_KEY_SESSION_ID).(string)
	return id
}
