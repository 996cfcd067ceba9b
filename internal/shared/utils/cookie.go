package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/warden-inc/warden/internal/shared/config"
)

const RefreshTokenCookie = "refresh_token"

// SetRefreshCookie stores the refresh token as an HttpOnly cookie scoped to the refresh path.
func SetRefreshCookie(c *gin.Context, cookieConfig config.CookieConfig, refreshToken string, ttl time.Duration) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		RefreshTokenCookie,
		refreshToken,
		int(ttl.Seconds()),
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

func ClearRefreshCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		RefreshTokenCookie,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

// GetTokenFromCookie returns "" when the cookie is absent.
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}

// parseSameSite defaults to Strict.
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
