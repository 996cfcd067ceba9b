package utils

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warden-inc/warden/internal/shared/config"
	"github.com/warden-inc/warden/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestErrorResponseWithError(t *testing.T) {
	t.Run("app error keeps its status and type", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		ErrorResponseWithError(c, errors.NewInvalidCredentialsError())

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decode(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "invalid_credentials", resp.Error.Type)
	})

	t.Run("plain error hides details", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		ErrorResponseWithError(c, stderrors.New("dial tcp 10.0.0.1:3306: refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "10.0.0.1")
		assert.Equal(t, "internal_error", decode(t, w).Error.Type)
	})
}

func TestRefreshCookie(t *testing.T) {
	cfg := config.CookieConfig{Path: "/users/refresh", SameSite: "Strict", Secure: true}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	SetRefreshCookie(c, cfg, "tok", 720*time.Hour)

	header := w.Header().Get("Set-Cookie")
	assert.Contains(t, header, "refresh_token=tok")
	assert.Contains(t, header, "Path=/users/refresh")
	assert.Contains(t, header, "Max-Age=2592000")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "Secure")
	assert.Contains(t, header, "SameSite=Strict")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	ClearRefreshCookie(c, cfg)
	assert.True(t, strings.Contains(w.Header().Get("Set-Cookie"), "Max-Age=0"))
}

func TestParseUintParam(t *testing.T) {
	cases := map[string]bool{"12": true, "0": false, "-1": false, "abc": false}
	for raw, ok := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: raw}}

		value, err := ParseUintParam(c, "id", "user")
		if ok {
			require.NoError(t, err, raw)
			assert.Equal(t, uint(12), value)
		} else {
			assert.True(t, errors.IsType(err, errors.ErrorTypeValidation), raw)
		}
	}
}
