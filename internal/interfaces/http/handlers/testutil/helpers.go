package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Request is an HTTP request to run against an engine.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
	Cookies []*http.Cookie
}

// Do serves req on engine and returns the recorder.
func Do(engine http.Handler, req Request) *httptest.ResponseRecorder {
	var httpReq *http.Request
	if req.Body != nil {
		jsonBytes, _ := json.Marshal(req.Body)
		httpReq = httptest.NewRequest(req.Method, req.Path, bytes.NewReader(jsonBytes))
		httpReq.Header.Set("Content-Type", "application/json")
	} else {
		httpReq = httptest.NewRequest(req.Method, req.Path, nil)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	for _, cookie := range req.Cookies {
		httpReq.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httpReq)
	return w
}

// Bearer returns an Authorization header map for token.
func Bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// FindCookie returns the named cookie set by the response, or nil.
func FindCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ErrorInfo mirrors utils.ErrorInfo for test assertions.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
