package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/tbourn/go-partner-backend/internal/identity"
)

const authTestSecret = "auth-mw-secret"

func signSession(t *testing.T, subject string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":        subject,
		"email":      "jane@acme.io",
		"first_name": "Jane",
		"last_name":  "Doe",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(authTestSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return raw
}

func newAuthRouter(t *testing.T, mw gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", mw, func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": p.ID})
	})
	return r
}

func TestRequireAuth_MissingHeader_401Envelope(t *testing.T) {
	v := identity.NewVerifier(authTestSecret, "")
	r := newAuthRouter(t, RequireAuth(v))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body["code"] != "unauthorized" || body["message"] == "" {
		t.Fatalf("unexpected envelope: %v", body)
	}
}

func TestRequireAuth_MalformedSchemes_Rejected(t *testing.T) {
	v := identity.NewVerifier(authTestSecret, "")
	r := newAuthRouter(t, RequireAuth(v))

	for _, header := range []string{
		"Basic abc",
		"Bearer",
		"Bearer   ",
		"Bearer not-a-jwt",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestRequireAuth_ValidToken_AttachesPrincipalAndUserID(t *testing.T) {
	v := identity.NewVerifier(authTestSecret, "")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", RequireAuth(v), func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			t.Fatalf("principal not attached")
		}
		// Mirror used by the rate limiter and logger.
		if c.GetString("userID") != p.ID {
			t.Fatalf("userID mirror missing")
		}
		c.JSON(http.StatusOK, gin.H{"user_id": p.ID})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signSession(t, "user_42"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body["user_id"] != "user_42" {
		t.Fatalf("wrong principal: %v", body)
	}
}

func TestOptionalAuth_InvalidTokenProceedsAnonymous(t *testing.T) {
	v := identity.NewVerifier(authTestSecret, "")
	r := newAuthRouter(t, OptionalAuth(v))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("optional auth must not block, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body["anonymous"] != true {
		t.Fatalf("expected anonymous request, got %v", body)
	}
}

func TestOptionalAuth_ValidTokenAttachesPrincipal(t *testing.T) {
	v := identity.NewVerifier(authTestSecret, "")
	r := newAuthRouter(t, OptionalAuth(v))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signSession(t, "user_7"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body["user_id"] != "user_7" {
		t.Fatalf("expected principal user_7, got %v", body)
	}
}
