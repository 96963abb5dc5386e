package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mwss/sevaportal/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "mwss.org.in",
	})
	authMiddleware := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("", authMiddleware.JWTAuth())
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": PrincipalID(c), "role": Role(c)})
	})
	adminOnly := protected.Group("", authMiddleware.AdminRequired())
	adminOnly.GET("/admin-only", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, jwtService
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "/me", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "/me", "Token abc")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "/me", "Bearer not.a.token")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, _, err := jwtService.GenerateToken(7, "s@example.com", auth.RoleStudent, "S")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	w := doRequest(router, "/me", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestAdminRequiredRejectsStudent(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, _, err := jwtService.GenerateToken(7, "s@example.com", auth.RoleStudent, "S")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	w := doRequest(router, "/admin-only", "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestAdminRequiredAllowsAdmin(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, _, err := jwtService.GenerateToken(1, "admin@mwss.org.in", auth.RoleAdmin, "Admin")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	w := doRequest(router, "/admin-only", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
