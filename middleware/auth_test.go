package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jims/constants"
	"jims/middleware"
	"jims/services"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/any", middleware.AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/admin", middleware.AuthMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func request(t *testing.T, router *gin.Engine, path, token string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newTestRouter()

	staffToken, err := services.GenerateToken(services.UserInfo{UserId: 1, Role: constants.RoleStaff}, 60)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	adminToken, err := services.GenerateToken(services.UserInfo{UserId: 2, Role: constants.RoleAdmin}, 60)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tests := []struct {
		name  string
		path  string
		token string
		want  int
	}{
		{"missing token", "/any", "", http.StatusUnauthorized},
		{"garbage token", "/any", "not-a-token", http.StatusUnauthorized},
		{"staff on open route", "/any", staffToken, http.StatusOK},
		{"admin on open route", "/any", adminToken, http.StatusOK},
		{"staff on admin route", "/admin", staffToken, http.StatusForbidden},
		{"admin on admin route", "/admin", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := request(t, router, tt.path, tt.token); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}
