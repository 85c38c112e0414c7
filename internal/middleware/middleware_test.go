package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hotelpride/internal/config"
	"hotelpride/internal/domain"
	"hotelpride/internal/middleware"
	"hotelpride/internal/service"
	"hotelpride/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCORS_AllowedOriginEchoed(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORS([]string{"http://localhost:5173"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_UnknownOriginNotEchoed(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORS([]string{"http://localhost:5173"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORS([]string{"http://localhost:5173"}))
	r.POST("/invoices", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/invoices", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func newAuthService(t *testing.T, user *domain.User) service.AuthService {
	t.Helper()
	userRepo := new(mocks.MockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	return service.NewAuthService(userRepo, config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "hotelpride-test",
	})
}

func activeUser(t *testing.T) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "desk@hotelpride.in",
		PasswordHash: string(hash),
		FullName:     "Front Desk",
		Role:         domain.RoleFrontDesk,
		IsActive:     true,
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	user := activeUser(t)
	authSvc := newAuthService(t, user)

	pair, err := authSvc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-horse",
	})
	require.NoError(t, err)

	var seenUserID uuid.UUID
	var seenRole string
	r := gin.New()
	r.Use(middleware.AuthMiddleware(authSvc))
	r.GET("/whoami", func(c *gin.Context) {
		seenUserID, _ = middleware.GetUserID(c)
		seenRole = middleware.GetRole(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.ID, seenUserID)
	assert.Equal(t, string(domain.RoleFrontDesk), seenRole)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	authSvc := newAuthService(t, activeUser(t))

	r := gin.New()
	r.Use(middleware.AuthMiddleware(authSvc))
	r.GET("/whoami", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	authSvc := newAuthService(t, activeUser(t))

	r := gin.New()
	r.Use(middleware.AuthMiddleware(authSvc))
	r.GET("/whoami", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		role    domain.UserRole
		allowed []domain.UserRole
		want    int
	}{
		{"admin passes admin guard", domain.RoleAdmin, []domain.UserRole{domain.RoleAdmin}, http.StatusOK},
		{"manager passes shared guard", domain.RoleManager, []domain.UserRole{domain.RoleAdmin, domain.RoleManager}, http.StatusOK},
		{"frontdesk blocked from admin guard", domain.RoleFrontDesk, []domain.UserRole{domain.RoleAdmin}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(func(c *gin.Context) {
				c.Set(middleware.ContextKeyRole, string(tt.role))
			})
			r.Use(middleware.RequireRole(tt.allowed...))
			r.GET("/guarded", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
