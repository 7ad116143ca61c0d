package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"group-decision/internal/repository"
	"group-decision/internal/testutil"
	"group-decision/pkg/config"
	"group-decision/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *repository.UserRepository) {
	t.Helper()
	if err := config.InitTest(); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}
	gin.SetMode(gin.TestMode)

	userRepo := repository.NewUserRepository(testutil.NewDB(t))

	r := gin.New()
	r.Use(GinZapLogger())
	r.Use(AuthMiddleware(userRepo))
	r.GET("/test", func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "userID not set"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r, userRepo
}

func TestAuthMiddleware(t *testing.T) {
	r, _ := setupTestRouter(t)

	validToken, err := utils.GenerateToken("user-1", "", "")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"Valid token", "Bearer " + validToken, http.StatusOK},
		{"Missing auth header", "", http.StatusUnauthorized},
		{"Invalid auth format", "InvalidFormat token", http.StatusUnauthorized},
		{"Invalid token", "Bearer invalid.token.here", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)
			}
		})
	}
}

func TestAuthMiddleware_RefreshesProfile(t *testing.T) {
	r, userRepo := setupTestRouter(t)

	for _, name := range []string{"Alice", "Alice B."} {
		token, err := utils.GenerateToken("user-1", name, "a.png")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	user, err := userRepo.FindByID(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Alice B.", user.Username)
	assert.Equal(t, "a.png", user.Avatar)
}
