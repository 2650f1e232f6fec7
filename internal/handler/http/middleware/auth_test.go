package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stayhub/internal/domain/entity"
	"stayhub/internal/handler/http/middleware"
	"stayhub/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupGuardedRoute(mockAuth *mocks.MockAuthUsecase, roles ...entity.UserRole) *gin.Engine {
	router := gin.New()
	group := router.Group("/")
	group.Use(middleware.SessionAuth(mockAuth))
	if len(roles) > 0 {
		group.Use(middleware.RequireRoles(roles...))
	}
	group.GET("/guarded", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestSessionAuth_NoSession(t *testing.T) {
	mockAuth := mocks.NewMockAuthUsecase()
	mockAuth.LoggedOut = true
	router := setupGuardedRoute(mockAuth)

	w := get(router, "/guarded")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not logged in")
}

func TestSessionAuth_WithSession(t *testing.T) {
	router := setupGuardedRoute(mocks.NewMockAuthUsecase())

	w := get(router, "/guarded")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_WrongRole(t *testing.T) {
	// The mock session user is a tourist.
	router := setupGuardedRoute(mocks.NewMockAuthUsecase(), entity.UserRoleHost, entity.UserRoleAdmin)

	w := get(router, "/guarded")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient role")
}

func TestRequireRoles_MatchingRole(t *testing.T) {
	router := setupGuardedRoute(mocks.NewMockAuthUsecase(), entity.UserRoleTourist)

	w := get(router, "/guarded")
	assert.Equal(t, http.StatusOK, w.Code)
}
