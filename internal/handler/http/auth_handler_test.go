package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handlerHttp "stayhub/internal/handler/http"
	"stayhub/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupAuthRouter(mockAuth *mocks.MockAuthUsecase) *gin.Engine {
	router := gin.New()
	handler := handlerHttp.NewAuthHandler(mockAuth)
	router.POST("/api/v1/auth/register", handler.Register)
	router.POST("/api/v1/auth/login", handler.Login)
	router.POST("/api/v1/auth/logout", handler.Logout)
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_RegisterSuccess(t *testing.T) {
	router := setupAuthRouter(mocks.NewMockAuthUsecase())

	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":    "guest@example.com",
		"password": "secret99",
		"name":     "Guest",
		"role":     "tourist",
		"phone":    "9876543210",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/tourist/dashboard", resp["redirect"])

	user := resp["user"].(map[string]interface{})
	assert.Equal(t, "guest@example.com", user["email"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	mockAuth := mocks.NewMockAuthUsecase()
	mockAuth.ShouldFailRegister = true
	router := setupAuthRouter(mockAuth)

	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":    "guest@example.com",
		"password": "secret99",
		"name":     "Guest",
		"role":     "tourist",
		"phone":    "9876543210",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_RegisterFieldValidation(t *testing.T) {
	router := setupAuthRouter(mocks.NewMockAuthUsecase())

	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":    "not-an-email",
		"password": "123",
		"name":     "Guest",
		"role":     "tourist",
		"phone":    "9876543210",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid email format", resp["errors"]["email"])
	assert.Equal(t, "Password must be at least 6 characters", resp["errors"]["password"])
}

func TestAuthHandler_RegisterMissingFields(t *testing.T) {
	router := setupAuthRouter(mocks.NewMockAuthUsecase())

	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email": "guest@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	router := setupAuthRouter(mocks.NewMockAuthUsecase())

	w := performRequest(router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "test@example.com",
		"password": "secret99",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/tourist/dashboard", resp["redirect"])
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	mockAuth := mocks.NewMockAuthUsecase()
	mockAuth.ShouldFailLogin = true
	router := setupAuthRouter(mockAuth)

	w := performRequest(router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "test@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestAuthHandler_Logout(t *testing.T) {
	mockAuth := mocks.NewMockAuthUsecase()
	router := setupAuthRouter(mockAuth)

	w := performRequest(router, http.MethodPost, "/api/v1/auth/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockAuth.LoggedOut)
}
