package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub/internal/domain/entity"
	"stayhub/internal/handler/http/dto"
	"stayhub/internal/infrastructure/validator"
	usecasecontract "stayhub/internal/usecase/contract"
)

// AuthHandlerInterface defines the methods for the auth handler to
// allow interface-based dependency injection (for testing/mocking)
type AuthHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	Me(*gin.Context)
	UpdateProfile(*gin.Context)
}

// Ensure AuthHandler implements AuthHandlerInterface
var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	authUsecase usecasecontract.IAuthUsecase
}

func NewAuthHandler(authUsecase usecasecontract.IAuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register handles user signup. Field-level validation failures come
// back as an inline error map; duplicate emails as a domain error.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	fieldErrors := validator.ValidateForm(map[string]string{
		"email":    req.Email,
		"password": req.Password,
		"name":     req.Name,
		"phone":    req.Phone,
	}, map[string][]validator.Rule{
		"email":    {validator.Email},
		"password": {validator.Password},
		"name":     {validator.Name},
		"phone":    {validator.Phone},
	})
	if validator.HasErrors(fieldErrors) {
		FieldErrorsHandler(c, fieldErrors)
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), req.Email, req.Password, req.Name, entity.UserRole(req.Role), req.Phone)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.AuthResponse{
		User:     dto.ToUserResponse(*user),
		Redirect: entity.DashboardPath(user.Role),
	})
}

// Login handles user authentication. Failures surface as one banner
// message, never a field error.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, err.Error())
		return
	}

	SuccessHandler(c, http.StatusOK, dto.AuthResponse{
		User:     dto.ToUserResponse(*user),
		Redirect: entity.DashboardPath(user.Role),
	})
}

// Logout clears the persisted session snapshot.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authUsecase.Logout(c.Request.Context())
	MessageHandler(c, http.StatusOK, "Logged out")
}

// Me returns the current session snapshot.
func (h *AuthHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		ErrorHandler(c, http.StatusUnauthorized, "Not logged in")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateProfile shallow-patches the current user's record.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		ErrorHandler(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	var patch map[string]interface{}
	if err := BindAndValidate(c, &patch); err != nil {
		return
	}

	updated, err := h.authUsecase.UpdateProfile(c.Request.Context(), user.ID, patch)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*updated))
}
