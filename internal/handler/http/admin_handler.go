package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub/internal/domain/contract"
	"stayhub/internal/handler/http/dto"
	usecasecontract "stayhub/internal/usecase/contract"
)

// AdminHandler serves the admin dashboard: platform stats and user
// management.
type AdminHandler struct {
	statsUsecase usecasecontract.IStatsUsecase
	users        contract.IUserRepository
}

func NewAdminHandler(statsUsecase usecasecontract.IStatsUsecase, users contract.IUserRepository) *AdminHandler {
	return &AdminHandler{statsUsecase: statsUsecase, users: users}
}

// Stats returns platform-wide counts, recomputed per request.
func (h *AdminHandler) Stats(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.statsUsecase.Overview(c.Request.Context()))
}

// ListUsers returns every account, passwords stripped.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, dto.ToUserResponses(h.users.GetAll(c.Request.Context())))
}

// DeleteUser removes an account. Bookings and listings referencing the
// account are left in place; references are not enforced.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	h.users.Delete(c.Request.Context(), c.Param("id"))
	MessageHandler(c, http.StatusOK, "User deleted")
}
