package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub/internal/domain/entity"
	"stayhub/internal/handler/http/dto"
	usecasecontract "stayhub/internal/usecase/contract"
)

type ReviewHandler struct {
	reviewUsecase usecasecontract.IReviewUsecase
}

func NewReviewHandler(reviewUsecase usecasecontract.IReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviewUsecase: reviewUsecase}
}

// ListByHomestay returns the reviews of one homestay.
func (h *ReviewHandler) ListByHomestay(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.reviewUsecase.GetByHomestayID(c.Request.Context(), c.Param("id")))
}

// Create adds a review authored by the current user.
func (h *ReviewHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	var req dto.CreateReviewRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	created := h.reviewUsecase.Create(c.Request.Context(), user.ID, entity.Review{
		HomestayID: req.HomestayID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	SuccessHandler(c, http.StatusCreated, created)
}

// Delete removes a review. Author or admin only.
func (h *ReviewHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	if err := h.reviewUsecase.Delete(c.Request.Context(), *user, c.Param("id")); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Review deleted")
}
