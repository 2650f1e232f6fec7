package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub/internal/domain/entity"
	"stayhub/internal/handler/http/dto"
	usecasecontract "stayhub/internal/usecase/contract"
)

type AttractionHandler struct {
	attractionUsecase usecasecontract.IAttractionUsecase
}

func NewAttractionHandler(attractionUsecase usecasecontract.IAttractionUsecase) *AttractionHandler {
	return &AttractionHandler{attractionUsecase: attractionUsecase}
}

// List returns all attractions, filtered by ?location= when present.
func (h *AttractionHandler) List(c *gin.Context) {
	if location := c.Query("location"); location != "" {
		SuccessHandler(c, http.StatusOK, h.attractionUsecase.GetByLocation(c.Request.Context(), location))
		return
	}
	SuccessHandler(c, http.StatusOK, h.attractionUsecase.GetAll(c.Request.Context()))
}

// Get returns one attraction by id.
func (h *AttractionHandler) Get(c *gin.Context) {
	attraction := h.attractionUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if attraction == nil {
		ErrorHandler(c, http.StatusNotFound, "Attraction not found")
		return
	}
	SuccessHandler(c, http.StatusOK, attraction)
}

// Create adds an attraction authored by the current guide.
func (h *AttractionHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	var req dto.CreateAttractionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	created, err := h.attractionUsecase.Create(c.Request.Context(), user.ID, entity.Attraction{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
		Rating:      req.Rating,
		Distance:    req.Distance,
		Images:      req.Images,
	})
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, created)
}

// Update shallow-patches an attraction. Authoring guide or admin only.
func (h *AttractionHandler) Update(c *gin.Context) {
	user := CurrentUser(c)
	var patch map[string]interface{}
	if err := BindAndValidate(c, &patch); err != nil {
		return
	}

	updated, err := h.attractionUsecase.Update(c.Request.Context(), *user, c.Param("id"), patch)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, updated)
}

// Delete removes an attraction. Authoring guide or admin only.
func (h *AttractionHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	if err := h.attractionUsecase.Delete(c.Request.Context(), *user, c.Param("id")); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Attraction deleted")
}
