package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub/internal/domain/entity"
	"stayhub/internal/handler/http/dto"
	usecasecontract "stayhub/internal/usecase/contract"
)

type HomestayHandler struct {
	homestayUsecase usecasecontract.IHomestayUsecase
	bookingUsecase  usecasecontract.IBookingUsecase
}

func NewHomestayHandler(homestayUsecase usecasecontract.IHomestayUsecase, bookingUsecase usecasecontract.IBookingUsecase) *HomestayHandler {
	return &HomestayHandler{homestayUsecase: homestayUsecase, bookingUsecase: bookingUsecase}
}

// List returns all listings, or a search when ?q= is present. The
// tourist view passes available=true to hide unavailable listings.
func (h *HomestayHandler) List(c *gin.Context) {
	availableOnly := c.Query("available") == "true"
	if query := c.Query("q"); query != "" {
		SuccessHandler(c, http.StatusOK, h.homestayUsecase.Search(c.Request.Context(), query, availableOnly))
		return
	}
	homestays := h.homestayUsecase.GetAll(c.Request.Context())
	if availableOnly {
		filtered := []entity.Homestay{}
		for _, hs := range homestays {
			if hs.Available {
				filtered = append(filtered, hs)
			}
		}
		homestays = filtered
	}
	SuccessHandler(c, http.StatusOK, homestays)
}

// Get returns one listing by id.
func (h *HomestayHandler) Get(c *gin.Context) {
	homestay := h.homestayUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if homestay == nil {
		ErrorHandler(c, http.StatusNotFound, "Homestay not found")
		return
	}
	SuccessHandler(c, http.StatusOK, homestay)
}

// Create adds a listing owned by the current host.
func (h *HomestayHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	var req dto.CreateHomestayRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	created := h.homestayUsecase.Create(c.Request.Context(), user.ID, entity.Homestay{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
		Capacity:    req.Capacity,
		Amenities:   req.Amenities,
		Images:      req.Images,
		Available:   req.Available,
	})
	SuccessHandler(c, http.StatusCreated, created)
}

// Update shallow-patches a listing. Owning host or admin only.
func (h *HomestayHandler) Update(c *gin.Context) {
	user := CurrentUser(c)
	var patch map[string]interface{}
	if err := BindAndValidate(c, &patch); err != nil {
		return
	}

	updated, err := h.homestayUsecase.Update(c.Request.Context(), *user, c.Param("id"), patch)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, updated)
}

// Delete removes a listing. Owning host or admin only.
func (h *HomestayHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	if err := h.homestayUsecase.Delete(c.Request.Context(), *user, c.Param("id")); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Homestay deleted")
}

// MyListings returns the current host's listings.
func (h *HomestayHandler) MyListings(c *gin.Context) {
	user := CurrentUser(c)
	SuccessHandler(c, http.StatusOK, h.homestayUsecase.GetByHostID(c.Request.Context(), user.ID))
}

// HostSummary returns the host dashboard aggregate: listing count,
// booking count and confirmed revenue, recomputed on every load.
func (h *HomestayHandler) HostSummary(c *gin.Context) {
	user := CurrentUser(c)
	ctx := c.Request.Context()
	listings := h.homestayUsecase.GetByHostID(ctx, user.ID)
	bookings := h.bookingUsecase.GetByHostID(ctx, user.ID)
	SuccessHandler(c, http.StatusOK, dto.HostSummary{
		TotalListings: len(listings),
		TotalBookings: len(bookings),
		TotalRevenue:  h.bookingUsecase.HostRevenue(ctx, user.ID),
	})
}
