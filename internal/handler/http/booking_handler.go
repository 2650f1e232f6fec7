package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub/internal/domain/entity"
	"stayhub/internal/handler/http/dto"
	"stayhub/internal/infrastructure/validator"
	usecasecontract "stayhub/internal/usecase/contract"
)

type BookingHandler struct {
	bookingUsecase usecasecontract.IBookingUsecase
}

func NewBookingHandler(bookingUsecase usecasecontract.IBookingUsecase) *BookingHandler {
	return &BookingHandler{bookingUsecase: bookingUsecase}
}

// Create books a homestay for the current tourist. Dates are validated
// inline; pricing and the capacity rule run in the usecase.
func (h *BookingHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	var req dto.CreateBookingRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	fieldErrors := validator.ValidateForm(map[string]string{
		"guestName":  req.GuestName,
		"guestEmail": req.GuestEmail,
	}, map[string][]validator.Rule{
		"guestName":  {validator.Name},
		"guestEmail": {validator.Email},
	})
	if msg := validator.DateRange(req.CheckIn, req.CheckOut); msg != "" {
		fieldErrors["checkIn"] = msg
	}
	if validator.HasErrors(fieldErrors) {
		FieldErrorsHandler(c, fieldErrors)
		return
	}

	booking, err := h.bookingUsecase.Create(c.Request.Context(), user.ID, usecasecontract.BookingInput{
		HomestayID: req.HomestayID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
	})
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, booking)
}

// MyBookings returns the current tourist's bookings.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	user := CurrentUser(c)
	SuccessHandler(c, http.StatusOK, h.bookingUsecase.GetByUserID(c.Request.Context(), user.ID))
}

// HostBookings returns bookings against the current host's listings.
func (h *BookingHandler) HostBookings(c *gin.Context) {
	user := CurrentUser(c)
	SuccessHandler(c, http.StatusOK, h.bookingUsecase.GetByHostID(c.Request.Context(), user.ID))
}

// UpdateStatus confirms or cancels a pending booking.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	user := CurrentUser(c)
	var req dto.UpdateBookingStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	booking, err := h.bookingUsecase.UpdateStatus(c.Request.Context(), *user, c.Param("id"), entity.BookingStatus(req.Status))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, booking)
}

// List returns every booking (admin view).
func (h *BookingHandler) List(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.bookingUsecase.GetAll(c.Request.Context()))
}
