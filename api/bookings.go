package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type reserveRequest struct {
	FlightID   int64              `json:"flight_id" binding:"required,gt=0"`
	UserID     string             `json:"user_id"`
	Class      domain.SeatClass   `json:"class"`
	Seats      []string           `json:"seats"`
	Passengers []domain.Passenger `json:"passengers"`
}

type validateRequest struct {
	FlightID      int64            `json:"flight_id" binding:"required,gt=0"`
	Class         domain.SeatClass `json:"class"`
	Seats         []string         `json:"seats"`
	ExpectedCount int              `json:"expected_count"`
}

type updateStatusRequest struct {
	Status domain.BookingStatus `json:"status" binding:"required"`
}

type bookingResponse struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	FlightID   int64              `json:"flight_id"`
	Seats      []string           `json:"seats"`
	Class      string             `json:"class"`
	Passengers []domain.Passenger `json:"passengers"`
	Status     string             `json:"status"`
	CreatedAt  string             `json:"created_at"`
	UpdatedAt  string             `json:"updated_at"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.reserve)
	router.POST("/validate", h.validate)
	router.GET("", h.listByUser)
	router.GET("/:id", h.get)
	router.DELETE("/:id", h.cancel)
	router.PATCH("/:id", h.updateStatus)
}

func (h *BookingHandler) reserve(c *gin.Context) {
	var req reserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", err.Error())
		return
	}

	b, err := h.service.Reserve(c.Request.Context(), booking.ReserveInput{
		FlightID:   req.FlightID,
		Seats:      req.Seats,
		Passengers: req.Passengers,
		Class:      req.Class,
		UserID:     req.UserID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(b))
}

func (h *BookingHandler) validate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", err.Error())
		return
	}

	err := h.service.ValidateSeats(c.Request.Context(), booking.ValidateSeatsInput{
		FlightID:      req.FlightID,
		Seats:         req.Seats,
		Class:         req.Class,
		ExpectedCount: req.ExpectedCount,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

func (h *BookingHandler) listByUser(c *gin.Context) {
	bookings, err := h.service.ListUserBookings(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) get(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	b, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

// updateStatus accepts only the transition to cancelled; confirmation happens on reserve.
func (h *BookingHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", err.Error())
		return
	}
	if req.Status != domain.BookingStatusCancelled {
		badRequest(c, "status", "only cancelled is accepted")
		return
	}
	h.cancel(c)
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		FlightID:   b.FlightID,
		Seats:      b.Seats,
		Class:      string(b.Class),
		Passengers: b.Passengers,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}
