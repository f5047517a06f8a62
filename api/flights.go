package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
	"github.com/Domenick1991/seatbooking/internal/service/flights"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type FlightHandler struct {
	service   flights.FlightUseCase
	inventory booking.BookingUseCase
}

type quoteResponse struct {
	FlightID   int64            `json:"flight_id"`
	Class      domain.SeatClass `json:"class"`
	Seats      int              `json:"seats"`
	TotalCents int64            `json:"total_cents"`
}

func NewFlightHandler(service flights.FlightUseCase, inventory booking.BookingUseCase) *FlightHandler {
	return &FlightHandler{service: service, inventory: inventory}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
	router.GET("/:id/occupied-seats", h.occupiedSeats)
	router.GET("/:id/seat-map", h.seatMap)
	router.GET("/:id/quote", h.quote)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := flightID(c)
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) occupiedSeats(c *gin.Context) {
	id, ok := flightID(c)
	if !ok {
		return
	}
	seats, err := h.inventory.OccupiedSeats(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight_id": id, "seats": seats})
}

// seatMap accepts selected seats as a comma separated list, repeated, or both.
func (h *FlightHandler) seatMap(c *gin.Context) {
	id, ok := flightID(c)
	if !ok {
		return
	}
	var selected []string
	for _, v := range c.QueryArray("selected") {
		for _, seat := range strings.Split(v, ",") {
			if seat = strings.TrimSpace(seat); seat != "" {
				selected = append(selected, seat)
			}
		}
	}

	view, err := h.inventory.SeatMap(c.Request.Context(), id, selected)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *FlightHandler) quote(c *gin.Context) {
	id, ok := flightID(c)
	if !ok {
		return
	}
	class := domain.SeatClass(c.DefaultQuery("class", string(domain.SeatClassEconomy)))
	if !class.Valid() {
		badRequest(c, "class", "must be economy or business")
		return
	}
	seats, err := strconv.Atoi(c.DefaultQuery("seats", "1"))
	if err != nil || seats < 1 {
		badRequest(c, "seats", "must be a positive integer")
		return
	}

	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, quoteResponse{
		FlightID:   flight.ID,
		Class:      class,
		Seats:      seats,
		TotalCents: flight.Quote(class, seats),
	})
}

func (h *FlightHandler) search(c *gin.Context) {
	query := booking.SearchQuery{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Passengers:  1,
		Class:       domain.SeatClass(c.DefaultQuery("class", string(domain.SeatClassEconomy))),
	}
	if v := c.Query("date"); v != "" {
		date, err := time.Parse(dateLayout, v)
		if err != nil {
			badRequest(c, "date", "must be YYYY-MM-DD")
			return
		}
		query.Date = date
	}
	if v := c.Query("passengers"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			badRequest(c, "passengers", "must be a positive integer")
			return
		}
		query.Passengers = n
	}

	results, err := h.inventory.SearchFlights(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func flightID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "id", "invalid id")
		return 0, false
	}
	return id, true
}
